// Package diagnostic collects non-fatal findings produced while a schema
// tree is reconciled with a worksheet.
//
// Fatal problems are returned as errors. Everything the caller may want to
// see but that does not stop the operation (a detached optional node, a
// tolerated blank header cell) is recorded here with the node it concerns.
package diagnostic
