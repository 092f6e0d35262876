// Package rowmap extracts data rows below a verified header into nested
// records keyed by the output keys of the schema tree.
package rowmap
