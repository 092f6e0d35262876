// Package match provides the string helpers used to turn spreadsheet header
// labels into identifiers, and to compare labels.
//
// Key functions:
//   - Tokenize: splits a label into word and digit tokens
//   - ClassName: derives a CamelCase identifier from a label
//   - SnakeCase: converts a CamelCase identifier into snake_case
//   - Levenshtein: computes edit distance between strings
//   - LabelSimilarity: scores how close two header labels are
package match
