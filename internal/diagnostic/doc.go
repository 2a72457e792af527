// Package diagnostic provides structured errors, warnings and notes
// produced while checking mapping configurations against a template,
// the structure registry and the current table.
//
// Diagnostics never stop generation. They explain why a slot will be
// generated from defaults: a missing structure definition, a column binding
// that no longer fits the table, a label that matched no header.
package diagnostic
