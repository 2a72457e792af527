// Package plan derives per-slot mapping configurations for a template.
//
// Two passes exist and both are invoked explicitly by the caller:
//  1. Derive builds the initial configuration list when a template is
//     selected and no configuration exists yet (see DeriveIfEmpty).
//  2. Rematch rebinds list columns and struct fields by header name after
//     the table's columns change. Running it twice is a no-op.
//
// Header matching trims and lower-cases both sides; the first exact match
// wins and nothing is matched fuzzily.
package plan
