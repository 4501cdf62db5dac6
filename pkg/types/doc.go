// Package types defines the value model produced by the bit specification
// parser: bit ranges, words, repeat clauses, complete bit specs and numeric
// literals.
//
// A bit spec names where a field lives inside a sequence of fixed-width
// words, for example "3[4..7]..6[0..5];48" describes bits 4..7 of word 3
// through bits 0..5 of word 6, repeated 48 times.
//
// Every value is an immutable result of a single parse call. Values are
// plain comparable structs (BitSpec.End is the only pointer) so they can be
// compared with == or reflect.DeepEqual and shared freely between goroutines.
//
// Each type has a String method that emits the canonical textual form.
// Parsing the canonical form yields a value identical to the original:
//
//	spec.String() == "3[4..7]..6[0..5];48"
//	bitspec.Parse(spec.String()) // deep-equals spec
//
// This package has no dependencies beyond the standard library.
package types
