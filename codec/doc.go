// Package codec
// Author: momentics <momentics@gmail.com>
//
// Textual value codec. Scalars travel as their decimal or literal text form:
// strings unchanged, integers in base 10, floats in the shortest form that
// parses back to the same value, bools as true/false. Decoding is strict and
// reports malformed input as api.ErrDecode.
package codec
