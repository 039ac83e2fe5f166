// Package diff computes structural differences between two trees.
//
// Nodes walks a pair of documents and returns the places they differ
// as a flat []Delta, each carrying an add/delete/replace op, the path
// of the change, and the subtrees involved. Dictionaries align their
// fields by name and arrays their elements by value through a text
// diff over rune mappings, so insertions shift positions without
// drowning the result in spurious deltas.
package diff
