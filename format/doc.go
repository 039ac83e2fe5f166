// Package format names the textual formats the tooling reads and
// writes, with flag-friendly parsing.
package format
