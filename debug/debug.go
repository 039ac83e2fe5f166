// Package debug gates diagnostic logging behind JSOBJ_DEBUG_*
// environment variables, read once at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Eval  bool
	Patch bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("JSOBJ_DEBUG_EVAL")
	d.Patch = boolEnv("JSOBJ_DEBUG_PATCH")
	d.LSP = boolEnv("JSOBJ_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func LSP() bool {
	return d.LSP
}
