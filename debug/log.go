package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marksantaniello/jsobj/dump"
	"github.com/marksantaniello/jsobj/ir"
)

// Logf writes to stderr. *ir.Node arguments render as document text,
// maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = dump.String(x)
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// LogAny writes v to stderr as JSON, or with %v when it does not
// marshal.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}
