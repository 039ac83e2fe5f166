package jsobj

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/marksantaniello/jsobj/debug"
	"github.com/marksantaniello/jsobj/eval"
	"github.com/marksantaniello/jsobj/ir"
	"github.com/marksantaniello/jsobj/scan"
	"github.com/marksantaniello/jsobj/stream"
)

// Patch applies an RFC 6902 patch document to doc and returns the
// patched tree. doc is not modified. Operations address the JSON
// rendering of doc with JSON Pointer paths. The root and every object
// an operation path traverses are rebuilt with sorted keys; untouched
// subtrees keep their order.
func Patch(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	return applyOps(doc, ops)
}

// PatchNode is Patch with the operations given as a value tree, an
// array of operation objects.
func PatchNode(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := eval.MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	return Patch(doc, d)
}

func applyOps(doc *ir.Node, ops jsonpatch.Patch) (*ir.Node, error) {
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applying %d ops to %s\n", len(ops), d)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	b := stream.NewBuilder()
	if err := scan.ScanBytes(out, b); err != nil {
		return nil, err
	}
	return b.Root()
}
