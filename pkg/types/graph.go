package types

import (
	"errors"
	"fmt"
	"sort"
)

// ErrStructural marks graph invariant violations. Check with errors.Is.
var ErrStructural = errors.New("structural error")

// StructuralError reports a broken graph invariant.
// Kind is one of "missing_id", "duplicate_id", "dangling_edge", "id_collision".
type StructuralError struct {
	Kind string
	Msg  string
}

func (e *StructuralError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return ErrStructural.Error()
	}
	return fmt.Sprintf("%s: %s", ErrStructural.Error(), e.Msg)
}

func (e *StructuralError) Unwrap() error { return ErrStructural }

// Clone returns a deep copy that shares no backing arrays with g.
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Edges, g.Edges)
	return out
}

func (g Graph) NodeIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = struct{}{}
	}
	return ids
}

// Validate checks that node ids are present and unique and that every edge
// endpoint resolves. Cycles and self-loops are allowed.
func (g Graph) Validate() error {
	ids := make(map[string]bool, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return &StructuralError{Kind: "missing_id", Msg: fmt.Sprintf("nodes[%d] has no id", i)}
		}
		if ids[n.ID] {
			return &StructuralError{Kind: "duplicate_id", Msg: fmt.Sprintf("duplicate node ID: %q", n.ID)}
		}
		ids[n.ID] = true
	}
	for i, e := range g.Edges {
		for _, end := range []string{e.Source, e.Target} {
			if !ids[end] {
				return &StructuralError{
					Kind: "dangling_edge",
					Msg:  fmt.Sprintf("edges[%d] references unknown node: %q", i, end),
				}
			}
		}
	}
	return nil
}

// Merge appends extra onto base without renaming anything. Overlapping node
// ids are rejected, listed in sorted order. Neither input is modified.
func Merge(base, extra Graph) (Graph, error) {
	have := base.NodeIDs()
	var clash []string
	for _, n := range extra.Nodes {
		if _, ok := have[n.ID]; ok {
			clash = append(clash, n.ID)
		}
	}
	if len(clash) > 0 {
		sort.Strings(clash)
		return Graph{}, &StructuralError{
			Kind: "id_collision",
			Msg:  fmt.Sprintf("node ids already present: %q", clash),
		}
	}

	out := Graph{
		Nodes: make([]Node, 0, len(base.Nodes)+len(extra.Nodes)),
		Edges: make([]Edge, 0, len(base.Edges)+len(extra.Edges)),
	}
	out.Nodes = append(append(out.Nodes, base.Nodes...), extra.Nodes...)
	out.Edges = append(append(out.Edges, base.Edges...), extra.Edges...)
	return out, nil
}
