package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(ids ...string) Graph {
	var g Graph
	for i, id := range ids {
		g.Nodes = append(g.Nodes, Node{ID: id, Label: id, Shape: ShapeRect})
		if i > 0 {
			g.Edges = append(g.Edges, Edge{Source: ids[i-1], Target: id})
		}
	}
	return g
}

func TestGraphValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Graph
		kind string
	}{
		{"Empty", Graph{}, ""},
		{"Chain", chain("a", "b", "c"), ""},
		{"CycleAllowed", func() Graph {
			g := chain("a", "b")
			g.Edges = append(g.Edges, Edge{Source: "b", Target: "a"})
			return g
		}(), ""},
		{"SelfLoopAllowed", Graph{
			Nodes: []Node{{ID: "a", Shape: ShapeCircle}},
			Edges: []Edge{{Source: "a", Target: "a"}},
		}, ""},
		{"MissingID", Graph{Nodes: []Node{{Label: "x"}}}, "missing_id"},
		{"DuplicateID", Graph{Nodes: []Node{{ID: "a"}, {ID: "a"}}}, "duplicate_id"},
		{"DanglingSource", Graph{
			Nodes: []Node{{ID: "a"}},
			Edges: []Edge{{Source: "zz", Target: "a"}},
		}, "dangling_edge"},
		{"DanglingTarget", Graph{
			Nodes: []Node{{ID: "a"}},
			Edges: []Edge{{Source: "a", Target: "zz"}},
		}, "dangling_edge"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.g.Validate()
			if tc.kind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrStructural))
			var se *StructuralError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.kind, se.Kind)
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := chain("a", "b")
	c := g.Clone()
	c.Nodes[0].Label = "changed"
	c.Edges[0].Label = "changed"
	c.Nodes = append(c.Nodes, Node{ID: "c"})

	assert.Equal(t, "a", g.Nodes[0].Label)
	assert.Empty(t, g.Edges[0].Label)
	assert.Len(t, g.Nodes, 2)
}

func TestMerge(t *testing.T) {
	base := chain("a", "b")
	extra := chain("c", "d")

	m, err := Merge(base, extra)
	require.NoError(t, err)
	assert.Len(t, m.Nodes, 4)
	assert.Len(t, m.Edges, 2)
	assert.Equal(t, "a", m.Nodes[0].ID)
	assert.Equal(t, "d", m.Nodes[3].ID)
	assert.NoError(t, m.Validate())

	m.Nodes[0].Label = "x"
	assert.Equal(t, "a", base.Nodes[0].Label)
}

func TestMergeCollision(t *testing.T) {
	_, err := Merge(chain("a", "b"), chain("b", "a"))
	require.Error(t, err)
	var se *StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "id_collision", se.Kind)
	assert.Contains(t, se.Msg, `["a" "b"]`)
}

func TestNodeJSON(t *testing.T) {
	n := Node{ID: "2", Label: "cond", Shape: ShapeDiamond, Width: 100}
	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"2","label":"cond","shape":"diamond","width":100}`, string(b))

	var back Node
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, n, back)

	err = json.Unmarshal([]byte(`{"id":"x","shape":"hexagon"}`), &back)
	assert.Error(t, err)
}
