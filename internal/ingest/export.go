package ingest

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/MalithGihan/flowseed/pkg/types"
)

// Default node box and spacing used when laying a graph out for export.
const (
	defaultWidth  = 60
	defaultHeight = 32
	layerGap      = 60
	columnGap     = 40
	margin        = 20
)

// Cell ids the exporter generates all start with reservedPrefix. Node ids are
// written verbatim, so nodes may not use that prefix.
const (
	reservedPrefix = "flowseed-"
	rootCellID     = reservedPrefix + "root"
	layerCellID    = reservedPrefix + "layer"
)

// WriteDrawIO renders g as an uncompressed draw.io document. Nodes are placed
// top-down by layer; node descriptions are not representable and are dropped.
func WriteDrawIO(w io.Writer, g types.Graph) error {
	if err := g.Validate(); err != nil {
		return err
	}
	for _, n := range g.Nodes {
		if strings.HasPrefix(n.ID, reservedPrefix) {
			return fmt.Errorf("node id %q uses the prefix %q reserved by the drawio exporter", n.ID, reservedPrefix)
		}
	}

	cells := []mxCell{{ID: rootCellID}, {ID: layerCellID, Parent: rootCellID}}

	layers := Layers(g)
	var y float64 = margin
	for _, layer := range layers {
		var x float64 = margin
		var rowHeight float64
		for _, idx := range layer {
			n := g.Nodes[idx]
			width, height := n.Width, n.Height
			if width == 0 {
				width = defaultWidth
			}
			if height == 0 {
				height = defaultHeight
			}
			cells = append(cells, mxCell{
				ID: n.ID, Value: n.Label, Style: styleFor(n),
				Vertex: "1", Parent: layerCellID,
				Geometry: &mxGeometry{X: x, Y: y, Width: width, Height: height, As: "geometry"},
			})
			x += width + columnGap
			rowHeight = max(rowHeight, height)
		}
		y += rowHeight + layerGap
	}

	for i, e := range g.Edges {
		cells = append(cells, mxCell{
			ID:     fmt.Sprintf("%s-edge-%d", layerCellID, i),
			Value:  e.Label,
			Style:  "edgeStyle=orthogonalEdgeStyle;html=1;",
			Edge:   "1",
			Source: e.Source, Target: e.Target,
			Parent:   layerCellID,
			Geometry: &mxGeometry{Relative: "1", As: "geometry"},
		})
	}

	doc := mxfile{
		Host: "flowseed",
		Diagram: []diagram{{
			ID: "flowseed", Name: "Page-1",
			MxGraphModel: mxGraphModel{Root: root{Cells: cells}},
		}},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// Layers groups node indexes by longest distance from a source node, keeping
// input order within a layer. Back edges of cycles are ignored, so every node
// lands in exactly one layer.
func Layers(g types.Graph) [][]int {
	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
	}
	adjacency := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		from, ok1 := index[e.Source]
		to, ok2 := index[e.Target]
		if ok1 && ok2 && from != to {
			adjacency[from] = append(adjacency[from], to)
		}
	}

	// DFS colouring: 0 = unvisited, 1 = in progress, 2 = done.
	color := make([]int, len(g.Nodes))
	var order []int
	var dfs func(int)
	dfs = func(n int) {
		color[n] = 1
		for _, next := range adjacency[n] {
			if color[next] == 0 {
				dfs(next)
			}
		}
		color[n] = 2
		order = append(order, n)
	}
	for i := range g.Nodes {
		if color[i] == 0 {
			dfs(i)
		}
	}

	// order is a post-order; walking it backwards visits parents first.
	position := make([]int, len(g.Nodes))
	for i, n := range order {
		position[n] = len(order) - 1 - i
	}
	depth := make([]int, len(g.Nodes))
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		for _, next := range adjacency[n] {
			if position[next] > position[n] && depth[n]+1 > depth[next] {
				depth[next] = depth[n] + 1
			}
		}
	}

	var out [][]int
	for i := range g.Nodes {
		for len(out) <= depth[i] {
			out = append(out, nil)
		}
		out[depth[i]] = append(out[depth[i]], i)
	}
	return out
}
