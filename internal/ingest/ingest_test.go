package ingest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MalithGihan/flowseed/internal/fixture"
	"github.com/MalithGihan/flowseed/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"flow.drawio", "drawio"},
		{"FLOW.XML", "drawio"},
		{"arch.puml", "puml"},
		{"arch.plantuml", "puml"},
		{"canvas.svg", "svg"},
		{"scan.png", "unknown"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectType(tc.name))
		})
	}
}

func TestParseDrawIO(t *testing.T) {
	p := writeFile(t, "sample.drawio", `<mxfile>
  <diagram name="Page-1">
    <mxGraphModel>
      <root>
        <mxCell id="0"/>
        <mxCell id="1" parent="0"/>
        <mxCell id="a" value="&lt;div&gt;Check&lt;/div&gt;" style="rhombus;whiteSpace=wrap;" vertex="1" parent="1">
          <mxGeometry x="10" y="10" width="100" height="80" as="geometry"/>
        </mxCell>
        <mxCell id="b" value="Good" style="ellipse;aspect=fixed;" vertex="1" parent="1">
          <mxGeometry width="60" height="60" as="geometry"/>
        </mxCell>
        <mxCell id="c" value="" style="ellipse;" vertex="1" parent="1"/>
        <mxCell id="d" value="Box" style="rounded=1;class=type-top;" vertex="1" parent="1"/>
        <mxCell id="e1" value="pass" edge="1" source="a" target="b" parent="1"/>
      </root>
    </mxGraphModel>
  </diagram>
</mxfile>`)

	pf, err := ParseDrawIO(p)
	require.NoError(t, err)
	g := pf.Graph
	require.Len(t, g.Nodes, 4)
	require.Len(t, g.Edges, 1)

	assert.Equal(t, types.Node{ID: "a", Label: "Check", Shape: types.ShapeDiamond, Width: 100, Height: 80}, g.Nodes[0])
	assert.Equal(t, types.ShapeCircle, g.Nodes[1].Shape)
	assert.Equal(t, "node-c", g.Nodes[2].Label)
	assert.Equal(t, types.ShapeEllipse, g.Nodes[2].Shape)
	assert.Equal(t, types.ShapeRect, g.Nodes[3].Shape)
	assert.Equal(t, "type-top", g.Nodes[3].Class)
	assert.Equal(t, types.Edge{Source: "a", Target: "b", Label: "pass"}, g.Edges[0])
}

func TestParseDrawIOSoftFail(t *testing.T) {
	p := writeFile(t, "broken.drawio", "<mxfile><diagram>")
	pf, err := ParseDrawIO(p)
	require.NoError(t, err)
	assert.Empty(t, pf.Graph.Nodes)
	assert.NotEmpty(t, pf.Notes)

	_, err = ParseDrawIO(filepath.Join(t.TempDir(), "missing.drawio"))
	assert.Error(t, err)
}

func TestDrawIORoundTrip(t *testing.T) {
	for _, name := range fixture.Names() {
		t.Run(name, func(t *testing.T) {
			g, err := fixture.ByName(name)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, WriteDrawIO(&buf, g))
			p := writeFile(t, name+".drawio", buf.String())

			pf, err := ParseDrawIO(p)
			require.NoError(t, err)
			require.Empty(t, pf.Notes)

			want := g.Clone()
			for i := range want.Nodes {
				want.Nodes[i].Description = ""
				if want.Nodes[i].Width == 0 {
					want.Nodes[i].Width = defaultWidth
				}
				if want.Nodes[i].Height == 0 {
					want.Nodes[i].Height = defaultHeight
				}
			}
			assert.ElementsMatch(t, want.Nodes, pf.Graph.Nodes)
			assert.Equal(t, want.Edges, pf.Graph.Edges)
		})
	}
}

func TestWriteDrawIORejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDrawIO(&buf, types.Graph{
		Nodes: []types.Node{{ID: "a", Shape: types.ShapeRect}},
		Edges: []types.Edge{{Source: "a", Target: "b"}},
	})
	assert.ErrorIs(t, err, types.ErrStructural)

	for _, id := range []string{rootCellID, layerCellID, "flowseed-layer-edge-0", "flowseed-x"} {
		err = WriteDrawIO(&buf, types.Graph{Nodes: []types.Node{{ID: id, Shape: types.ShapeRect}}})
		assert.ErrorContains(t, err, "reserved", id)
	}
}

func TestHTMLUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a &amp; b", "a & b"},
		{"&lt;b&gt;", "<b>"},
		{"&amp;lt;", "&lt;"},
		{"&amp;amp;", "&amp;"},
		{" x&nbsp;y&#xa; ", "x y"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				assert.Equal(t, tc.want, htmlUnescape(tc.in))
			}
		})
	}
}

func TestLayers(t *testing.T) {
	layers := Layers(fixture.Initial())
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}, {4, 5}}, layers)

	cyclic := types.Graph{
		Nodes: []types.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		Edges: []types.Edge{{Source: "a", Target: "b"}, {Source: "b", Target: "c"}, {Source: "c", Target: "a"}, {Source: "c", Target: "c"}},
	}
	assert.Equal(t, [][]int{{0}, {1}, {2}}, Layers(cyclic))

	assert.Empty(t, Layers(types.Graph{}))
}

func TestParsePUML(t *testing.T) {
	p := writeFile(t, "flow.puml", strings.Join([]string{
		"@startuml",
		"' classification flow",
		`rectangle "Top Level" as top`,
		`usecase "Branch" as branch`,
		`circle Good`,
		`top --> branch : down`,
		`branch -> Good : pass`,
		`branch ..> Reject`,
		"@enduml",
	}, "\n"))

	pf, err := ParsePUML(p)
	require.NoError(t, err)
	g := pf.Graph

	assert.Equal(t, []types.Node{
		{ID: "top", Label: "Top Level", Shape: types.ShapeRect},
		{ID: "branch", Label: "Branch", Shape: types.ShapeEllipse},
		{ID: "good", Label: "Good", Shape: types.ShapeCircle},
		{ID: "reject", Label: "reject", Shape: types.ShapeRect},
	}, g.Nodes)
	assert.Equal(t, []types.Edge{
		{Source: "top", Target: "branch", Label: "down"},
		{Source: "branch", Target: "good", Label: "pass"},
		{Source: "branch", Target: "reject"},
	}, g.Edges)
	assert.NoError(t, g.Validate())
}

func TestBuildGraph(t *testing.T) {
	a := ParsedFile{Graph: fixture.Initial(), Notes: []string{"n1"}}
	b := ParsedFile{Graph: fixture.Append()}
	c, err := ParseFile("scan.png")
	require.NoError(t, err)

	g, notes := BuildGraph([]ParsedFile{a, b, c})
	assert.Len(t, g.Nodes, 12)
	assert.Len(t, g.Edges, 12)
	assert.Equal(t, []string{"n1", "unsupported file type: scan.png"}, notes)
}

func TestParseSVG(t *testing.T) {
	p := writeFile(t, "canvas.svg", `<svg xmlns="http://www.w3.org/2000/svg">
  <text x="10" y="20">Top</text>
  <g class="node"><g><text x="10" y="80"> Filter </text></g></g>
  <text x="0" y="0">  </text>
</svg>`)

	pf, err := ParseFile(p)
	require.NoError(t, err)
	assert.Equal(t, []types.Node{
		{ID: "svg_10_20_0", Label: "Top", Shape: types.ShapeRect},
		{ID: "svg_10_80_2", Label: "Filter", Shape: types.ShapeRect},
	}, pf.Graph.Nodes)
	assert.Empty(t, pf.Graph.Edges)
	assert.Len(t, pf.Notes, 1)
}

func TestParsePUMLKeywordAliases(t *testing.T) {
	tests := []struct {
		name  string
		alias string
	}{
		{"Node", "node"},
		{"Circle", "circle"},
		{"Component", "component"},
		{"Rectangle", "rectangle"},
		{"Usecase", "usecase"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := writeFile(t, "alias.puml", strings.Join([]string{
				`rectangle "Worker Node" as ` + tc.alias,
				`rectangle Db as db`,
				tc.alias + ` --> db : uses`,
			}, "\n"))

			pf, err := ParsePUML(p)
			require.NoError(t, err)
			assert.Equal(t, []types.Node{
				{ID: tc.alias, Label: "Worker Node", Shape: types.ShapeRect},
				{ID: "db", Label: "Db", Shape: types.ShapeRect},
			}, pf.Graph.Nodes)
			assert.Equal(t, []types.Edge{{Source: tc.alias, Target: "db", Label: "uses"}}, pf.Graph.Edges)
		})
	}
}

func TestBuildGraphEmpty(t *testing.T) {
	c, err := ParseFile("scan.png")
	require.NoError(t, err)

	for _, files := range [][]ParsedFile{nil, {c}} {
		g, _ := BuildGraph(files)
		require.NotNil(t, g.Nodes)
		require.NotNil(t, g.Edges)
		b, err := json.Marshal(g)
		require.NoError(t, err)
		assert.JSONEq(t, `{"nodes":[],"edges":[]}`, string(b))
	}
}
