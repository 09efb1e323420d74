package ingest

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/MalithGihan/flowseed/pkg/types"
)

type mxfile struct {
	XMLName xml.Name  `xml:"mxfile"`
	Host    string    `xml:"host,attr,omitempty"`
	Diagram []diagram `xml:"diagram"`
}
type diagram struct {
	ID           string       `xml:"id,attr,omitempty"`
	Name         string       `xml:"name,attr,omitempty"`
	MxGraphModel mxGraphModel `xml:"mxGraphModel"`
}
type mxGraphModel struct {
	Root root `xml:"root"`
}
type root struct {
	Cells []mxCell `xml:"mxCell"`
}

type mxCell struct {
	ID       string      `xml:"id,attr"`
	Value    string      `xml:"value,attr,omitempty"`
	Style    string      `xml:"style,attr,omitempty"`
	Vertex   string      `xml:"vertex,attr,omitempty"` // "1" if node
	Edge     string      `xml:"edge,attr,omitempty"`   // "1" if edge
	Source   string      `xml:"source,attr,omitempty"`
	Target   string      `xml:"target,attr,omitempty"`
	Parent   string      `xml:"parent,attr,omitempty"`
	Geometry *mxGeometry `xml:"mxGeometry"`
}

type mxGeometry struct {
	X        float64 `xml:"x,attr,omitempty"`
	Y        float64 `xml:"y,attr,omitempty"`
	Width    float64 `xml:"width,attr,omitempty"`
	Height   float64 `xml:"height,attr,omitempty"`
	Relative string  `xml:"relative,attr,omitempty"`
	As       string  `xml:"as,attr"`
}

func ParseDrawIO(path string) (ParsedFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ParsedFile{Name: path}, err
	}

	var doc mxfile
	if err := xml.Unmarshal(b, &doc); err != nil {
		return ParsedFile{Name: path, Notes: []string{"drawio: xml unmarshal failed"}}, nil // soft fail: just a note
	}

	var g types.Graph
	for _, d := range doc.Diagram {
		for _, c := range d.MxGraphModel.Root.Cells {
			if c.Vertex == "1" {
				label := htmlUnescape(stripHTML(c.Value))
				if label == "" {
					label = "node-" + c.ID
				}
				style := parseStyle(c.Style)
				n := types.Node{
					ID:    c.ID,
					Label: label,
					Shape: shapeFromStyle(style),
					Class: style["class"],
				}
				if c.Geometry != nil {
					n.Width, n.Height = c.Geometry.Width, c.Geometry.Height
				}
				g.Nodes = append(g.Nodes, n)
			} else if c.Edge == "1" {
				g.Edges = append(g.Edges, types.Edge{
					Source: c.Source, Target: c.Target,
					Label: htmlUnescape(stripHTML(c.Value)),
				})
			}
		}
	}
	return ParsedFile{Name: path, Graph: g}, nil
}

func stripHTML(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	// draw.io often wraps labels like <div>Service</div>
	s = strings.ReplaceAll(s, "<div>", "")
	s = strings.ReplaceAll(s, "</div>", "")
	s = strings.ReplaceAll(s, "<br>", " ")
	return s
}
// entityReplacer decodes in a single pass, so "&amp;lt;" stays "&lt;".
var entityReplacer = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&#xa;", " ", "&nbsp;", " ", "&amp;", "&")

func htmlUnescape(s string) string {
	return strings.TrimSpace(entityReplacer.Replace(s))
}

// parseStyle splits "ellipse;aspect=fixed;html=1;" into a map. Bare words map to "".
func parseStyle(s string) map[string]string {
	out := map[string]string{}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		out[k] = v
	}
	return out
}

func shapeFromStyle(style map[string]string) types.Shape {
	has := func(name string) bool {
		if _, ok := style[name]; ok {
			return true
		}
		return style["shape"] == name
	}
	switch {
	case has("rhombus"):
		return types.ShapeDiamond
	case has("ellipse") && style["aspect"] == "fixed":
		return types.ShapeCircle
	case has("ellipse"):
		return types.ShapeEllipse
	default:
		return types.ShapeRect
	}
}

func styleFor(n types.Node) string {
	var b strings.Builder
	switch n.Shape {
	case types.ShapeEllipse:
		b.WriteString("ellipse;")
	case types.ShapeCircle:
		b.WriteString("ellipse;aspect=fixed;")
	case types.ShapeDiamond:
		b.WriteString("rhombus;")
	default:
		b.WriteString("rounded=0;")
	}
	b.WriteString("whiteSpace=wrap;html=1;")
	if n.Class != "" {
		b.WriteString("class=" + n.Class + ";")
	}
	return b.String()
}
