package ingest

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/MalithGihan/flowseed/pkg/types"
)

type svgDoc struct {
	Texts  []svgText  `xml:"text"`
	Groups []svgGroup `xml:"g"`
}
type svgGroup struct {
	Texts  []svgText  `xml:"text"`
	Groups []svgGroup `xml:"g"`
}
type svgText struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
	T string `xml:",chardata"`
}

// ParseSVG turns every text element into a rect node. Edges are not recovered.
func ParseSVG(path string) (ParsedFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ParsedFile{Name: path}, err
	}

	var doc svgDoc
	_ = xml.Unmarshal(b, &doc) // best-effort; if it fails, we just return notes

	texts := doc.Texts
	var walk func([]svgGroup)
	walk = func(gs []svgGroup) {
		for _, g := range gs {
			texts = append(texts, g.Texts...)
			walk(g.Groups)
		}
	}
	walk(doc.Groups)

	var g types.Graph
	for i, t := range texts {
		label := strings.TrimSpace(t.T)
		if label == "" {
			continue
		}
		g.Nodes = append(g.Nodes, types.Node{
			ID:    fmt.Sprintf("svg_%s_%s_%d", strings.TrimSpace(t.X), strings.TrimSpace(t.Y), i),
			Label: label,
			Shape: types.ShapeRect,
		})
	}
	notes := []string{"svg: best-effort text extraction; edges not parsed"}
	return ParsedFile{Name: path, Graph: g, Notes: notes}, nil
}
