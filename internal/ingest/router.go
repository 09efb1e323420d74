package ingest

import (
	"path/filepath"
	"strings"

	"github.com/MalithGihan/flowseed/pkg/types"
)

func DetectType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".drawio", ".xml":
		return "drawio"
	case ".puml", ".plantuml":
		return "puml"
	case ".svg":
		return "svg"
	default:
		return "unknown"
	}
}

// ParseFile dispatches on the file extension. Unsupported files yield a note, not an error.
func ParseFile(path string) (ParsedFile, error) {
	switch DetectType(path) {
	case "drawio":
		return ParseDrawIO(path)
	case "puml":
		return ParsePUML(path)
	case "svg":
		return ParseSVG(path)
	}
	return ParsedFile{Name: path, Notes: []string{"unsupported file type: " + filepath.Base(path)}}, nil
}

// Merge multiple files into one graph (append nodes/edges).
// The result always carries non-nil slices so it encodes as a valid graph document.
func BuildGraph(files []ParsedFile) (types.Graph, []string) {
	g := types.Graph{Nodes: []types.Node{}, Edges: []types.Edge{}}
	var notes []string
	for _, f := range files {
		g.Nodes = append(g.Nodes, f.Graph.Nodes...)
		g.Edges = append(g.Edges, f.Graph.Edges...)
		notes = append(notes, f.Notes...)
	}
	return g, notes
}

type ParsedFile struct {
	Name  string
	Graph types.Graph
	Notes []string
}
