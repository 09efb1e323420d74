package ingest

import (
	"os"
	"regexp"
	"strings"

	"github.com/MalithGihan/flowseed/pkg/types"
)

var (
	reComp = regexp.MustCompile(`(?i)^(component|rectangle|node|usecase|circle)\s+"?([^"]+?)"?\s*(as\s+([A-Za-z0-9_]+))?\s*$`)
	reLink = regexp.MustCompile(`(?i)^([A-Za-z0-9_"]+)\s*[-\.]*>{1,2}\s*([A-Za-z0-9_"]+)\s*(?::\s*(.+))?$`)
)

func ParsePUML(path string) (ParsedFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ParsedFile{Name: path}, err
	}
	lines := strings.Split(string(b), "\n")

	idByLabel := map[string]string{}
	seen := map[string]bool{}
	var g types.Graph
	var notes []string

	for _, ln := range lines {
		l := strings.TrimSpace(ln)
		if l == "" || strings.HasPrefix(l, "'") || strings.HasPrefix(l, "@") {
			continue
		}

		// Links first: an alias may itself be a keyword such as "node".
		if m := reLink.FindStringSubmatch(l); m != nil {
			from := cleanRef(m[1], idByLabel)
			to := cleanRef(m[2], idByLabel)
			g.Edges = append(g.Edges, types.Edge{Source: from, Target: to, Label: strings.TrimSpace(m[3])})
			continue
		}
		if m := reComp.FindStringSubmatch(l); m != nil {
			label := strings.TrimSpace(m[2])
			id := m[4]
			if id == "" {
				id = sanitizeID(label)
			}
			idByLabel[label] = id
			if seen[id] {
				notes = append(notes, "puml: duplicate declaration of "+id)
				continue
			}
			seen[id] = true
			g.Nodes = append(g.Nodes, types.Node{
				ID: id, Label: label, Shape: shapeFromKeyword(m[1]),
			})
		}
	}

	// PlantUML lets links introduce participants implicitly.
	for _, e := range g.Edges {
		for _, id := range []string{e.Source, e.Target} {
			if !seen[id] {
				seen[id] = true
				g.Nodes = append(g.Nodes, types.Node{ID: id, Label: id, Shape: types.ShapeRect})
			}
		}
	}
	return ParsedFile{Name: path, Graph: g, Notes: notes}, nil
}

func shapeFromKeyword(kw string) types.Shape {
	switch strings.ToLower(kw) {
	case "usecase":
		return types.ShapeEllipse
	case "circle":
		return types.ShapeCircle
	default:
		return types.ShapeRect
	}
}

func sanitizeID(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
func cleanRef(s string, ids map[string]string) string {
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if id, ok := ids[s]; ok {
		return id
	}
	return sanitizeID(s)
}
