// Package fixture serves the built-in seed content for the diagram canvas:
// two sample graphs, the shape vocabulary and the context-menu layout.
//
// The literals are never handed out directly. Every accessor returns a fresh
// copy, so callers may mutate results freely and concurrent reads need no locking.
package fixture

import (
	"fmt"

	"github.com/MalithGihan/flowseed/internal/validate"
	"github.com/MalithGihan/flowseed/pkg/types"
)

const (
	NameInitial = "initial"
	NameAppend  = "append"
	NameMerged  = "merged"
)

// Names lists the fixtures ByName understands.
func Names() []string { return []string{NameInitial, NameAppend, NameMerged} }

// Initial returns the graph a fresh canvas is seeded with.
func Initial() types.Graph { return initial.Clone() }

// Append returns the graph meant to be dropped onto a canvas already holding Initial.
func Append() types.Graph { return appended.Clone() }

// Merged returns Initial followed by Append.
func Merged() (types.Graph, error) {
	return types.Merge(initial, appended)
}

func ByName(name string) (types.Graph, error) {
	switch name {
	case NameInitial:
		return Initial(), nil
	case NameAppend:
		return Append(), nil
	case NameMerged:
		return Merged()
	}
	return types.Graph{}, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
}

func SupportedShapes() []types.Shape { return types.Shapes() }

func ShapeNames() []string {
	shapes := SupportedShapes()
	out := make([]string, len(shapes))
	for i, s := range shapes {
		out[i] = s.String()
	}
	return out
}

// Menu returns the whole context-menu configuration.
func Menu() types.Menu {
	return types.Menu{
		Node: ContextMenu(types.CategoryNode),
		Edge: ContextMenu(types.CategoryEdge),
		SVG:  ContextMenu(types.CategorySVG),
	}
}

// ContextMenu returns the entries shown for category c, nil if c is unknown.
func ContextMenu(c types.Category) []types.MenuItem {
	items := menu.Items(c)
	if items == nil {
		return nil
	}
	out := make([]types.MenuItem, len(items))
	copy(out, items)
	return out
}

// Verify checks every literal in the package. A non-nil result is always an
// *InvalidFixtureError and means the data itself is broken.
func Verify() error {
	graphs := []struct {
		name string
		g    types.Graph
	}{
		{NameInitial, initial},
		{NameAppend, appended},
	}
	for _, fx := range graphs {
		if err := validate.ValidateGraph(fx.g); err != nil {
			return &InvalidFixtureError{Fixture: fx.name, Err: err}
		}
	}
	if _, err := Merged(); err != nil {
		return &InvalidFixtureError{Fixture: NameMerged, Err: err}
	}

	if err := validate.Struct(menu); err != nil {
		return &InvalidFixtureError{Fixture: "menu", Err: err}
	}
	for _, c := range []types.Category{types.CategoryNode, types.CategoryEdge, types.CategorySVG} {
		seen := make(map[types.Command]bool)
		for _, it := range menu.Items(c) {
			if it.Command.Category() != c {
				return &InvalidFixtureError{
					Fixture: "menu",
					Err:     fmt.Errorf("command %s listed under %s", it.Command, c),
				}
			}
			if seen[it.Command] {
				return &InvalidFixtureError{
					Fixture: "menu",
					Err:     fmt.Errorf("duplicate command %s in %s", it.Command, c),
				}
			}
			seen[it.Command] = true
		}
	}
	return nil
}
