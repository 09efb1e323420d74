package types

type Node struct {
	ID          string  `json:"id" yaml:"id" validate:"required"`
	Label       string  `json:"label" yaml:"label"`
	Shape       Shape   `json:"shape" yaml:"shape"`
	Width       float64 `json:"width,omitempty" yaml:"width,omitempty" validate:"omitempty,gt=0"`
	Height      float64 `json:"height,omitempty" yaml:"height,omitempty" validate:"omitempty,gt=0"`
	Class       string  `json:"class,omitempty" yaml:"class,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

type Edge struct {
	Source string `json:"source" yaml:"source" validate:"required"`
	Target string `json:"target" yaml:"target" validate:"required"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Graph is the canvas payload: nodes unique by id, edges in display order.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes" validate:"dive"`
	Edges []Edge `json:"edges" yaml:"edges" validate:"dive"`
}

type MenuItem struct {
	Icon    string  `json:"icon" yaml:"icon" validate:"required"`
	Label   string  `json:"label" yaml:"label" validate:"required"`
	Command Command `json:"command" yaml:"command"`
}

// Menu holds the context-menu entries per interaction context.
// SVG carries the canvas-background actions.
type Menu struct {
	Node []MenuItem `json:"node" yaml:"node" validate:"dive"`
	Edge []MenuItem `json:"edge" yaml:"edge" validate:"dive"`
	SVG  []MenuItem `json:"svg" yaml:"svg" validate:"dive"`
}

// Items returns the entries for c, or nil for an unknown category.
func (m Menu) Items(c Category) []MenuItem {
	switch c {
	case CategoryNode:
		return m.Node
	case CategoryEdge:
		return m.Edge
	case CategorySVG:
		return m.SVG
	}
	return nil
}
