package types

import "fmt"

// Shape is the rendering shape of a node. The zero value is not a valid shape.
type Shape uint8

const (
	ShapeRect Shape = iota + 1
	ShapeEllipse
	ShapeCircle
	ShapeDiamond
)

var shapeNames = map[Shape]string{
	ShapeRect:    "rect",
	ShapeEllipse: "ellipse",
	ShapeCircle:  "circle",
	ShapeDiamond: "diamond",
}

// Shapes lists the shape vocabulary in presentation order.
func Shapes() []Shape {
	return []Shape{ShapeRect, ShapeEllipse, ShapeCircle, ShapeDiamond}
}

// ParseShape maps a wire name such as "ellipse" to its Shape.
func ParseShape(s string) (Shape, error) {
	for sh, name := range shapeNames {
		if name == s {
			return sh, nil
		}
	}
	return 0, fmt.Errorf("unsupported shape %q", s)
}

func (s Shape) Valid() bool { _, ok := shapeNames[s]; return ok }

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unsupported shape %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Category is a context-menu interaction context.
type Category uint8

const (
	CategoryNode Category = iota + 1
	CategoryEdge
	CategorySVG
)

// ParseCategory maps "node", "edge" or "svg" to its Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "node":
		return CategoryNode, nil
	case "edge":
		return CategoryEdge, nil
	case "svg":
		return CategorySVG, nil
	}
	return 0, fmt.Errorf("unknown menu category %q", s)
}

func (c Category) String() string {
	switch c {
	case CategoryNode:
		return "node"
	case CategoryEdge:
		return "edge"
	case CategorySVG:
		return "svg"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Command is the identifier the editor dispatches on when a menu item is picked.
type Command uint8

const (
	CommandNodeDetail Command = iota + 1
	CommandNodeDelete
	CommandNodeAddEdge
	CommandNodeAddNode
	CommandEdgeDetail
	CommandEdgeDelete
	CommandAddNode
	CommandAddFlow
)

var commandNames = map[Command]string{
	CommandNodeDetail:  "nodeDetail",
	CommandNodeDelete:  "nodeDelete",
	CommandNodeAddEdge: "nodeAddEdge",
	CommandNodeAddNode: "nodeAddNode",
	CommandEdgeDetail:  "edgeDetail",
	CommandEdgeDelete:  "edgeDelete",
	CommandAddNode:     "addNode",
	CommandAddFlow:     "addFlow",
}

// Commands returns every command in declaration order.
func Commands() []Command {
	out := make([]Command, 0, len(commandNames))
	for c := CommandNodeDetail; c <= CommandAddFlow; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCommand maps a command identifier such as "nodeDetail" to its Command.
func ParseCommand(s string) (Command, error) {
	for c, name := range commandNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", s)
}

// Category reports which menu a command belongs to.
func (c Command) Category() Category {
	switch c {
	case CommandNodeDetail, CommandNodeDelete, CommandNodeAddEdge, CommandNodeAddNode:
		return CategoryNode
	case CommandEdgeDetail, CommandEdgeDelete:
		return CategoryEdge
	case CommandAddNode, CommandAddFlow:
		return CategorySVG
	}
	return 0
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

func (c Command) MarshalText() ([]byte, error) {
	name, ok := commandNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown command %d", uint8(c))
	}
	return []byte(name), nil
}

func (c *Command) UnmarshalText(b []byte) error {
	v, err := ParseCommand(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
