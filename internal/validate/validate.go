package validate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/MalithGihan/flowseed/pkg/types"
)

const schemaURL = "file://schema/graph.schema.json"

//go:embed schema/graph.schema.json
var graphSchema []byte

var (
	once    sync.Once
	schema  *jsonschema.Schema
	loadErr error

	structs = validator.New()
)

func load() {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader(graphSchema)); err != nil {
		loadErr = err
		return
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		loadErr = err
		return
	}
	schema = s
}

// ValidateJSON validates a raw graph document against the wire schema.
func ValidateJSON(raw []byte) error {
	once.Do(load)
	if loadErr != nil {
		return loadErr
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("decode graph: %w", err)
	}
	return schema.Validate(v)
}

// Struct runs the validate struct tags on v.
func Struct(v any) error {
	return structs.Struct(v)
}

// ValidateGraph checks field tags, the shape vocabulary and the graph invariants, in that order.
func ValidateGraph(g types.Graph) error {
	if err := Struct(g); err != nil {
		return err
	}
	for i, n := range g.Nodes {
		if !n.Shape.Valid() {
			return fmt.Errorf("nodes[%d] (%q): unsupported shape %s", i, n.ID, n.Shape)
		}
	}
	return g.Validate()
}
