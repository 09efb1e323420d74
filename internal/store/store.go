package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MalithGihan/flowseed/pkg/types"
)

var ErrNotFound = errors.New("job not found")

const graphFile = "graph.json"

type FS struct{ Root string }

func New(root string) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{Root: root}, nil
}
func (s *FS) JobDir(id string) string { return filepath.Join(s.Root, id) }
func (s *FS) UploadDir(id string) string { return filepath.Join(s.JobDir(id), "uploads") }
func (s *FS) MkJob(id string) (string, error) {
	j := s.JobDir(id)
	return j, os.MkdirAll(s.UploadDir(id), 0o755)
}

// Uploads lists the uploaded file paths of a job in directory order.
func (s *FS) Uploads(id string) ([]string, error) {
	entries, err := os.ReadDir(s.UploadDir(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, filepath.Join(s.UploadDir(id), e.Name()))
	}
	return out, nil
}

// SaveGraph writes g as the job's graph.json, replacing any previous one.
func (s *FS) SaveGraph(id string, g types.Graph) error {
	if _, err := os.Stat(s.JobDir(id)); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	b, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	tmp := filepath.Join(s.JobDir(id), graphFile+".tmp")
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filepath.Join(s.JobDir(id), graphFile))
}

func (s *FS) LoadGraph(id string) (types.Graph, error) {
	b, err := os.ReadFile(filepath.Join(s.JobDir(id), graphFile))
	if errors.Is(err, fs.ErrNotExist) {
		return types.Graph{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return types.Graph{}, err
	}
	var g types.Graph
	if err := json.Unmarshal(b, &g); err != nil {
		return types.Graph{}, fmt.Errorf("decode %s: %w", graphFile, err)
	}
	return g, nil
}
