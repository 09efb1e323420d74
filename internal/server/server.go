// Package server exposes the fixtures, the menu configuration and diagram
// import over HTTP for the editor front end.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/MalithGihan/flowseed/internal/fixture"
	"github.com/MalithGihan/flowseed/internal/ingest"
	"github.com/MalithGihan/flowseed/internal/store"
	"github.com/MalithGihan/flowseed/internal/validate"
	"github.com/MalithGihan/flowseed/pkg/types"
)

const maxBody = 64 << 20

type Server struct {
	store *store.FS
	log   *log.Logger
}

func New(st *store.FS, logger *log.Logger) *Server {
	return &Server{store: st, log: logger}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLog)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"flowseed"}`))
	})

	r.Get("/shapes", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"shapes": fixture.ShapeNames()})
	})

	r.Get("/menu", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, fixture.Menu())
	})

	r.Get("/menu/{category}", func(w http.ResponseWriter, r *http.Request) {
		c, err := types.ParseCategory(chi.URLParam(r, "category"))
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeJSON(w, http.StatusOK, fixture.ContextMenu(c))
	})

	r.Get("/fixtures/{name}", s.getFixture)
	r.Post("/graphs/validate", s.validateGraph)
	r.Post("/graphs/merge", s.mergeGraphs)
	r.Post("/ingest", s.ingest)
	r.Get("/jobs/{id}/graph", s.jobGraph)
	return r
}

func (s *Server) getFixture(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	g, err := fixture.ByName(name)
	if errors.Is(err, fixture.ErrUnknownFixture) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.log.Error("fixture lookup failed", "fixture", name, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		writeJSON(w, http.StatusOK, g)
	case "yaml":
		b, err := yaml.Marshal(g)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(b)
	case "drawio":
		w.Header().Set("Content-Type", "application/xml")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.drawio"`)
		if err := ingest.WriteDrawIO(w, g); err != nil {
			s.log.Error("drawio export failed", "fixture", name, "err", err)
		}
	default:
		writeError(w, http.StatusBadRequest, errors.New("unsupported format "+format))
	}
}

// decodeGraph checks raw against the wire schema before decoding it.
func decodeGraph(raw []byte) (types.Graph, error) {
	if err := validate.ValidateJSON(raw); err != nil {
		return types.Graph{}, err
	}
	var g types.Graph
	if err := json.Unmarshal(raw, &g); err != nil {
		return types.Graph{}, err
	}
	return g, validate.ValidateGraph(g)
}

func (s *Server) validateGraph(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := decodeGraph(raw); err != nil {
		s.log.Debug("graph rejected", "err", err)
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) mergeGraphs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Base  json.RawMessage `json:"base"`
		Extra json.RawMessage `json:"extra"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	base, err := decodeGraph(req.Base)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	extra, err := decodeGraph(req.Extra)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	merged, err := types.Merge(base, extra)
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, merged)
}

// Upload
func (s *Server) ingest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxBody); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	files := r.MultipartForm.File["files"]
	for _, fh := range files {
		if _, err := uploadName(fh.Filename); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	jobID := uuid.NewString()
	if _, err := s.store.MkJob(jobID); err != nil {
		s.log.Error("create job failed", "job", jobID, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	for _, fh := range files {
		if err := s.saveUpload(jobID, fh); err != nil {
			s.log.Error("store upload failed", "job", jobID, "file", fh.Filename, "err", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}
	s.log.Info("job created", "job", jobID, "files", len(files))
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "jobId": jobID})
}

// uploadName reduces a client file name to a plain entry inside the uploads dir.
func uploadName(name string) (string, error) {
	base := filepath.Base(name)
	switch {
	case name == "", base == ".", base == "..", base == string(filepath.Separator):
		return "", fmt.Errorf("invalid upload file name %q", name)
	}
	return base, nil
}

func (s *Server) saveUpload(jobID string, fh *multipart.FileHeader) error {
	name, err := uploadName(fh.Filename)
	if err != nil {
		return err
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(filepath.Join(s.store.UploadDir(jobID), name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// Parse uploads into one graph and keep it next to them.
func (s *Server) jobGraph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, store.ErrNotFound)
		return
	}
	paths, err := s.store.Uploads(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	var parsed []ingest.ParsedFile
	for _, p := range paths {
		pf, err := ingest.ParseFile(p)
		if err != nil {
			s.log.Warn("parse failed", "job", id, "file", filepath.Base(p), "err", err)
			continue
		}
		parsed = append(parsed, pf)
	}
	g, notes := ingest.BuildGraph(parsed)
	if notes == nil {
		notes = []string{}
	}
	if err := g.Validate(); err != nil {
		notes = append(notes, err.Error())
	}
	if err := s.store.SaveGraph(id, g); err != nil {
		s.log.Error("save graph failed", "job", id, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"graph": g, "notes": notes})
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"ok": false, "error": err.Error()})
}
