package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/dotgen/pkg/cache"
	apperrors "github.com/matzehuels/dotgen/pkg/errors"
	"github.com/matzehuels/dotgen/pkg/graph"
	"github.com/matzehuels/dotgen/pkg/pipeline"
	"github.com/matzehuels/dotgen/pkg/store"
)

// renderResponse is the reply to POST /api/render.
type renderResponse struct {
	Hash      string `json:"hash"`
	Format    string `json:"format"`
	Cached    bool   `json:"cached"`
	Output    string `json:"output"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

// saveRequest is the body of POST /api/graphs.
type saveRequest struct {
	Name  string       `json:"name"`
	Graph *graph.Graph `json:"graph"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var g graph.Graph
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid graph document"))
		return
	}
	if err := g.Validate(); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "invalid graph"))
		return
	}

	opts := pipeline.Options{Format: r.URL.Query().Get("format")}
	opts.SetRenderDefaults()
	result, err := s.runner.RenderGraph(r.Context(), &g, opts)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "render failed"))
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		Hash:      result.Hash,
		Format:    opts.Format,
		Cached:    result.Cached,
		Output:    string(result.Output),
		NodeCount: result.Stats.NodeCount,
		EdgeCount: result.Stats.EdgeCount,
	})
}

func (s *Server) handleSaveGraph(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if err := apperrors.ValidateGraphName(req.Name); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Graph == nil {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "graph is required"))
		return
	}
	if err := req.Graph.Validate(); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "invalid graph"))
		return
	}

	doc := &store.Document{Name: req.Name, Graph: req.Graph}
	if data, err := json.Marshal(req.Graph); err == nil {
		doc.Hash = cache.Hash(data)
	}
	if err := s.store.Put(r.Context(), doc); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStorage, err, "save graph %q", req.Name))
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleUpdateGraph(w http.ResponseWriter, r *http.Request) {
	existing, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if req.Graph == nil {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "graph is required"))
		return
	}
	if err := req.Graph.Validate(); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidGraph, err, "invalid graph"))
		return
	}
	if req.Name != "" {
		if err := apperrors.ValidateGraphName(req.Name); err != nil {
			s.writeError(w, r, err)
			return
		}
		existing.Name = req.Name
	}

	existing.Graph = req.Graph
	if data, err := json.Marshal(req.Graph); err == nil {
		existing.Hash = cache.Hash(data)
	}
	if err := s.store.Put(r.Context(), existing); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStorage, err, "update graph %q", existing.Name))
		return
	}

	writeJSON(w, http.StatusOK, existing)
}

func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeStorage, err, "list graphs"))
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleRenderStored(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.RenderGraph(r.Context(), doc.Graph, pipeline.Options{})
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render graph %q", doc.Name))
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Output)
}

func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"error", err,
			"request_id", RequestID(r.Context()))
	}
	writeJSON(w, status, errorResponse{
		Error: apperrors.UserMessage(err),
		Code:  string(apperrors.GetCode(err)),
	})
}

func statusFor(err error) int {
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidGraph,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidName,
		apperrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeGraphNotFound,
		apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
