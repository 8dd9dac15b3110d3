// Package http exposes the upload, data, search, comparison, and chat
// endpoints over a gorilla/mux router.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/w-h-a/procurement"
	"github.com/w-h-a/procurement/assistant"
	"github.com/w-h-a/procurement/comparison"
	"github.com/w-h-a/procurement/extractor"
	"github.com/w-h-a/procurement/generator"
	"github.com/w-h-a/procurement/memorymanager"
)

const maxUploadBytes = 32 << 20

type Server struct {
	options    Options
	agent      *procurement.Agent
	memory     memorymanager.MemoryManager
	comparison *comparison.Engine
	assistant  *assistant.Assistant
	srv        *http.Server
}

func (s *Server) Start() error {
	slog.Info("http server listening", "address", s.options.Address)

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)
	r.HandleFunc("/quotes", s.handleQuotes).Methods(http.MethodGet)
	r.HandleFunc("/vendors", s.handleVendors).Methods(http.MethodGet)
	r.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	r.HandleFunc("/compare", s.handleCompare).Methods(http.MethodPost)
	r.HandleFunc("/chat", s.handleChat).Methods(http.MethodPost)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "online", "service": "procurement"})
}

// handleUpload saves the file into the inbox and analyzes it immediately.
// A failed analysis still reports the upload as stored.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("parse upload: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing file: %w", err))
		return
	}
	defer file.Close()

	if err := os.MkdirAll(s.options.InboxDir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	path := filepath.Join(s.options.InboxDir, filepath.Base(header.Filename))

	dst, err := os.Create(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	dst.Close()

	slog.InfoContext(r.Context(), "file uploaded", "path", path)

	result := s.agent.ProcessDocument(r.Context(), path)

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"file":     header.Filename,
		"analysis": result,
	})
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.memory.ListQuotes(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (s *Server) handleVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := s.memory.ListVendors(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, vendors)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if len(query) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("query parameter 'q' is required"))
		return
	}

	results, err := s.memory.SearchHistory(r.Context(), query)
	if err != nil {
		slog.WarnContext(r.Context(), "memory search failed", "error", err)
		writeJSON(w, http.StatusOK, []string{})
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var quotes []extractor.FieldMapping
	if err := json.NewDecoder(r.Body).Decode(&quotes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode quotes: %w", err))
		return
	}

	result, err := s.comparison.Compare(r.Context(), quotes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query   string `json:"query"`
		History []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode chat request: %w", err))
		return
	}

	history := make([]generator.Message, 0, len(body.History))
	for _, h := range body.History {
		history = append(history, generator.Message{Role: h.Role, Content: h.Content})
	}

	reply, err := s.assistant.Respond(r.Context(), body.Query, history)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func NewServer(a *procurement.Agent, mm memorymanager.MemoryManager, ce *comparison.Engine, as *assistant.Assistant, opts ...Option) *Server {
	options := NewOptions(opts...)

	s := &Server{
		options:    options,
		agent:      a,
		memory:     mm,
		comparison: ce,
		assistant:  as,
	}

	s.srv = &http.Server{
		Addr:    options.Address,
		Handler: s.routes(),
	}

	return s
}
