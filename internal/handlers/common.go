package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/kayworks/etdxgen/internal/etdx"
	"github.com/kayworks/etdxgen/internal/models"
	"github.com/kayworks/etdxgen/internal/storage"
)

type Handler struct {
	batchStore *storage.BatchStore
	generator  *etdx.Generator
	outputDir  string
	uploadsDir string
}

func New(generator *etdx.Generator, outputDir string) *Handler {
	return &Handler{
		batchStore: storage.New(),
		generator:  generator,
		outputDir:  outputDir,
		uploadsDir: "uploads",
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Batch helpers
func (h *Handler) getBatchOrError(w http.ResponseWriter, batchID string) (*models.Batch, bool) {
	batch, exists := h.batchStore.Get(batchID)
	if !exists {
		h.writeError(w, "Batch not found", http.StatusNotFound)
		return nil, false
	}
	return batch, true
}

// File operation helpers
func (h *Handler) ensureUploadsDir(batchID string) (string, error) {
	dir := filepath.Join(h.uploadsDir, batchID)
	return dir, os.MkdirAll(dir, 0755)
}

func (h *Handler) batchOutputDir(batchID string) (string, error) {
	dir := filepath.Join(h.outputDir, batchID)
	return dir, os.MkdirAll(dir, 0755)
}
