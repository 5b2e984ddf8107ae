package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/kayworks/etdxgen/internal/models"
	"github.com/kayworks/etdxgen/internal/stream"
)

func (h *Handler) HandleBatches(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		batches := h.batchStore.GetAll()
		batchList := make([]*models.Batch, 0, len(batches))
		for _, batch := range batches {
			batchList = append(batchList, batch)
		}
		h.writeJSON(w, batchList)
	case "POST":
		var request struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if request.Name == "" {
			request.Name = "batch"
		}

		batchID := fmt.Sprintf("%s_%d", request.Name, time.Now().Unix())
		batch := &models.Batch{
			ID:        batchID,
			Name:      request.Name,
			Images:    []models.ImageItem{},
			CreatedAt: time.Now(),
		}
		h.batchStore.Set(batchID, batch)

		slog.Info("Batch created", "batch_id", batchID)
		h.writeJSON(w, batch)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) HandleBatchDetail(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/batches/")
	parts := strings.SplitN(rest, "/", 3)
	batchID := parts[0]

	batch, ok := h.getBatchOrError(w, batchID)
	if !ok {
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case "GET":
			h.writeJSON(w, batch)
		case "DELETE":
			h.batchStore.Delete(batchID)
			h.writeJSON(w, map[string]any{"deleted": batchID})
		default:
			h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	switch parts[1] {
	case "generate":
		if r.Method != "POST" {
			h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.generateBatch(w, batch)
	case "archives":
		if r.Method != "GET" || len(parts) != 3 {
			h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.serveArchive(w, r, batch, parts[2])
	default:
		h.writeError(w, "Not found", http.StatusNotFound)
	}
}

// generateBatch pads the batch's image stream and packages it, recording
// the produced archive paths on the batch.
func (h *Handler) generateBatch(w http.ResponseWriter, batch *models.Batch) {
	if len(batch.Images) < 2 {
		h.writeError(w, "Batch needs at least 2 images before generating", http.StatusBadRequest)
		return
	}

	paths := make([]string, 0, len(batch.Images))
	for _, img := range batch.Images {
		paths = append(paths, img.ImagePath)
	}

	padded, err := stream.Pad(paths)
	if err != nil {
		h.writeError(w, "Failed to pad image stream: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(padded) > len(paths) {
		slog.Info("Padded image stream", "batch_id", batch.ID, "added", len(padded)-len(paths))
	}

	outDir, err := h.batchOutputDir(batch.ID)
	if err != nil {
		h.writeError(w, "Failed to create output directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	archives, err := h.generator.BatchPack(padded, outDir, batch.Name)
	if err != nil {
		h.writeError(w, "Failed to generate templates: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var updated models.Batch
	ok := h.batchStore.Update(batch.ID, func(b *models.Batch) {
		b.Archives = archives
		updated = *b
	})
	if !ok {
		h.writeError(w, "Batch not found", http.StatusNotFound)
		return
	}

	slog.Info("Batch generated", "batch_id", batch.ID, "archives", len(archives))
	h.writeJSON(w, updated)
}

// serveArchive streams one produced archive back to the client.
func (h *Handler) serveArchive(w http.ResponseWriter, r *http.Request, batch *models.Batch, name string) {
	// Prevent directory traversal attacks
	if name != filepath.Base(name) || strings.Contains(name, "..") {
		h.writeError(w, "Invalid archive name", http.StatusBadRequest)
		return
	}

	for _, archive := range batch.Archives {
		if filepath.Base(archive) == name {
			w.Header().Set("Content-Type", "application/zip")
			w.Header().Set("Content-Disposition", "attachment; filename="+name)
			http.ServeFile(w, r, archive)
			return
		}
	}
	h.writeError(w, "Archive not found", http.StatusNotFound)
}
