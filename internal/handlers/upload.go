package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/kayworks/etdxgen/internal/imagery"
	"github.com/kayworks/etdxgen/internal/models"
)

// HandleUpload appends one card face image to a batch. Upload order is
// stream order: front of card 1, back of card 1, front of card 2, and so
// on.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	batchID := r.FormValue("batch")
	if batchID == "" {
		h.writeError(w, "batch is required", http.StatusBadRequest)
		return
	}
	batch, ok := h.getBatchOrError(w, batchID)
	if !ok {
		return
	}

	file, header, err := r.FormFile("files")
	if err != nil {
		file, header, err = r.FormFile("file")
		if err != nil {
			h.writeError(w, "Failed to read file: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".png") {
		h.writeError(w, "Only PNG images are accepted", http.StatusBadRequest)
		return
	}

	// Limit file size to 50MB; card rasters at 300 DPI stay well under.
	fileData, err := io.ReadAll(io.LimitReader(file, 50*1024*1024))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(fileData) >= 50*1024*1024 {
		h.writeError(w, "File too large (max 50MB)", http.StatusBadRequest)
		return
	}

	item, err := h.saveUpload(batch, fileData, header.Filename)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var total int
	ok = h.batchStore.Update(batch.ID, func(b *models.Batch) {
		b.Images = append(b.Images, *item)
		total = len(b.Images)
	})
	if !ok {
		h.writeError(w, "Batch not found", http.StatusNotFound)
		return
	}

	response := map[string]any{
		"batch_id": batch.ID,
		"message":  "Successfully uploaded 1 image",
		"images":   total,
	}
	h.writeJSON(w, response)
}

// saveUpload stores the image under the batch's upload directory with an
// index prefix preserving stream order, and probes its dimensions.
func (h *Handler) saveUpload(batch *models.Batch, fileData []byte, filename string) (*models.ImageItem, error) {
	dir, err := h.ensureUploadsDir(batch.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	index := len(batch.Images) + 1
	storedName := fmt.Sprintf("%03d_%s", index, filepath.Base(filename))
	storedPath := filepath.Join(dir, storedName)

	if err := os.WriteFile(storedPath, fileData, 0644); err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	width, height, err := imagery.Probe(storedPath)
	if err != nil {
		// Reject rather than stage an image the packager would choke on.
		_ = os.Remove(storedPath)
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	slog.Info("Image saved", "batch_id", batch.ID, "filename", storedName, "width", width, "height", height)

	return &models.ImageItem{
		ID:          fmt.Sprintf("img_%d", index),
		Filename:    filename,
		ImagePath:   storedPath,
		ImageWidth:  width,
		ImageHeight: height,
	}, nil
}
