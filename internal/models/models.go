package models

import "time"

// Batch represents one packaging job assembled through the web interface:
// an ordered list of uploaded card faces and the archives generated from
// them.
type Batch struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Images    []ImageItem `json:"images"`
	Archives  []string    `json:"archives,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// ImageItem represents one uploaded card face, in stream order
// (front1, back1, front2, back2, ...).
type ImageItem struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ImagePath   string `json:"image_path"`
	ImageWidth  int    `json:"image_width"`
	ImageHeight int    `json:"image_height"`
}
