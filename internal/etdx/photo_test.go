package etdx

import (
	"encoding/json"
	"testing"
)

func TestNewPhotoRecord(t *testing.T) {
	record := newPhotoRecord("ABC123/page_1.png", 2, 2480, 1754)

	if record.ImagePath != "ABC123/page_1.png" {
		t.Errorf("Expected image path ABC123/page_1.png, got %s", record.ImagePath)
	}
	if record.WorkSpaceNumber != 2 {
		t.Errorf("Expected workspace 2, got %d", record.WorkSpaceNumber)
	}
	if record.OriginalSize != [2]float64{2480, 1754} {
		t.Errorf("Expected original size [2480 1754], got %v", record.OriginalSize)
	}
	if record.Scale != 1.2 {
		t.Errorf("Expected scale 1.2, got %v", record.Scale)
	}
	if record.Center != photoCenter {
		t.Errorf("Expected fixed center %v, got %v", photoCenter, record.Center)
	}
	if record.Crop.Type != 1 {
		t.Errorf("Expected crop type 1, got %d", record.Crop.Type)
	}
	if record.Crop.Rect != [4]float64{0, 0, 1016, 638} {
		t.Errorf("Expected crop rect [0 0 1016 638], got %v", record.Crop.Rect)
	}
	if record.FrameIndex != -1 {
		t.Errorf("Expected frame index -1, got %d", record.FrameIndex)
	}
	if record.APFInfo.Level != 5 {
		t.Errorf("Expected apf level 5, got %d", record.APFInfo.Level)
	}
	if record.APFInfo.Mode != "standard" {
		t.Errorf("Expected apf mode standard, got %s", record.APFInfo.Mode)
	}
}

// The scale correction is the DPI ratio of the consuming software, not a
// function of the image; every size must produce exactly 1.2.
func TestPhotoScaleIsConstant(t *testing.T) {
	sizes := [][2]int{
		{1016, 638},
		{2480, 1754},
		{1, 1},
		{0, 0},
		{638, 1016},
	}
	for _, size := range sizes {
		if got := photoScale(size[0], size[1]); got != 1.2 {
			t.Errorf("photoScale(%d, %d) = %v, want 1.2", size[0], size[1], got)
		}
	}
}

func TestPhotoRecordJSONKeys(t *testing.T) {
	data, err := json.Marshal(newPhotoRecord("X/y.png", 1, 100, 50))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	expected := []string{
		"angle", "center", "effectInfo", "originalsize", "zindex",
		"frameIndex", "imagePath", "workSpaceNumber", "apfInfo", "crop", "scale",
	}
	for _, key := range expected {
		if _, ok := fields[key]; !ok {
			t.Errorf("Expected JSON key %q to be present", key)
		}
	}
	if len(fields) != len(expected) {
		t.Errorf("Expected %d JSON keys, got %d", len(expected), len(fields))
	}

	var effect map[string]any
	if err := json.Unmarshal(fields["effectInfo"], &effect); err != nil {
		t.Fatalf("Failed to parse effectInfo: %v", err)
	}
	for _, key := range []string{"blur", "transparency"} {
		if _, ok := effect[key]; !ok {
			t.Errorf("Expected effectInfo key %q", key)
		}
	}

	var apf map[string]any
	if err := json.Unmarshal(fields["apfInfo"], &apf); err != nil {
		t.Fatalf("Failed to parse apfInfo: %v", err)
	}
	for _, key := range []string{"saturation", "brightness", "level", "contrast", "mode", "sharpness"} {
		if _, ok := apf[key]; !ok {
			t.Errorf("Expected apfInfo key %q", key)
		}
	}
}
