package etdx

// Target card dimensions in pixels: 86mm x 54mm rasterized at 300 DPI.
const (
	CardWidth  = 1016
	CardHeight = 638
)

// Photo placement constants taken from analysis of templates exported by
// Epson Photo+ itself. They are properties of the card layout, not of any
// particular image.
var (
	photoCenter   = [2]float64{0.4488523602485657, 0.7050654292106628}
	photoCropRect = [4]float64{0, 0, CardWidth, CardHeight}
)

// PhotoRecord is the metadata object Epson Photo+ expects for one placed
// image. Field names match the _info.json wire format exactly.
type PhotoRecord struct {
	Angle           float64    `json:"angle"`
	Center          [2]float64 `json:"center"`
	EffectInfo      EffectInfo `json:"effectInfo"`
	OriginalSize    [2]float64 `json:"originalsize"`
	ZIndex          int        `json:"zindex"`
	FrameIndex      int        `json:"frameIndex"`
	ImagePath       string     `json:"imagePath"`
	WorkSpaceNumber int        `json:"workSpaceNumber"`
	APFInfo         APFInfo    `json:"apfInfo"`
	Crop            Crop       `json:"crop"`
	Scale           float64    `json:"scale"`
}

// EffectInfo carries the per-photo effect settings.
type EffectInfo struct {
	Blur         float64 `json:"blur"`
	Transparency float64 `json:"transparency"`
}

// APFInfo carries the auto photo fine adjustment settings.
type APFInfo struct {
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
	Level      int     `json:"level"`
	Contrast   float64 `json:"contrast"`
	Mode       string  `json:"mode"`
	Sharpness  float64 `json:"sharpness"`
}

// Crop describes the crop applied to a placed photo.
type Crop struct {
	Type int        `json:"type"`
	Rect [4]float64 `json:"rect"`
}

// photoScale returns the scale correction for a source raster of the given
// pixel size. Epson Photo+ lays pages out at its internal 360 DPI while the
// source rasters are produced at 300 DPI, so the factor is 360/300 = 1.2
// regardless of the image's actual dimensions. The parameters are kept for
// a future per-image DPI policy; do not derive the value from them.
func photoScale(width, height int) float64 {
	return 1.2
}

// newPhotoRecord builds the record for one card face. imagePath is the
// archive-relative "<imageID>/<filename>" path, slot is the workspace
// position on the page (1 = top card, 2 = bottom card), and width/height
// are the probed pixel dimensions of the source image.
func newPhotoRecord(imagePath string, slot int, width, height int) PhotoRecord {
	return PhotoRecord{
		Angle:  0,
		Center: photoCenter,
		EffectInfo: EffectInfo{
			Blur:         0,
			Transparency: 0,
		},
		OriginalSize:    [2]float64{float64(width), float64(height)},
		ZIndex:          0,
		FrameIndex:      -1,
		ImagePath:       imagePath,
		WorkSpaceNumber: slot,
		APFInfo: APFInfo{
			Saturation: 0,
			Brightness: 0,
			Level:      5,
			Contrast:   0,
			Mode:       "standard",
			Sharpness:  0,
		},
		Crop: Crop{
			Type: 1,
			Rect: photoCropRect,
		},
		Scale: photoScale(width, height),
	}
}
