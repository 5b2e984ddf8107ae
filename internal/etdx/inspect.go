package etdx

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ArchiveInfo summarizes the contents of a generated .etdx archive.
type ArchiveInfo struct {
	Path  string     `json:"path"`
	Pages []PageInfo `json:"pages"`
}

// PageInfo describes one card side inside an archive.
type PageInfo struct {
	ID     string        `json:"id"`
	Photos []PhotoRecord `json:"photos"`
}

// Inspect opens a generated archive, parses its page manifest and per-page
// documents, and verifies that every photo's imagePath resolves to an
// actual member of the archive. Pages appear in manifest order (front
// first).
func Inspect(path string) (*ArchiveInfo, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer zr.Close()

	members := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		members[f.Name] = f
	}

	var pageIDs []string
	if err := readJSONMember(members, pageListFile, &pageIDs); err != nil {
		return nil, err
	}

	info := &ArchiveInfo{Path: path}
	for _, pageID := range pageIDs {
		var doc struct {
			EditedPaperSize struct {
				Photos []PhotoRecord `json:"photos"`
			} `json:"editedPaperSize"`
		}
		if err := readJSONMember(members, pageID+"/"+pageInfoFile, &doc); err != nil {
			return nil, err
		}

		for _, photo := range doc.EditedPaperSize.Photos {
			member := pageID + "/" + photo.ImagePath
			if _, ok := members[member]; !ok {
				return nil, fmt.Errorf("archive member missing for photo: %s", member)
			}
		}

		info.Pages = append(info.Pages, PageInfo{
			ID:     pageID,
			Photos: doc.EditedPaperSize.Photos,
		})
	}

	if _, ok := members[projectInfoFile]; !ok {
		return nil, fmt.Errorf("archive member missing: %s", projectInfoFile)
	}

	return info, nil
}

// readJSONMember decodes the named archive member into v.
func readJSONMember(members map[string]*zip.File, name string, v any) error {
	f, ok := members[name]
	if !ok {
		return fmt.Errorf("archive member missing: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive member %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("failed to read archive member %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse archive member %s: %w", name, err)
	}
	return nil
}

// Summary renders a short human-readable listing for the inspect command.
func (a *ArchiveInfo) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.Path)
	for i, page := range a.Pages {
		side := "front"
		if i == 1 {
			side = "back"
		}
		fmt.Fprintf(&b, "  page %d (%s): %s\n", i+1, side, page.ID)
		for _, photo := range page.Photos {
			fmt.Fprintf(&b, "    slot %d: %s (%.0fx%.0f, scale %.1f)\n",
				photo.WorkSpaceNumber, photo.ImagePath,
				photo.OriginalSize[0], photo.OriginalSize[1], photo.Scale)
		}
	}
	return b.String()
}
