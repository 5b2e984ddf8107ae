package etdx

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kayworks/etdxgen/internal/fsutil"
)

// ArchiveExt is the file extension of generated template archives.
const ArchiveExt = ".etdx"

// imagesPerUnit is the number of source images one archive consumes:
// front and back of two stacked cards.
const imagesPerUnit = 4

// Pack packages exactly four images (front1, back1, front2, back2) into a
// single <unitName>.etdx archive under outputDir and returns the archive
// path. The archive is assembled in a scratch directory under outputDir
// that is removed before Pack returns, whether packaging succeeds or
// fails. On failure no archive file is left behind.
func (g *Generator) Pack(images []string, outputDir, unitName string) (string, error) {
	if len(images) != imagesPerUnit {
		return "", &ValidationError{
			Unit: unitName,
			Msg:  fmt.Sprintf("expected 4 images (front1, back1, front2, back2), got %d", len(images)),
		}
	}

	scratch := filepath.Join(outputDir, "_stage_"+unitName)
	if err := os.Mkdir(scratch, 0o755); err != nil {
		return "", fmt.Errorf("unit %s: failed to create scratch directory: %w", unitName, err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			slog.Warn("failed to remove scratch directory", "path", scratch, "err", err)
		}
	}()

	archivePath := filepath.Join(outputDir, unitName+ArchiveExt)
	if err := g.stage(scratch, images, unitName); err != nil {
		return "", err
	}
	if err := zipTree(scratch, archivePath); err != nil {
		return "", fmt.Errorf("unit %s: failed to write archive: %w", unitName, err)
	}

	slog.Debug("packaged unit", "unit", unitName, "archive", archivePath)
	return archivePath, nil
}

// stage lays out one complete unit inside the scratch directory: template
// assets, page.json, and the two page directories with their images and
// _info.json documents.
func (g *Generator) stage(scratch string, images []string, unitName string) error {
	if err := os.WriteFile(filepath.Join(scratch, projectInfoFile), g.projectInfo, 0o644); err != nil {
		return fmt.Errorf("unit %s: failed to write %s: %w", unitName, projectInfoFile, err)
	}
	if err := fsutil.CopyTree(filepath.Join(g.templateDir, baseDataDir), filepath.Join(scratch, baseDataDir)); err != nil {
		return fmt.Errorf("unit %s: failed to copy %s: %w", unitName, baseDataDir, err)
	}

	frontPageID := newID()
	backPageID := newID()

	pageList, err := json.Marshal([2]string{frontPageID, backPageID})
	if err != nil {
		return fmt.Errorf("unit %s: failed to marshal page list: %w", unitName, err)
	}
	if err := os.WriteFile(filepath.Join(scratch, pageListFile), pageList, 0o644); err != nil {
		return fmt.Errorf("unit %s: failed to write %s: %w", unitName, pageListFile, err)
	}

	// The stream interleaves sides (front1, back1, front2, back2) but the
	// duplex layout groups by side: both fronts on the front page, both
	// backs on the back page.
	pages := []struct {
		id     string
		images []string
	}{
		{frontPageID, []string{images[0], images[2]}},
		{backPageID, []string{images[1], images[3]}},
	}

	for _, page := range pages {
		if err := g.stagePage(scratch, page.id, page.images, unitName); err != nil {
			return err
		}
	}
	return nil
}

// stagePage creates one page directory: an identifier-named subdirectory
// per image holding a verbatim copy of it, plus the page's _info.json.
func (g *Generator) stagePage(scratch, pageID string, images []string, unitName string) error {
	pageDir := filepath.Join(scratch, pageID)
	if err := os.Mkdir(pageDir, 0o755); err != nil {
		return fmt.Errorf("unit %s: failed to create page directory: %w", unitName, err)
	}

	records := make([]PhotoRecord, 0, len(images))
	for i, src := range images {
		imageID := newID()
		imageDir := filepath.Join(pageDir, imageID)
		if err := os.Mkdir(imageDir, 0o755); err != nil {
			return fmt.Errorf("unit %s: failed to create image directory: %w", unitName, err)
		}

		filename := filepath.Base(src)
		if err := fsutil.CopyFile(src, filepath.Join(imageDir, filename)); err != nil {
			return fmt.Errorf("unit %s: failed to copy %s: %w", unitName, src, err)
		}

		width, height, err := g.Probe(src)
		if err != nil {
			return &ImageReadError{Unit: unitName, Path: src, Err: err}
		}

		// First image of the pair fills workspace slot 1, second slot 2.
		records = append(records, newPhotoRecord(imageID+"/"+filename, i+1, width, height))
	}

	doc, err := g.skeleton.document(records)
	if err != nil {
		return fmt.Errorf("unit %s: failed to assemble page document: %w", unitName, err)
	}
	if err := os.WriteFile(filepath.Join(pageDir, pageInfoFile), doc, 0o644); err != nil {
		return fmt.Errorf("unit %s: failed to write %s: %w", unitName, pageInfoFile, err)
	}
	return nil
}

// newID mints an uppercase hyphenated 128-bit identifier. Identifiers name
// directories inside the archive, keeping images with identical base
// filenames from colliding.
func newID() string {
	return strings.ToUpper(uuid.NewString())
}

// zipTree writes the directory tree rooted at root into a deflate
// compressed zip archive at archivePath. Member paths are relative to
// root, so the scratch directory name never appears inside the archive.
// On error any partial archive is removed.
func zipTree(root, archivePath string) (err error) {
	out, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(archivePath)
		}
	}()

	zw := zip.NewWriter(out)
	defer func() {
		if cerr := zw.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = io.Copy(w, in)
		return err
	})
}
