package etdx

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	projectInfoFile = "projectinfo.json"
	pageInfoFile    = "_info.json"
	pageListFile    = "page.json"
	baseDataDir     = "BaseData"
)

// Prober reports the pixel dimensions of an image file. The default
// implementation decodes image headers from disk; tests substitute their
// own.
type Prober func(path string) (width, height int, err error)

// Generator packages card face images into .etdx archives. It holds the
// base template loaded once by LoadTemplate and is safe to reuse across
// batches; it never mutates the template source.
type Generator struct {
	templateDir string
	projectInfo json.RawMessage
	skeleton    *pageSkeleton

	// Probe reads pixel dimensions for source images. Set by
	// LoadTemplate; replaceable for testing.
	Probe Prober
}

// LoadTemplate loads the base template from sourceDir: projectinfo.json
// (copied verbatim into every archive) and the first page descriptor found
// in a non-BaseData subdirectory, which serves as the structural skeleton
// for every generated page. The skeleton's own photos are always
// overwritten, so which page directory supplies it does not matter as long
// as the choice is deterministic; subdirectories are taken in lexical
// order.
func LoadTemplate(sourceDir string, probe Prober) (*Generator, error) {
	projectInfo, err := os.ReadFile(filepath.Join(sourceDir, projectInfoFile))
	if err != nil {
		return nil, &LoadError{Path: filepath.Join(sourceDir, projectInfoFile), Err: err}
	}
	if !json.Valid(projectInfo) {
		return nil, &LoadError{
			Path: filepath.Join(sourceDir, projectInfoFile),
			Err:  fmt.Errorf("invalid JSON"),
		}
	}

	pageDir, err := findPageDir(sourceDir)
	if err != nil {
		return nil, err
	}

	skeletonPath := filepath.Join(pageDir, pageInfoFile)
	skeletonData, err := os.ReadFile(skeletonPath)
	if err != nil {
		return nil, &LoadError{Path: skeletonPath, Err: err}
	}
	skeleton, err := parsePageSkeleton(skeletonData)
	if err != nil {
		return nil, &LoadError{Path: skeletonPath, Err: err}
	}

	if probe == nil {
		probe = func(string) (int, int, error) {
			return 0, 0, fmt.Errorf("no image prober configured")
		}
	}

	return &Generator{
		templateDir: sourceDir,
		projectInfo: projectInfo,
		skeleton:    skeleton,
		Probe:       probe,
	}, nil
}

// findPageDir returns the first subdirectory of sourceDir, in lexical
// order, that is not the BaseData asset directory.
func findPageDir(sourceDir string) (string, error) {
	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return "", &LoadError{Path: sourceDir, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() != baseDataDir {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return "", &LoadError{
			Path: sourceDir,
			Err:  fmt.Errorf("no page template directory found"),
		}
	}
	sort.Strings(names)

	return filepath.Join(sourceDir, names[0]), nil
}

// pageSkeleton is the parsed shape of a template page descriptor. Only the
// editedPaperSize.photos field is ever replaced; every other field is
// carried through untouched as raw JSON.
type pageSkeleton struct {
	top   map[string]json.RawMessage
	paper map[string]json.RawMessage
}

func parsePageSkeleton(data []byte) (*pageSkeleton, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("parse page skeleton: %w", err)
	}

	rawPaper, ok := top["editedPaperSize"]
	if !ok {
		return nil, fmt.Errorf("page skeleton missing editedPaperSize")
	}
	var paper map[string]json.RawMessage
	if err := json.Unmarshal(rawPaper, &paper); err != nil {
		return nil, fmt.Errorf("parse editedPaperSize: %w", err)
	}
	delete(top, "editedPaperSize")

	return &pageSkeleton{top: top, paper: paper}, nil
}

// document serializes a page descriptor: the skeleton with its photos
// replaced by the given records, everything else carried through.
func (s *pageSkeleton) document(photos []PhotoRecord) ([]byte, error) {
	rawPhotos, err := json.Marshal(photos)
	if err != nil {
		return nil, fmt.Errorf("marshal photos: %w", err)
	}

	paper := make(map[string]json.RawMessage, len(s.paper)+1)
	for k, v := range s.paper {
		paper[k] = v
	}
	paper["photos"] = rawPhotos

	rawPaper, err := json.Marshal(paper)
	if err != nil {
		return nil, fmt.Errorf("marshal editedPaperSize: %w", err)
	}

	top := make(map[string]json.RawMessage, len(s.top)+1)
	for k, v := range s.top {
		top[k] = v
	}
	top["editedPaperSize"] = rawPaper

	return json.Marshal(top)
}
