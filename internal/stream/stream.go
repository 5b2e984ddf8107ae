// Package stream prepares the ordered image stream handed to the
// packager: folder collection with natural ordering, and padding a short
// stream out to a multiple of four.
package stream

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// CollectPNGs lists the PNG files in dir, sorted in natural order so
// page_2.png sorts before page_10.png. It fails if the directory contains
// no PNGs.
func CollectPNGs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no PNG images found in %s", dir)
	}

	sortNatural(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// Pad extends a stream whose length is not a multiple of four by
// cyclically repeating its last two images. A stream of fewer than two
// images cannot be padded. Already-aligned streams are returned as a copy,
// unchanged.
func Pad(paths []string) ([]string, error) {
	out := append([]string(nil), paths...)

	remainder := len(out) % 4
	if remainder == 0 {
		return out, nil
	}
	if len(out) < 2 {
		return nil, fmt.Errorf("cannot pad stream of %d images: need at least 2", len(out))
	}

	tail := out[len(out)-2:]
	for i := 0; i < 4-remainder; i++ {
		out = append(out, tail[i%2])
	}
	return out, nil
}

// sortNatural sorts names so runs of digits compare numerically and
// everything else compares case-insensitively.
func sortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
}

func naturalLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	for la != "" && lb != "" {
		ca, ra := chunk(la)
		cb, rb := chunk(lb)
		la, lb = ra, rb

		if ca == cb {
			continue
		}
		na, aErr := strconv.ParseUint(ca, 10, 64)
		nb, bErr := strconv.ParseUint(cb, 10, 64)
		if aErr == nil && bErr == nil {
			if na != nb {
				return na < nb
			}
			continue
		}
		return ca < cb
	}
	return len(la) < len(lb)
}

// chunk splits off the leading run of digits or non-digits.
func chunk(s string) (head, rest string) {
	isDigit := s[0] >= '0' && s[0] <= '9'
	i := 1
	for i < len(s) && (s[i] >= '0' && s[i] <= '9') == isDigit {
		i++
	}
	return s[:i], s[i:]
}
