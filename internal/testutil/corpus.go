// Package testutil provides shared helpers for repository tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// CorpusFiles returns sorted .bagel files under testdata/corpus/<setName>.
// Sets are organized by size (small/typical/large) and by shape
// (malformed), mirroring the buckets cmd/bagello benchmarks separately.
func CorpusFiles(setName string) ([]string, error) {
	root, err := RepoRoot()
	if err != nil {
		return nil, err
	}
	setDir := filepath.Join(root, "testdata", "corpus", setName)
	entries, err := os.ReadDir(setDir)
	if err != nil {
		return nil, fmt.Errorf("read corpus set %q: %w", setName, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".bagel" {
			continue
		}
		out = append(out, filepath.Join(setDir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}
