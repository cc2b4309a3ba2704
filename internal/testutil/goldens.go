// Package testutil provides shared helpers for repository tests.
package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// GoldenCase is an input/expected fixture pair: a .bagel source file and the
// diagnostic report (see internal/check, internal/diag) expected after
// parsing and checking it.
type GoldenCase struct {
	Name         string
	InputPath    string
	ExpectedPath string
}

// RepoRoot returns the repository root by walking up from this source file.
func RepoRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("runtime.Caller failed")
	}
	dir := filepath.Dir(file)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("repository root not found")
		}
		dir = parent
	}
}

// MustRepoRoot returns the repository root or fails the test.
func MustRepoRoot(t testing.TB) string {
	t.Helper()
	root, err := RepoRoot()
	if err != nil {
		t.Fatalf("RepoRoot: %v", err)
	}
	return root
}

// CheckGoldenCases returns sorted checker fixture pairs from
// testdata/check: one .bagel input per case, paired with a .txt file
// holding its rendered diagnostic report: one `code: message` line per
// diagnostic, or `(no diagnostics)`.
func CheckGoldenCases() ([]GoldenCase, error) {
	root, err := RepoRoot()
	if err != nil {
		return nil, err
	}
	inputDir := filepath.Join(root, "testdata", "check", "input")
	expectedDir := filepath.Join(root, "testdata", "check", "expected")

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var cases []GoldenCase
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".bagel" {
			continue
		}
		if strings.HasPrefix(name, ".") {
			continue
		}

		caseName := strings.TrimSuffix(name, ".bagel")
		expectedPath := filepath.Join(expectedDir, caseName+".txt")
		if _, err := os.Stat(expectedPath); err != nil {
			return nil, fmt.Errorf("missing expected fixture for %s: %w", name, err)
		}

		cases = append(cases, GoldenCase{
			Name:         caseName,
			InputPath:    filepath.Join(inputDir, name),
			ExpectedPath: expectedPath,
		})
	}

	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases, nil
}

// ReadFile reads a fixture file or fails the test.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", path, err)
	}
	return b
}

// AssertGolden compares got against the contents of expectedPath, failing
// the test with a unified diff (rather than a raw string dump) when they
// differ. Set UPDATE_GOLDEN=1 to rewrite the fixture instead of failing.
func AssertGolden(t testing.TB, expectedPath, got string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") == "1" {
		if err := os.WriteFile(expectedPath, []byte(got), 0o644); err != nil {
			t.Fatalf("update golden %s: %v", expectedPath, err)
		}
		return
	}

	want := string(ReadFile(t, expectedPath))
	if want == got {
		return
	}

	diff := unifiedDiff(expectedPath, want, got)
	t.Fatalf("golden mismatch for %s:\n%s", expectedPath, diff)
}

func unifiedDiff(name, want, got string) string {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: name + " (expected)",
		ToFile:   name + " (actual)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return fmt.Sprintf("<diff error: %v>\n--- expected ---\n%s\n--- actual ---\n%s", err, want, got)
	}
	return text
}
