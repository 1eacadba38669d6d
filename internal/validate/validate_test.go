package validate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newRepo builds a repository root with a collections directory and
// returns the root path.
func newRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "collections"), 0755); err != nil {
		t.Fatal(err)
	}
	return root
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFile_ValidEntry(t *testing.T) {
	root := newRepo(t)
	writeFile(t, root, "docs/readme.md", "# readme\n")
	writeFile(t, root, "collections/docs.yml", "items:\n  - path: docs/readme.md\n")

	var out bytes.Buffer
	v := New(root, &out)
	res := v.File(filepath.Join(root, "collections/docs.yml"))

	if res.Files != 1 || res.Checked != 1 || res.Missing != 0 {
		t.Errorf("Result = %+v, want Files=1 Checked=1 Missing=0", res)
	}
	if !res.Passed() {
		t.Error("Passed() = false, want true")
	}
	if !strings.Contains(out.String(), "docs/readme.md") {
		t.Errorf("output %q missing success line for docs/readme.md", out.String())
	}
}

func TestFile_MissingEntry(t *testing.T) {
	root := newRepo(t)
	writeFile(t, root, "collections/docs.yml", "items:\n  - path: docs/missing.md\n")

	var out bytes.Buffer
	res := New(root, &out).File(filepath.Join(root, "collections/docs.yml"))

	if res.Checked != 1 || res.Missing != 1 {
		t.Errorf("Result = %+v, want Checked=1 Missing=1", res)
	}
	if res.Passed() {
		t.Error("Passed() = true, want false")
	}
	if !strings.Contains(out.String(), "missing: docs/missing.md") {
		t.Errorf("output %q missing failure line", out.String())
	}
}

func TestFile_ChecksEveryEntry(t *testing.T) {
	// Validation continues past broken links instead of stopping.
	root := newRepo(t)
	writeFile(t, root, "docs/a.md", "a")
	writeFile(t, root, "docs/c.md", "c")
	writeFile(t, root, "collections/docs.yml",
		"items:\n  - path: docs/a.md\n  - path: docs/b.md\n  - path: docs/c.md\n")

	var out bytes.Buffer
	res := New(root, &out).File(filepath.Join(root, "collections/docs.yml"))

	if res.Checked != 3 || res.Missing != 1 {
		t.Errorf("Result = %+v, want Checked=3 Missing=1", res)
	}
	if !strings.Contains(out.String(), "docs/c.md") {
		t.Error("entry after the broken link was not checked")
	}
}

func TestFile_NoMatchingLines(t *testing.T) {
	root := newRepo(t)
	writeFile(t, root, "collections/empty.yml", "id: empty\nname: Empty\n")

	var out bytes.Buffer
	res := New(root, &out).File(filepath.Join(root, "collections/empty.yml"))

	if res.Checked != 0 || res.Missing != 0 {
		t.Errorf("Result = %+v, want Checked=0 Missing=0", res)
	}
	if !res.Passed() {
		t.Error("Passed() = false, want true for empty manifest")
	}
}

func TestFile_ManifestMissing(t *testing.T) {
	root := newRepo(t)

	var out bytes.Buffer
	res := New(root, &out).File(filepath.Join(root, "collections/nope.yml"))

	if res.BadManifests != 1 || res.Checked != 0 {
		t.Errorf("Result = %+v, want BadManifests=1 Checked=0", res)
	}
	if res.Passed() {
		t.Error("Passed() = true, want false")
	}
	if !strings.Contains(out.String(), "collection not found") {
		t.Errorf("output %q missing manifest error", out.String())
	}
}

func TestFile_DirectoryIsNotAFile(t *testing.T) {
	root := newRepo(t)
	if err := os.MkdirAll(filepath.Join(root, "docs/guide.md"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, root, "collections/docs.yml", "items:\n  - path: docs/guide.md\n")

	var out bytes.Buffer
	res := New(root, &out).File(filepath.Join(root, "collections/docs.yml"))

	if res.Missing != 1 {
		t.Errorf("Missing = %d, want 1 when target is a directory", res.Missing)
	}
}

func TestFile_SymlinkToRegularFile(t *testing.T) {
	root := newRepo(t)
	writeFile(t, root, "docs/real.md", "content")
	if err := os.Symlink(filepath.Join(root, "docs/real.md"), filepath.Join(root, "docs/link.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	writeFile(t, root, "collections/docs.yml", "items:\n  - path: docs/link.md\n")

	var out bytes.Buffer
	res := New(root, &out).File(filepath.Join(root, "collections/docs.yml"))

	if res.Missing != 0 {
		t.Errorf("Missing = %d, want 0 for symlink to regular file", res.Missing)
	}
}

func TestAll_AggregatesAcrossManifests(t *testing.T) {
	root := newRepo(t)
	writeFile(t, root, "docs/a.md", "a")
	writeFile(t, root, "docs/c.md", "c")
	writeFile(t, root, "docs/d.md", "d")
	writeFile(t, root, "collections/one.yml", "items:\n  - path: docs/a.md\n  - path: docs/b.md\n")
	writeFile(t, root, "collections/two.yml", "items:\n  - path: docs/c.md\n  - path: docs/d.md\n")

	var out bytes.Buffer
	res, err := New(root, &out).All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	if res.Files != 2 || res.Checked != 4 || res.Missing != 1 {
		t.Errorf("Result = %+v, want Files=2 Checked=4 Missing=1", res)
	}
	if res.Valid() != 3 {
		t.Errorf("Valid() = %d, want 3", res.Valid())
	}
}

func TestAll_OnlyYmlManifests(t *testing.T) {
	root := newRepo(t)
	writeFile(t, root, "collections/real.yml", "items:\n  - path: docs/x.md\n")
	writeFile(t, root, "collections/skipped.yaml", "items:\n  - path: docs/y.md\n")
	writeFile(t, root, "collections/notes.txt", "- path: docs/z.md\n")

	var out bytes.Buffer
	res, err := New(root, &out).All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	if res.Files != 1 || res.Checked != 1 {
		t.Errorf("Result = %+v, want Files=1 Checked=1", res)
	}
}

func TestAll_Idempotent(t *testing.T) {
	root := newRepo(t)
	writeFile(t, root, "docs/a.md", "a")
	writeFile(t, root, "collections/one.yml", "items:\n  - path: docs/a.md\n  - path: docs/b.md\n")

	var out1, out2 bytes.Buffer
	res1, err := New(root, &out1).All()
	if err != nil {
		t.Fatal(err)
	}
	res2, err := New(root, &out2).All()
	if err != nil {
		t.Fatal(err)
	}

	if res1 != res2 {
		t.Errorf("results differ across runs: %+v vs %+v", res1, res2)
	}
	if out1.String() != out2.String() {
		t.Error("output differs across runs against an unchanged filesystem")
	}
}

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	v := New("", &out)

	v.Summary(Result{Files: 2, Checked: 4, Missing: 1})
	got := out.String()
	if !strings.Contains(got, "4 paths checked") {
		t.Errorf("summary %q missing checked count", got)
	}
	if !strings.Contains(got, "3 valid") {
		t.Errorf("summary %q missing valid count", got)
	}
	if !strings.Contains(got, "1 missing") {
		t.Errorf("summary %q missing missing count", got)
	}

	// The missing line only appears when something is missing.
	out.Reset()
	v.Summary(Result{Files: 1, Checked: 2})
	if strings.Contains(out.String(), "missing") {
		t.Errorf("summary %q reports missing on a clean run", out.String())
	}
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docs/a.md", "a")

	if !Exists(root, "docs/a.md") {
		t.Error("Exists(docs/a.md) = false, want true")
	}
	if Exists(root, "docs/nope.md") {
		t.Error("Exists(docs/nope.md) = true, want false")
	}
	if Exists(root, "docs") {
		t.Error("Exists(docs) = true, want false for directory")
	}
}
