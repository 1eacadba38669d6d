// Package validate checks that every path declared in a collection
// manifest resolves to a real file under the repository root.
//
// Validation never stops at the first broken link: every entry in every
// manifest is checked, failures are reported inline, and only the
// aggregated result decides the run's outcome.
package validate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kestrel-md/curio/internal/collection"
	"github.com/kestrel-md/curio/internal/repo"
	"github.com/kestrel-md/curio/internal/ui"
)

// Result aggregates counters across a validation run.
type Result struct {
	Files        int // manifests processed
	Checked      int // path entries checked
	Missing      int // path entries that did not resolve
	BadManifests int // manifests that could not be read at all
}

// Add merges other into r.
func (r *Result) Add(other Result) {
	r.Files += other.Files
	r.Checked += other.Checked
	r.Missing += other.Missing
	r.BadManifests += other.BadManifests
}

// Valid returns the number of entries that resolved.
func (r Result) Valid() int {
	return r.Checked - r.Missing
}

// Passed reports whether every declared path resolved and every
// manifest was readable.
func (r Result) Passed() bool {
	return r.Missing == 0 && r.BadManifests == 0
}

// Validator checks collection manifests against a repository root.
type Validator struct {
	Root string
	Out  io.Writer
}

// New returns a Validator resolving paths against root and writing
// report lines to out.
func New(root string, out io.Writer) *Validator {
	return &Validator{Root: root, Out: out}
}

// File validates a single manifest and returns its counters. A missing
// or unreadable manifest is reported and counted rather than returned
// as an error: the caller decides when the run is over.
func (v *Validator) File(manifest string) Result {
	var res Result

	f, err := os.Open(manifest)
	if err != nil {
		fmt.Fprintln(v.Out, ui.ErrorLine("collection not found: "+manifest))
		res.BadManifests++
		return res
	}
	defer f.Close()

	paths, err := collection.ExtractPaths(f)
	if err != nil {
		fmt.Fprintln(v.Out, ui.ErrorLine(fmt.Sprintf("cannot read %s: %v", manifest, err)))
		res.BadManifests++
		return res
	}
	res.Files++

	fmt.Fprintf(v.Out, "\n%s\n", ui.RenderInfo("Checking "+filepath.Base(manifest)))

	for _, p := range paths {
		res.Checked++
		if Exists(v.Root, p) {
			fmt.Fprintln(v.Out, ui.SuccessLine(p))
		} else {
			fmt.Fprintln(v.Out, ui.ErrorLine("missing: "+p))
			res.Missing++
		}
	}

	return res
}

// All validates every manifest in the collections directory under the
// validator's root, in discovery order.
func (v *Validator) All() (Result, error) {
	manifests, err := repo.DiscoverManifests(v.Root)
	if err != nil {
		return Result{}, fmt.Errorf("scan collections: %w", err)
	}

	var res Result
	for _, m := range manifests {
		r := v.File(m)
		res.Add(r)
	}

	return res, nil
}

// Summary writes the end-of-run totals block.
func (v *Validator) Summary(res Result) {
	fmt.Fprintf(v.Out, "\n%s\n", ui.RenderHighlight("Summary"))
	fmt.Fprintln(v.Out, ui.InfoLine(fmt.Sprintf("%d paths checked across %d collections", res.Checked, res.Files)))
	fmt.Fprintln(v.Out, ui.SuccessLine(fmt.Sprintf("%d valid", res.Valid())))
	if res.Missing > 0 {
		fmt.Fprintln(v.Out, ui.ErrorLine(fmt.Sprintf("%d missing", res.Missing)))
	}
}

// Exists reports whether rel resolves to a regular file under root.
// Symlinks to regular files count; directories do not.
func Exists(root, rel string) bool {
	info, err := os.Stat(filepath.Join(root, rel))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
