package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/cmmoran/uextern/pkg/action/generate"
	"github.com/cmmoran/uextern/pkg/externgen"
	"github.com/cmmoran/uextern/pkg/manifest"
)

// ErrOutOfDate is returned when the externs on disk differ from a fresh run.
var ErrOutOfDate = errors.New("generated externs are out of date")

// Change is a generated file whose content on disk differs.
type Change struct {
	File string
	Diff string // cmp.Diff(on disk, generated)
}

type Report struct {
	Changed []Change
	Missing []string // generated now, absent on disk
	Stale   []string // recorded in the manifest, no longer generated
	Checked int
}

func (r *Report) Empty() bool {
	return len(r.Changed) == 0 && len(r.Missing) == 0 && len(r.Stale) == 0
}

func (r *Report) String() string {
	var b strings.Builder
	for _, c := range r.Changed {
		fmt.Fprintf(&b, "changed: %s\n%s", c.File, c.Diff)
		if !strings.HasSuffix(c.Diff, "\n") {
			b.WriteByte('\n')
		}
	}
	for _, f := range r.Missing {
		fmt.Fprintf(&b, "missing: %s\n", f)
	}
	for _, f := range r.Stale {
		fmt.Fprintf(&b, "stale: %s\n", f)
	}
	return b.String()
}

// Check regenerates every extern in memory and compares it with OutDir. A
// non-empty report comes with an error wrapping ErrOutOfDate.
func Check(opts *externgen.Options, log *zap.SugaredLogger) (*Report, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	outs, g, err := generate.Build(opts, log)
	if err != nil {
		return nil, err
	}
	o := g.Opts

	m, err := manifest.Load(o.ManifestPath())
	if err != nil {
		return nil, err
	}

	r := &Report{Checked: len(outs)}
	files := make([]string, 0, len(outs))
	for _, out := range outs {
		file := out.File(o.Extension)
		files = append(files, file)

		path := filepath.Join(o.OutDir, filepath.FromSlash(file))
		onDisk, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			r.Missing = append(r.Missing, file)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		if diff := cmp.Diff(string(onDisk), out.Source); diff != "" {
			r.Changed = append(r.Changed, Change{File: file, Diff: diff})
		}
	}
	r.Stale = m.Stale(files)

	if !r.Empty() {
		log.Warnw("externs out of date",
			"changed", len(r.Changed),
			"missing", len(r.Missing),
			"stale", len(r.Stale),
		)
		return r, errors.WithDetail(
			errors.Wrapf(ErrOutOfDate, "%d changed, %d missing, %d stale", len(r.Changed), len(r.Missing), len(r.Stale)),
			r.String(),
		)
	}
	log.Infow("externs up to date", "checked", r.Checked)
	return r, nil
}
