package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/inflection"
	"go.uber.org/zap"

	"github.com/cmmoran/uextern/internal/loader"
	"github.com/cmmoran/uextern/internal/model"
	"github.com/cmmoran/uextern/pkg/externgen"
	"github.com/cmmoran/uextern/pkg/manifest"
)

// Result describes one generation run.
type Result struct {
	Outputs  []externgen.Output
	Written  []string // output files, relative to OutDir and slash separated
	Pruned   []string // files of the previous run that are no longer generated
	Omitted  int
	Manifest string
}

// Build loads the reflection document and emits every declaration in memory.
func Build(opts *externgen.Options, log *zap.SugaredLogger) ([]externgen.Output, *externgen.Generator, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if opts.Input == "" {
		return nil, nil, errors.WithHint(errors.New("no reflection document given"), "pass --input or set input in the config file")
	}

	doc, err := loader.Load(opts.Input)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := loader.NewCatalog(doc)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "load %s", opts.Input)
	}

	g := externgen.NewWithOpts(catalog, log, opts)
	events := catalog.Replay(g)
	log.Debugw("collection finished", "exports", events, "types", g.Registered())

	outs, err := g.FinalizeAndEmit()
	if err != nil {
		return nil, nil, err
	}
	return outs, g, nil
}

// Generate writes one file per declaration below OutDir, removes files the
// previous run generated that are gone now and records the run in the
// manifest. Any write failure aborts the run.
func Generate(opts *externgen.Options, log *zap.SugaredLogger) (*Result, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	outs, g, err := Build(opts, log)
	if err != nil {
		return nil, err
	}
	o := g.Opts

	manifestPath := o.ManifestPath()
	previous, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}

	res := &Result{Outputs: outs, Omitted: g.Omitted(), Manifest: manifestPath}
	next := &manifest.Manifest{Input: o.Input, Extension: o.Extension}
	for _, out := range outs {
		file := out.File(o.Extension)
		if err := write(o.OutDir, file, out.Source); err != nil {
			return nil, err
		}
		res.Written = append(res.Written, file)
		next.Record(manifest.Entry{Type: out.Type.String(), Kind: out.Kind.String(), File: file})
	}

	for _, file := range previous.Stale(res.Written) {
		// a hand-edited manifest must never reach outside the output root
		rel := filepath.Clean(filepath.FromSlash(file))
		if !filepath.IsLocal(rel) {
			log.Warnw("manifest entry escapes output directory, not removed", "file", file)
			continue
		}
		path := filepath.Join(o.OutDir, rel)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "remove stale %s", path)
		}
		log.Infow("removed stale extern", "file", file)
		res.Pruned = append(res.Pruned, file)
	}

	if err := next.Save(manifestPath); err != nil {
		return nil, err
	}

	log.Infow("generated externs",
		"summary", Summary(outs),
		"out_dir", o.OutDir,
		"omitted", res.Omitted,
		"pruned", len(res.Pruned),
	)
	return res, nil
}

func write(root, file, source string) error {
	path := filepath.Join(root, filepath.FromSlash(file))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Summary counts outputs per kind, e.g. "2 classes, 1 struct, 0 enums".
func Summary(outs []externgen.Output) string {
	counts := make(map[model.DescriptorKind]int)
	for _, o := range outs {
		counts[o.Kind]++
	}
	parts := make([]string, 0, 3)
	for _, kind := range []model.DescriptorKind{model.ClassDescriptor, model.StructDescriptor, model.EnumDescriptor} {
		n, noun := counts[kind], kind.String()
		if n != 1 {
			noun = inflection.Plural(noun)
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, noun))
	}
	return strings.Join(parts, ", ")
}
