package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/cmmoran/uextern/pkg/action/generate"
	"github.com/cmmoran/uextern/pkg/externgen"
)

func setup(t *testing.T) (*externgen.Options, string) {
	t.Helper()
	ar, err := txtar.ParseFile(filepath.Join("..", "generate", "testdata", "engine.txtar"))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, f := range ar.Files {
		if f.Name == "input.yaml" {
			require.NoError(t, os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0o644))
		}
	}
	out := filepath.Join(dir, "out")
	_, err = generate.Generate(&externgen.Options{Input: filepath.Join(dir, "input.yaml"), OutDir: out}, nil)
	require.NoError(t, err)
	return &externgen.Options{Input: filepath.Join(dir, "input.yaml"), OutDir: out}, out
}

func TestCheckUpToDate(t *testing.T) {
	opts, _ := setup(t)

	r, err := Check(opts, nil)
	require.NoError(t, err)
	assert.True(t, r.Empty())
	assert.Equal(t, 6, r.Checked)
	assert.Empty(t, r.String())
}

func TestCheckReportsDrift(t *testing.T) {
	opts, out := setup(t)

	actor := filepath.Join(out, "unreal", "ACharacter.hx")
	data, err := os.ReadFile(actor)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(actor, append(data, []byte("// edited\n")...), 0o644))
	require.NoError(t, os.Remove(filepath.Join(out, "unreal", "FVector.hx")))

	opts.ExcludeTypes = []string{"/Script/UMG.ListView"}
	r, err := Check(opts, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfDate))
	assert.Contains(t, err.Error(), "1 changed, 1 missing, 1 stale")

	require.Len(t, r.Changed, 1)
	assert.Equal(t, "unreal/ACharacter.hx", r.Changed[0].File)
	assert.Contains(t, r.Changed[0].Diff, "// edited")
	assert.Equal(t, []string{"unreal/FVector.hx"}, r.Missing)
	assert.Equal(t, []string{"unreal/umg/UListView.hx"}, r.Stale)

	report := r.String()
	assert.Contains(t, report, "changed: unreal/ACharacter.hx\n")
	assert.Contains(t, report, "missing: unreal/FVector.hx\n")
	assert.Contains(t, report, "stale: unreal/umg/UListView.hx\n")
}

func TestCheckPropagatesLoadErrors(t *testing.T) {
	_, err := Check(&externgen.Options{Input: filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
