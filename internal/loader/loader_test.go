package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/uextern/internal/model"
)

type recorder struct {
	calls []string
}

func (r *recorder) RegisterType(class *model.Class, header, module string) {
	r.calls = append(r.calls, module+"|"+class.Path+"|"+header)
}

func loadCatalog(t *testing.T, path string) *Catalog {
	t.Helper()
	doc, err := Load(path)
	require.NoError(t, err)
	c, err := NewCatalog(doc)
	require.NoError(t, err)
	return c
}

func TestLoadYAML(t *testing.T) {
	c := loadCatalog(t, "testdata/engine.yaml")

	native, ok := c.LookupNative("/Script/Engine.Actor")
	require.True(t, ok)
	actor := native.(*model.Class)
	assert.Equal(t, "Actor", actor.Name)
	assert.Equal(t, "AActor", actor.CppName)
	assert.Equal(t, "/Script/Engine", actor.Package)
	assert.Equal(t, "/Script/CoreUObject.Object", actor.Super)

	// reflection order: last declared first
	require.Len(t, actor.Fields, 4)
	lineTrace := actor.Fields[0].Function
	require.NotNil(t, lineTrace)
	assert.Equal(t, "LineTrace", lineTrace.Name)
	assert.Equal(t, "/Script/Engine.Actor", lineTrace.Owner)
	want := []model.Property{
		{Name: "Start", Category: model.CategoryStruct, TypePath: "/Script/CoreUObject.Vector", Flags: model.PropConstParm | model.PropReferenceParm},
		{Name: "OutHit", Category: model.CategoryStruct, TypePath: "/Script/Engine.HitResult", Flags: model.PropReferenceParm | model.PropOutParm},
		{Name: "ReturnValue", Category: model.CategoryBool, Flags: model.PropReturnParm},
	}
	if diff := cmp.Diff(want, lineTrace.Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}

	getter := actor.Fields[1].Function
	require.NotNil(t, getter)
	assert.True(t, getter.Flags.Has(model.FuncConst))
	assert.True(t, getter.Flags.Has(model.FuncFinal))
	assert.False(t, getter.Flags.Has(model.FuncStatic))

	tags := actor.Fields[2].Property
	require.NotNil(t, tags)
	require.NotNil(t, tags.Inner)
	assert.Equal(t, model.CategoryName, tags.Inner.Category)
	assert.Equal(t, "bHidden", actor.Fields[3].Property.Name)

	native, ok = c.LookupNative("/Script/CoreUObject.Interface")
	require.True(t, ok)
	assert.True(t, native.(*model.Class).Flags.Has(model.ClassInterface))

	native, ok = c.LookupNative("/Script/Engine.ECollisionChannel")
	require.True(t, ok)
	channel := native.(*model.Enum)
	assert.Equal(t, "ECollisionChannel", channel.Name)
	assert.Equal(t, model.FormRegular, channel.Form)
	require.Len(t, channel.Values, 3)
	assert.Equal(t, "WorldStatic", channel.Values[0].DisplayName)

	_, ok = c.LookupNative("/Script/Engine.Missing")
	assert.False(t, ok)
}

func TestLoadTOML(t *testing.T) {
	c := loadCatalog(t, "testdata/engine.toml")

	native, ok := c.LookupNative("/Script/Engine.ETeam")
	require.True(t, ok)
	assert.Equal(t, model.FormEnumClass, native.(*model.Enum).Form)

	native, ok = c.LookupNative("/Script/Engine.Pawn")
	require.True(t, ok)
	pawn := native.(*model.Class)
	require.Len(t, pawn.Fields, 2)
	assert.Equal(t, "Restart", pawn.Fields[0].Function.Name)
	assert.Equal(t, model.Protected, pawn.Fields[0].Function.Visibility)
	assert.Equal(t, model.CategoryEnum, pawn.Fields[1].Property.Category)
}

func TestReplay(t *testing.T) {
	c := loadCatalog(t, "testdata/engine.yaml")

	r := &recorder{}
	assert.Equal(t, 2, c.Replay(r))
	assert.Equal(t, []string{
		"CoreUObject|/Script/CoreUObject.Object|Runtime/CoreUObject/Public/UObject/Object.h",
		"Engine|/Script/Engine.Actor|Runtime/Engine/Classes/GameFramework/Actor.h",
	}, r.calls)
	assert.Len(t, c.Exports(), 2)
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.json": FormatYAML,
		"a.toml": FormatTOML,
	} {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("a.xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(`{"version": "1.0.0", "classes": [{"path": "/Script/Engine.Actor"}]}`), FormatYAML)
	require.NoError(t, err)
	require.Len(t, doc.Classes, 1)
	assert.Equal(t, "/Script/Engine.Actor", doc.Classes[0].Path)
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "plain", doc: "version: 1.0.0"},
		{name: "prefixed", doc: "version: v1.4.2"},
		{name: "prerelease", doc: "version: 1.1.0-rc.1"},
		{name: "next major", doc: "version: 2.0.0", wantErr: true},
		{name: "zero major", doc: "version: 0.9.0", wantErr: true},
		{name: "garbage", doc: "version: latest", wantErr: true},
		{name: "missing", doc: "classes: []", wantErr: true},
		{name: "empty", doc: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatYAML)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedVersion), err.Error())
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("version: 1.0.0\nclasess: []\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("version = \"1.0.0\"\nclasess = []\n"), FormatTOML)
	assert.Error(t, err)
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		message string
	}{
		{
			name:    "unknown category",
			doc:     "classes: [{path: /Script/A.B, fields: [{property: {name: P, category: tuple}}]}]",
			message: `unknown category "tuple"`,
		},
		{
			name:    "unknown property flag",
			doc:     "structs: [{path: /Script/A.S, fields: [{property: {name: P, category: int, flags: [mutable]}}]}]",
			message: `unknown flag "mutable"`,
		},
		{
			name:    "unknown function flag",
			doc:     "classes: [{path: /Script/A.B, fields: [{function: {name: F, flags: [virtual]}}]}]",
			message: `unknown flag "virtual"`,
		},
		{
			name:    "unknown visibility",
			doc:     "classes: [{path: /Script/A.B, fields: [{function: {name: F, visibility: friend}}]}]",
			message: `unknown visibility "friend"`,
		},
		{
			name:    "unknown class flag",
			doc:     "classes: [{path: /Script/A.B, flags: [abstract]}]",
			message: `unknown flag "abstract"`,
		},
		{
			name:    "unknown enum form",
			doc:     "enums: [{path: /Script/A.E, form: bitmask}]",
			message: `unknown form "bitmask"`,
		},
		{
			name:    "empty field",
			doc:     "classes: [{path: /Script/A.B, fields: [{}]}]",
			message: "exactly one of property or function",
		},
		{
			name:    "duplicate path",
			doc:     "classes: [{path: /Script/A.B}]\nstructs: [{path: /Script/A.B}]",
			message: "duplicate type /Script/A.B",
		},
		{
			name:    "unknown export",
			doc:     "modules: [{name: A, exports: [{class: /Script/A.Missing}]}]",
			message: "exports unknown class /Script/A.Missing",
		},
		{
			name:    "struct export",
			doc:     "structs: [{path: /Script/A.S}]\nmodules: [{name: A, exports: [{class: /Script/A.S}]}]",
			message: "which is not a class",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte("version: 1.0.0\n"+tt.doc), FormatYAML)
			require.NoError(t, err)
			_, err = NewCatalog(doc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDocument))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
