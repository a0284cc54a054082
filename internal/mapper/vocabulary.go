package mapper

import (
	"github.com/cmmoran/uextern/internal/model"
)

// Vocabulary names the Haxe types and wrappers the mapper renders.
type Vocabulary struct {
	Const      string // const wrapper
	Ref        string // pass-by-reference wrapper
	SubclassOf string
	Array      string
	Name       string // interned name wrapper
	String     string // native string wrapper
	Bool       string

	Numeric map[model.Category]string
}

// DefaultVocabulary returns the unreal.hx bindings vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Const:      "unreal.Const",
		Ref:        "unreal.PRef",
		SubclassOf: "unreal.TSubclassOf",
		Array:      "unreal.TArray",
		Name:       "unreal.FName",
		String:     "unreal.FString",
		Bool:       "Bool",
		Numeric: map[model.Category]string{
			model.CategoryByte:   "unreal.UInt8",
			model.CategoryInt8:   "unreal.Int8",
			model.CategoryInt16:  "unreal.Int16",
			model.CategoryInt:    "unreal.Int32",
			model.CategoryInt64:  "unreal.Int64",
			model.CategoryUInt16: "unreal.UInt16",
			// Haxe has no unsigned 32/64-bit types; these keep the width without overflow traps
			model.CategoryUInt32: "unreal.FakeUInt32",
			model.CategoryUInt64: "unreal.FakeUInt64",
			model.CategoryFloat:  "unreal.Float32",
			model.CategoryDouble: "unreal.Float64",
		},
	}
}

// DefaultArrayDenylist lists array element types that break the Haxe glue.
// FStaticMeshComponentLODInfo arrays fail to compile with the TArray set operator.
func DefaultArrayDenylist() []string {
	return []string{"FStaticMeshComponentLODInfo"}
}

func generic(wrapper, arg string) string {
	return wrapper + "<" + arg + ">"
}
