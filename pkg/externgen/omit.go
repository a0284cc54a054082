package externgen

import (
	"strings"

	"github.com/cmmoran/uextern/internal/model"
)

// shouldOmitType reports whether native is named by ExcludeTypes, by its
// short name, C++ name or full path.
func shouldOmitType(native model.NativeType, opts *Options) bool {
	if native == nil || len(opts.ExcludeTypes) == 0 {
		return false
	}
	for _, candidate := range nativeNames(native) {
		if candidate == "" {
			continue
		}
		for _, ex := range opts.ExcludeTypes {
			if strings.EqualFold(candidate, ex) {
				return true
			}
		}
	}
	return false
}

func nativeNames(native model.NativeType) []string {
	switch v := native.(type) {
	case *model.Class:
		return []string{v.Path, v.Name, v.CppName}
	case *model.Struct:
		return []string{v.Path, v.Name, v.CppName}
	case *model.Enum:
		return []string{v.Path, v.Name, v.CppType}
	}
	return []string{native.NativePath()}
}
