// Package headerpath derives the canonical include path of a native header
// from the raw path reported by the reflection host.
package headerpath

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/cmmoran/uextern/internal/model"
)

const (
	// Fallback is used for the handful of core types reported without a header.
	Fallback = "CoreUObject.h"
	// RootHeader is passed through unchanged.
	RootHeader = "Engine.h"
)

// ErrUnresolvable marks a header whose include path cannot be determined.
var ErrUnresolvable = errors.New("cannot determine header path")

// Resolve returns the include path for raw, declared by native package pkg
// (e.g. "/Script/Engine"). The first matching heuristic wins:
//
//  1. empty path: Fallback
//  2. RootHeader: unchanged
//  3. the path below the last "Public" directory, then the last "Classes"
//  4. the path below the last directory named after the package
//  5. the path below the last "Private" directory
//
// Anything else is an error wrapping ErrUnresolvable.
func Resolve(raw, pkg string) (string, error) {
	if raw == "" {
		return Fallback, nil
	}
	if raw == RootHeader {
		return RootHeader, nil
	}

	segs := strings.FieldsFunc(raw, isSep)
	for _, marker := range []string{"Public", "Classes"} {
		if rest, ok := below(segs, marker, 0); ok {
			return rest, nil
		}
	}

	if short := model.ShortPackage(pkg); short != "" {
		if rest, ok := below(segs, short, 1); ok {
			return rest, nil
		}
	}

	if rest, ok := below(segs, "Private", 0); ok {
		return rest, nil
	}

	return "", errors.WithHint(
		errors.Wrapf(ErrUnresolvable, "header %q on package %s", raw, pkg),
		"headers must live below a Public, Classes, Private or package-named directory",
	)
}

// below finds the last segment equal to marker under Unicode case folding,
// ignoring the final skip segments, and joins what follows it with forward
// slashes. Empty segments never appear in segs.
func below(segs []string, marker string, skip int) (string, bool) {
	for i := len(segs) - 1 - skip; i >= 0; i-- {
		if !strings.EqualFold(segs[i], marker) {
			continue
		}
		if i+1 < len(segs) {
			return strings.Join(segs[i+1:], "/"), true
		}
	}
	return "", false
}

func isSep(r rune) bool {
	return r == '/' || r == '\\'
}
