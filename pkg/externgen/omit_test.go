package externgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cmmoran/uextern/internal/model"
)

func TestShouldOmitType(ttt *testing.T) {
	actor := &model.Class{Path: "/Script/Engine.Actor", Name: "Actor", CppName: "AActor"}
	vector := &model.Struct{Path: "/Script/CoreUObject.Vector", Name: "Vector", CppName: "FVector"}
	channel := &model.Enum{Path: "/Script/Engine.ECollisionChannel", Name: "ECollisionChannel", CppType: "ECollisionChannel"}

	tests := []struct {
		name    string
		native  model.NativeType
		exclude []string
		want    bool
	}{
		{name: "no filters", native: actor, want: false},
		{name: "short name", native: actor, exclude: []string{"actor"}, want: true},
		{name: "cpp name", native: vector, exclude: []string{"FVECTOR"}, want: true},
		{name: "path", native: channel, exclude: []string{"/script/engine.ecollisionchannel"}, want: true},
		{name: "other type", native: actor, exclude: []string{"FVector", "Pawn"}, want: false},
		{name: "no prefix match", native: actor, exclude: []string{"Act"}, want: false},
		{name: "empty entries ignored", native: &model.Class{Path: "/Script/X.Y"}, exclude: []string{""}, want: false},
	}
	for _, tt := range tests {
		ttt.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldOmitType(tt.native, &Options{ExcludeTypes: tt.exclude}))
		})
	}
}
