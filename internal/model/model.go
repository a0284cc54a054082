package model

import (
	"strings"
)

type TypeKind int

const (
	KindNone      TypeKind = iota // registered, but not representable in bindings
	KindClass                     // extern class
	KindInterface                 // extern interface
	KindStruct                    // value struct, bound as an extern class
	KindEnum                      // extern enum
)

func (k TypeKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	default:
		return "none"
	}
}

// TypeRef is the fully-qualified Haxe identity of a bound native type.
type TypeRef struct {
	Pack []string // package path segments, e.g. ["unreal", "umg"]
	Name string   // short type name, e.g. "AActor"
	Kind TypeKind
}

// NewTypeRef copies pack so the returned value never aliases caller memory.
func NewTypeRef(pack []string, name string, kind TypeKind) TypeRef {
	return TypeRef{
		Pack: append([]string(nil), pack...),
		Name: name,
		Kind: kind,
	}
}

// String returns the dotted Haxe path, e.g. "unreal.AActor".
func (t TypeRef) String() string {
	if len(t.Pack) == 0 {
		return t.Name
	}
	return strings.Join(t.Pack, ".") + "." + t.Name
}

// Equal compares pack and name; Kind is not part of the identity.
func (t TypeRef) Equal(o TypeRef) bool {
	if t.Name != o.Name || len(t.Pack) != len(o.Pack) {
		return false
	}
	for i := range t.Pack {
		if t.Pack[i] != o.Pack[i] {
			return false
		}
	}
	return true
}

// Path returns the slash separated file path of the declaration without extension.
func (t TypeRef) Path() string {
	if len(t.Pack) == 0 {
		return t.Name
	}
	return strings.Join(t.Pack, "/") + "/" + t.Name
}

type DescriptorKind int

const (
	ClassDescriptor DescriptorKind = iota
	StructDescriptor
	EnumDescriptor
)

func (k DescriptorKind) String() string {
	switch k {
	case ClassDescriptor:
		return "class"
	case StructDescriptor:
		return "struct"
	default:
		return "enum"
	}
}

// Descriptor binds one native type to its Haxe identity and emission metadata.
// Exactly one of Class, Struct or Enum is set, matching Kind.
type Descriptor struct {
	Kind    DescriptorKind
	Type    TypeRef
	Module  string   // originating build module, may be empty
	Headers []string // raw header paths; classes carry exactly one

	Class  *Class
	Struct *Struct
	Enum   *Enum
}

// Native returns the owned native snapshot behind the descriptor.
func (d *Descriptor) Native() NativeType {
	switch d.Kind {
	case ClassDescriptor:
		return d.Class
	case StructDescriptor:
		return d.Struct
	default:
		return d.Enum
	}
}

// Package returns the native package of the described type, e.g. "/Script/Engine".
func (d *Descriptor) Package() string {
	return d.Native().NativePackage()
}

// HasHeader reports whether h is already recorded for the descriptor.
func (d *Descriptor) HasHeader(h string) bool {
	for _, x := range d.Headers {
		if x == h {
			return true
		}
	}
	return false
}
