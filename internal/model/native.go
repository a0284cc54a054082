package model

import (
	"strings"
)

// ScriptPrefix is the namespace prefix of every native script package name.
const ScriptPrefix = "/Script/"

// ShortPackage strips ScriptPrefix from a native package name:
// "/Script/Engine" becomes "Engine".
func ShortPackage(pkg string) string {
	return strings.TrimPrefix(pkg, ScriptPrefix)
}

// NativeType is a reflected native type snapshot owned by the generator.
type NativeType interface {
	NativePath() string    // identity, e.g. "/Script/Engine.Actor"
	NativePackage() string // e.g. "/Script/Engine"
}

// Category classifies a reflected property. It is decided once when the
// property is captured and never re-derived.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryStruct
	CategoryObject
	CategoryClass
	CategoryByte
	CategoryInt8
	CategoryInt16
	CategoryInt
	CategoryInt64
	CategoryUInt16
	CategoryUInt32
	CategoryUInt64
	CategoryFloat
	CategoryDouble
	CategoryEnum
	CategoryBool
	CategoryName
	CategoryStr
	CategoryText
	CategoryArray
	CategoryMap
	CategorySet
	CategoryInterface
	CategoryDelegate
	CategoryMulticastDelegate
	CategoryWeakObject
	CategoryLazyObject
	CategorySoftObject
)

var categoryNames = map[Category]string{
	CategoryUnknown:           "unknown",
	CategoryStruct:            "struct",
	CategoryObject:            "object",
	CategoryClass:             "class",
	CategoryByte:              "byte",
	CategoryInt8:              "int8",
	CategoryInt16:             "int16",
	CategoryInt:               "int",
	CategoryInt64:             "int64",
	CategoryUInt16:            "uint16",
	CategoryUInt32:            "uint32",
	CategoryUInt64:            "uint64",
	CategoryFloat:             "float",
	CategoryDouble:            "double",
	CategoryEnum:              "enum",
	CategoryBool:              "bool",
	CategoryName:              "name",
	CategoryStr:               "str",
	CategoryText:              "text",
	CategoryArray:             "array",
	CategoryMap:               "map",
	CategorySet:               "set",
	CategoryInterface:         "interface",
	CategoryDelegate:          "delegate",
	CategoryMulticastDelegate: "multicast_delegate",
	CategoryWeakObject:        "weak_object",
	CategoryLazyObject:        "lazy_object",
	CategorySoftObject:        "soft_object",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "unknown"
}

// ParseCategory maps a category name back to its Category.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, n := range categoryNames {
		if n == s && c != CategoryUnknown {
			return c, true
		}
	}
	return CategoryUnknown, false
}

// IsNumeric reports whether the category may be backed by an enumeration.
func (c Category) IsNumeric() bool {
	return c >= CategoryByte && c <= CategoryEnum
}

type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "public"
	}
}

// ParseVisibility accepts "public", "protected" and "private"; empty means public.
func ParseVisibility(s string) (Visibility, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "public":
		return Public, true
	case "protected":
		return Protected, true
	case "private":
		return Private, true
	}
	return Public, false
}

type PropertyFlags uint32

const (
	PropConstParm PropertyFlags = 1 << iota
	PropReferenceParm
	PropOutParm
	PropReturnParm
	PropEditorOnly
	PropUObjectWrapper
)

var propertyFlagNames = map[string]PropertyFlags{
	"const_parm":      PropConstParm,
	"reference_parm":  PropReferenceParm,
	"out_parm":        PropOutParm,
	"return_parm":     PropReturnParm,
	"editor_only":     PropEditorOnly,
	"uobject_wrapper": PropUObjectWrapper,
}

// ParsePropertyFlag maps a flag name such as "const_parm" to its bit.
func ParsePropertyFlag(s string) (PropertyFlags, bool) {
	f, ok := propertyFlagNames[strings.ToLower(strings.TrimSpace(s))]
	return f, ok
}

// Has reports whether any of the given flags is set.
func (f PropertyFlags) Has(flags PropertyFlags) bool {
	return f&flags != 0
}

type FunctionFlags uint32

const (
	FuncStatic FunctionFlags = 1 << iota
	FuncFinal
	FuncConst
)

var functionFlagNames = map[string]FunctionFlags{
	"static": FuncStatic,
	"final":  FuncFinal,
	"const":  FuncConst,
}

// ParseFunctionFlag maps a flag name such as "static" to its bit.
func ParseFunctionFlag(s string) (FunctionFlags, bool) {
	f, ok := functionFlagNames[strings.ToLower(strings.TrimSpace(s))]
	return f, ok
}

func (f FunctionFlags) Has(flags FunctionFlags) bool {
	return f&flags != 0
}

type ClassFlags uint32

const (
	ClassNoExport ClassFlags = 1 << iota
	ClassInterface
)

// ParseClassFlag accepts "no_export" and "interface".
func ParseClassFlag(s string) (ClassFlags, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no_export", "noexport":
		return ClassNoExport, true
	case "interface":
		return ClassInterface, true
	}
	return 0, false
}

func (f ClassFlags) Has(flags ClassFlags) bool {
	return f&flags != 0
}

// Property is a reflected field or function parameter.
type Property struct {
	Name       string
	Category   Category
	Flags      PropertyFlags
	Visibility Visibility
	ArrayDim   int    // fixed array size; 0 and 1 both mean a scalar
	TypePath   string // struct, object class or enum path, depending on Category
	MetaClass  string // class properties only: the class a TSubclassOf must derive from
	Inner      *Property
	ToolTip    string
}

// Function is a reflected callable. Params keep declaration order and the
// return value, if any, is the last entry.
type Function struct {
	Name       string
	Owner      string // path of the declaring class or struct
	Visibility Visibility
	Flags      FunctionFlags
	Params     []Property
	ToolTip    string
}

// Field is one reflected member: exactly one of Property or Function is set.
type Field struct {
	Property *Property
	Function *Function
}

type Class struct {
	Path       string
	Name       string
	CppName    string
	Package    string
	Super      string
	Interfaces []string
	Flags      ClassFlags
	ToolTip    string
	Fields     []Field // reflection order: last declared first
}

func (c *Class) NativePath() string    { return c.Path }
func (c *Class) NativePackage() string { return c.Package }

type Struct struct {
	Path     string
	Name     string
	CppName  string
	Package  string
	Super    string
	NoExport bool
	ToolTip  string
	Fields   []Field // reflection order: last declared first
}

func (s *Struct) NativePath() string    { return s.Path }
func (s *Struct) NativePackage() string { return s.Package }

// CppForm is the declaration style of a native enumeration.
type CppForm int

const (
	FormRegular CppForm = iota
	FormNamespaced
	FormEnumClass
)

// ParseCppForm accepts "regular", "namespaced" and "enum_class"; empty means regular.
func ParseCppForm(s string) (CppForm, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regular":
		return FormRegular, true
	case "namespaced":
		return FormNamespaced, true
	case "enum_class", "enumclass":
		return FormEnumClass, true
	}
	return FormRegular, false
}

type EnumValue struct {
	Name        string
	ToolTip     string
	DisplayName string
}

type Enum struct {
	Path    string
	Name    string
	CppType string // e.g. "ECollisionChannel" or "EFoo::Type"
	Package string
	Form    CppForm
	Values  []EnumValue // includes the trailing _MAX sentinel
	ToolTip string
}

func (e *Enum) NativePath() string    { return e.Path }
func (e *Enum) NativePackage() string { return e.Package }
