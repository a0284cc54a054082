package loader

// Document is a reflection dump of native types and the export events that
// introduced them. Members are listed in declaration order.
type Document struct {
	Version string      `yaml:"version" toml:"version"`
	Classes []ClassDoc  `yaml:"classes,omitempty" toml:"classes,omitempty"`
	Structs []StructDoc `yaml:"structs,omitempty" toml:"structs,omitempty"`
	Enums   []EnumDoc   `yaml:"enums,omitempty" toml:"enums,omitempty"`
	Modules []ModuleDoc `yaml:"modules,omitempty" toml:"modules,omitempty"`
}

type ModuleDoc struct {
	Name    string      `yaml:"name" toml:"name"`
	Exports []ExportDoc `yaml:"exports,omitempty" toml:"exports,omitempty"`
}

// ExportDoc is one class announced by a module together with the header that declares it.
type ExportDoc struct {
	Class  string `yaml:"class" toml:"class"`
	Header string `yaml:"header,omitempty" toml:"header,omitempty"`
}

type ClassDoc struct {
	Path       string     `yaml:"path" toml:"path"`
	Name       string     `yaml:"name,omitempty" toml:"name,omitempty"`
	CppName    string     `yaml:"cpp_name,omitempty" toml:"cpp_name,omitempty"`
	Package    string     `yaml:"package,omitempty" toml:"package,omitempty"`
	Super      string     `yaml:"super,omitempty" toml:"super,omitempty"`
	Interfaces []string   `yaml:"interfaces,omitempty" toml:"interfaces,omitempty"`
	Flags      []string   `yaml:"flags,omitempty" toml:"flags,omitempty"`
	ToolTip    string     `yaml:"tooltip,omitempty" toml:"tooltip,omitempty"`
	Fields     []FieldDoc `yaml:"fields,omitempty" toml:"fields,omitempty"`
}

type StructDoc struct {
	Path     string     `yaml:"path" toml:"path"`
	Name     string     `yaml:"name,omitempty" toml:"name,omitempty"`
	CppName  string     `yaml:"cpp_name,omitempty" toml:"cpp_name,omitempty"`
	Package  string     `yaml:"package,omitempty" toml:"package,omitempty"`
	Super    string     `yaml:"super,omitempty" toml:"super,omitempty"`
	NoExport bool       `yaml:"no_export,omitempty" toml:"no_export,omitempty"`
	ToolTip  string     `yaml:"tooltip,omitempty" toml:"tooltip,omitempty"`
	Fields   []FieldDoc `yaml:"fields,omitempty" toml:"fields,omitempty"`
}

// FieldDoc holds exactly one of Property or Function.
type FieldDoc struct {
	Property *PropertyDoc `yaml:"property,omitempty" toml:"property,omitempty"`
	Function *FunctionDoc `yaml:"function,omitempty" toml:"function,omitempty"`
}

type PropertyDoc struct {
	Name       string       `yaml:"name" toml:"name"`
	Category   string       `yaml:"category" toml:"category"`
	Flags      []string     `yaml:"flags,omitempty" toml:"flags,omitempty"`
	Visibility string       `yaml:"visibility,omitempty" toml:"visibility,omitempty"`
	ArrayDim   int          `yaml:"array_dim,omitempty" toml:"array_dim,omitempty"`
	Type       string       `yaml:"type,omitempty" toml:"type,omitempty"`
	MetaClass  string       `yaml:"meta_class,omitempty" toml:"meta_class,omitempty"`
	Inner      *PropertyDoc `yaml:"inner,omitempty" toml:"inner,omitempty"`
	ToolTip    string       `yaml:"tooltip,omitempty" toml:"tooltip,omitempty"`
}

// FunctionDoc lists parameters without the return value, which goes in Return.
// An empty Owner means the enclosing type.
type FunctionDoc struct {
	Name       string        `yaml:"name" toml:"name"`
	Owner      string        `yaml:"owner,omitempty" toml:"owner,omitempty"`
	Visibility string        `yaml:"visibility,omitempty" toml:"visibility,omitempty"`
	Flags      []string      `yaml:"flags,omitempty" toml:"flags,omitempty"`
	Params     []PropertyDoc `yaml:"params,omitempty" toml:"params,omitempty"`
	Return     *PropertyDoc  `yaml:"return,omitempty" toml:"return,omitempty"`
	ToolTip    string        `yaml:"tooltip,omitempty" toml:"tooltip,omitempty"`
}

type EnumDoc struct {
	Path    string         `yaml:"path" toml:"path"`
	Name    string         `yaml:"name,omitempty" toml:"name,omitempty"`
	CppType string         `yaml:"cpp_type,omitempty" toml:"cpp_type,omitempty"`
	Package string         `yaml:"package,omitempty" toml:"package,omitempty"`
	Form    string         `yaml:"form,omitempty" toml:"form,omitempty"`
	Values  []EnumValueDoc `yaml:"values,omitempty" toml:"values,omitempty"`
	ToolTip string         `yaml:"tooltip,omitempty" toml:"tooltip,omitempty"`
}

type EnumValueDoc struct {
	Name        string `yaml:"name" toml:"name"`
	ToolTip     string `yaml:"tooltip,omitempty" toml:"tooltip,omitempty"`
	DisplayName string `yaml:"display_name,omitempty" toml:"display_name,omitempty"`
}
