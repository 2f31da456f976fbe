package registry

// File is a parsed registry file.
type File struct {
	// Version is the schema version, "1" when omitted.
	Version string `yaml:"version"`
	// Types declares named shapes usable through {ref: name}.
	Types Table `yaml:"types,omitempty"`
	// Modules maps import specifiers to module types.
	Modules Table `yaml:"modules,omitempty"`
	// Globals maps free identifier names to their types.
	Globals Table `yaml:"globals,omitempty"`
}

// Entry is one named type expression.
type Entry struct {
	Name string
	Type *TypeExpr
	// Line is the source line of the entry, 0 when built in code.
	Line int
}

// Table is an ordered mapping from names to type expressions.
type Table []Entry

// Lookup returns the expression named name.
func (t Table) Lookup(name string) (*TypeExpr, bool) {
	for _, e := range t {
		if e.Name == name {
			return e.Type, true
		}
	}

	return nil, false
}

// Names returns the entry names in order.
func (t Table) Names() []string {
	out := make([]string, len(t))
	for i, e := range t {
		out[i] = e.Name
	}

	return out
}

// TypeExpr is a type expression. Exactly one field is set.
type TypeExpr struct {
	Name         string
	Array        *TypeExpr
	Tuple        *TupleExpr
	Object       *ObjectExpr
	Function     *FunctionExpr
	Union        []*TypeExpr
	Intersection []*TypeExpr
	Ref          string

	line int
}

// TupleExpr is the body of a {tuple: ...} expression.
type TupleExpr struct {
	Elements []*TypeExpr `yaml:"elements,omitempty"`
	Rest     *TypeExpr   `yaml:"rest,omitempty"`
}

// ObjectExpr is the body of an {object: ...} expression.
type ObjectExpr struct {
	Fields Table     `yaml:"fields,omitempty"`
	Rest   *TypeExpr `yaml:"rest,omitempty"`
}

// FunctionExpr is the body of a {function: ...} expression.
type FunctionExpr struct {
	Args   []*TypeExpr `yaml:"args,omitempty"`
	Rest   *TypeExpr   `yaml:"rest,omitempty"`
	Result *TypeExpr   `yaml:"result,omitempty"`
}
