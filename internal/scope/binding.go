package scope

import (
	"typeflow/internal/common"
	"typeflow/internal/syntax"
)

// BindingKind classifies how a name was introduced.
type BindingKind int

const (
	BindingUnknown BindingKind = iota
	BindingLocal
	BindingParameter
	BindingHoistedFunction
	BindingModuleImport
)

// String returns a human-readable representation of the BindingKind.
func (k BindingKind) String() string {
	switch k {
	case BindingLocal:
		return "local"
	case BindingParameter:
		return "parameter"
	case BindingHoistedFunction:
		return "hoisted-function"
	case BindingModuleImport:
		return "module-import"
	default:
		return common.UnknownStr
	}
}

// Binding ties together every identifier that denotes the same variable.
type Binding struct {
	Name string
	Kind BindingKind
	// Declaration is the declaring construct: a VariableDeclarator, the
	// function owning a parameter, a FunctionDeclaration, a class or an
	// import specifier. The BindingIdentifier itself is found under it.
	Declaration syntax.NodeID
	// References are identifier references that read the binding.
	References []syntax.NodeID
	// Writes are reassignment targets, plus redeclarations of the same name.
	Writes []syntax.NodeID
}

// Bindings is the read-only view the resolver and seed extractor consume.
type Bindings interface {
	// BindingOf returns the binding a BindingIdentifier or
	// IdentifierReference denotes, or nil when the name is free.
	BindingOf(id syntax.NodeID) *Binding
	// HasBinding reports whether name is bound in the scope chain at id.
	HasBinding(at syntax.NodeID, name string) bool
}
