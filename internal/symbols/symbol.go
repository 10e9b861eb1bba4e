package symbols

import (
	"nimble/internal/source"
	"nimble/internal/types"
)

// SymbolKind distinguishes what a name is bound to.
type SymbolKind uint8

const (
	SymInvalid SymbolKind = iota
	SymVariable
	SymParam
	SymFunction
)

func (k SymbolKind) String() string {
	switch k {
	case SymVariable:
		return "variable"
	case SymParam:
		return "parameter"
	case SymFunction:
		return "function"
	default:
		return "invalid"
	}
}

// Signature describes a function's parameter and return types.
// Return is types.None for functions that return nothing.
type Signature struct {
	Params []types.Type
	Return types.Type
}

// Symbol is one name binding: a variable, parameter, or function.
type Symbol struct {
	Name string
	Kind SymbolKind
	Type types.Type // value type for variables and parameters
	Sig  *Signature // set for functions only
	Span source.Span // declaration site
}
