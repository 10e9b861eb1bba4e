// Package types defines Nimble's primitive type lattice.
//
// Nimble is deliberately tiny: three primitive value types plus two
// sentinels. None is the zero value and means "the analyzer never annotated
// this node"; Error marks an expression whose type could not be inferred
// because of a reported semantic error. Error operands are accepted by every
// rule so one mistake does not cascade into a wall of diagnostics.
package types

// Type identifies a Nimble primitive type or one of the two sentinels.
type Type uint8

const (
	// None means no annotation was ever written. It is the zero value.
	None Type = iota
	Int
	Bool
	String
	// Error marks expressions that failed type inference.
	Error
)

func (t Type) String() string {
	switch t {
	case Int:
		return "Int"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case Error:
		return "ERROR"
	default:
		return "<no type>"
	}
}

// Primitive reports whether t is a real value type (not a sentinel).
func (t Type) Primitive() bool {
	return t == Int || t == Bool || t == String
}

// FromName maps a type name as written in source to its Type.
// Returns None for unknown names.
func FromName(name string) Type {
	switch name {
	case "Int":
		return Int
	case "Bool":
		return Bool
	case "String":
		return String
	default:
		return None
	}
}
