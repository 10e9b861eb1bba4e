package symbols

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeGlobal             // top-level declarations of a script
	ScopeFunction           // one function body
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFunction:
		return "function"
	default:
		return "invalid"
	}
}

// Scope models a lexical scope with a parent chain. Declaration order is
// preserved so listings are deterministic.
type Scope struct {
	Kind    ScopeKind
	Parent  *Scope
	Owner   string // owning function's name; "" for the global scope
	names   map[string]*Symbol
	ordered []*Symbol
}

// NewScope creates an empty scope under parent (nil for the global scope).
func NewScope(kind ScopeKind, parent *Scope, owner string) *Scope {
	return &Scope{
		Kind:   kind,
		Parent: parent,
		Owner:  owner,
		names:  make(map[string]*Symbol),
	}
}

// Declare binds sym in this scope. Returns false when the name is already
// bound here; the existing binding is left untouched.
func (s *Scope) Declare(sym *Symbol) bool {
	if _, exists := s.names[sym.Name]; exists {
		return false
	}
	s.names[sym.Name] = sym
	s.ordered = append(s.ordered, sym)
	return true
}

// ResolveLocal looks the name up in this scope only.
func (s *Scope) ResolveLocal(name string) *Symbol {
	return s.names[name]
}

// Resolve looks the name up in this scope and then in enclosing scopes.
func (s *Scope) Resolve(name string) *Symbol {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym := sc.names[name]; sym != nil {
			return sym
		}
	}
	return nil
}

// Symbols returns the scope's bindings in declaration order.
// Do not modify the returned slice.
func (s *Scope) Symbols() []*Symbol {
	return s.ordered
}

// Len returns the number of bindings declared directly in this scope.
func (s *Scope) Len() int {
	return len(s.ordered)
}
