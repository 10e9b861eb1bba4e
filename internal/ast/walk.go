package ast

// Walk visits n and all of its descendants in the tree's natural depth-first
// pre-order. Child order matches source order, so visit order is
// deterministic for a given tree.
func Walk(n Node, visit func(Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range Children(n) {
		Walk(c, visit)
	}
}

// Children returns n's direct children in source order. The switch covers
// the closed kind set; a new variant without a case here is a bug.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *IntLit, *StringLit, *BoolLit, *Name:
		return nil
	case *Unary:
		return []Node{v.Operand}
	case *Binary:
		return []Node{v.Left, v.Right}
	case *Call:
		return v.Args
	case *Paren:
		return []Node{v.Inner}
	case *CallStmt:
		return []Node{v.Call}
	case *VarDecl:
		if v.Init == nil {
			return nil
		}
		return []Node{v.Init}
	case *Assign:
		return []Node{v.Value}
	case *Print:
		return []Node{v.Value}
	case *While:
		return []Node{v.Cond, v.Body}
	case *If:
		if v.Else == nil {
			return []Node{v.Cond, v.Then}
		}
		return []Node{v.Cond, v.Then, v.Else}
	case *Return:
		if v.Value == nil {
			return nil
		}
		return []Node{v.Value}
	case *FuncDef:
		return []Node{v.Body}
	case *Block:
		return v.Stmts
	case *Script:
		return v.Stmts
	default:
		panic("ast: unhandled node kind " + n.Kind().String())
	}
}
