package ast

// --- Listener --------------------------------------------------------------

// Listener is a type for walking an expression tree.
//
// Enter is called for every node before its children are visited, Exit after all of
// them have been visited. level is the nesting depth, 0 for the root. If Enter
// returns false, the children of the node are skipped, but Exit is still called.
type Listener interface {
	Enter(expr Expr, level int) bool
	Exit(expr Expr, level int)
}

// Walk traverses an expression tree depth-first, left to right, calling the listener
// for every node. Walking a nil expression does nothing.
func Walk(listener Listener, expr Expr) {
	if expr == nil {
		return
	}
	walk(listener, expr, 0)
}

func walk(listener Listener, expr Expr, level int) {
	if listener.Enter(expr, level) {
		for _, child := range Children(expr) {
			walk(listener, child, level+1)
		}
	}
	listener.Exit(expr, level)
}

// Children returns the sub-expressions of expr, in source order.
func Children(expr Expr) []Expr {
	switch e := expr.(type) {
	case *Binary:
		return []Expr{e.Lhs, e.Rhs}
	case *Unary:
		return []Expr{e.Operand}
	case *Block:
		return []Expr{e.Inner}
	}
	return nil
}
