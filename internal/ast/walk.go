package ast

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all identifiers
//
//	count := 0
//	ast.Walk(stmt, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	// Expressions
	case *Literal, *Ident:
		// no children

	case *Unary:
		Walk(n.X, fn)

	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *Group:
		Walk(n.X, fn)

	case *Assign:
		Walk(n.Value, fn)

	// Statements
	case *ExprStmt:
		Walk(n.X, fn)

	case *PrintStmt:
		Walk(n.X, fn)

	case *VarDecl:
		Walk(n.Init, fn)

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, fn)
		}

	case *If:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)
	}
}
