package ast

// Walk はnodeから深さ優先・行きがけ順にノードを辿る。fnがfalseを返したらその子は辿らない
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Walk(s, fn)
		}
	case *LetStatement:
		Walk(n.Name, fn)
		if n.Value != nil {
			Walk(n.Value, fn)
		}
	case *ReturnStatement:
		if n.ReturnValue != nil {
			Walk(n.ReturnValue, fn)
		}
	case *ExpressionStatement:
		if n.Expression != nil {
			Walk(n.Expression, fn)
		}
	case *BlockStatement:
		for _, s := range n.Statements {
			Walk(s, fn)
		}
	case *PrefixExpression:
		Walk(n.Right, fn)
	case *InfixExpression:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *IfExpression:
		Walk(n.Condition, fn)
		Walk(n.Consequence, fn)
		if n.Alternative != nil {
			Walk(n.Alternative, fn)
		}
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			Walk(p, fn)
		}
		Walk(n.Body, fn)
	case *CallExpression:
		Walk(n.Function, fn)
		for _, a := range n.Arguments {
			Walk(a, fn)
		}
	case *Identifier, *IntegerLiteral, *Boolean:
		// 葉
	}
}
