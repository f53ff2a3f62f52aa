package tree

// Constructors used by the Java front-end and by tests. Each one wires the
// attribute fields into Children so a walk sees every part of the node.

func New(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: compact(children)}
}

func Block(stmts ...*Node) *Node {
	return New(KindBlock, stmts...)
}

// If builds a conditional. els may be nil.
func If(cond, then, els *Node) *Node {
	n := New(KindIf, cond, then, els)
	n.Cond, n.Then, n.Else = cond, then, els
	return n
}

// Switch builds a switch over selector whose body holds the case groups.
func Switch(selector, body *Node) *Node {
	n := New(KindSwitch, selector, body)
	n.Body = body
	return n
}

// Case builds one case label.
func Case(values ...*Node) *Node {
	return New(KindCase, values...)
}

// Catch builds a handler around body. param is the caught parameter and may be nil.
func Catch(param, body *Node) *Node {
	n := New(KindCatch, param, body)
	n.Body = body
	return n
}

// Binary builds a binary expression.
func Binary(op BinaryOp, left, right *Node) *Node {
	n := New(KindBinary, left, right)
	n.Op = op
	return n
}

func Leaf(kind Kind) *Node {
	return &Node{Kind: kind}
}

// At sets the node line and returns n.
func (n *Node) At(line int) *Node {
	n.Line = line
	return n
}

func compact(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
