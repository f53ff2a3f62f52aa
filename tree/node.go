package tree

// Kind tags the syntactic role of a node.
type Kind uint8

const (
	KindOther Kind = iota
	KindClass
	KindBlock
	KindCatch
	KindIf
	KindSwitch
	KindCase
	KindFor
	KindForEach
	KindWhile
	KindDo
	KindBreak
	KindContinue
	KindReturn
	KindBinary
	KindLambda
)

var kindNames = [...]string{
	KindOther:    "other",
	KindClass:    "class",
	KindBlock:    "block",
	KindCatch:    "catch",
	KindIf:       "if",
	KindSwitch:   "switch",
	KindCase:     "case",
	KindFor:      "for",
	KindForEach:  "foreach",
	KindWhile:    "while",
	KindDo:       "do",
	KindBreak:    "break",
	KindContinue: "continue",
	KindReturn:   "return",
	KindBinary:   "binary",
	KindLambda:   "lambda",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// BinaryOp is the operator of a binary expression.
type BinaryOp uint8

const (
	OpNone BinaryOp = iota
	OpAnd
	OpOr
	OpOther
)

// IsLogical reports whether op is a short-circuit && or ||.
func (op BinaryOp) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// ParseBinaryOp maps operator text to a BinaryOp.
func ParseBinaryOp(s string) BinaryOp {
	switch s {
	case "&&":
		return OpAnd
	case "||":
		return OpOr
	case "":
		return OpNone
	default:
		return OpOther
	}
}

// Node is one vertex of a read-only syntax tree.
//
// Children holds every structural child in source order. The attribute
// fields point into Children and are only set for the kinds that use them:
// Cond, Then and Else for KindIf, Body for KindCatch and KindSwitch, Op for
// KindBinary.
type Node struct {
	Kind     Kind
	Children []*Node
	Line     int

	Cond *Node
	Then *Node
	Else *Node
	Body *Node
	Op   BinaryOp
}

// HasElse reports whether an if node carries an else branch.
func (n *Node) HasElse() bool {
	return n != nil && n.Kind == KindIf && n.Else != nil
}

// Cases returns the case labels that belong to a switch node. Labels of
// switches nested inside the case bodies are not included.
func (n *Node) Cases() []*Node {
	if n == nil || n.Kind != KindSwitch || n.Body == nil {
		return nil
	}
	var cases []*Node
	var collect func(*Node)
	collect = func(c *Node) {
		for _, child := range c.Children {
			switch child.Kind {
			case KindCase:
				cases = append(cases, child)
			case KindSwitch, KindClass, KindLambda:
				// belongs to another switch or scope
			default:
				collect(child)
			}
		}
	}
	collect(n.Body)
	return cases
}
