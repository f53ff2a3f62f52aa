package tree

import (
	"errors"
	"fmt"
)

// ErrMalformedTree is wrapped by every shape violation reported by Validate.
var ErrMalformedTree = errors.New("malformed tree")

// MalformedError describes a node whose kind disagrees with its shape.
type MalformedError struct {
	Kind   Kind
	Line   int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s node at line %d: %s", e.Kind, e.Line, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedTree
}

func malformed(n *Node, reason string) error {
	return &MalformedError{Kind: n.Kind, Line: n.Line, Reason: reason}
}

// Validate checks that n has the shape its kind promises. Only the node
// itself is checked, not its descendants.
func Validate(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrMalformedTree)
	}
	switch n.Kind {
	case KindIf:
		if n.Cond == nil {
			return malformed(n, "missing condition")
		}
		if n.Then == nil {
			return malformed(n, "missing consequence")
		}
	case KindCatch:
		if n.Body == nil {
			return malformed(n, "missing body")
		}
	case KindSwitch:
		if n.Body == nil {
			return malformed(n, "missing body")
		}
	case KindBinary:
		if len(n.Children) != 2 {
			return malformed(n, fmt.Sprintf("expected 2 operands, got %d", len(n.Children)))
		}
		if n.Op == OpNone {
			return malformed(n, "missing operator")
		}
	}
	if n.Kind > KindLambda {
		return malformed(n, "unknown kind")
	}
	return nil
}
