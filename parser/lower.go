package parser

import (
	"strconv"
	"strings"

	"github.com/TFMV/surrealhcc/tree"
	"github.com/TFMV/surrealhcc/types"
	sitter "github.com/smacker/go-tree-sitter"
)

// kindByType maps tree-sitter-java node types onto tree kinds. Types that
// need attributes wired (if, switch, catch, binary) are handled in lower.
var kindByType = map[string]tree.Kind{
	"block":                  tree.KindBlock,
	"switch_label":           tree.KindCase,
	"for_statement":          tree.KindFor,
	"enhanced_for_statement": tree.KindForEach,
	"while_statement":        tree.KindWhile,
	"do_statement":           tree.KindDo,
	"break_statement":        tree.KindBreak,
	"continue_statement":     tree.KindContinue,
	"return_statement":       tree.KindReturn,
	"lambda_expression":      tree.KindLambda,
}

// Declarations that become class units.
var classTypes = map[string]bool{
	"class_declaration":  true,
	"enum_declaration":   true,
	"record_declaration": true,
}

// Declarations that scope nested class names without being units themselves.
var scopeTypes = map[string]bool{
	"interface_declaration":       true,
	"annotation_type_declaration": true,
}

var skipTypes = map[string]bool{
	"line_comment":  true,
	"block_comment": true,
	"comment":       true,
}

type lowerer struct {
	source []byte
	path   string
	pkg    string
	scope  []string
	units  []types.ClassUnit

	// locals counts local classes per enclosing binary name and simple name.
	locals map[string]int
}

func newLowerer(source []byte, path string) *lowerer {
	return &lowerer{source: source, path: path, locals: make(map[string]int)}
}

func (l *lowerer) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Content(l.source)
}

func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

func (l *lowerer) field(n *sitter.Node, name string) *tree.Node {
	child := n.ChildByFieldName(name)
	if child == nil {
		return nil
	}
	return l.lower(child)
}

func (l *lowerer) children(n *sitter.Node) []*tree.Node {
	count := int(n.NamedChildCount())
	out := make([]*tree.Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || skipTypes[child.Type()] {
			continue
		}
		out = append(out, l.lower(child))
	}
	return out
}

func (l *lowerer) lower(n *sitter.Node) *tree.Node {
	nodeType := n.Type()

	switch {
	case nodeType == "package_declaration":
		l.pkg = l.packageName(n)
		return tree.Leaf(tree.KindOther).At(line(n))
	case classTypes[nodeType]:
		return l.lowerClass(n)
	case scopeTypes[nodeType]:
		l.scope = append(l.scope, l.text(n.ChildByFieldName("name")))
		node := tree.New(tree.KindOther, l.children(n)...).At(line(n))
		l.scope = l.scope[:len(l.scope)-1]
		return node
	}

	switch nodeType {
	case "if_statement":
		return tree.If(l.field(n, "condition"), l.field(n, "consequence"), l.field(n, "alternative")).At(line(n))
	case "switch_expression", "switch_statement":
		return tree.Switch(l.field(n, "condition"), l.field(n, "body")).At(line(n))
	case "catch_clause":
		var param *tree.Node
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if c := n.NamedChild(i); c != nil && c.Type() == "catch_formal_parameter" {
				param = l.lower(c)
				break
			}
		}
		return tree.Catch(param, l.field(n, "body")).At(line(n))
	case "binary_expression":
		op := tree.OpNone
		if opNode := n.ChildByFieldName("operator"); opNode != nil {
			op = tree.ParseBinaryOp(opNode.Type())
		}
		return tree.Binary(op, l.field(n, "left"), l.field(n, "right")).At(line(n))
	}

	return tree.New(kindByType[nodeType], l.children(n)...).At(line(n))
}

func (l *lowerer) lowerClass(n *sitter.Node) *tree.Node {
	name := l.text(n.ChildByFieldName("name"))
	if len(l.scope) > 0 && isLocal(n) {
		// Binary names of local classes carry a per-enclosing-class index:
		// Outer$1Helper, Outer$2Helper.
		k := strings.Join(l.scope, "$") + "$" + name
		l.locals[k]++
		name = strconv.Itoa(l.locals[k]) + name
	}
	l.scope = append(l.scope, name)

	qualified := strings.Join(l.scope, "$")
	if l.pkg != "" {
		qualified = l.pkg + "." + qualified
	}

	// Reserve the slot first so outer classes precede their nested ones.
	idx := len(l.units)
	l.units = append(l.units, types.ClassUnit{
		QualifiedName: qualified,
		Package:       l.pkg,
		Path:          l.path,
		Line:          line(n),
		Annotations:   l.annotations(n),
	})

	node := tree.New(tree.KindClass, l.children(n)...).At(line(n))
	l.units[idx].Root = node

	l.scope = l.scope[:len(l.scope)-1]
	return node
}

// isLocal reports whether a class declaration sits in a code block rather
// than in a type body. Members of anonymous class bodies count as local.
func isLocal(n *sitter.Node) bool {
	p := n.Parent()
	if p == nil {
		return false
	}
	switch p.Type() {
	case "program", "interface_body", "enum_body_declarations", "annotation_type_body":
		return false
	case "class_body":
		gp := p.Parent()
		return gp != nil && gp.Type() == "object_creation_expression"
	}
	return true
}

func (l *lowerer) packageName(n *sitter.Node) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c == nil {
			continue
		}
		switch c.Type() {
		case "scoped_identifier", "identifier":
			return l.text(c)
		}
	}
	return ""
}

func (l *lowerer) annotations(n *sitter.Node) []string {
	var out []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		mods := n.NamedChild(i)
		if mods == nil || mods.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(mods.NamedChildCount()); j++ {
			a := mods.NamedChild(j)
			if a == nil {
				continue
			}
			switch a.Type() {
			case "marker_annotation", "annotation":
				out = append(out, l.text(a.ChildByFieldName("name")))
			}
		}
	}
	return out
}

func packageOf(units []types.ClassUnit) string {
	if len(units) == 0 {
		return ""
	}
	return units[0].Package
}
