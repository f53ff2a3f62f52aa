package analysis

import (
	"fmt"

	"github.com/TFMV/surrealhcc/eligibility"
	"github.com/TFMV/surrealhcc/tree"
	"github.com/TFMV/surrealhcc/types"
)

// decisionWeights is the cost of each decision construct found inside a
// handler body. Two rules are not expressible as a per-kind weight and live
// in nodeScore: an if with an else branch costs one more, and a binary
// expression only counts when its operator is && or ||.
//
// return is counted on purpose; HCC is not textbook cyclomatic complexity.
var decisionWeights = map[tree.Kind]float64{
	tree.KindIf:       1,
	tree.KindSwitch:   1,
	tree.KindCase:     1,
	tree.KindFor:      1,
	tree.KindForEach:  1,
	tree.KindWhile:    1,
	tree.KindDo:       1,
	tree.KindBreak:    1,
	tree.KindContinue: 1,
	tree.KindReturn:   1,
}

const (
	handlerBaseWeight = 1
	elseWeight        = 1
	logicalOpWeight   = 1
)

// ExtractHCC computes the Handler Cyclomatic Complexity of a class: the sum,
// over every catch block anywhere below the class root, of 1 plus the
// weighted decision count of that block's body.
//
// A catch nested inside another catch body is scored twice: once as part of
// the enclosing body and once as a handler of its own.
//
// The caller is responsible for checking eligibility. A node whose shape
// disagrees with its kind fails the whole class with an error wrapping
// tree.ErrMalformedTree.
func ExtractHCC(unit types.ClassUnit) (types.Measure, error) {
	m, _, err := extract(unit)
	return m, err
}

func extract(unit types.ClassUnit) (types.Measure, []types.HandlerResult, error) {
	var (
		total    float64
		handlers []types.HandlerResult
	)
	for catch := range tree.OfKind(unit.Root, tree.KindCatch) {
		score, err := HandlerScore(catch)
		if err != nil {
			return types.Measure{}, nil, fmt.Errorf("class %s: %w", unit.QualifiedName, err)
		}
		total += score
		handlers = append(handlers, types.HandlerResult{Line: catch.Line, Score: score})
	}
	return types.Measure{Kind: types.HCC, Value: total}, handlers, nil
}

// HandlerScore is 1 for taking the catch path plus the body score.
func HandlerScore(catch *tree.Node) (float64, error) {
	if err := tree.Validate(catch); err != nil {
		return 0, err
	}
	if catch.Kind != tree.KindCatch {
		return 0, fmt.Errorf("%w: expected catch, got %s", tree.ErrMalformedTree, catch.Kind)
	}
	body, err := BodyScore(catch.Body)
	if err != nil {
		return 0, err
	}
	return handlerBaseWeight + body, nil
}

// BodyScore returns the weighted number of decision constructs in the whole
// subtree rooted at body, nested blocks, loops, lambdas and handlers included.
func BodyScore(body *tree.Node) (float64, error) {
	var score float64
	for n := range tree.Descendants(body) {
		s, err := nodeScore(n)
		if err != nil {
			return 0, err
		}
		score += s
	}
	return score, nil
}

func nodeScore(n *tree.Node) (float64, error) {
	if err := tree.Validate(n); err != nil {
		return 0, err
	}
	score := decisionWeights[n.Kind]
	switch n.Kind {
	case tree.KindIf:
		if n.HasElse() {
			score += elseWeight
		}
	case tree.KindBinary:
		if n.Op.IsLogical() {
			score += logicalOpWeight
		}
	}
	return score, nil
}

// Extractor is ExtractHCC behind an eligibility gate.
type Extractor struct {
	Eligible eligibility.Predicate
}

// Extract returns the class measure. ok is false, and no work is done, when
// the class is not eligible.
func (e Extractor) Extract(unit types.ClassUnit) (m types.Measure, ok bool, err error) {
	if e.Eligible != nil && !e.Eligible(unit) {
		return types.Measure{}, false, nil
	}
	m, err = ExtractHCC(unit)
	if err != nil {
		return types.Measure{}, false, err
	}
	return m, true, nil
}
