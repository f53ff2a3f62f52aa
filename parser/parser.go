package parser

import (
	"context"
	"fmt"
	"os"

	"github.com/TFMV/surrealhcc/cache"
	"github.com/TFMV/surrealhcc/types"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Parser lowers Java source into class units. A Parser is not safe for
// concurrent use; create one per goroutine.
type Parser struct {
	parser    *sitter.Parser
	unitCache *cache.UnitCache
}

// NewParser creates a Java parser. unitCache may be nil.
func NewParser(unitCache *cache.UnitCache) *Parser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())
	return &Parser{
		parser:    p,
		unitCache: unitCache,
	}
}

// FileAnalysis represents the class units lowered from a single file
type FileAnalysis struct {
	Path    string
	Package string
	Units   []types.ClassUnit
	Cached  bool
	// HasErrors is set when tree-sitter had to recover from syntax errors.
	HasErrors bool
}

// ParseFile reads and parses the Java file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (FileAnalysis, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return FileAnalysis{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.Parse(ctx, source, path)
}

// Parse parses Java source attributed to path.
func (p *Parser) Parse(ctx context.Context, source []byte, path string) (FileAnalysis, error) {
	if units, ok := p.unitCache.Get(path, source); ok {
		return FileAnalysis{Path: path, Package: packageOf(units), Units: units, Cached: true, HasErrors: hasSyntaxErrors(units)}, nil
	}

	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return FileAnalysis{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if tree == nil {
		return FileAnalysis{}, fmt.Errorf("failed to parse %s: no tree produced", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	l := newLowerer(source, path)
	l.lower(root)

	hasErrors := root.HasError()
	if hasErrors {
		for i := range l.units {
			l.units[i].SyntaxErrors = true
		}
	}

	p.unitCache.Put(path, source, l.units)
	return FileAnalysis{Path: path, Package: l.pkg, Units: l.units, HasErrors: hasErrors}, nil
}

func hasSyntaxErrors(units []types.ClassUnit) bool {
	for _, u := range units {
		if u.SyntaxErrors {
			return true
		}
	}
	return false
}

// Close releases parser resources.
func (p *Parser) Close() {
	p.parser.Close()
}
