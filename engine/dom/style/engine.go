package style

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/htmlstyle/core"
)

// Parser is the interface of a CSS engine which is able to parse the text of
// a CSS declaration block (without braces) into a structured declaration.
// Malformed input results in an error.
type Parser interface {
	ParseDeclaration(text string) (*Declaration, error)
}

// CSSEngine is the default CSS engine. It is stateless and therefore safe to
// share between goroutines.
type CSSEngine struct{}

var _ Parser = CSSEngine{}

// NewCSSEngine creates a CSS engine.
func NewCSSEngine() CSSEngine {
	return CSSEngine{}
}

// ParseDeclaration parses text like "color: red; width: 10px !important".
// Declarations with empty names or values are skipped. Errors carry code
// core.EINVALID.
func (CSSEngine) ParseDeclaration(text string) (*Declaration, error) {
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "malformed CSS declaration: %s", text)
	}
	d := NewDeclaration()
	for _, decl := range decls {
		if decl == nil {
			continue
		}
		name := strings.TrimSpace(decl.Property)
		value := Property(strings.TrimSpace(decl.Value))
		if name == "" || value == NullStyle {
			tracer().Debugf("skipping empty CSS declaration %q: %q", name, value)
			continue
		}
		if decl.Important {
			d.SetImportant(name, value)
		} else {
			d.Set(name, value)
		}
	}
	return d, nil
}
