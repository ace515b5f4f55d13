package interp

import (
	"fmt"
	"strings"

	packrat "github.com/launix-de/go-packrat/v2"
)

// Parser (§4.3), grounded on scm/packrat.go's parseSyntax/ExtractScmer: a
// grammar is built from go-packrat combinators, then the resulting
// *packrat.Node tree is walked into Values. Unlike the teacher (which
// builds grammars at runtime from an s-expression syntax description, for
// user-defined parsers), Z-Lisp's grammar is fixed, so the combinators are
// wired directly here; only the mutual recursion between `component`,
// `expression` and `list` still needs the teacher's forward-declaration
// trick (there: UndefinedParser).

// lazyParser breaks the component/expression/list recursion: constructed
// empty, then patched with its real parser once every alternative exists.
type lazyParser struct {
	inner packrat.Parser
}

func (l *lazyParser) Match(s *packrat.Scanner) *packrat.Node {
	return l.inner.Match(s)
}

var (
	numberParser  = packrat.NewRegexParser(`-?[0-9]+(\.[0-9]*)?`, false, true)
	stringParser  = packrat.NewRegexParser(`"(\\.|[^"\\])*"`, false, true)
	symbolParser  = packrat.NewRegexParser(`[A-Za-z0-9^%_+\-*/\\=<>!&]+`, false, true)
	commentParser = packrat.NewRegexParser(`;[^\n]*`, false, true)

	openParen  = packrat.NewAtomParser("(", false, true)
	closeParen = packrat.NewAtomParser(")", false, true)
	openBrace  = packrat.NewAtomParser("{", false, true)
	closeBrace = packrat.NewAtomParser("}", false, true)

	componentParser  = &lazyParser{}
	expressionParser = packrat.NewAndParser(openParen, packrat.NewKleeneParser(componentParser, packrat.NewEmptyParser()), closeParen)
	listParser       = packrat.NewAndParser(openBrace, packrat.NewKleeneParser(componentParser, packrat.NewEmptyParser()), closeBrace)

	topParser = packrat.NewKleeneParser(componentParser, packrat.NewEmptyParser())
)

func init() {
	componentParser.inner = packrat.NewOrParser(
		numberParser, stringParser, symbolParser, expressionParser, listParser, commentParser,
	)
}

// Parse implements §4.3's top production: source text to a value tree. The
// result is always an Expression whose children are the top-level
// components, so file loading (`load`, §4.6) can pop and evaluate one form
// at a time. A parse failure returns a Go error carrying the diagnostic
// text from the packrat toolkit; callers decide how to surface that as
// language-level data (the REPL and `load` both wrap it into an Error
// Value, keeping the host/language error channels separate per
// SPEC_FULL.md §1).
func Parse(source string) (*Value, error) {
	scanner := packrat.NewScanner(source, packrat.SkipWhitespaceAndCommentsRegex)
	node, err := packrat.Parse(topParser, scanner)
	if err != nil {
		return nil, err
	}
	return NewExpression(extractKleene(node)...), nil
}

// extractKleene walks a Kleene-match node (component separated by the
// empty separator) into the Values its non-separator children produced,
// dropping comments (which extract to nil).
func extractKleene(node *packrat.Node) []*Value {
	result := make([]*Value, 0, len(node.Children)/2+1)
	for i := 0; i < len(node.Children); i += 2 {
		if v := extractComponent(node.Children[i]); v != nil {
			result = append(result, v)
		}
	}
	return result
}

func extractComponent(node *packrat.Node) *Value {
	if _, ok := node.Parser.(*packrat.OrParser); ok {
		return extractComponent(node.Children[0])
	}

	switch node.Parser {
	case numberParser:
		return parseNumberLiteral(node.Matched)
	case stringParser:
		return parseStringLiteral(node.Matched)
	case symbolParser:
		return NewSymbol(node.Matched)
	case commentParser:
		return nil
	case expressionParser:
		return NewExpression(extractKleene(node.Children[1])...)
	case listParser:
		return NewList(extractKleene(node.Children[1])...)
	}

	panic(fmt.Sprintf("zlisp: parser: unexpected grammar node %T", node.Parser))
}

func parseNumberLiteral(s string) *Value {
	if strings.Contains(s, ".") {
		return parseFloatValue(s)
	}
	return parseIntValue(s)
}

// parseStringLiteral strips the surrounding quotes and unescapes the
// C-style escapes named in §4.3 (`\"`, `\\`, `\n`, `\t`).
func parseStringLiteral(s string) *Value {
	inner := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '\\' && i+1 < len(inner) {
			i++
			switch inner[i] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte('\\')
				b.WriteByte(inner[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return NewString(b.String())
}
