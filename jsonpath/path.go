package jsonpath

import (
	"strconv"
	"strings"

	"github.com/fauriatjules-max/jsontools/jsonerrors"
)

// Path represents a parsed path expression.
type Path struct {
	raw      string
	segments []Segment
}

// String returns the original path expression.
func (p *Path) String() string {
	return p.raw
}

// Segments returns the parsed segments in order.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Segment represents a single segment in a path expression.
type Segment interface {
	// segmentType returns a string identifying the segment type for debugging.
	segmentType() string
}

// KeySegment addresses a property of an object by name.
type KeySegment struct {
	Key string
}

func (s KeySegment) segmentType() string { return "key" }

// IndexSegment addresses an element of an array by position.
// Negative indices address from the end of the array.
type IndexSegment struct {
	Index int
}

func (s IndexSegment) segmentType() string { return "index" }

// Parse parses a path expression string into a Path.
//
// Examples:
//
//	Parse("user.name")
//	Parse("items[0].id")
//	Parse(`config["dotted.key"]`)
//
// An empty expression parses to the root path, which addresses the whole
// value. Parse fails with *jsonerrors.PathSyntaxError on an unterminated
// bracket, an empty bracket body, or an unterminated quoted string.
func Parse(expr string) (*Path, error) {
	p := &parser{input: expr}

	segments, err := p.parse()
	if err != nil {
		return nil, err
	}

	return &Path{
		raw:      expr,
		segments: segments,
	}, nil
}

// MustParse is like Parse but panics on a malformed expression.
// Intended for expressions known at compile time.
func MustParse(expr string) *Path {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// parser is the internal path expression parser.
type parser struct {
	input string
	pos   int
}

func (p *parser) parse() ([]Segment, error) {
	var segments []Segment

	for p.pos < len(p.input) {
		ch := p.peek()

		switch {
		case ch == '[':
			p.advance()
			seg, err := p.parseBracketSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		case ch == '.':
			// A dot separates identifier segments. Leading dots and dots
			// directly after a bracket group introduce the next identifier.
			p.advance()
			if p.pos >= len(p.input) {
				return nil, p.syntaxError("unexpected end after '.'")
			}
			if p.peek() == '[' {
				continue
			}
			seg, err := p.parseIdentifierSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)

		default:
			seg, err := p.parseIdentifierSegment()
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg)
		}
	}

	return segments, nil
}

func (p *parser) parseIdentifierSegment() (Segment, error) {
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == '.' || ch == '[' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return nil, p.syntaxError("empty path segment")
	}
	return KeySegment{Key: p.input[start:p.pos]}, nil
}

func (p *parser) parseBracketSegment() (Segment, error) {
	if p.pos >= len(p.input) {
		return nil, p.syntaxError("unterminated bracket")
	}

	ch := p.peek()

	// Quoted key: ['key'] or ["key"]
	if ch == '\'' || ch == '"' {
		quote := ch
		p.advance()
		key, err := p.parseQuotedString(quote)
		if err != nil {
			return nil, err
		}
		if !p.consume(']') {
			return nil, p.syntaxError("expected ']' after quoted key")
		}
		return KeySegment{Key: key}, nil
	}

	// Unquoted body up to the closing bracket.
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != ']' {
		p.pos++
	}
	if p.pos >= len(p.input) {
		return nil, p.syntaxError("unterminated bracket")
	}
	body := p.input[start:p.pos]
	p.advance() // consume ']'

	if body == "" {
		return nil, p.syntaxError("empty bracket body")
	}

	// All digits (optionally signed) is a numeric index; anything else is
	// treated as a literal property name.
	if idx, ok := parseIndex(body); ok {
		return IndexSegment{Index: idx}, nil
	}
	return KeySegment{Key: body}, nil
}

func (p *parser) parseQuotedString(quote byte) (string, error) {
	var result strings.Builder
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == quote {
			p.pos++
			return result.String(), nil
		}
		if ch == '\\' && p.pos+1 < len(p.input) {
			p.pos++
			escaped := p.input[p.pos]
			switch escaped {
			case 'n':
				result.WriteByte('\n')
			case 't':
				result.WriteByte('\t')
			case '\\':
				result.WriteByte('\\')
			case '\'':
				result.WriteByte('\'')
			case '"':
				result.WriteByte('"')
			default:
				result.WriteByte(escaped)
			}
			p.pos++
			continue
		}
		result.WriteByte(ch)
		p.pos++
	}
	return "", p.syntaxError("unterminated quoted string")
}

func parseIndex(body string) (int, bool) {
	s := body
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	idx, err := strconv.Atoi(body)
	if err != nil {
		return 0, false
	}
	return idx, true
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.input) {
		p.pos++
	}
}

func (p *parser) consume(ch byte) bool {
	if p.peek() == ch {
		p.advance()
		return true
	}
	return false
}

func (p *parser) syntaxError(msg string) error {
	return &jsonerrors.PathSyntaxError{
		Expression: p.input,
		Position:   p.pos,
		Message:    msg,
	}
}

// SplitLast splits expr into the expression addressing its parent container
// and the final segment. The returned parent expression is rebuilt with
// JoinKey/JoinIndex, so it parses back to the same location even when the
// original used bracket quoting.
func SplitLast(expr string) (string, Segment, error) {
	p, err := Parse(expr)
	if err != nil {
		return "", nil, err
	}
	if len(p.segments) == 0 {
		return "", nil, &jsonerrors.PathSyntaxError{
			Expression: expr,
			Message:    "expression addresses the root",
		}
	}

	parent := ""
	for _, seg := range p.segments[:len(p.segments)-1] {
		switch s := seg.(type) {
		case KeySegment:
			parent = JoinKey(parent, s.Key)
		case IndexSegment:
			parent = JoinIndex(parent, s.Index)
		}
	}
	return parent, p.segments[len(p.segments)-1], nil
}

// JoinKey appends a key segment to a path string using the package's path
// syntax. Keys containing '.', '[', ']', or quotes are bracket-quoted so the
// result parses back to the same location.
func JoinKey(path, key string) string {
	if needsQuoting(key) {
		return path + `["` + escapeKey(key) + `"]`
	}
	if path == "" {
		return key
	}
	return path + "." + key
}

// JoinIndex appends an index segment to a path string.
func JoinIndex(path string, index int) string {
	return path + "[" + strconv.Itoa(index) + "]"
}

func needsQuoting(key string) bool {
	if key == "" {
		return true
	}
	return strings.ContainsAny(key, ".[]'\"")
}

func escapeKey(key string) string {
	key = strings.ReplaceAll(key, `\`, `\\`)
	return strings.ReplaceAll(key, `"`, `\"`)
}
