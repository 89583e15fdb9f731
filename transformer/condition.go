package transformer

import (
	"strconv"
	"strings"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
)

// Operator compares a document value against a condition literal.
type Operator string

const (
	// OpEqual matches structurally equal values.
	OpEqual Operator = "=="
	// OpNotEqual matches structurally unequal values.
	OpNotEqual Operator = "!="
	// OpLess matches numbers or strings ordered before the literal.
	OpLess Operator = "<"
	// OpLessEqual matches OpLess or OpEqual.
	OpLessEqual Operator = "<="
	// OpGreater matches numbers or strings ordered after the literal.
	OpGreater Operator = ">"
	// OpGreaterEqual matches OpGreater or OpEqual.
	OpGreaterEqual Operator = ">="
	// OpExists matches when the path resolves, regardless of value.
	OpExists Operator = "exists"
)

// Condition guards a rule or template branch with a comparison between the
// value at Path and a literal Value. It is evaluated through the path
// engine's best-effort read, so an unresolvable path simply fails ordered
// comparisons and equality rather than raising.
type Condition struct {
	// Path locates the value to test within the document.
	Path string
	// Operator selects the comparison.
	Operator Operator
	// Value is the literal right-hand side. Unused by OpExists.
	Value any
}

// Evaluate reports whether the condition holds for doc.
func (c *Condition) Evaluate(doc any) (bool, error) {
	if c.Operator == OpExists {
		return jsonpath.Has(doc, c.Path), nil
	}

	if !jsonpath.Has(doc, c.Path) {
		// A missing value equals nothing and precedes nothing.
		return c.Operator == OpNotEqual, nil
	}
	actual := jsonpath.GetOr(doc, c.Path, nil)

	switch c.Operator {
	case OpEqual:
		return jsonutil.DeepEqual(actual, c.Value), nil
	case OpNotEqual:
		return !jsonutil.DeepEqual(actual, c.Value), nil
	case OpLess, OpLessEqual, OpGreater, OpGreaterEqual:
		cmp, ok := compareOrdered(actual, c.Value)
		if !ok {
			return false, nil
		}
		switch c.Operator {
		case OpLess:
			return cmp < 0, nil
		case OpLessEqual:
			return cmp <= 0, nil
		case OpGreater:
			return cmp > 0, nil
		default:
			return cmp >= 0, nil
		}
	default:
		return false, &jsonerrors.ConfigError{
			Option:  "condition.operator",
			Value:   string(c.Operator),
			Message: "unknown operator",
		}
	}
}

// compareOrdered orders two values when both are numbers or both are
// strings. ok is false for any other combination.
func compareOrdered(a, b any) (int, bool) {
	if na, aok := jsonutil.Number(a); aok {
		nb, bok := jsonutil.Number(b)
		if !bok {
			return 0, false
		}
		switch {
		case na < nb:
			return -1, true
		case na > nb:
			return 1, true
		default:
			return 0, true
		}
	}
	sa, aok := a.(string)
	sb, bok := b.(string)
	if !aok || !bok {
		return 0, false
	}
	return strings.Compare(sa, sb), true
}

// ParseCondition parses a textual condition of the form "path op literal",
// for example "user.age >= 21" or "meta.deleted exists". Literals may be
// single- or double-quoted strings, numbers, true, false, or null; anything
// else is taken as a bare string.
func ParseCondition(expr string) (*Condition, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, &jsonerrors.ConfigError{
			Option:  "condition",
			Value:   expr,
			Message: "empty condition",
		}
	}

	if path, ok := strings.CutSuffix(trimmed, " exists"); ok {
		return &Condition{Path: strings.TrimSpace(path), Operator: OpExists}, nil
	}

	// Two-character operators first so "<=" is not read as "<".
	for _, op := range []Operator{OpEqual, OpNotEqual, OpLessEqual, OpGreaterEqual, OpLess, OpGreater} {
		path, rest, found := strings.Cut(trimmed, string(op))
		if !found {
			continue
		}
		path = strings.TrimSpace(path)
		if path == "" {
			return nil, &jsonerrors.ConfigError{
				Option:  "condition",
				Value:   expr,
				Message: "missing path before operator",
			}
		}
		value, err := parseLiteral(strings.TrimSpace(rest))
		if err != nil {
			return nil, err
		}
		return &Condition{Path: path, Operator: op, Value: value}, nil
	}

	return nil, &jsonerrors.ConfigError{
		Option:  "condition",
		Value:   expr,
		Message: "no comparison operator found",
	}
}

func parseLiteral(s string) (any, error) {
	switch {
	case s == "":
		return nil, &jsonerrors.ConfigError{
			Option:  "condition",
			Value:   s,
			Message: "missing literal after operator",
		}
	case s == "true":
		return true, nil
	case s == "false":
		return false, nil
	case s == "null":
		return nil, nil
	}

	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1], nil
		}
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n, nil
	}
	return s, nil
}
