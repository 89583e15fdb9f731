package generator

import (
	"fmt"
	"math"
	"strings"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
	"github.com/fauriatjules-max/jsontools/jsonerrors"
	"github.com/fauriatjules-max/jsontools/jsonpath"
	"github.com/fauriatjules-max/jsontools/transformer"
)

// Directive type tags. The set is closed: dispatch is exhaustive and an
// unknown tag is an error, never silently passed through.
const (
	DirectiveRef       = "ref"
	DirectiveArray     = "array"
	DirectiveObject    = "object"
	DirectiveSwitch    = "switch"
	DirectiveTransform = "transform"
	DirectiveConcat    = "concat"
	DirectiveMath      = "math"
	DirectiveDate      = "date"
	DirectiveRandom    = "random"
	DirectiveLiteral   = "literal"
)

// TransformFunc is the callback consumed by the transform directive. It
// receives the resolved $source value and the whole data context.
type TransformFunc func(value, data any) (any, error)

// ConditionFunc is a predicate form of a switch case's $condition.
type ConditionFunc func(data any) bool

func (g *generator) directive(node map[string]any, data any, path string, depth int) (any, error) {
	tag, ok := node["$type"].(string)
	if !ok {
		return nil, g.directiveError(node, path, "", "$type must be a string")
	}

	switch tag {
	case DirectiveRef:
		return g.refDirective(node, data, path)
	case DirectiveArray:
		return g.arrayDirective(node, data, path, depth)
	case DirectiveObject:
		return g.objectDirective(node, data, path, depth)
	case DirectiveSwitch:
		return g.switchDirective(node, data, path, depth)
	case DirectiveTransform:
		return g.transformDirective(node, data, path, depth)
	case DirectiveConcat:
		return g.concatDirective(node, data, path, depth)
	case DirectiveMath:
		return g.mathDirective(node, data, path, depth)
	case DirectiveDate:
		return g.dateDirective(node, data, path, depth)
	case DirectiveRandom:
		return g.randomDirective(node, path)
	case DirectiveLiteral:
		return jsonutil.Clone(node["$value"]), nil
	default:
		return nil, g.directiveError(node, path, tag, fmt.Sprintf("unknown directive type %q", tag))
	}
}

func (g *generator) directiveError(node any, path, tag, message string) error {
	return &jsonerrors.GeneratorError{
		Path:      path,
		Directive: tag,
		Template:  node,
		Message:   message,
	}
}

func (g *generator) refDirective(node map[string]any, data any, path string) (any, error) {
	expr, ok := node["$path"].(string)
	if !ok {
		return nil, g.directiveError(node, path, DirectiveRef, "$path must be a string")
	}

	if jsonpath.Has(data, expr) {
		return jsonutil.Clone(jsonpath.GetOr(data, expr, nil)), nil
	}
	if fallback, ok := node["$default"]; ok {
		return jsonutil.Clone(fallback), nil
	}
	if g.cfg.defaultValue != nil {
		return jsonutil.Clone(g.cfg.defaultValue), nil
	}
	if g.cfg.strict {
		return nil, g.directiveError(node, path, DirectiveRef,
			fmt.Sprintf("reference %q not found and no fallback configured", expr))
	}
	return nil, nil
}

func (g *generator) arrayDirective(node map[string]any, data any, path string, depth int) (any, error) {
	count, ok := jsonutil.Number(node["$count"])
	if !ok || count < 0 || count != math.Trunc(count) {
		return nil, g.directiveError(node, path, DirectiveArray, "$count must be a non-negative integer")
	}
	items, ok := node["$items"]
	if !ok {
		return nil, g.directiveError(node, path, DirectiveArray, "$items is required")
	}

	n := int(count)
	result := make([]any, 0, n)
	for i := 0; i < n; i++ {
		// Each iteration sees the data context plus its own position.
		scope := iterationScope(data, i, n)
		elem, err := g.process(items, scope, jsonpath.JoinIndex(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		result = append(result, elem)
	}
	return result, nil
}

func iterationScope(data any, index, count int) any {
	scope := make(map[string]any)
	if obj, ok := data.(map[string]any); ok {
		for k, v := range obj {
			scope[k] = v
		}
	}
	scope["$index"] = float64(index)
	scope["$count"] = float64(count)
	return scope
}

func (g *generator) objectDirective(node map[string]any, data any, path string, depth int) (any, error) {
	props, ok := node["$properties"].(map[string]any)
	if !ok {
		return nil, g.directiveError(node, path, DirectiveObject, "$properties must be an object")
	}

	result := make(map[string]any, len(props))
	for _, k := range jsonutil.SortedKeys(props) {
		value, err := g.process(props[k], data, jsonpath.JoinKey(path, k), depth+1)
		if err != nil {
			return nil, err
		}
		result[k] = value
	}
	return result, nil
}

func (g *generator) switchDirective(node map[string]any, data any, path string, depth int) (any, error) {
	cases, ok := node["$cases"].([]any)
	if !ok {
		return nil, g.directiveError(node, path, DirectiveSwitch, "$cases must be an array")
	}

	for i, c := range cases {
		caseObj, ok := c.(map[string]any)
		if !ok {
			return nil, g.directiveError(node, path, DirectiveSwitch,
				fmt.Sprintf("case %d is not an object", i))
		}
		matched, err := g.evaluateCondition(caseObj["$condition"], data)
		if err != nil {
			return nil, g.wrapDirective(node, path, DirectiveSwitch, err)
		}
		if matched {
			return g.process(caseObj["$value"], data, jsonpath.JoinIndex(path, i), depth+1)
		}
	}

	if fallback, ok := node["$default"]; ok {
		return g.process(fallback, data, path, depth+1)
	}
	return nil, nil
}

// evaluateCondition decides a switch case. Conditions are a predicate
// function, a comparison string parsed by the transformer's condition
// grammar, or any literal tested for truthiness.
func (g *generator) evaluateCondition(condition, data any) (bool, error) {
	switch c := condition.(type) {
	case nil:
		return false, nil
	case ConditionFunc:
		return c(data), nil
	case func(any) bool:
		return c(data), nil
	case bool:
		return c, nil
	case string:
		parsed, err := transformer.ParseCondition(c)
		if err != nil {
			return false, err
		}
		return parsed.Evaluate(data)
	default:
		return isTruthy(c), nil
	}
}

func isTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case []any:
		return true
	case map[string]any:
		return true
	default:
		if n, ok := jsonutil.Number(v); ok {
			return n != 0
		}
		return false
	}
}

func (g *generator) transformDirective(node map[string]any, data any, path string, depth int) (any, error) {
	fn, err := transformCallback(node["$transform"])
	if err != nil {
		return nil, g.wrapDirective(node, path, DirectiveTransform, err)
	}

	source, err := g.process(node["$source"], data, path, depth+1)
	if err != nil {
		return nil, err
	}

	result, err := fn(source, data)
	if err != nil {
		return nil, g.wrapDirective(node, path, DirectiveTransform, err)
	}
	return result, nil
}

func transformCallback(v any) (TransformFunc, error) {
	switch fn := v.(type) {
	case TransformFunc:
		return fn, nil
	case func(any, any) (any, error):
		return fn, nil
	default:
		return nil, fmt.Errorf("$transform must be a transform function, got %T", v)
	}
}

func (g *generator) concatDirective(node map[string]any, data any, path string, depth int) (any, error) {
	parts, ok := node["$parts"].([]any)
	if !ok {
		return nil, g.directiveError(node, path, DirectiveConcat, "$parts must be an array")
	}
	separator := ""
	if sep, ok := node["$separator"].(string); ok {
		separator = sep
	}

	rendered := make([]string, 0, len(parts))
	for i, part := range parts {
		resolved, err := g.process(part, data, jsonpath.JoinIndex(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, formatValue(resolved))
	}
	return strings.Join(rendered, separator), nil
}

func (g *generator) mathDirective(node map[string]any, data any, path string, depth int) (any, error) {
	op, ok := node["$operation"].(string)
	if !ok {
		return nil, g.directiveError(node, path, DirectiveMath, "$operation must be a string")
	}
	rawOperands, ok := node["$operands"].([]any)
	if !ok || len(rawOperands) == 0 {
		return nil, g.directiveError(node, path, DirectiveMath, "$operands must be a non-empty array")
	}

	operands := make([]float64, 0, len(rawOperands))
	for i, raw := range rawOperands {
		resolved, err := g.process(raw, data, jsonpath.JoinIndex(path, i), depth+1)
		if err != nil {
			return nil, err
		}
		n, ok := jsonutil.Number(resolved)
		if !ok {
			return nil, g.directiveError(node, path, DirectiveMath,
				fmt.Sprintf("operand %d is not numeric", i))
		}
		operands = append(operands, n)
	}

	result, err := foldMath(op, operands)
	if err != nil {
		return nil, g.wrapDirective(node, path, DirectiveMath, err)
	}
	return result, nil
}

// foldMath evaluates an operation over operands. Subtract and divide fold
// the remaining operands against the first via sum and product, so
// subtract(10, 2, 3) is 10-(2+3) and divide(100, 2, 5) is 100/(2*5).
func foldMath(op string, operands []float64) (float64, error) {
	switch op {
	case "add":
		sum := 0.0
		for _, n := range operands {
			sum += n
		}
		return sum, nil
	case "subtract":
		rest := 0.0
		for _, n := range operands[1:] {
			rest += n
		}
		return operands[0] - rest, nil
	case "multiply":
		product := 1.0
		for _, n := range operands {
			product *= n
		}
		return product, nil
	case "divide":
		divisor := 1.0
		for _, n := range operands[1:] {
			divisor *= n
		}
		if divisor == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return operands[0] / divisor, nil
	case "modulo":
		result := operands[0]
		for _, n := range operands[1:] {
			if n == 0 {
				return 0, fmt.Errorf("modulo by zero")
			}
			result = math.Mod(result, n)
		}
		return result, nil
	case "power":
		result := operands[0]
		for _, n := range operands[1:] {
			result = math.Pow(result, n)
		}
		return result, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", op)
	}
}

func (g *generator) wrapDirective(node any, path, tag string, err error) error {
	return &jsonerrors.GeneratorError{
		Path:      path,
		Directive: tag,
		Template:  node,
		Message:   fmt.Sprintf("%s directive failed", tag),
		Cause:     err,
	}
}
