package generator

import (
	"fmt"
	"math"
	"time"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
)

// defaultRandomChars is the alphabet for random strings when $chars is
// absent.
const defaultRandomChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (g *generator) randomDirective(node map[string]any, path string) (any, error) {
	valueType, ok := node["$valueType"].(string)
	if !ok {
		return nil, g.directiveError(node, path, DirectiveRandom, "$valueType must be a string")
	}

	switch valueType {
	case "string":
		return g.randomString(node), nil
	case "number":
		return g.randomNumber(node)
	case "boolean":
		return g.cfg.rnd.Intn(2) == 1, nil
	case "date":
		return g.randomDate(node, path)
	case "choice":
		choices, ok := node["$choices"].([]any)
		if !ok || len(choices) == 0 {
			return nil, g.directiveError(node, path, DirectiveRandom, "$choices must be a non-empty array")
		}
		return jsonutil.Clone(choices[g.cfg.rnd.Intn(len(choices))]), nil
	default:
		return nil, g.directiveError(node, path, DirectiveRandom,
			fmt.Sprintf("unknown value type %q", valueType))
	}
}

func (g *generator) randomString(node map[string]any) string {
	length := 10
	if n, ok := jsonutil.Number(node["$length"]); ok && n >= 0 {
		length = int(n)
	}
	chars := defaultRandomChars
	if c, ok := node["$chars"].(string); ok && c != "" {
		chars = c
	}

	runes := []rune(chars)
	out := make([]rune, length)
	for i := range out {
		out[i] = runes[g.cfg.rnd.Intn(len(runes))]
	}
	return string(out)
}

func (g *generator) randomNumber(node map[string]any) (any, error) {
	minVal := 0.0
	if n, ok := jsonutil.Number(node["$min"]); ok {
		minVal = n
	}
	maxVal := 100.0
	if n, ok := jsonutil.Number(node["$max"]); ok {
		maxVal = n
	}
	if maxVal < minVal {
		return nil, fmt.Errorf("$max %v is less than $min %v", maxVal, minVal)
	}

	integer, _ := node["$integer"].(bool)
	if integer {
		lo, hi := int64(math.Ceil(minVal)), int64(math.Floor(maxVal))
		if hi < lo {
			return nil, fmt.Errorf("no integers in [%v, %v]", minVal, maxVal)
		}
		return float64(lo + g.cfg.rnd.Int63n(hi-lo+1)), nil
	}
	return minVal + g.cfg.rnd.Float64()*(maxVal-minVal), nil
}

func (g *generator) randomDate(node map[string]any, path string) (any, error) {
	start := time.Now().UTC().AddDate(-1, 0, 0)
	if s, ok := node["$start"].(string); ok {
		parsed, err := resolveInstant(s)
		if err != nil {
			return nil, g.wrapDirective(node, path, DirectiveRandom, err)
		}
		start = parsed
	}
	end := time.Now().UTC()
	if s, ok := node["$end"].(string); ok {
		parsed, err := resolveInstant(s)
		if err != nil {
			return nil, g.wrapDirective(node, path, DirectiveRandom, err)
		}
		end = parsed
	}
	if end.Before(start) {
		return nil, g.directiveError(node, path, DirectiveRandom, "$end precedes $start")
	}

	window := end.Unix() - start.Unix()
	var offset int64
	if window > 0 {
		offset = g.cfg.rnd.Int63n(window + 1)
	}
	return time.Unix(start.Unix()+offset, 0).UTC().Format(time.RFC3339), nil
}
