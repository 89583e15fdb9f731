package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/fauriatjules-max/jsontools/internal/jsonutil"
)

func (g *generator) dateDirective(node map[string]any, data any, path string, depth int) (any, error) {
	baseNode, ok := node["$value"]
	if !ok {
		baseNode = "now"
	}
	resolved, err := g.process(baseNode, data, path, depth+1)
	if err != nil {
		return nil, err
	}

	base, err := resolveInstant(resolved)
	if err != nil {
		return nil, g.wrapDirective(node, path, DirectiveDate, err)
	}

	if offset, ok := node["$offset"].(map[string]any); ok {
		base = applyOffset(base, offset)
	}

	format := "iso"
	if f, ok := node["$format"].(string); ok {
		format = f
	}
	custom, _ := node["$customFormat"].(string)

	out, err := formatInstant(base, format, custom)
	if err != nil {
		return nil, g.wrapDirective(node, path, DirectiveDate, err)
	}
	return out, nil
}

// resolveInstant interprets a base value as a point in time: the keywords
// "now" and "today" (midnight UTC), an RFC 3339 string, or unix seconds.
func resolveInstant(v any) (time.Time, error) {
	switch base := v.(type) {
	case string:
		switch base {
		case "now":
			return time.Now().UTC(), nil
		case "today":
			now := time.Now().UTC()
			return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		if t, err := time.Parse(time.RFC3339, base); err == nil {
			return t.UTC(), nil
		}
		if t, err := time.Parse("2006-01-02", base); err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("unrecognized date value %q", base)
	default:
		if n, ok := jsonutil.Number(v); ok {
			return time.Unix(int64(n), 0).UTC(), nil
		}
		return time.Time{}, fmt.Errorf("date value must be a string or unix seconds, got %T", v)
	}
}

func applyOffset(t time.Time, offset map[string]any) time.Time {
	part := func(name string) int {
		n, _ := jsonutil.Number(offset[name])
		return int(n)
	}
	t = t.AddDate(part("years"), part("months"), part("days"))
	t = t.Add(time.Duration(part("hours")) * time.Hour)
	t = t.Add(time.Duration(part("minutes")) * time.Minute)
	t = t.Add(time.Duration(part("seconds")) * time.Second)
	return t
}

func formatInstant(t time.Time, format, custom string) (any, error) {
	switch format {
	case "iso":
		return t.Format(time.RFC3339), nil
	case "date":
		return t.Format("2006-01-02"), nil
	case "time":
		return t.Format("15:04:05"), nil
	case "timestamp":
		return float64(t.Unix()), nil
	case "custom":
		if custom == "" {
			return nil, fmt.Errorf("custom format requires $customFormat")
		}
		return applyCustomFormat(t, custom), nil
	default:
		return nil, fmt.Errorf("unknown date format %q", format)
	}
}

// applyCustomFormat substitutes the conventional date tokens (YYYY, MM, DD,
// HH, mm, ss) in a pattern. Longer tokens are replaced first so MM never
// corrupts a surrounding YYYY replacement.
func applyCustomFormat(t time.Time, pattern string) string {
	replacer := strings.NewReplacer(
		"YYYY", t.Format("2006"),
		"MM", t.Format("01"),
		"DD", t.Format("02"),
		"HH", t.Format("15"),
		"mm", t.Format("04"),
		"ss", t.Format("05"),
	)
	return replacer.Replace(pattern)
}
