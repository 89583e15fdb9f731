// Package options holds validation helpers shared by input-accepting
// surfaces such as the MCP tools.
package options

import "errors"

// ValidateSingleInputSource checks that exactly one of the given input
// sources is set. Each boolean reports whether the caller supplied that
// source; noneMsg and multipleMsg become the error text for the zero and
// more-than-one cases.
func ValidateSingleInputSource(noneMsg, multipleMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return errors.New(noneMsg)
	case count > 1:
		return errors.New(multipleMsg)
	}
	return nil
}
