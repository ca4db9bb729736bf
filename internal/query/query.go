// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query combines a free-text keyword expression with a named
// category bundle into one arXiv query string.
package query

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCategory is returned when the category key is not configured.
var ErrUnknownCategory = errors.New("unknown category bundle")

// bundles maps a category key to the boolean-OR expansion of its taxonomy
// codes. The "all" bundle is special-cased: it applies no category scope.
var bundles = map[string]string{
	"ai-cs":   "cat:cs.CV OR cat:cs.CL OR cat:cs.LG OR cat:cs.AI OR cat:stat.ML OR cat:eess.IV OR cat:cs.RO",
	"cs":      "cat:cs.*",
	"physics": "cat:astro-ph OR cat:cond-mat OR cat:gr-qc OR cat:hep-ex OR cat:hep-lat OR cat:hep-ph OR cat:hep-th OR cat:math-ph OR cat:nlin OR cat:nucl-ex OR cat:nucl-th OR cat:physics OR cat:quant-ph",
	"math":    "cat:math.*",
	"all":     "",
}

// Build scopes keywords to the named category bundle. The "all" bundle
// returns keywords unchanged; any other bundle produces
// "(keywords) AND (<category-expression>)".
func Build(keywords, categoryKey string) (string, error) {
	expr, ok := bundles[categoryKey]
	if !ok {
		return "", fmt.Errorf("%w: %q (known: %v)", ErrUnknownCategory, categoryKey, Bundles())
	}
	if expr == "" {
		return keywords, nil
	}
	return fmt.Sprintf("(%s) AND (%s)", keywords, expr), nil
}

// Bundles returns the configured category keys in sorted order.
func Bundles() []string {
	keys := make([]string, 0, len(bundles))
	for k := range bundles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
