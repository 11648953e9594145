package config

import (
	"github.com/samber/lo"

	"github.com/daxida/grs/internal/rule"
)

// The special selector enabling every rule.
const selectorAll = "ALL"

// DefaultRules is the rule set used when nothing is selected.
func DefaultRules() []rule.Rule {
	return []rule.Rule{
		rule.MissingDoubleAccents,
		rule.OutdatedSpelling,
		rule.MonosyllableAccented,
		rule.MultisyllableNotAccented,
	}
}

// ParseSelectors expands rule codes, including the ALL selector, into a
// deduplicated rule list in the order given.
func ParseSelectors(codes []string) ([]rule.Rule, error) {
	var selected []rule.Rule
	for _, code := range codes {
		if code == selectorAll {
			selected = append(selected, rule.All()...)
			continue
		}
		r, err := rule.Parse(code)
		if err != nil {
			return nil, err
		}
		selected = append(selected, r)
	}
	return lo.Uniq(selected), nil
}

// Resolve combines select and ignore code lists into the final enabled
// rule set. An empty select falls back to the defaults. Ignoring a rule
// that was never selected is not an error.
func Resolve(selectCodes, ignoreCodes []string) ([]rule.Rule, error) {
	enabled := DefaultRules()
	if len(selectCodes) > 0 {
		var err error
		enabled, err = ParseSelectors(selectCodes)
		if err != nil {
			return nil, err
		}
	}

	if len(ignoreCodes) == 0 {
		return enabled, nil
	}
	ignored, err := ParseSelectors(ignoreCodes)
	if err != nil {
		return nil, err
	}
	return lo.Without(enabled, ignored...), nil
}
