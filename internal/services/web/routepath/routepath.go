// Package routepath centralizes the HTTP paths owned by the web service.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Health = "/healthz"
	Static = "/static/"

	RulesPrefix    = "/rules/"
	RulePattern    = RulesPrefix + "{id}"
	DicePrefix     = "/dice/"
	SettingsPrefix = "/settings/"

	APIPrefix      = "/api/"
	APIRules       = APIPrefix + "rules"
	APIRulePattern = APIRules + "/{id}"
	APICategories  = APIPrefix + "categories"
	APIDiceRoll    = APIPrefix + "dice/roll"
)

// Rule returns the cross-reference jump path for a rule id.
func Rule(id string) string {
	return RulesPrefix + url.PathEscape(strings.TrimSpace(id))
}

// APIRule returns the JSON path for a rule id.
func APIRule(id string) string {
	return APIRules + "/" + url.PathEscape(strings.TrimSpace(id))
}

// WithQuery appends a non-empty encoded query to path.
func WithQuery(path string, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// RuleAnchor is the fragment id of a rendered rule.
func RuleAnchor(id string) string {
	return "rule-" + strings.TrimSpace(id)
}
