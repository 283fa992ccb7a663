package filter

import (
	"net/url"
	"strings"
)

// Query parameter names used to carry a State in a URL.
const (
	ParamCategory = "category"
	ParamQuery    = "q"
	ParamQuick    = "quick"
	ParamOpen     = "open"
)

// StateFromValues decodes a State from URL query values. Missing values take
// their defaults.
func StateFromValues(values url.Values) State {
	s := NewState()
	if category := strings.TrimSpace(values.Get(ParamCategory)); category != "" {
		s.Category = category
	}
	s.Query = values.Get(ParamQuery)
	s.QuickRefOnly = parseFlag(values.Get(ParamQuick))
	return s.WithExpanded(values[ParamOpen]...)
}

// Values encodes s, omitting fields at their defaults.
func (s State) Values() url.Values {
	values := url.Values{}
	if category := s.SelectedCategory(); category != AllCategories {
		values.Set(ParamCategory, category)
	}
	if s.Query != "" {
		values.Set(ParamQuery, s.Query)
	}
	if s.QuickRefOnly {
		values.Set(ParamQuick, "1")
	}
	for _, id := range s.expanded {
		values.Add(ParamOpen, id)
	}
	return values
}

// Encode returns the URL query string for s.
func (s State) Encode() string {
	return s.Values().Encode()
}

func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}
