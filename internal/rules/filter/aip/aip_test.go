package aip

import "testing"

var testFields = Fields{
	"title":    FieldString,
	"category": FieldString,
	"page":     FieldInt,
}

func resolverFor(values map[string]any) Resolver {
	return func(name string) (any, bool) {
		v, ok := values[name]
		return v, ok
	}
}

func TestParseBlankReturnsNil(t *testing.T) {
	f, err := Parse("   ", testFields)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f != nil {
		t.Fatalf("Parse(blank) = %v, want nil", f)
	}
	ok, err := f.Match(resolverFor(nil))
	if err != nil || !ok {
		t.Fatalf("nil filter Match() = %v, %v", ok, err)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		fields Fields
	}{
		{name: "unknown field", filter: `rarity = "rare"`, fields: testFields},
		{name: "syntax error", filter: `title = `, fields: testFields},
		{name: "unsupported field type", filter: `title = "x"`, fields: Fields{"title": "bool"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.filter, tt.fields); err == nil {
				t.Fatalf("Parse(%q) expected error", tt.filter)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	entry := resolverFor(map[string]any{
		"title":    "Armor & SP",
		"category": "Combat",
		"page":     int64(186),
	})
	tests := []struct {
		filter string
		want   bool
	}{
		{filter: `category = "Combat"`, want: true},
		{filter: `category != "Combat"`, want: false},
		{filter: `page >= 100`, want: true},
		{filter: `page < 100`, want: false},
		{filter: `category = "Combat" AND page > 200`, want: false},
		{filter: `category = "Skills" OR page = 186`, want: true},
		{filter: `title = "Armor*"`, want: true},
		{filter: `title = "*SP"`, want: true},
		{filter: `title = "Arm"`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			f, err := Parse(tt.filter, testFields)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.filter, err)
			}
			if f.String() != tt.filter {
				t.Fatalf("String() = %q", f.String())
			}
			got, err := f.Match(entry)
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Match(%q) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestMatchUnknownResolverField(t *testing.T) {
	f, err := Parse(`page = 1`, testFields)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := f.Match(resolverFor(map[string]any{})); err == nil {
		t.Fatal("expected unknown field error")
	}
}
