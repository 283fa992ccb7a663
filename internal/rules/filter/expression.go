package filter

import (
	"github.com/louisbranch/gmscreen/internal/rules/catalog"
	"github.com/louisbranch/gmscreen/internal/rules/filter/aip"
)

// ExpressionFields are the entry fields a structured expression may use.
var ExpressionFields = aip.Fields{
	"id":          aip.FieldString,
	"title":       aip.FieldString,
	"category":    aip.FieldString,
	"subcategory": aip.FieldString,
	"page":        aip.FieldInt,
}

// Expression is a parsed AIP-160 filter over entry fields.
type Expression struct {
	filter *aip.Filter
}

// ParseExpression parses text. Blank text yields a nil Expression.
func ParseExpression(text string) (*Expression, error) {
	f, err := aip.Parse(text, ExpressionFields)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return &Expression{filter: f}, nil
}

// String returns the source text.
func (e *Expression) String() string {
	if e == nil {
		return ""
	}
	return e.filter.String()
}

// Match evaluates e against entry.
func (e *Expression) Match(entry catalog.Entry) (bool, error) {
	if e == nil {
		return true, nil
	}
	return e.filter.Match(func(name string) (any, bool) {
		switch name {
		case "id":
			return entry.ID, true
		case "title":
			return entry.Title, true
		case "category":
			return string(entry.Category), true
		case "subcategory":
			return entry.Subcategory, true
		case "page":
			return int64(entry.Page), true
		default:
			return nil, false
		}
	})
}
