package tui

type View int

const (
	ViewMenu View = iota
	ViewStructure
	ViewTheory
)

// field identifies one of the form inputs on a structure page.
type field int

const (
	fieldNone field = iota
	fieldValue
	fieldIndex
	fieldSearch
	fieldLimit
	fieldCount
)

func (f field) label() string {
	switch f {
	case fieldValue:
		return "Value"
	case fieldIndex:
		return "Index"
	case fieldSearch:
		return "Search"
	case fieldLimit:
		return "Limit"
	default:
		return ""
	}
}
