package domain

// PageMeta is the display metadata extracted from a fetched page.
// Both fields are always usable: extraction degrades to fallbacks
// instead of failing.
type PageMeta struct {
	Title   string
	Favicon string
}
