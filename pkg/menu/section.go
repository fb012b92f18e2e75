package menu

import "encoding/json"

// RecordSummary is a preview of one content record.
type RecordSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Link     string `json:"link"`
	EditLink string `json:"editLink"`
	Icon     string `json:"icon"`
}

// Section is one top-level entry of the flattened menu.
// Nil fields serialize as null.
type Section struct {
	Name         string  `json:"name"`
	SingularName *string `json:"singular_name"`
	Slug         *string `json:"slug"`
	SingularSlug *string `json:"singular_slug"`
	Icon         *string `json:"icon"`
	Link         Link    `json:"link"`
	LinkNew      Link    `json:"link_new"`
	ContentType  *string `json:"contenttype"`
	Singleton    *bool   `json:"singleton"`
	Type         *string `json:"type"`
	Active       *bool   `json:"active"`
	Submenu      Submenu `json:"submenu"`
}

// SubmenuItem is a submenu entry derived from a child node.
type SubmenuItem struct {
	Name     string  `json:"name"`
	Icon     *string `json:"icon"`
	EditLink Link    `json:"editLink"`
	Active   *bool   `json:"active"`
}

// Submenu holds either the entries derived from child nodes or the record
// previews of a content type section. When both are nil it is absent.
type Submenu struct {
	Items   []SubmenuItem
	Records []RecordSummary
}

// Len returns the number of entries.
func (s Submenu) Len() int {
	if s.Items != nil {
		return len(s.Items)
	}
	return len(s.Records)
}

// IsAbsent reports whether the section carries no submenu at all.
func (s Submenu) IsAbsent() bool {
	return s.Items == nil && s.Records == nil
}

func (s Submenu) MarshalJSON() ([]byte, error) {
	switch {
	case s.Items != nil:
		return json.Marshal(s.Items)
	case s.Records != nil:
		return json.Marshal(s.Records)
	default:
		return []byte("null"), nil
	}
}
