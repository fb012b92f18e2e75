package menu

// Flatten turns the children of root into sections. Only two levels are
// read: root's children become sections and their children become submenu
// entries. Sections without children keep the record previews from their
// extras.
func Flatten(root *Node) []Section {
	if root == nil {
		return []Section{}
	}

	sections := make([]Section, 0, len(root.Children()))

	for _, child := range root.Children() {
		var submenu Submenu

		if child.HasChildren() {
			submenu.Items = make([]SubmenuItem, 0, len(child.Children()))
			for _, sub := range child.Children() {
				submenu.Items = append(submenu.Items, SubmenuItem{
					Name:     sub.DisplayName(),
					Icon:     optional(sub.Extras.Icon),
					EditLink: sub.URI,
					Active:   sub.Extras.Active,
				})
			}
		} else {
			submenu.Records = child.Extras.Submenu
		}

		x := child.Extras
		sections = append(sections, Section{
			Name:         child.DisplayName(),
			SingularName: optional(x.SingularName),
			Slug:         optional(x.Slug),
			SingularSlug: optional(x.SingularSlug),
			Icon:         optional(x.Icon),
			Link:         child.URI,
			LinkNew:      x.LinkNew,
			ContentType:  optional(x.ContentType),
			Singleton:    x.Singleton,
			Type:         optional(x.Type),
			Active:       x.Active,
			Submenu:      submenu,
		})
	}

	return sections
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
