package outline

// Selection is the optional type id the outline is focused on. The zero
// value has nothing selected.
type Selection struct {
	id  string
	set bool
}

// NewSelection returns a selection of id, or an empty selection when id is
// empty.
func NewSelection(id string) Selection {
	if id == "" {
		return Selection{}
	}
	return Selection{id: id, set: true}
}

// Current returns the selected id.
func (s Selection) Current() (string, bool) {
	return s.id, s.set
}

// Select focuses the outline on id.
func (s *Selection) Select(id string) {
	*s = NewSelection(id)
}

// Clear returns to the listing.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Follow selects the type of the named field of d. Fields whose type is not
// an object type leave the selection unchanged. It reports whether the
// selection changed.
func (s *Selection) Follow(d Detail, field string) bool {
	f, ok := d.Field(field)
	if !ok || !f.Selectable {
		return false
	}
	s.Select(f.Type)
	return true
}
