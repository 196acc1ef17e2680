package entity

// Flavor is a tag shared between coffees. Names are unique.
type Flavor struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// IsStaged reports whether the flavor has not been persisted yet.
func (f *Flavor) IsStaged() bool {
	return f.ID == 0
}
