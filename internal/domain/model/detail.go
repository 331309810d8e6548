package model

// DetailField is one labeled value in the detail view's specification list.
type DetailField struct {
	Label string
	Value string
}

// Contact holds the supplier contact block shown on the detail page.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// OrderDetail is the read-only projection of a single order with the
// denormalized display data the detail page needs.
type OrderDetail struct {
	Order   Order
	Gallery []string
	Specs   []DetailField
	Contact Contact
}

// NextImageIndex advances the carousel with wraparound. A single-image
// gallery degenerates to a no-op.
func NextImageIndex(index, length int) int {
	if length <= 0 {
		return 0
	}
	return (index + 1) % length
}

// PrevImageIndex steps the carousel backwards with wraparound.
func PrevImageIndex(index, length int) int {
	if length <= 0 {
		return 0
	}
	if index == 0 {
		return length - 1
	}
	return index - 1
}
