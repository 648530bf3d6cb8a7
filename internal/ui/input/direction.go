package input

// Direction defines which way focus moves through a form.
type Direction int

const (
	Previous Direction = iota
	Next
)

// Step moves current one position in the direction, wrapping within count positions.
func (d Direction) Step(current int, count int) int {
	if count <= 0 {
		return 0
	}

	switch d {
	case Previous:
		return (current - 1 + count) % count
	case Next:
		return (current + 1) % count
	default:
		return current
	}
}
