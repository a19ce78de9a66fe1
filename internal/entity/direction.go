package entity

// Direction is the push direction token of a move.
type Direction string

const (
	Left     Direction = "L"
	Right    Direction = "R"
	Forward  Direction = "F"
	Backward Direction = "B"
)

func (that Direction) Valid() bool {
	switch that {
	case Left, Right, Forward, Backward:
		return true
	default:
		return false
	}
}

// Step - returns the row and column delta of one step. Forward moves toward
// row 0, backward toward row 6. Invalid directions yield a zero step.
func (that Direction) Step() (int, int) {
	switch that {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Forward:
		return -1, 0
	case Backward:
		return 1, 0
	default:
		return 0, 0
	}
}
