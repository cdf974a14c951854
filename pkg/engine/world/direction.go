package world

// Direction is one of the four cardinal steps on the grid
type Direction int

// Directions in clockwise order starting from North. Patrols walk them in
// this order.
const (
	North Direction = iota
	East
	South
	West
)

var directionDeltas = [...][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var directionNames = [...]string{"North", "East", "South", "West"}

// AllDirections returns the directions in clockwise order
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.valid() {
		return "Unknown"
	}
	return directionNames[d]
}

// Delta returns the x and y offsets for one step. North is -y; unknown
// directions do not move.
func (d Direction) Delta() (dx, dy int) {
	if !d.valid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}
