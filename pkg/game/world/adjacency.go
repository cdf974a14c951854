package world

// Face is the side of room i that touches room j.
type Face uint8

// Faces
const (
	FaceNone Face = iota
	FaceNorth
	FaceEast
	FaceSouth
	FaceWest
)

// String returns the string representation of a face
func (f Face) String() string {
	switch f {
	case FaceNorth:
		return "north"
	case FaceEast:
		return "east"
	case FaceSouth:
		return "south"
	case FaceWest:
		return "west"
	default:
		return "none"
	}
}

// Adjacency is a dense table of faces for ordered room pairs. The entry for
// (i, j) says which side of i touches j; (j, i) is stored separately.
type Adjacency struct {
	n     int
	faces []Face
}

// NewAdjacency returns an empty table for n rooms.
func NewAdjacency(n int) *Adjacency {
	if n < 0 {
		n = 0
	}
	return &Adjacency{n: n, faces: make([]Face, n*n)}
}

// Len returns the number of rooms the table covers
func (a *Adjacency) Len() int {
	return a.n
}

// Get returns the face of room i that touches room j. Out-of-range pairs are FaceNone.
func (a *Adjacency) Get(i, j int) Face {
	if i < 0 || j < 0 || i >= a.n || j >= a.n {
		return FaceNone
	}
	return a.faces[j+i*a.n]
}

// Set records the face of room i that touches room j
func (a *Adjacency) Set(i, j int, f Face) {
	if i < 0 || j < 0 || i >= a.n || j >= a.n {
		return
	}
	a.faces[j+i*a.n] = f
}
