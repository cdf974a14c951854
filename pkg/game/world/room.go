// Package world holds the level aggregate: the tile grid from engine/world
// plus the rooms, actors and room adjacency produced by the generator.
package world

// RoomKind is what a partition cell turned into.
type RoomKind int

// Room kinds
const (
	RoomNone RoomKind = iota
	RoomFull
	RoomTunnel
	RoomRemoved
)

// String returns the string representation of a room kind
func (k RoomKind) String() string {
	switch k {
	case RoomNone:
		return "none"
	case RoomFull:
		return "full"
	case RoomTunnel:
		return "tunnel"
	case RoomRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// NoRoom is the From value of a room nothing reached.
const NoRoom = -1

// Room is an axis-aligned partition cell. Corners are inclusive and
// neighbouring rooms share their border line.
type Room struct {
	AX, AY, BX, BY int

	Kind RoomKind

	// Cost is the sweep distance from the start room, 1-based; 0 means unreached.
	Cost int
	// From is the room that first reached this one, or NoRoom.
	From int

	Essential bool
	Connected bool
}

// Width returns the number of columns the room spans, borders included
func (r Room) Width() int {
	return r.BX - r.AX + 1
}

// Height returns the number of rows the room spans, borders included
func (r Room) Height() int {
	return r.BY - r.AY + 1
}

// Contains reports whether x/y lies inside the room, borders included
func (r Room) Contains(x, y int) bool {
	return x >= r.AX && x <= r.BX && y >= r.AY && y <= r.BY
}

// Center returns the room's midpoint, rounded down
func (r Room) Center() (x, y int) {
	return (r.AX + r.BX) / 2, (r.AY + r.BY) / 2
}
