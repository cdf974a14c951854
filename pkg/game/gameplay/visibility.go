package gameplay

import "darkdelve/pkg/game/world"

// sightRadius is how far the player sees outside lit rooms.
const sightRadius = 1

// RefreshVisibility recomputes what the player can see. Every full room
// the player stands in, walls included, is lit; the surrounding 3x3 is
// always seen so corridors reveal as the player walks them.
func RefreshVisibility(w *world.World) {
	w.Grid.HideAll()

	p := w.Player()
	for _, room := range w.Rooms {
		if room.Kind == world.RoomFull && room.Contains(p.X, p.Y) {
			w.Grid.RevealRect(room.AX, room.AY, room.BX, room.BY)
		}
	}
	w.Grid.RevealAround(p.X, p.Y, sightRadius)
}

// RevealAll marks the whole level discovered
func RevealAll(w *world.World) {
	w.Grid.DiscoverAll()
}
