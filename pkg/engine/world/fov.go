package world

// HideAll clears the visible flag on every tile. Discovery is kept.
func (g *Grid) HideAll() {
	for i := range g.tiles {
		g.tiles[i].Hide()
	}
}

// DiscoverAll marks every tile discovered without making it visible.
func (g *Grid) DiscoverAll() {
	for i := range g.tiles {
		g.tiles[i].Discovered = true
	}
}

// RevealRect marks every in-bounds tile of the inclusive rectangle
// (ax,ay)-(bx,by) visible and discovered.
func (g *Grid) RevealRect(ax, ay, bx, by int) {
	for y := ay; y <= by; y++ {
		for x := ax; x <= bx; x++ {
			if t := g.GetTile(x, y); t != nil {
				t.See()
			}
		}
	}
}

// RevealAround marks every in-bounds tile within Chebyshev distance radius
// of (cx, cy) visible and discovered. Radius 1 is the 3x3 square.
func (g *Grid) RevealAround(cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if chebyshevDist(dx, dy) > radius {
				continue
			}
			if t := g.GetTile(cx+dx, cy+dy); t != nil {
				t.See()
			}
		}
	}
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dx, dy).
func chebyshevDist(dx, dy int) int {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}
	if absDx > absDy {
		return absDx
	}
	return absDy
}
