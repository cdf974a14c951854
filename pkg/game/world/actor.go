package world

// ActorKind distinguishes the player, hostiles, and the dead.
type ActorKind int

// Actor kinds
const (
	ActorPlayer ActorKind = iota
	ActorCorpse
	ActorOrk
)

// PlayerIndex is the player's slot in the actor table.
const PlayerIndex = 0

// EnergyThreshold is the energy an actor spends per action.
const EnergyThreshold = 100

// Actor is a creature on the board. Actors are never removed from the
// table; dying turns them into corpses so indices stay stable.
type Actor struct {
	X, Y   int
	DX, DY int

	Kind   ActorKind
	Turn   int
	Energy int

	Level     int
	Health    int
	MaxHealth int
	Strength  int
	Defense   int
	Accuracy  int
	Evasion   int
	Speed     int
}

// Alive returns true unless the actor is a corpse
func (a *Actor) Alive() bool {
	return a.Kind != ActorCorpse
}

// IsPlayer returns true for the player
func (a *Actor) IsPlayer() bool {
	return a.Kind == ActorPlayer
}

// HasMove returns true if a movement delta is pending
func (a *Actor) HasMove() bool {
	return a.DX != 0 || a.DY != 0
}

// TakeMove returns the pending delta and clears it
func (a *Actor) TakeMove() (dx, dy int) {
	dx, dy = a.DX, a.DY
	a.DX, a.DY = 0, 0
	return dx, dy
}

// TakeDamage subtracts n from health. At zero the actor becomes a corpse.
// Returns true if this hit killed it.
func (a *Actor) TakeDamage(n int) bool {
	a.Health -= n
	if a.Health > 0 {
		return false
	}
	a.Health = 0
	a.Kind = ActorCorpse
	return true
}

// Ready returns true once the actor has banked enough energy to act
func (a *Actor) Ready() bool {
	return a.Energy >= EnergyThreshold
}

// SpendTurn pays for one action and advances the turn counter
func (a *Actor) SpendTurn() {
	a.Energy -= EnergyThreshold
	a.Turn++
}
