package game

// NumGhosts is the number of ghosts haunting a level. The planner, the
// engine and the belief state all assume exactly this many.
const NumGhosts = 2

// Move is one of the discrete actions the agent can announce each tick.
type Move string

const (
	Up    Move = "UP"
	Down  Move = "DOWN"
	Left  Move = "LEFT"
	Right Move = "RIGHT"
	// Stop is the fallback when no direction is playable this tick.
	Stop Move = "STOP"
	// Terminal signals that no pellets remain and the level is complete.
	Terminal Move = "TERMINAL"
)

// Directions lists the four playable moves in their canonical scan order.
// Enumeration order is part of the contract: tie-breaks in move selection
// resolve to whichever candidate is scanned first.
var Directions = [4]Move{Up, Down, Left, Right}

// Content identifies what occupies a single board cell.
type Content uint8

const (
	Empty       Content = iota // walkable, nothing to eat
	Wall                       // impassable
	Pellet                     // regular pellet
	PowerPellet                // frightens the ghosts when eaten
	Pacman                     // the agent itself occupies this cell
)

// Plan groups interchangeable move labels: every move in the plan leads to
// an equivalent outcome, so any one of them may be played. A tick's plans
// are enumerated in a deterministic order.
type Plan struct {
	Moves []Move
}

// State is the belief view the planner consumes each tick: the agent's own
// cell, the maze contents, and what is known about the two ghosts. The
// planner only ever reads it; all mutation happens on the game side between
// ticks.
type State interface {
	// PacmanPosition returns the agent's current cell.
	PacmanPosition() Position

	// Contents reports what occupies cell (x, y). Out-of-range coordinates
	// report Wall, so callers may probe past the board edge freely.
	Contents(x, y int) Content

	// GhostSightings returns the cells the given ghost may currently occupy,
	// ordered and without duplicates. The slice is read-only to callers.
	GhostSightings(ghost int) []Position

	// FearCounter returns the remaining frightened ticks for the given ghost.
	FearCounter(ghost int) int

	// PelletCount returns how many pellets (of either kind) remain uneaten.
	PelletCount() int

	// Plans enumerates the action alternatives available this tick.
	Plans() []Plan
}
