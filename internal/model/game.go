package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateActive   GameState = "active"   // Accepting moves
	GameStateFinished GameState = "finished" // No further moves
)

// Game is the session state around a shared board. The board itself is
// stored separately under the same ID.
type Game struct {
	ID     GameID
	State  GameState
	Layout string

	Hand  Hand
	Bag   Bag
	Score int
	Turn  int // Number of committed moves

	Moves []MoveRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFinished returns true once the game no longer accepts moves
func (g *Game) IsFinished() bool {
	return g.State == GameStateFinished
}

// MoveRecord is a committed move kept in the game history
type MoveRecord struct {
	Turn      int
	Placement Placement
	Words     []WordScore
	Bonus     int
	Score     int // Words plus bonus
	PlayedAt  time.Time
}
