package model

// BlankTile is the hand symbol for a wildcard tile
const BlankTile = '?'

// DefaultHandCapacity is the number of tiles a hand holds when full
const DefaultHandCapacity = 7

// Hand is the multiset of tiles held by a player
type Hand struct {
	Capacity int
	Tiles    []rune
}

// NewHand creates a hand holding the given tiles
func NewHand(capacity int, tiles ...rune) (Hand, error) {
	h := Hand{Capacity: capacity}
	return h.Add(tiles...)
}

// Len returns the number of tiles held
func (h Hand) Len() int {
	return len(h.Tiles)
}

// Space returns how many more tiles the hand can take
func (h Hand) Space() int {
	return h.Capacity - len(h.Tiles)
}

// Counts returns the number of copies of each tile
func (h Hand) Counts() map[rune]int {
	counts := make(map[rune]int, len(h.Tiles))
	for _, t := range h.Tiles {
		counts[t]++
	}
	return counts
}

// Contains returns true if every tile is available, respecting multiplicity
func (h Hand) Contains(tiles ...rune) bool {
	counts := h.Counts()
	for _, t := range tiles {
		if counts[t] == 0 {
			return false
		}
		counts[t]--
	}
	return true
}

// Remove returns a new hand without the given tiles. The receiver is unchanged.
func (h Hand) Remove(tiles ...rune) (Hand, error) {
	remaining := make([]rune, len(h.Tiles))
	copy(remaining, h.Tiles)

	for _, t := range tiles {
		idx := -1
		for i, held := range remaining {
			if held == t {
				idx = i
				break
			}
		}
		if idx == -1 {
			return h, ErrLetterNotInHand
		}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return Hand{Capacity: h.Capacity, Tiles: remaining}, nil
}

// Add returns a new hand with the given tiles appended. The receiver is unchanged.
func (h Hand) Add(tiles ...rune) (Hand, error) {
	if len(tiles) > h.Space() {
		return h, ErrHandFull
	}
	combined := make([]rune, 0, len(h.Tiles)+len(tiles))
	combined = append(combined, h.Tiles...)
	combined = append(combined, tiles...)
	return Hand{Capacity: h.Capacity, Tiles: combined}, nil
}

// String returns the tiles as text
func (h Hand) String() string {
	return string(h.Tiles)
}
