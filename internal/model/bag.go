package model

// standardDistribution is the English tile set, 100 tiles including two blanks
var standardDistribution = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2, 'I': 9,
	'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2, 'Q': 1, 'R': 6,
	'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1,
	BlankTile: 2,
}

// Bag holds the tiles not yet drawn into the hand
type Bag []rune

// StandardBag returns a full English bag in alphabetical order, blanks last
func StandardBag() Bag {
	bag := make(Bag, 0, 100)
	for letter := 'A'; letter <= 'Z'; letter++ {
		for range standardDistribution[letter] {
			bag = append(bag, letter)
		}
	}
	for range standardDistribution[BlankTile] {
		bag = append(bag, BlankTile)
	}
	return bag
}

// Len returns the number of tiles left
func (b Bag) Len() int {
	return len(b)
}

// Take removes the tile at index i and returns it with the remaining bag.
// The receiver is unchanged.
func (b Bag) Take(i int) (rune, Bag) {
	rest := make(Bag, 0, len(b)-1)
	rest = append(rest, b[:i]...)
	rest = append(rest, b[i+1:]...)
	return b[i], rest
}
