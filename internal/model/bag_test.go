package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BagSuite struct {
	suite.Suite
}

func TestBagSuite(t *testing.T) {
	suite.Run(t, new(BagSuite))
}

func (s *BagSuite) TestStandardBagHoldsOneHundredTiles() {
	bag := StandardBag()
	s.Equal(100, bag.Len())

	counts := map[rune]int{}
	for _, t := range bag {
		counts[t]++
	}
	s.Equal(12, counts['E'])
	s.Equal(1, counts['Z'])
	s.Equal(2, counts[BlankTile])
	s.Equal('A', bag[0])
	s.Equal(BlankTile, bag[99])
}

func (s *BagSuite) TestTakeRemovesOneTile() {
	bag := Bag("CAT")

	tile, rest := bag.Take(1)
	s.Equal('A', tile)
	s.Equal(Bag("CT"), rest)
	s.Equal(Bag("CAT"), bag)

	tile, rest = rest.Take(1)
	s.Equal('T', tile)
	s.Equal(Bag("C"), rest)
}
