package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrOutOfBounds   = errors.New("position is outside the board")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidLetter = errors.New("invalid letter")
	ErrBoardNotFound = errors.New("board not found")

	// Hand errors
	ErrLetterNotInHand = errors.New("letter is not in hand")
	ErrHandFull        = errors.New("hand is full")

	// Move errors
	ErrEmptyPlacement    = errors.New("placement has no tiles")
	ErrDuplicatePosition = errors.New("placement uses the same position twice")
	ErrNotInLine         = errors.New("tiles must form a single unbroken row or column")
	ErrMustCoverCenter   = errors.New("first move must cover the center cell")
	ErrDisconnected      = errors.New("tiles must connect to the existing tiles")
	ErrNoWordFormed      = errors.New("move does not form a word")
	ErrInvalidWord       = errors.New("invalid word")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameFinished = errors.New("game is finished")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrWordListUnreadable  = errors.New("word list unreadable")
)

// InvalidWordError reports a formed word that is not in the dictionary
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return ErrInvalidWord.Error() + ": " + e.Word
}

// Is lets errors.Is match ErrInvalidWord
func (e *InvalidWordError) Is(target error) bool {
	return target == ErrInvalidWord
}
