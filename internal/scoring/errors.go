package scoring

import "errors"

var (
	// ErrIllegalQuestion is returned when a question position is invalid:
	// the number is 0 or greater than 57, or the sheet is already full on append.
	ErrIllegalQuestion = errors.New("question number out of range")
	// ErrIllegalAnswer is returned when a raw answer is outside 1..4, or a
	// conversion sub-scale raw sum falls outside its lookup table.
	ErrIllegalAnswer = errors.New("answer out of range")
	// ErrNotFulfilled is returned when a score is requested while one or
	// more of the 57 answers is still missing.
	ErrNotFulfilled = errors.New("answer sheet not fully answered")
)
