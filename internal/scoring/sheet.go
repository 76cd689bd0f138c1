// Package scoring implements the answer-scoring engine of the Brief Job
// Stress Questionnaire (57 items): the fixed-capacity answer sheet, the
// reverse-scoring adjustment, the sum-up and conversion-table aggregation
// methods, and the high-stress classification rules from the MHLW
// stress-check program manual.
package scoring

// QuestionCount is the number of items in the questionnaire.
const QuestionCount = 57

// AnswerSheet collects the 57 answers of one respondent. Each slot holds
// 0 while unanswered, or an answer in 1..4. A sheet serves exactly one
// scoring session; it provides no internal locking.
type AnswerSheet struct {
	values [QuestionCount]int
	// offset is the next Push position. Insert does not move it; fullness
	// is always decided by scanning for unanswered slots, never by offset.
	offset int
}

// NewAnswerSheet returns an empty sheet.
func NewAnswerSheet() *AnswerSheet {
	return &AnswerSheet{}
}

// Push appends answer at the next sequential position.
func (s *AnswerSheet) Push(answer int) error {
	if answer < 1 || answer > 4 {
		return ErrIllegalAnswer
	}
	if s.offset >= QuestionCount {
		return ErrIllegalQuestion
	}
	s.values[s.offset] = answer
	s.offset++
	return nil
}

// Insert writes answer for the given 1-based question number, overwriting
// any previous answer at that position.
func (s *AnswerSheet) Insert(questionNo, answer int) error {
	if questionNo < 1 || questionNo > QuestionCount {
		return ErrIllegalQuestion
	}
	if answer < 1 || answer > 4 {
		return ErrIllegalAnswer
	}
	s.values[questionNo-1] = answer
	return nil
}

// Answered reports how many of the 57 slots hold an answer.
func (s *AnswerSheet) Answered() int {
	n := 0
	for _, v := range s.values {
		if v != 0 {
			n++
		}
	}
	return n
}

// Complete reports whether every slot holds an answer.
func (s *AnswerSheet) Complete() bool {
	for _, v := range s.values {
		if v == 0 {
			return false
		}
	}
	return true
}

// Answers returns a copy of the raw answers in question order; unanswered
// slots are 0.
func (s *AnswerSheet) Answers() [QuestionCount]int {
	return s.values
}
