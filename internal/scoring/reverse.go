package scoring

// IsReverseScored reports whether the sum-up method inverts the answer of
// the given 1-based question. The set is fixed by the MHLW manual: section
// A items 1-7, 11-13 and 15, and section B items 1-3 (questions 18-20).
func IsReverseScored(questionNo int) bool {
	switch {
	case questionNo >= 1 && questionNo <= 7:
		return true
	case questionNo >= 11 && questionNo <= 13:
		return true
	case questionNo == 15:
		return true
	case questionNo >= 18 && questionNo <= 20:
		return true
	}
	return false
}

// Adjust maps a raw answer to its sum-up contribution: 5-raw for
// reverse-scored questions (1⇒4, 2⇒3, 3⇒2, 4⇒1), the raw value otherwise.
func Adjust(questionNo, raw int) int {
	if IsReverseScored(questionNo) {
		return 5 - raw
	}
	return raw
}
