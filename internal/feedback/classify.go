package feedback

// Classify reports whether a prediction was accurate given the user's
// feedback:
//
//   - useful: the user agrees with whatever was predicted, always accurate
//   - not_interesting: the user wants a lower level; only a prediction of
//     low is self-consistent, since there is nothing below low
//   - more_important: the prediction was too low, never accurate
//   - less_important: the prediction was too high, never accurate
//   - any other value: not accurate
//
// This table is the single source of truth for accuracy. It is fixed: no
// calibration or learned weight may alter it.
func Classify(predicted Level, actual Interest) bool {
	switch actual {
	case InterestUseful:
		return true
	case InterestNotInteresting:
		return predicted == LevelLow
	case InterestMoreImportant:
		return false
	case InterestLessImportant:
		return false
	default:
		return false
	}
}
