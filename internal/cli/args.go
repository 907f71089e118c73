package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// Exercise and set numbers are 1-based on the command line.

func parsePosition(raw, what string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive number, got %q", what, raw)
	}
	return n - 1, nil
}

func exerciseArg(s domain.Session, raw string) (int, error) {
	ex, err := parsePosition(raw, "exercise")
	if err != nil {
		return 0, err
	}
	if s.ValidateIndex(ex) != nil {
		return 0, fmt.Errorf("%w: exercise %d (session has %d)", domain.ErrExerciseIndex, ex+1, len(s.Exercises))
	}
	return ex, nil
}

func setArgs(s domain.Session, rawEx, rawSet string) (int, int, error) {
	ex, err := exerciseArg(s, rawEx)
	if err != nil {
		return 0, 0, err
	}
	set, err := parsePosition(rawSet, "set")
	if err != nil {
		return 0, 0, err
	}
	if s.ValidateSetIndex(ex, set) != nil {
		return 0, 0, fmt.Errorf("%w: set %d (exercise %d has %d)", domain.ErrSetIndex, set+1, ex+1, len(s.Exercises[ex].Sets))
	}
	return ex, set, nil
}
