package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWorkoutType is returned when a string does not name a workout.
var ErrInvalidWorkoutType = errors.New("invalid workout type")

type WorkoutType string

const (
	WorkoutA WorkoutType = "A"
	WorkoutB WorkoutType = "B"
)

// WorkoutTypes lists both workouts in display order.
var WorkoutTypes = []WorkoutType{WorkoutA, WorkoutB}

// Opposite returns the workout that follows t in the A/B rotation.
func (t WorkoutType) Opposite() WorkoutType {
	if t == WorkoutA {
		return WorkoutB
	}
	return WorkoutA
}

func (t WorkoutType) Valid() bool {
	return t == WorkoutA || t == WorkoutB
}

// ParseWorkoutType accepts "A" or "B" in either case.
func ParseWorkoutType(s string) (WorkoutType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return WorkoutA, nil
	case "B":
		return WorkoutB, nil
	}
	return "", fmt.Errorf("%w %q (want A or B)", ErrInvalidWorkoutType, s)
}
