package cli

import (
	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/spf13/pflag"
)

// workoutTypeValue is a pflag.Value accepting A or B. The zero value means
// the flag was not given.
type workoutTypeValue struct {
	t domain.WorkoutType
}

var _ pflag.Value = (*workoutTypeValue)(nil)

func (v *workoutTypeValue) String() string { return string(v.t) }

func (v *workoutTypeValue) Set(s string) error {
	t, err := domain.ParseWorkoutType(s)
	if err != nil {
		return err
	}
	v.t = t
	return nil
}

func (v *workoutTypeValue) Type() string { return "A|B" }

// matches reports whether t passes the filter.
func (v *workoutTypeValue) matches(t domain.WorkoutType) bool {
	return v.t == "" || v.t == t
}
