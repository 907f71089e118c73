package domain

// Summary is the aggregate view over the session store.
type Summary struct {
	TotalCount     int
	CountA         int
	CountB         int
	MostRecentDate string
}

func (s Summary) CountByType(t WorkoutType) int {
	switch t {
	case WorkoutA:
		return s.CountA
	case WorkoutB:
		return s.CountB
	}
	return 0
}

// Summarize computes the summary of a newest-first session list. The second
// return is false when sessions is empty, in which case there is no summary.
func Summarize(sessions []StoredSession) (Summary, bool) {
	if len(sessions) == 0 {
		return Summary{}, false
	}
	sum := Summary{
		TotalCount:     len(sessions),
		MostRecentDate: sessions[0].Date,
	}
	for _, s := range sessions {
		switch s.WorkoutType {
		case WorkoutA:
			sum.CountA++
		case WorkoutB:
			sum.CountB++
		}
	}
	return sum, true
}
