package service

import (
	"strconv"
	"time"

	"github.com/alexanderramin/kbtrack/internal/domain"
)

// idSource issues commit ids: decimal Unix milliseconds, bumped by one when
// the clock has not moved past the last issued id.
type idSource struct {
	now  func() time.Time
	last int64
}

func newIDSource(now func() time.Time) *idSource {
	return &idSource{now: now}
}

// observe raises the floor so ids already in the store are never reissued.
// Non-numeric ids (hand-edited imports) are ignored.
func (s *idSource) observe(sessions []domain.StoredSession) {
	for _, sess := range sessions {
		if n, err := strconv.ParseInt(sess.ID, 10, 64); err == nil && n > s.last {
			s.last = n
		}
	}
}

func (s *idSource) next() string {
	n := s.now().UnixMilli()
	if n <= s.last {
		n = s.last + 1
	}
	s.last = n
	return strconv.FormatInt(n, 10)
}
