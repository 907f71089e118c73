package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/kbtrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestIDSource_UsesClockMillis(t *testing.T) {
	src := newIDSource(func() time.Time { return time.UnixMilli(1704067200000) })
	assert.Equal(t, "1704067200000", src.next())
}

func TestIDSource_BumpsWhenClockStalls(t *testing.T) {
	src := newIDSource(func() time.Time { return time.UnixMilli(1000) })
	assert.Equal(t, "1000", src.next())
	assert.Equal(t, "1001", src.next())
	assert.Equal(t, "1002", src.next())
}

func TestIDSource_ClockGoingBackwards(t *testing.T) {
	now := time.UnixMilli(5000)
	src := newIDSource(func() time.Time { return now })
	assert.Equal(t, "5000", src.next())
	now = time.UnixMilli(10)
	assert.Equal(t, "5001", src.next())
}

func TestIDSource_ObserveRaisesFloor(t *testing.T) {
	src := newIDSource(func() time.Time { return time.UnixMilli(100) })
	src.observe([]domain.StoredSession{{ID: "250"}, {ID: "legacy-id"}, {ID: "90"}})
	assert.Equal(t, "251", src.next())
}
