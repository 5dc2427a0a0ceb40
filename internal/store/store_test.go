package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/sma-adp-api/internal/core"
)

func TestNewConfigStore_Defaults(t *testing.T) {
	s := NewConfigStore()
	snap := s.Get()

	assert.Equal(t, DefaultDays, snap.Days)
	assert.Equal(t, DefaultSlotsPerDay, snap.SlotsPerDay)
	assert.Equal(t, DefaultPerSubjectLimit, snap.PerSubjectLimit)
}

func TestConfigStore_SetAndGetRoundTrips(t *testing.T) {
	s := NewConfigStore()
	s.Set(Snapshot{Days: 3, SlotsPerDay: 4, Subjects: []string{"M"}, PerSubjectLimit: 10})

	snap := s.Get()

	assert.Equal(t, 3, snap.Days)
	assert.Equal(t, 4, snap.SlotsPerDay)
	assert.Equal(t, []string{"M"}, snap.Subjects)
}

func TestConfigStore_AddGroupRejectsDuplicateName(t *testing.T) {
	s := NewConfigStore()
	ok1 := s.AddGroup(core.StudentGroup{Name: "g1", Subjects: []string{"M"}, Size: 10})
	ok2 := s.AddGroup(core.StudentGroup{Name: "g1", Subjects: []string{"E"}, Size: 5})

	assert.True(t, ok1)
	assert.False(t, ok2)
	assert.Equal(t, []string{"M"}, s.Subjects())
}

func TestConfigStore_DeleteGroupReportsAbsence(t *testing.T) {
	s := NewConfigStore()
	s.AddGroup(core.StudentGroup{Name: "g1", Subjects: []string{"M"}, Size: 10})

	assert.True(t, s.DeleteGroup("g1"))
	assert.False(t, s.DeleteGroup("g1"))
}

func TestConfigStore_LastResultLastWriterWins(t *testing.T) {
	s := NewConfigStore()
	_, ok := s.LastResult()
	assert.False(t, ok)

	s.SaveResult(core.HallAllocationResult{Timetable: core.TimetableResult{Config: core.TimetableConfig{Days: 1}}})
	s.SaveResult(core.HallAllocationResult{Timetable: core.TimetableResult{Config: core.TimetableConfig{Days: 2}}})

	result, ok := s.LastResult()
	assert.True(t, ok)
	assert.Equal(t, 2, result.Timetable.Config.Days)
}

func TestConfigStore_ConcurrentWritersDoNotRace(t *testing.T) {
	s := NewConfigStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.SaveResult(core.HallAllocationResult{Timetable: core.TimetableResult{Config: core.TimetableConfig{Days: n}}})
		}(i)
	}
	wg.Wait()

	_, ok := s.LastResult()
	assert.True(t, ok)
}
