package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

func TestHallAllocator_S1Trivial(t *testing.T) {
	timetable := TimetableResult{
		Config: TimetableConfig{
			Days: 1, SlotsPerDay: 2,
			Groups: []StudentGroup{{Name: "g1", Subjects: []string{"M", "E"}, Size: 10}},
		},
		Assignments: []ExamSlot{
			{Day: 0, Slot: 0, Subject: "M"},
			{Day: 0, Slot: 1, Subject: "E"},
		},
	}
	hallConfig := HallConfig{Halls: []Hall{{Name: "H1", Capacity: 20}}, PerSubjectLimit: 30}

	result, err := NewHallAllocator(timetable, hallConfig).Allocate()

	require.Nil(t, err)
	require.Len(t, result.Assignments, 2)
	for _, ha := range result.Assignments {
		require.Len(t, ha.Allocations, 1)
		assert.Equal(t, 10, ha.Allocations[0].Count)
	}
}

func TestHallAllocator_S4MixingTwoHalls(t *testing.T) {
	// Scheduler output never puts two subjects in one slot (slot injectivity
	// is enforced upstream); this scenario is constructed directly to
	// exercise the allocator's subject-mixing behavior in isolation.
	timetable := TimetableResult{
		Config: TimetableConfig{
			Days: 1, SlotsPerDay: 1,
			Groups: []StudentGroup{
				{Name: "g1", Subjects: []string{"M"}, Size: 40},
				{Name: "g2", Subjects: []string{"E"}, Size: 40},
			},
		},
		Assignments: []ExamSlot{
			{Day: 0, Slot: 0, Subject: "M"},
			{Day: 0, Slot: 0, Subject: "E"},
		},
	}
	hallConfig := HallConfig{
		Halls:           []Hall{{Name: "H1", Capacity: 50}, {Name: "H2", Capacity: 50}},
		PerSubjectLimit: 30,
	}

	result, err := NewHallAllocator(timetable, hallConfig).Allocate()

	require.Nil(t, err)
	totals := map[string]int{}
	for _, ha := range result.Assignments {
		assert.LessOrEqual(t, sumCounts(ha.Allocations), hallCapacity(hallConfig, ha.HallName))
		for _, sc := range ha.Allocations {
			totals[sc.Subject] += sc.Count
			assert.LessOrEqual(t, sc.Count, 30)
		}
	}
	assert.Equal(t, 40, totals["M"])
	assert.Equal(t, 40, totals["E"])
}

func TestHallAllocator_S4MixingFailsWithOneHall(t *testing.T) {
	timetable := TimetableResult{
		Config: TimetableConfig{
			Days: 1, SlotsPerDay: 1,
			Groups: []StudentGroup{
				{Name: "g1", Subjects: []string{"M"}, Size: 40},
				{Name: "g2", Subjects: []string{"E"}, Size: 40},
			},
		},
		Assignments: []ExamSlot{
			{Day: 0, Slot: 0, Subject: "M"},
			{Day: 0, Slot: 0, Subject: "E"},
		},
	}
	hallConfig := HallConfig{Halls: []Hall{{Name: "H1", Capacity: 100}}, PerSubjectLimit: 30}

	_, err := NewHallAllocator(timetable, hallConfig).Allocate()

	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrInsufficientHalls.Code, err.Code)
}

func TestHallAllocator_S5SingleSubjectExceptionLiftsCap(t *testing.T) {
	timetable := TimetableResult{
		Config: TimetableConfig{
			Days: 1, SlotsPerDay: 1,
			Groups: []StudentGroup{{Name: "g1", Subjects: []string{"M"}, Size: 50}},
		},
		Assignments: []ExamSlot{{Day: 0, Slot: 0, Subject: "M"}},
	}
	hallConfig := HallConfig{Halls: []Hall{{Name: "H1", Capacity: 60}}, PerSubjectLimit: 30}

	result, err := NewHallAllocator(timetable, hallConfig).Allocate()

	require.Nil(t, err)
	require.Len(t, result.Assignments, 1)
	require.Len(t, result.Assignments[0].Allocations, 1)
	assert.Equal(t, 50, result.Assignments[0].Allocations[0].Count)
}

func TestHallAllocator_S6HallShortage(t *testing.T) {
	timetable := TimetableResult{
		Config: TimetableConfig{
			Days: 1, SlotsPerDay: 1,
			Groups: []StudentGroup{{Name: "g1", Subjects: []string{"M"}, Size: 100}},
		},
		Assignments: []ExamSlot{{Day: 0, Slot: 0, Subject: "M"}},
	}
	hallConfig := HallConfig{Halls: []Hall{{Name: "H1", Capacity: 50}}, PerSubjectLimit: 100}

	_, err := NewHallAllocator(timetable, hallConfig).Allocate()

	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrInsufficientHalls.Code, err.Code)
	assert.Equal(t, 50, err.Diagnostics["remaining_students"])
}

func TestHallAllocator_DemandConservation(t *testing.T) {
	timetable := TimetableResult{
		Config: TimetableConfig{
			Days: 1, SlotsPerDay: 1,
			Groups: []StudentGroup{
				{Name: "g1", Subjects: []string{"M"}, Size: 25},
				{Name: "g2", Subjects: []string{"M"}, Size: 15},
			},
		},
		Assignments: []ExamSlot{{Day: 0, Slot: 0, Subject: "M"}},
	}
	hallConfig := HallConfig{
		Halls:           []Hall{{Name: "H1", Capacity: 20}, {Name: "H2", Capacity: 20}},
		PerSubjectLimit: 100,
	}

	result, err := NewHallAllocator(timetable, hallConfig).Allocate()

	require.Nil(t, err)
	total := 0
	for _, ha := range result.Assignments {
		for _, sc := range ha.Allocations {
			total += sc.Count
		}
	}
	assert.Equal(t, 40, total)
}

func sumCounts(allocations []SubjectCount) int {
	total := 0
	for _, a := range allocations {
		total += a.Count
	}
	return total
}

func hallCapacity(config HallConfig, name string) int {
	for _, h := range config.Halls {
		if h.Name == name {
			return h.Capacity
		}
	}
	return 0
}
