package core

import (
	"sort"

	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

// HallAllocator packs the students of each scheduled (day, slot) exam into a
// fixed fleet of halls, subject to per-hall capacity and a per-subject cap
// meant to encourage subject mixing. Grounded on the reference Python
// HallAllocator (backend/app/core/scheduler.py).
type HallAllocator struct {
	timetable  TimetableResult
	hallConfig HallConfig
}

// NewHallAllocator builds an allocator for a solved timetable.
func NewHallAllocator(timetable TimetableResult, hallConfig HallConfig) *HallAllocator {
	return &HallAllocator{timetable: timetable, hallConfig: hallConfig}
}

// Allocate packs every occupied slot independently; halls are not reserved
// across slots, the same fleet is reused slot to slot.
func (a *HallAllocator) Allocate() (HallAllocationResult, *appErrors.Error) {
	var assignments []HallAssignment
	for day := 0; day < a.timetable.Config.Days; day++ {
		for slot := 0; slot < a.timetable.Config.SlotsPerDay; slot++ {
			slotAssignments, err := a.allocateSlot(day, slot)
			if err != nil {
				return HallAllocationResult{}, err
			}
			assignments = append(assignments, slotAssignments...)
		}
	}
	return HallAllocationResult{
		Timetable:   a.timetable,
		HallConfig:  a.hallConfig,
		Assignments: assignments,
	}, nil
}

func (a *HallAllocator) allocateSlot(day, slot int) ([]HallAssignment, *appErrors.Error) {
	var subjectsInSlot []string
	seen := make(map[string]struct{})
	for _, assignment := range a.timetable.Assignments {
		if assignment.Day == day && assignment.Slot == slot {
			if _, dup := seen[assignment.Subject]; dup {
				continue
			}
			seen[assignment.Subject] = struct{}{}
			subjectsInSlot = append(subjectsInSlot, assignment.Subject)
		}
	}
	if len(subjectsInSlot) == 0 {
		return nil, nil
	}

	demand := computeDemand(a.timetable.Config.Groups, subjectsInSlot)
	if allZero(demand) {
		return nil, nil
	}

	return a.greedyAllocate(demand, subjectsInSlot, day, slot)
}

// computeDemand sums group.Size over every group enrolled in each subject
// scheduled in the slot.
func computeDemand(groups []StudentGroup, subjectsInSlot []string) map[string]int {
	demand := make(map[string]int, len(subjectsInSlot))
	for _, subject := range subjectsInSlot {
		demand[subject] = 0
	}
	for _, group := range groups {
		for _, subject := range group.Subjects {
			if _, inSlot := demand[subject]; inSlot {
				demand[subject] += group.Size
			}
		}
	}
	return demand
}

func allZero(demand map[string]int) bool {
	for _, count := range demand {
		if count > 0 {
			return false
		}
	}
	return true
}

// greedyAllocate fills halls largest-capacity-first; within a hall, subjects
// are offered largest-remaining-demand-first, ties broken by order (the
// order subjects first appear in the slot), never by map iteration.
func (a *HallAllocator) greedyAllocate(demand map[string]int, order []string, day, slot int) ([]HallAssignment, *appErrors.Error) {
	remaining := make(map[string]int, len(demand))
	for subject, count := range demand {
		remaining[subject] = count
	}

	halls := make([]Hall, len(a.hallConfig.Halls))
	copy(halls, a.hallConfig.Halls)
	sort.SliceStable(halls, func(i, j int) bool {
		return halls[i].Capacity > halls[j].Capacity
	})

	var assignments []HallAssignment
	hallIndex := 0

	for anyPositive(remaining) {
		if hallIndex >= len(halls) {
			totalRemaining := sumValues(remaining)
			return nil, newInsufficientHallCapacity(day, slot, totalRemaining, a.hallConfig.TotalCapacity(), copyMap(remaining))
		}

		hall := halls[hallIndex]
		hallIndex++

		var allocations []SubjectCount
		capacityUsed := 0

		pending := pendingSubjects(remaining, order)
		sort.SliceStable(pending, func(i, j int) bool {
			return remaining[pending[i]] > remaining[pending[j]]
		})

		for _, subject := range pending {
			if capacityUsed >= hall.Capacity {
				break
			}
			availableInHall := hall.Capacity - capacityUsed
			limit := a.hallConfig.PerSubjectLimit

			// Single-subject exception: the per-subject cap is an
			// anti-segregation policy, not a hard ceiling — it is lifted
			// when no other subject remains to mix with.
			if len(pendingSubjects(remaining, order)) == 1 {
				limit = remaining[subject]
				if availableInHall < limit {
					limit = availableInHall
				}
			}

			allocateAmount := min3(remaining[subject], limit, availableInHall)
			if allocateAmount <= 0 {
				continue
			}
			allocations = append(allocations, SubjectCount{Subject: subject, Count: allocateAmount})
			remaining[subject] -= allocateAmount
			capacityUsed += allocateAmount
		}

		if len(allocations) > 0 {
			assignments = append(assignments, HallAssignment{
				HallName:    hall.Name,
				Day:         day,
				Slot:        slot,
				Allocations: allocations,
			})
		}
	}

	return assignments, nil
}

func anyPositive(m map[string]int) bool {
	for _, v := range m {
		if v > 0 {
			return true
		}
	}
	return false
}

// pendingSubjects filters order (a caller-supplied, deterministic subject
// ordering) down to subjects with positive remaining demand, preserving
// order so equal-demand ties resolve the same way every run.
func pendingSubjects(remaining map[string]int, order []string) []string {
	pending := make([]string, 0, len(order))
	for _, subject := range order {
		if remaining[subject] > 0 {
			pending = append(pending, subject)
		}
	}
	return pending
}

func sumValues(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func copyMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
