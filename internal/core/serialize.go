package core

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
)

// ExternalSlot is the 1-indexed wire representation of a Slot.
type ExternalSlot struct {
	Day  int `json:"day"`
	Slot int `json:"slot"`
}

// ExternalExamSlot is the 1-indexed wire representation of one assignment.
type ExternalExamSlot struct {
	Day     int    `json:"day"`
	Slot    int    `json:"slot"`
	Subject string `json:"subject"`
}

// ExternalTimetable is the 1-indexed "timetable" member of a generate
// response.
type ExternalTimetable struct {
	Days        int                `json:"days"`
	SlotsPerDay int                `json:"slots_per_day"`
	Assignments []ExternalExamSlot `json:"assignments"`
}

// ExternalAllocation is the 1-indexed wire representation of one
// SubjectCount within a hall assignment.
type ExternalAllocation struct {
	Subject  string `json:"subject"`
	Students int    `json:"students"`
}

// ExternalHallAssignment is the 1-indexed wire representation of one
// HallAssignment.
type ExternalHallAssignment struct {
	Hall        string               `json:"hall"`
	Day         int                  `json:"day"`
	Slot        int                  `json:"slot"`
	Allocations []ExternalAllocation `json:"allocations"`
}

// ExternalResult is the full generate-endpoint response body.
type ExternalResult struct {
	Timetable       ExternalTimetable        `json:"timetable"`
	HallAllocations []ExternalHallAssignment `json:"hall_allocations"`
}

// ToExternal converts a HallAllocationResult to its 1-indexed wire shape.
// Assignment order follows the internal (already day/slot-sorted) order;
// hall assignments follow allocation order as produced by the allocator.
func ToExternal(result HallAllocationResult) ExternalResult {
	assignments := make([]ExternalExamSlot, 0, len(result.Timetable.Assignments))
	for _, a := range result.Timetable.Assignments {
		assignments = append(assignments, ExternalExamSlot{
			Day:     a.Day + 1,
			Slot:    a.Slot + 1,
			Subject: a.Subject,
		})
	}

	hallAssignments := make([]ExternalHallAssignment, 0, len(result.Assignments))
	for _, ha := range result.Assignments {
		allocations := make([]ExternalAllocation, 0, len(ha.Allocations))
		for _, sc := range ha.Allocations {
			allocations = append(allocations, ExternalAllocation{Subject: sc.Subject, Students: sc.Count})
		}
		hallAssignments = append(hallAssignments, ExternalHallAssignment{
			Hall:        ha.HallName,
			Day:         ha.Day + 1,
			Slot:        ha.Slot + 1,
			Allocations: allocations,
		})
	}

	return ExternalResult{
		Timetable: ExternalTimetable{
			Days:        result.Timetable.Config.Days,
			SlotsPerDay: result.Timetable.Config.SlotsPerDay,
			Assignments: assignments,
		},
		HallAllocations: hallAssignments,
	}
}

// RenderCSV writes the two-section plaintext export: a TIMETABLE section
// listing every assignment, a blank row, then a HALL ALLOCATIONS section
// listing every (hall, day, slot, subject, students) row. Grounded on the
// reference Python csv_export (backend/app/core/utils.py).
func RenderCSV(result HallAllocationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"=== TIMETABLE ==="}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"Day", "Slot", "Subject"}); err != nil {
		return nil, err
	}

	assignments := make([]ExamSlot, len(result.Timetable.Assignments))
	copy(assignments, result.Timetable.Assignments)
	sort.SliceStable(assignments, func(i, j int) bool {
		if assignments[i].Day != assignments[j].Day {
			return assignments[i].Day < assignments[j].Day
		}
		return assignments[i].Slot < assignments[j].Slot
	})
	for _, a := range assignments {
		row := []string{
			fmt.Sprintf("Day %d", a.Day+1),
			fmt.Sprintf("Slot %d", a.Slot+1),
			a.Subject,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{""}); err != nil {
		return nil, err
	}

	if err := w.Write([]string{"=== HALL ALLOCATIONS ==="}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"Hall", "Day", "Slot", "Subject", "Students"}); err != nil {
		return nil, err
	}

	hallAssignments := make([]HallAssignment, len(result.Assignments))
	copy(hallAssignments, result.Assignments)
	sort.SliceStable(hallAssignments, func(i, j int) bool {
		if hallAssignments[i].Day != hallAssignments[j].Day {
			return hallAssignments[i].Day < hallAssignments[j].Day
		}
		if hallAssignments[i].Slot != hallAssignments[j].Slot {
			return hallAssignments[i].Slot < hallAssignments[j].Slot
		}
		return hallAssignments[i].HallName < hallAssignments[j].HallName
	})
	for _, ha := range hallAssignments {
		for _, sc := range ha.Allocations {
			row := []string{
				ha.HallName,
				fmt.Sprintf("Day %d", ha.Day+1),
				fmt.Sprintf("Slot %d", ha.Slot+1),
				sc.Subject,
				fmt.Sprintf("%d", sc.Count),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
