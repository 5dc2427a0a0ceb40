package core

import (
	"sort"

	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

// newInvalidConfig builds an InvalidConfig error (§4.B structural
// precondition violation).
func newInvalidConfig(message string, reasons []string) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrInvalidConfig, message).WithDiagnostics(map[string]any{
		"reasons": reasons,
	})
}

// newInsufficientSlots builds the InsufficientSlots specialization.
func newInsufficientSlots(subjectsCount, totalSlots int) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrInsufficientSlots, "").WithDiagnostics(map[string]any{
		"subjects_count": subjectsCount,
		"total_slots":    totalSlots,
		"deficit":        subjectsCount - totalSlots,
	})
}

// newNoSolution builds a NoSolution error with search diagnostics.
func newNoSolution(subjects int, backtrackAttempts int, conflicts ConflictGraph) *appErrors.Error {
	serialized := make(map[string]any, len(conflicts))
	for subject, neighbors := range conflicts {
		list := make([]string, 0, len(neighbors))
		for n := range neighbors {
			list = append(list, n)
		}
		sort.Strings(list)
		serialized[subject] = list
	}
	return appErrors.Clone(appErrors.ErrNoSolution, "no valid timetable found after exhaustive search").WithDiagnostics(map[string]any{
		"subjects":           subjects,
		"backtrack_attempts": backtrackAttempts,
		"conflicts":          serialized,
	})
}

// newInsufficientHallCapacity builds an InsufficientHallCapacity error for a
// single (day, slot) that could not be packed.
func newInsufficientHallCapacity(day, slot, totalRemaining, totalCapacity int, remaining map[string]int) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrInsufficientHalls, "").WithDiagnostics(map[string]any{
		"day":                day + 1,
		"slot":               slot + 1,
		"remaining_students": totalRemaining,
		"total_capacity":     totalCapacity,
		"subjects":           remaining,
	})
}
