package core

import (
	"math/rand"
	"sort"
	"time"

	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

// TimetableScheduler assigns each subject a distinct (day, slot) cell such
// that no student group ever has two of its subjects in the same cell. It
// implements backtracking search with a static most-constrained-first
// variable order and forward checking, grounded on the reference Python
// implementation's TimetableScheduler (backend/app/core/scheduler.py).
type TimetableScheduler struct {
	config    TimetableConfig
	conflicts ConflictGraph
	rng       *rand.Rand

	assignment     map[string]Slot
	domains        map[string][]Slot
	backtrackCount int
}

// NewTimetableScheduler builds a scheduler for config. If config.RandomSeed
// is set, the shuffle stream is deterministic; two runs of the same
// (config, seed) then produce byte-identical output.
func NewTimetableScheduler(config TimetableConfig) *TimetableScheduler {
	var source rand.Source
	if config.RandomSeed != nil {
		source = rand.NewSource(*config.RandomSeed)
	} else {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &TimetableScheduler{
		config:     config,
		conflicts:  BuildConflictGraph(config.Groups),
		rng:        rand.New(source),
		assignment: make(map[string]Slot),
		domains:    make(map[string][]Slot),
	}
}

// Generate runs the search to completion, returning a TimetableResult or an
// InsufficientSlots / NoSolution *appErrors.Error.
func (s *TimetableScheduler) Generate() (TimetableResult, *appErrors.Error) {
	if len(s.config.Subjects) > s.config.TotalSlots() {
		return TimetableResult{}, newInsufficientSlots(len(s.config.Subjects), s.config.TotalSlots())
	}

	allSlots := make([]Slot, 0, s.config.TotalSlots())
	for day := 0; day < s.config.Days; day++ {
		for slot := 0; slot < s.config.SlotsPerDay; slot++ {
			allSlots = append(allSlots, Slot{Day: day, Slot: slot})
		}
	}
	for _, subject := range s.config.Subjects {
		domain := make([]Slot, len(allSlots))
		copy(domain, allSlots)
		s.domains[subject] = domain
	}

	order := make([]string, len(s.config.Subjects))
	copy(order, s.config.Subjects)
	sort.SliceStable(order, func(i, j int) bool {
		return s.conflicts.Degree(order[i]) > s.conflicts.Degree(order[j])
	})

	if !s.backtrack(order, 0) {
		return TimetableResult{}, newNoSolution(len(s.config.Subjects), s.backtrackCount, s.conflicts)
	}

	assignments := make([]ExamSlot, 0, len(s.assignment))
	for subject, slot := range s.assignment {
		assignments = append(assignments, ExamSlot{Day: slot.Day, Slot: slot.Slot, Subject: subject})
	}
	sort.SliceStable(assignments, func(i, j int) bool {
		if assignments[i].Day != assignments[j].Day {
			return assignments[i].Day < assignments[j].Day
		}
		return assignments[i].Slot < assignments[j].Slot
	})
	return TimetableResult{Config: s.config, Assignments: assignments}, nil
}

// BacktrackCount reports how many recursive calls the most recent Generate
// made, for diagnostics.
func (s *TimetableScheduler) BacktrackCount() int {
	return s.backtrackCount
}

func (s *TimetableScheduler) backtrack(subjects []string, index int) bool {
	s.backtrackCount++

	if index >= len(subjects) {
		return true
	}
	subject := subjects[index]

	candidates := make([]Slot, len(s.domains[subject]))
	copy(candidates, s.domains[subject])
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, slot := range candidates {
		if !s.isConsistent(subject, slot) {
			continue
		}

		s.assignment[subject] = slot
		saved := s.saveDomains()

		if s.forwardCheck(subject, slot) && s.backtrack(subjects, index+1) {
			return true
		}

		delete(s.assignment, subject)
		s.domains = saved
	}

	return false
}

// isConsistent checks that slot is free and does not put two subjects of the
// same group in the same cell. Forward checking removes a chosen slot only
// from the domains of conflict-graph neighbours, so the slot-occupancy check
// is what keeps non-conflicting subjects out of an occupied cell. Both
// checks are kept for behavioral fidelity with the reference implementation
// (see spec's Open Questions).
func (s *TimetableScheduler) isConsistent(subject string, slot Slot) bool {
	for assignedSubject, assignedSlot := range s.assignment {
		if assignedSubject == subject {
			continue
		}
		if assignedSlot == slot {
			return false
		}
	}

	subjectsInSlot := map[string]struct{}{subject: {}}
	for assignedSubject, assignedSlot := range s.assignment {
		if assignedSlot == slot {
			subjectsInSlot[assignedSubject] = struct{}{}
		}
	}
	return !s.hasGroupConflict(subjectsInSlot)
}

func (s *TimetableScheduler) hasGroupConflict(subjectsInSlot map[string]struct{}) bool {
	for _, group := range s.config.Groups {
		count := 0
		for _, subject := range group.Subjects {
			if _, ok := subjectsInSlot[subject]; ok {
				count++
			}
		}
		if count > 1 {
			return true
		}
	}
	return false
}

// forwardCheck removes slot from every not-yet-assigned neighbor's domain.
// It returns false the instant any domain becomes empty.
func (s *TimetableScheduler) forwardCheck(subject string, slot Slot) bool {
	for neighbor := range s.conflicts[subject] {
		if _, assigned := s.assignment[neighbor]; assigned {
			continue
		}
		domain := s.domains[neighbor]
		pruned := domain[:0:0]
		for _, candidate := range domain {
			if candidate != slot {
				pruned = append(pruned, candidate)
			}
		}
		s.domains[neighbor] = pruned
		if len(pruned) == 0 {
			return false
		}
	}
	return true
}

func (s *TimetableScheduler) saveDomains() map[string][]Slot {
	saved := make(map[string][]Slot, len(s.domains))
	for subject, domain := range s.domains {
		copied := make([]Slot, len(domain))
		copy(copied, domain)
		saved[subject] = copied
	}
	return saved
}
