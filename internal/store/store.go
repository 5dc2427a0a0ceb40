// Package store holds the process-wide mutable configuration and last
// solve result. It is a single owned value behind a mutex, last-writer-wins,
// grounded on the reference proposalStore pattern.
package store

import (
	"sync"

	"github.com/noah-isme/sma-adp-api/internal/core"
)

// Defaults mirror GET /api/config's documented fallback values.
const (
	DefaultDays            = 5
	DefaultSlotsPerDay     = 2
	DefaultPerSubjectLimit = 30
)

// ConfigStore is the single in-memory source of truth for the current
// scheduling configuration and the most recent solve, if any. Concurrent
// writers are permitted; readers observe some prior committed write.
type ConfigStore struct {
	mu sync.RWMutex

	days            int
	slotsPerDay     int
	subjects        []string
	groups          []core.StudentGroup
	halls           []core.Hall
	perSubjectLimit int
	randomSeed      *int64

	lastResult *core.HallAllocationResult
}

// NewConfigStore builds a store seeded with the documented defaults and no
// subjects, groups, or halls.
func NewConfigStore() *ConfigStore {
	return NewConfigStoreWithDefaults(DefaultDays, DefaultSlotsPerDay, DefaultPerSubjectLimit)
}

// NewConfigStoreWithDefaults builds a store seeded with caller-supplied
// defaults, for wiring the loaded application config's scheduler defaults.
func NewConfigStoreWithDefaults(days, slotsPerDay, perSubjectLimit int) *ConfigStore {
	return &ConfigStore{
		days:            days,
		slotsPerDay:     slotsPerDay,
		perSubjectLimit: perSubjectLimit,
	}
}

// Snapshot is an immutable read of the store's current configuration.
type Snapshot struct {
	Days            int
	SlotsPerDay     int
	Subjects        []string
	Groups          []core.StudentGroup
	Halls           []core.Hall
	PerSubjectLimit int
	RandomSeed      *int64
}

// Get returns the current configuration.
func (s *ConfigStore) Get() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Days:            s.days,
		SlotsPerDay:     s.slotsPerDay,
		Subjects:        append([]string(nil), s.subjects...),
		Groups:          append([]core.StudentGroup(nil), s.groups...),
		Halls:           append([]core.Hall(nil), s.halls...),
		PerSubjectLimit: s.perSubjectLimit,
		RandomSeed:      s.randomSeed,
	}
}

// Set overwrites the configuration wholesale. No cross-field atomicity is
// promised beyond the single critical section of this call.
func (s *ConfigStore) Set(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = snapshot.Days
	s.slotsPerDay = snapshot.SlotsPerDay
	s.subjects = snapshot.Subjects
	s.groups = snapshot.Groups
	s.halls = snapshot.Halls
	s.perSubjectLimit = snapshot.PerSubjectLimit
	s.randomSeed = snapshot.RandomSeed
}

// Subjects returns the subject list alone, for GET /api/subjects.
func (s *ConfigStore) Subjects() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.subjects...)
}

// AddGroup appends a new group. Returns false if name collides with an
// existing group.
func (s *ConfigStore) AddGroup(group core.StudentGroup) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.groups {
		if existing.Name == group.Name {
			return false
		}
	}
	s.groups = append(s.groups, group)
	for _, subject := range group.Subjects {
		if !containsString(s.subjects, subject) {
			s.subjects = append(s.subjects, subject)
		}
	}
	return true
}

// DeleteGroup removes the group named name. Returns false if absent.
func (s *ConfigStore) DeleteGroup(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, group := range s.groups {
		if group.Name == name {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			return true
		}
	}
	return false
}

// SaveResult overwrites lastResult. Called on every successful /generate.
func (s *ConfigStore) SaveResult(result core.HallAllocationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResult = &result
}

// LastResult returns the most recently stored result, if any.
func (s *ConfigStore) LastResult() (core.HallAllocationResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastResult == nil {
		return core.HallAllocationResult{}, false
	}
	return *s.lastResult, true
}

func containsString(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}
