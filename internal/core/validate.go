package core

import (
	"fmt"

	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

// ValidateConfig checks the structural preconditions spec'd for a
// TimetableConfig. Non-positive days/slotsPerDay and empty subject or group
// lists fail first with a single-reason InvalidConfig; InsufficientSlots is
// then returned as a distinguished error before the per-subject and
// per-group checks, whose violations are all collected into one
// InvalidConfig.
func ValidateConfig(config TimetableConfig) *appErrors.Error {
	if config.Days <= 0 {
		return newInvalidConfig("days must be positive", []string{"days must be positive"})
	}
	if config.SlotsPerDay <= 0 {
		return newInvalidConfig("slotsPerDay must be positive", []string{"slotsPerDay must be positive"})
	}
	if len(config.Subjects) == 0 {
		return newInvalidConfig("must have at least one subject", []string{"subjects must not be empty"})
	}
	if len(config.Groups) == 0 {
		return newInvalidConfig("must have at least one group", []string{"groups must not be empty"})
	}

	if len(config.Subjects) > config.TotalSlots() {
		return newInsufficientSlots(len(config.Subjects), config.TotalSlots())
	}

	var reasons []string

	seenSubjects := make(map[string]struct{}, len(config.Subjects))
	for _, subject := range config.Subjects {
		if subject == "" {
			reasons = append(reasons, "subject identifiers must not be empty")
			continue
		}
		if _, dup := seenSubjects[subject]; dup {
			reasons = append(reasons, fmt.Sprintf("duplicate subject %q", subject))
			continue
		}
		seenSubjects[subject] = struct{}{}
	}

	groupSubjects := make(map[string]struct{})
	for _, group := range config.Groups {
		if group.Name == "" {
			reasons = append(reasons, "group name must not be empty")
		}
		if group.Size <= 0 {
			reasons = append(reasons, fmt.Sprintf("group %q must have positive size", group.Name))
		}
		if len(group.Subjects) == 0 {
			reasons = append(reasons, fmt.Sprintf("group %q must have at least one subject", group.Name))
		}
		for _, subject := range group.Subjects {
			groupSubjects[subject] = struct{}{}
			if _, ok := seenSubjects[subject]; !ok {
				reasons = append(reasons, fmt.Sprintf("group %q claims subject %q absent from the config subject list", group.Name, subject))
			}
		}
	}

	for subject := range seenSubjects {
		if _, claimed := groupSubjects[subject]; !claimed {
			reasons = append(reasons, fmt.Sprintf("subject %q is claimed by no group", subject))
		}
	}

	if len(reasons) > 0 {
		return newInvalidConfig(reasons[0], reasons)
	}
	return nil
}

// ValidateHallConfig checks structural preconditions on the hall fleet.
func ValidateHallConfig(config HallConfig) *appErrors.Error {
	var reasons []string
	if len(config.Halls) == 0 {
		reasons = append(reasons, "must have at least one hall")
	}
	for _, hall := range config.Halls {
		if hall.Name == "" {
			reasons = append(reasons, "hall name must not be empty")
		}
		if hall.Capacity <= 0 {
			reasons = append(reasons, fmt.Sprintf("hall %q must have positive capacity", hall.Name))
		}
	}
	if config.PerSubjectLimit <= 0 {
		reasons = append(reasons, "perSubjectLimit must be positive")
	}
	if len(reasons) > 0 {
		return newInvalidConfig(reasons[0], reasons)
	}
	return nil
}
