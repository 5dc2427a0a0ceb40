package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

func validConfig() TimetableConfig {
	return TimetableConfig{
		Days:        1,
		SlotsPerDay: 2,
		Subjects:    []string{"M", "E"},
		Groups: []StudentGroup{
			{Name: "g1", Subjects: []string{"M", "E"}, Size: 10},
		},
	}
}

func TestValidateConfig_AcceptsValid(t *testing.T) {
	err := ValidateConfig(validConfig())
	assert.Nil(t, err)
}

func TestValidateConfig_InsufficientSlotsIsDistinguished(t *testing.T) {
	config := validConfig()
	config.SlotsPerDay = 1

	err := ValidateConfig(config)

	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrInsufficientSlots.Code, err.Code)
	assert.Equal(t, 1, err.Diagnostics["deficit"])
}

func TestValidateConfig_NonPositiveDays(t *testing.T) {
	config := validConfig()
	config.Days = 0

	err := ValidateConfig(config)

	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrInvalidConfig.Code, err.Code)
}

func TestValidateConfig_DuplicateSubject(t *testing.T) {
	config := validConfig()
	config.Subjects = []string{"M", "M"}
	config.Groups = []StudentGroup{{Name: "g1", Subjects: []string{"M"}, Size: 5}}

	err := ValidateConfig(config)

	require.NotNil(t, err)
	reasons, ok := err.Diagnostics["reasons"].([]string)
	require.True(t, ok)
	assert.Contains(t, reasons, `duplicate subject "M"`)
}

func TestValidateConfig_GroupClaimsUnknownSubject(t *testing.T) {
	config := validConfig()
	config.Groups = []StudentGroup{{Name: "g1", Subjects: []string{"M", "X"}, Size: 5}}

	err := ValidateConfig(config)

	require.NotNil(t, err)
	reasons := err.Diagnostics["reasons"].([]string)
	assert.Contains(t, reasons, `group "g1" claims subject "X" absent from the config subject list`)
}

func TestValidateConfig_SubjectClaimedByNoGroup(t *testing.T) {
	config := validConfig()
	config.Subjects = []string{"M", "E", "P"}
	config.SlotsPerDay = 3

	err := ValidateConfig(config)

	require.NotNil(t, err)
	reasons := err.Diagnostics["reasons"].([]string)
	assert.Contains(t, reasons, `subject "P" is claimed by no group`)
}

func TestValidateConfig_NonPositiveGroupSize(t *testing.T) {
	config := validConfig()
	config.Groups[0].Size = 0

	err := ValidateConfig(config)

	require.NotNil(t, err)
	reasons := err.Diagnostics["reasons"].([]string)
	assert.Contains(t, reasons, `group "g1" must have positive size`)
}

func TestValidateHallConfig_AcceptsValid(t *testing.T) {
	config := HallConfig{Halls: []Hall{{Name: "H1", Capacity: 20}}, PerSubjectLimit: 30}
	assert.Nil(t, ValidateHallConfig(config))
}

func TestValidateHallConfig_RejectsEmptyHalls(t *testing.T) {
	config := HallConfig{PerSubjectLimit: 30}

	err := ValidateHallConfig(config)

	require.NotNil(t, err)
	reasons := err.Diagnostics["reasons"].([]string)
	assert.Contains(t, reasons, "must have at least one hall")
}

func TestValidateHallConfig_RejectsNonPositiveCapacity(t *testing.T) {
	config := HallConfig{Halls: []Hall{{Name: "H1", Capacity: 0}}, PerSubjectLimit: 30}

	err := ValidateHallConfig(config)

	require.NotNil(t, err)
	reasons := err.Diagnostics["reasons"].([]string)
	assert.Contains(t, reasons, `hall "H1" must have positive capacity`)
}
