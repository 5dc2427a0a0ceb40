package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-api/internal/dto"
	"github.com/noah-isme/sma-adp-api/internal/store"
	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
)

func newTestService() *TimetableService {
	return NewTimetableService(store.NewConfigStore(), zap.NewNop(), NewMetricsService())
}

func trivialGenerateRequest() dto.GenerateRequest {
	return dto.GenerateRequest{
		TimetableConfig: dto.TimetableConfigRequest{
			Subjects: []string{"M", "E"},
			Groups:   []dto.StudentGroupRequest{{Name: "g1", Subjects: []string{"M", "E"}, Size: 10}},
			Days:     1, SlotsPerDay: 2,
		},
		HallConfig: dto.HallConfigRequest{
			Halls:           []dto.HallRequest{{Name: "H1", Capacity: 20}},
			PerSubjectLimit: 30,
		},
	}
}

func TestTimetableService_SetAndGetConfig(t *testing.T) {
	svc := newTestService()
	req := dto.ConfigRequest{
		Subjects:        []string{"M", "E"},
		Groups:          []dto.StudentGroupRequest{{Name: "g1", Subjects: []string{"M", "E"}, Size: 10}},
		Days:            1,
		SlotsPerDay:     2,
		Halls:           []dto.HallRequest{{Name: "H1", Capacity: 20}},
		PerSubjectLimit: 30,
	}

	resp, err := svc.SetConfig(req)

	require.Nil(t, err)
	assert.Equal(t, []string{"M", "E"}, resp.Subjects)

	fetched := svc.GetConfig()
	assert.Equal(t, resp, fetched)
}

func TestTimetableService_SetConfigRejectsInvalidConfig(t *testing.T) {
	svc := newTestService()
	req := dto.ConfigRequest{
		Subjects:        []string{"M", "E", "P"},
		Groups:          []dto.StudentGroupRequest{{Name: "g1", Subjects: []string{"M", "E"}, Size: 10}},
		Days:            1,
		SlotsPerDay:     3,
		Halls:           []dto.HallRequest{{Name: "H1", Capacity: 20}},
		PerSubjectLimit: 30,
	}

	_, err := svc.SetConfig(req)

	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrInvalidConfig.Code, err.Code)
}

func TestTimetableService_AddGroupRejectsDuplicate(t *testing.T) {
	svc := newTestService()
	req := dto.StudentGroupRequest{Name: "g1", Subjects: []string{"M"}, Size: 10}

	require.Nil(t, svc.AddGroup(req))

	err := svc.AddGroup(req)
	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, err.Code)
}

func TestTimetableService_DeleteGroupNotFound(t *testing.T) {
	svc := newTestService()

	err := svc.DeleteGroup("missing")

	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, err.Code)
}

func TestTimetableService_GenerateTrivialSucceeds(t *testing.T) {
	svc := newTestService()

	result, err := svc.Generate(trivialGenerateRequest())

	require.Nil(t, err)
	assert.Len(t, result.Timetable.Assignments, 2)
	assert.Len(t, result.HallAllocations, 2)
}

func TestTimetableService_GenerateStoresLastResultForExport(t *testing.T) {
	svc := newTestService()

	_, err := svc.Generate(trivialGenerateRequest())
	require.Nil(t, err)

	csv, exportErr := svc.ExportCSV()
	require.Nil(t, exportErr)
	assert.Contains(t, string(csv), "=== TIMETABLE ===")
}

func TestTimetableService_ExportCSVNotFoundWithoutPriorGenerate(t *testing.T) {
	svc := newTestService()

	_, err := svc.ExportCSV()

	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, err.Code)
}

func TestTimetableService_GeneratePropagatesNoSolution(t *testing.T) {
	svc := newTestService()
	req := dto.GenerateRequest{
		TimetableConfig: dto.TimetableConfigRequest{
			Subjects: []string{"M", "E", "P"},
			Groups:   []dto.StudentGroupRequest{{Name: "g1", Subjects: []string{"M", "E", "P"}, Size: 10}},
			Days:     1, SlotsPerDay: 2,
		},
		HallConfig: dto.HallConfigRequest{
			Halls:           []dto.HallRequest{{Name: "H1", Capacity: 20}},
			PerSubjectLimit: 30,
		},
	}

	_, err := svc.Generate(req)

	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrNoSolution.Code, err.Code)
}
