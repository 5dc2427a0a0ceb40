package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-api/internal/core"
	"github.com/noah-isme/sma-adp-api/internal/dto"
	"github.com/noah-isme/sma-adp-api/internal/store"
	appErrors "github.com/noah-isme/sma-adp-api/pkg/errors"
	"github.com/noah-isme/sma-adp-api/pkg/export"
)

// TimetableService orchestrates the full request/response translation
// around the core engines: Config Validator -> Conflict Graph Builder ->
// Timetable Scheduler -> Hall Allocator, plus the config store.
type TimetableService struct {
	store     *store.ConfigStore
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewTimetableService wires a gateway orchestration service.
func NewTimetableService(configStore *store.ConfigStore, logger *zap.Logger, metrics *MetricsService) *TimetableService {
	return &TimetableService{
		store:     configStore,
		validator: validator.New(),
		logger:    logger,
		metrics:   metrics,
	}
}

// SetConfig validates and stores req wholesale into the config store.
func (s *TimetableService) SetConfig(req dto.ConfigRequest) (dto.ConfigResponse, *appErrors.Error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ConfigResponse{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid config payload")
	}

	groups := toCoreGroups(req.Groups)
	halls := toCoreHalls(req.Halls)

	timetableConfig := core.TimetableConfig{
		Days:        req.Days,
		SlotsPerDay: req.SlotsPerDay,
		Subjects:    req.Subjects,
		Groups:      groups,
		RandomSeed:  req.RandomSeed,
	}
	if appErr := core.ValidateConfig(timetableConfig); appErr != nil {
		return dto.ConfigResponse{}, appErr
	}
	hallConfig := core.HallConfig{Halls: halls, PerSubjectLimit: req.PerSubjectLimit}
	if appErr := core.ValidateHallConfig(hallConfig); appErr != nil {
		return dto.ConfigResponse{}, appErr
	}

	s.store.Set(store.Snapshot{
		Days:            req.Days,
		SlotsPerDay:     req.SlotsPerDay,
		Subjects:        req.Subjects,
		Groups:          groups,
		Halls:           halls,
		PerSubjectLimit: req.PerSubjectLimit,
		RandomSeed:      req.RandomSeed,
	})

	s.logger.Info("config stored",
		zap.Int("subjects", len(req.Subjects)),
		zap.Int("groups", len(req.Groups)),
		zap.Int("halls", len(req.Halls)),
	)

	return snapshotToResponse(s.store.Get()), nil
}

// GetConfig returns the current store contents.
func (s *TimetableService) GetConfig() dto.ConfigResponse {
	return snapshotToResponse(s.store.Get())
}

// Subjects returns the subject list alone.
func (s *TimetableService) Subjects() dto.SubjectsResponse {
	return dto.SubjectsResponse{Subjects: s.store.Subjects()}
}

// AddGroup appends a new group to the store, returning a Conflict error
// (HTTP 400) if the name collides with an existing group.
func (s *TimetableService) AddGroup(req dto.StudentGroupRequest) *appErrors.Error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid group payload")
	}
	group := core.StudentGroup{Name: req.Name, Subjects: req.Subjects, Size: req.Size}
	if !s.store.AddGroup(group) {
		return appErrors.Clone(appErrors.ErrConflict, "group name already exists")
	}
	return nil
}

// DeleteGroup removes a group by name, returning ErrNotFound if absent.
func (s *TimetableService) DeleteGroup(name string) *appErrors.Error {
	if !s.store.DeleteGroup(name) {
		return appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}
	return nil
}

// Generate runs the solve pipeline end to end: validate, build the
// conflict graph, run the scheduler, run the hall allocator, store the
// result, translate to external shape. Every solver failure unwinds here
// unmodified; only metrics/logging observe it.
func (s *TimetableService) Generate(req dto.GenerateRequest) (core.ExternalResult, *appErrors.Error) {
	if err := s.validator.Struct(req); err != nil {
		return core.ExternalResult{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generate payload")
	}

	solveID := uuid.NewString()
	start := time.Now()

	timetableConfig := core.TimetableConfig{
		Days:        req.TimetableConfig.Days,
		SlotsPerDay: req.TimetableConfig.SlotsPerDay,
		Subjects:    req.TimetableConfig.Subjects,
		Groups:      toCoreGroups(req.TimetableConfig.Groups),
		RandomSeed:  req.TimetableConfig.RandomSeed,
	}
	hallConfig := core.HallConfig{
		Halls:           toCoreHalls(req.HallConfig.Halls),
		PerSubjectLimit: req.HallConfig.PerSubjectLimit,
	}

	if appErr := core.ValidateConfig(timetableConfig); appErr != nil {
		s.observeFailure(solveID, appErr)
		return core.ExternalResult{}, appErr
	}
	if appErr := core.ValidateHallConfig(hallConfig); appErr != nil {
		s.observeFailure(solveID, appErr)
		return core.ExternalResult{}, appErr
	}

	scheduler := core.NewTimetableScheduler(timetableConfig)
	timetable, appErr := scheduler.Generate()
	if appErr != nil {
		s.observeFailure(solveID, appErr)
		return core.ExternalResult{}, appErr
	}

	allocator := core.NewHallAllocator(timetable, hallConfig)
	result, appErr := allocator.Allocate()
	if appErr != nil {
		s.observeFailure(solveID, appErr)
		return core.ExternalResult{}, appErr
	}

	s.store.SaveResult(result)

	duration := time.Since(start)
	s.metrics.ObserveSolve(duration, scheduler.BacktrackCount())
	hallsPerSlot := make(map[core.Slot]int)
	for _, ha := range result.Assignments {
		hallsPerSlot[core.Slot{Day: ha.Day, Slot: ha.Slot}]++
	}
	for _, count := range hallsPerSlot {
		s.metrics.ObserveHallsUsed(count)
	}
	s.logger.Info("generate solved",
		zap.String("solve_id", solveID),
		zap.Int("subjects", len(timetableConfig.Subjects)),
		zap.Int("groups", len(timetableConfig.Groups)),
		zap.Int("halls", len(hallConfig.Halls)),
		zap.Int("backtrack_attempts", scheduler.BacktrackCount()),
		zap.Duration("duration", duration),
	)

	return core.ToExternal(result), nil
}

// ExportCSV renders the last stored result as the two-section CSV export.
// Returns ErrNotFound if no generate has succeeded yet.
func (s *TimetableService) ExportCSV() ([]byte, *appErrors.Error) {
	result, ok := s.store.LastResult()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no generated result to export")
	}
	out, err := core.RenderCSV(result)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
	}
	return out, nil
}

// ExportPDF renders the last stored result as a two-section PDF document:
// the timetable table followed by the hall-allocations table. Returns
// ErrNotFound if no generate has succeeded yet.
func (s *TimetableService) ExportPDF() ([]byte, *appErrors.Error) {
	result, ok := s.store.LastResult()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no generated result to export")
	}

	external := core.ToExternal(result)

	timetableRows := make([]map[string]string, 0, len(external.Timetable.Assignments))
	for _, a := range external.Timetable.Assignments {
		timetableRows = append(timetableRows, map[string]string{
			"Day":     fmt.Sprintf("%d", a.Day),
			"Slot":    fmt.Sprintf("%d", a.Slot),
			"Subject": a.Subject,
		})
	}

	var hallRows []map[string]string
	for _, ha := range external.HallAllocations {
		for _, alloc := range ha.Allocations {
			hallRows = append(hallRows, map[string]string{
				"Hall":     ha.Hall,
				"Day":      fmt.Sprintf("%d", ha.Day),
				"Slot":     fmt.Sprintf("%d", ha.Slot),
				"Subject":  alloc.Subject,
				"Students": fmt.Sprintf("%d", alloc.Students),
			})
		}
	}

	exporter := export.NewPDFExporter()
	out, err := exporter.RenderSections([]export.TitledDataset{
		{
			Title: "Timetable",
			Dataset: export.Dataset{
				Headers: []string{"Day", "Slot", "Subject"},
				Rows:    timetableRows,
			},
		},
		{
			Title: "Hall Allocations",
			Dataset: export.Dataset{
				Headers: []string{"Hall", "Day", "Slot", "Subject", "Students"},
				Rows:    hallRows,
			},
		},
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
	}
	return out, nil
}

func (s *TimetableService) observeFailure(solveID string, appErr *appErrors.Error) {
	s.metrics.ObserveSolveFailure(appErr.Code)
	s.logger.Warn("generate failed",
		zap.String("solve_id", solveID),
		zap.String("kind", appErr.Code),
		zap.String("message", appErr.Message),
		zap.Any("diagnostics", appErr.Diagnostics),
	)
}

func toCoreGroups(groups []dto.StudentGroupRequest) []core.StudentGroup {
	out := make([]core.StudentGroup, len(groups))
	for i, g := range groups {
		out[i] = core.StudentGroup{Name: g.Name, Subjects: g.Subjects, Size: g.Size}
	}
	return out
}

func toCoreHalls(halls []dto.HallRequest) []core.Hall {
	out := make([]core.Hall, len(halls))
	for i, h := range halls {
		out[i] = core.Hall{Name: h.Name, Capacity: h.Capacity}
	}
	return out
}

func snapshotToResponse(snap store.Snapshot) dto.ConfigResponse {
	groups := make([]dto.StudentGroupRequest, len(snap.Groups))
	for i, g := range snap.Groups {
		groups[i] = dto.StudentGroupRequest{Name: g.Name, Subjects: g.Subjects, Size: g.Size}
	}
	halls := make([]dto.HallRequest, len(snap.Halls))
	for i, h := range snap.Halls {
		halls[i] = dto.HallRequest{Name: h.Name, Capacity: h.Capacity}
	}
	return dto.ConfigResponse{
		Subjects:        snap.Subjects,
		Groups:          groups,
		Days:            snap.Days,
		SlotsPerDay:     snap.SlotsPerDay,
		Halls:           halls,
		PerSubjectLimit: snap.PerSubjectLimit,
		RandomSeed:      snap.RandomSeed,
	}
}
