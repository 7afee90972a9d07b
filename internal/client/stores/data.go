package stores

import (
	"context"

	"github.com/mpetrova/studytrack/internal/client/models"
	"github.com/mpetrova/studytrack/internal/logging"
)

// dataAPI is the slice of the API surface the data store consumes.
type dataAPI interface {
	ListPlans(ctx context.Context, filter models.PlanFilter) (*models.PlanList, error)
	CreatePlan(ctx context.Context, req models.PlanCreate) (*models.Plan, error)
	UpdatePlan(ctx context.Context, planID int64, req models.PlanUpdate) (*models.Plan, error)
	DeletePlan(ctx context.Context, planID int64) error

	ListCheckins(ctx context.Context, filter models.CheckinFilter) (*models.CheckinList, error)
	CreateCheckin(ctx context.Context, req models.CheckinCreate) (*models.Checkin, error)
	UpdateCheckin(ctx context.Context, checkinID int64, req models.CheckinUpdate) (*models.Checkin, error)
	DeleteCheckin(ctx context.Context, checkinID int64) error
	TodayCheckin(ctx context.Context) (*models.TodayCheckin, error)
	CheckinStats(ctx context.Context, filter models.CheckinFilter) (*models.CheckinStats, error)

	ListGroups(ctx context.Context) (*models.GroupList, error)
	CreateGroup(ctx context.Context, req models.GroupCreate) (*models.Group, error)
	JoinGroup(ctx context.Context, groupID int64) error
	LeaveGroup(ctx context.Context, groupID int64) error
	DeleteGroup(ctx context.Context, groupID int64) error
}

// DataStore caches the user's plans, check-ins and groups. Mutations never
// patch the cache from the mutation response; they re-fetch the affected
// collections so the cache always reflects server-derived state.
type DataStore struct {
	state

	api dataAPI
	log logging.Logger

	plans    []models.Plan
	checkins []models.Checkin
	groups   *models.GroupList
	stats    *models.CheckinStats

	// todayCheckin is nil unless today's recorded hours are positive.
	todayCheckin *models.TodayCheckin
}

func NewDataStore(api dataAPI, log logging.Logger) *DataStore {
	return &DataStore{api: api, log: log}
}

func (s *DataStore) Plans() []models.Plan        { return s.plans }
func (s *DataStore) Checkins() []models.Checkin  { return s.checkins }
func (s *DataStore) Groups() *models.GroupList   { return s.groups }
func (s *DataStore) Stats() *models.CheckinStats { return s.stats }
func (s *DataStore) Today() *models.TodayCheckin { return s.todayCheckin }

// CheckedInToday reports whether the user has positive hours recorded for
// the current day.
func (s *DataStore) CheckedInToday() bool { return s.todayCheckin != nil }

// FetchPlans replaces the cached plan list.
func (s *DataStore) FetchPlans(ctx context.Context, filter models.PlanFilter) error {
	s.begin()
	defer s.end()

	list, err := s.api.ListPlans(ctx, filter)
	if err != nil {
		return s.fail(err, "failed to fetch plans")
	}
	s.plans = list.Items
	return nil
}

// CreatePlan creates a plan and re-fetches the list; the created plan only
// enters the cache through the re-fetch.
func (s *DataStore) CreatePlan(ctx context.Context, req models.PlanCreate) (*models.Plan, error) {
	s.begin()
	defer s.end()

	plan, err := s.api.CreatePlan(ctx, req)
	if err != nil {
		return nil, s.fail(err, "failed to create plan")
	}
	if err := s.FetchPlans(ctx, models.PlanFilter{}); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *DataStore) UpdatePlan(ctx context.Context, planID int64, req models.PlanUpdate) (*models.Plan, error) {
	s.begin()
	defer s.end()

	plan, err := s.api.UpdatePlan(ctx, planID, req)
	if err != nil {
		return nil, s.fail(err, "failed to update plan")
	}
	if err := s.FetchPlans(ctx, models.PlanFilter{}); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *DataStore) DeletePlan(ctx context.Context, planID int64) error {
	s.begin()
	defer s.end()

	if err := s.api.DeletePlan(ctx, planID); err != nil {
		return s.fail(err, "failed to delete plan")
	}
	return s.FetchPlans(ctx, models.PlanFilter{})
}

// FetchCheckins replaces the cached check-in list.
func (s *DataStore) FetchCheckins(ctx context.Context, filter models.CheckinFilter) error {
	s.begin()
	defer s.end()

	list, err := s.api.ListCheckins(ctx, filter)
	if err != nil {
		return s.fail(err, "failed to fetch checkins")
	}
	s.checkins = list.Items
	return nil
}

// CreateCheckin records study hours and refreshes the today aggregate so
// the checked-in state reflects the server's derivation.
func (s *DataStore) CreateCheckin(ctx context.Context, req models.CheckinCreate) (*models.Checkin, error) {
	s.begin()
	defer s.end()

	checkin, err := s.api.CreateCheckin(ctx, req)
	if err != nil {
		return nil, s.fail(err, "failed to create checkin")
	}
	if err := s.FetchTodayCheckin(ctx); err != nil {
		return nil, err
	}
	return checkin, nil
}

func (s *DataStore) UpdateCheckin(ctx context.Context, checkinID int64, req models.CheckinUpdate) (*models.Checkin, error) {
	s.begin()
	defer s.end()

	checkin, err := s.api.UpdateCheckin(ctx, checkinID, req)
	if err != nil {
		return nil, s.fail(err, "failed to update checkin")
	}
	if err := s.refreshCheckins(ctx); err != nil {
		return nil, err
	}
	return checkin, nil
}

func (s *DataStore) DeleteCheckin(ctx context.Context, checkinID int64) error {
	s.begin()
	defer s.end()

	if err := s.api.DeleteCheckin(ctx, checkinID); err != nil {
		return s.fail(err, "failed to delete checkin")
	}
	return s.refreshCheckins(ctx)
}

// refreshCheckins re-fetches both the list and the today aggregate after a
// mutation that can affect either.
func (s *DataStore) refreshCheckins(ctx context.Context) error {
	if err := s.FetchCheckins(ctx, models.CheckinFilter{}); err != nil {
		return err
	}
	return s.FetchTodayCheckin(ctx)
}

// FetchTodayCheckin refreshes the today aggregate. The cache holds a value
// only when the server reports positive hours; on failure or absence it
// holds nil, so the UI falls back to the not-checked-in state.
func (s *DataStore) FetchTodayCheckin(ctx context.Context) error {
	s.begin()
	defer s.end()

	today, err := s.api.TodayCheckin(ctx)
	if err != nil {
		s.log.Warn(ctx, "today aggregate unavailable, treating as not checked in", "error", err)
		s.todayCheckin = nil
		return s.fail(err, "failed to fetch today's checkin")
	}
	if today != nil && today.TotalHours > 0 {
		s.todayCheckin = today
	} else {
		s.todayCheckin = nil
	}
	return nil
}

func (s *DataStore) FetchCheckinStats(ctx context.Context, filter models.CheckinFilter) error {
	s.begin()
	defer s.end()

	stats, err := s.api.CheckinStats(ctx, filter)
	if err != nil {
		return s.fail(err, "failed to fetch checkin stats")
	}
	s.stats = stats
	return nil
}

// FetchGroups replaces the cached created/joined partition.
func (s *DataStore) FetchGroups(ctx context.Context) error {
	s.begin()
	defer s.end()

	groups, err := s.api.ListGroups(ctx)
	if err != nil {
		return s.fail(err, "failed to fetch groups")
	}
	s.groups = groups
	return nil
}

func (s *DataStore) CreateGroup(ctx context.Context, req models.GroupCreate) (*models.Group, error) {
	s.begin()
	defer s.end()

	group, err := s.api.CreateGroup(ctx, req)
	if err != nil {
		return nil, s.fail(err, "failed to create group")
	}
	if err := s.FetchGroups(ctx); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *DataStore) JoinGroup(ctx context.Context, groupID int64) error {
	s.begin()
	defer s.end()

	if err := s.api.JoinGroup(ctx, groupID); err != nil {
		return s.fail(err, "failed to join group")
	}
	return s.FetchGroups(ctx)
}

func (s *DataStore) LeaveGroup(ctx context.Context, groupID int64) error {
	s.begin()
	defer s.end()

	if err := s.api.LeaveGroup(ctx, groupID); err != nil {
		return s.fail(err, "failed to leave group")
	}
	return s.FetchGroups(ctx)
}

func (s *DataStore) DeleteGroup(ctx context.Context, groupID int64) error {
	s.begin()
	defer s.end()

	if err := s.api.DeleteGroup(ctx, groupID); err != nil {
		return s.fail(err, "failed to delete group")
	}
	return s.FetchGroups(ctx)
}
