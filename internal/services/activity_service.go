package services

import (
	"context"
	"strconv"
	"time"

	"acsd/internal/models"
	"acsd/internal/providers"
	"acsd/internal/storage"
	"acsd/internal/structures"

	json "github.com/goccy/go-json"
)

type ActivityServiceInterface interface {
	List(ctx context.Context) ([]models.Activity, error)
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	Add(ctx context.Context, input models.ActivityInput) (*models.Activity, error)
	Update(ctx context.Context, id string, patch models.ActivityPatch) (*models.Activity, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count() int
}

// ActivityService owns the activities collection: one storage key holding
// the whole array. Every read goes through loadOrSeed, which writes the
// built-in default set exactly once, the first time the key is touched.
type ActivityService struct {
	delays
	store  storage.Store
	logger providers.Logger
	newID  func() string
}

func NewActivityService(store storage.Store, conf *structures.Config, logger providers.Logger) ActivityServiceInterface {
	return &ActivityService{
		delays: delays{conf: conf.Latency},
		store:  store,
		logger: logger,
		newID: func() string {
			return strconv.FormatInt(time.Now().UnixMilli(), 10)
		},
	}
}

func (s *ActivityService) List(ctx context.Context) ([]models.Activity, error) {
	if err := s.wait(ctx, s.conf.List); err != nil {
		return nil, err
	}
	return s.loadOrSeed(), nil
}

func (s *ActivityService) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	if err := s.wait(ctx, s.conf.Get); err != nil {
		return nil, err
	}
	for _, a := range s.loadOrSeed() {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *ActivityService) Add(ctx context.Context, input models.ActivityInput) (*models.Activity, error) {
	if err := s.wait(ctx, s.conf.Write); err != nil {
		return nil, err
	}

	activities := s.loadOrSeed()
	activity := models.NewActivity(s.uniqueID(activities), input)
	activities = append(activities, activity)
	if err := s.persist(activities); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) Update(ctx context.Context, id string, patch models.ActivityPatch) (*models.Activity, error) {
	if err := s.wait(ctx, s.conf.Write); err != nil {
		return nil, err
	}

	activities := s.loadOrSeed()
	for i := range activities {
		if activities[i].ID != id {
			continue
		}
		activities[i].Apply(patch)
		if err := s.persist(activities); err != nil {
			return nil, err
		}
		updated := activities[i]
		return &updated, nil
	}
	return nil, models.ErrNotFound
}

func (s *ActivityService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.wait(ctx, s.conf.Write); err != nil {
		return false, err
	}

	activities := s.loadOrSeed()
	remaining := activities[:0:0]
	for _, a := range activities {
		if a.ID != id {
			remaining = append(remaining, a)
		}
	}
	if len(remaining) == len(activities) {
		return false, nil
	}
	if err := s.persist(remaining); err != nil {
		return false, err
	}
	return true, nil
}

// Count reports the stored collection size without seeding. Used by
// health reporting and the metrics gauge.
func (s *ActivityService) Count() int {
	raw, ok := s.store.Get(storage.ActivitiesKey)
	if !ok {
		return 0
	}
	var activities []models.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		return 0
	}
	return len(activities)
}

// loadOrSeed reads the stored collection. When the key has never been
// written the built-in defaults are persisted and returned; a corrupt
// payload is treated the same way.
func (s *ActivityService) loadOrSeed() []models.Activity {
	raw, ok := s.store.Get(storage.ActivitiesKey)
	if ok {
		var activities []models.Activity
		err := json.Unmarshal(raw, &activities)
		if err == nil {
			return activities
		}
		s.logger.Warnf(providers.TypeApp, "Corrupt activities payload, reseeding defaults: %s", err)
	}

	activities := DefaultActivities()
	if err := s.persist(activities); err != nil {
		s.logger.Errorf(providers.TypeApp, "Failed to seed default activities: %s", err)
	}
	return activities
}

func (s *ActivityService) persist(activities []models.Activity) error {
	raw, err := json.Marshal(activities)
	if err != nil {
		return err
	}
	s.store.Set(storage.ActivitiesKey, raw)
	return nil
}

// uniqueID returns a fresh id guaranteed not to collide with the current
// collection. Timestamp ids are unique under serial usage; the bump loop
// covers two adds landing on the same millisecond.
func (s *ActivityService) uniqueID(activities []models.Activity) string {
	id := s.newID()
	for containsID(activities, id) {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return id + "-1"
		}
		id = strconv.FormatInt(n+1, 10)
	}
	return id
}

func containsID(activities []models.Activity, id string) bool {
	for _, a := range activities {
		if a.ID == id {
			return true
		}
	}
	return false
}
