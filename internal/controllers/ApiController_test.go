package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acsd/internal/models"
	"acsd/internal/providers"
)

type nopLogger struct{}

func (l *nopLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (l *nopLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (l *nopLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (l *nopLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (l *nopLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (l *nopLogger) Close()                                                  {}

type testCache struct {
	data map[string][]byte
}

func newTestCache() *testCache {
	return &testCache{data: make(map[string][]byte)}
}

func (c *testCache) Get(key string) ([]byte, bool) { v, ok := c.data[key]; return v, ok }
func (c *testCache) Set(key string, value []byte)  { c.data[key] = value }
func (c *testCache) Del(key string)                { delete(c.data, key) }

type mockActivityService struct {
	listCalls int
	listFn    func() ([]models.Activity, error)
	getFn     func(id string) (*models.Activity, error)
	addFn     func(in models.ActivityInput) (*models.Activity, error)
	updateFn  func(id string, p models.ActivityPatch) (*models.Activity, error)
	deleteFn  func(id string) (bool, error)
	count     int
}

func (m *mockActivityService) List(_ context.Context) ([]models.Activity, error) {
	m.listCalls++
	return m.listFn()
}

func (m *mockActivityService) GetByID(_ context.Context, id string) (*models.Activity, error) {
	return m.getFn(id)
}

func (m *mockActivityService) Add(_ context.Context, in models.ActivityInput) (*models.Activity, error) {
	return m.addFn(in)
}

func (m *mockActivityService) Update(_ context.Context, id string, p models.ActivityPatch) (*models.Activity, error) {
	return m.updateFn(id, p)
}

func (m *mockActivityService) Delete(_ context.Context, id string) (bool, error) {
	return m.deleteFn(id)
}

func (m *mockActivityService) Count() int {
	return m.count
}

func sampleActivities() []models.Activity {
	return []models.Activity{
		{ID: "1", Name: "Fête du Village", Date: "2020-01-01", Time: "10:00", Location: "Place", Description: "Annuelle"},
		{ID: "2", Name: "Atelier Poterie", Date: "2999-01-01", Time: "14:00", Location: "Salle", Description: "Initiation"},
	}
}

func TestListActivities_ReturnsAll(t *testing.T) {
	service := &mockActivityService{listFn: func() ([]models.Activity, error) {
		return sampleActivities(), nil
	}}
	ctrl := NewApiController(&nopLogger{}, service, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.ListActivities(rec, httptest.NewRequest(http.MethodGet, "/activities", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Fête du Village")
	assert.Contains(t, rec.Body.String(), "Atelier Poterie")
}

func TestListActivities_SecondCallServedFromCache(t *testing.T) {
	service := &mockActivityService{listFn: func() ([]models.Activity, error) {
		return sampleActivities(), nil
	}}
	ctrl := NewApiController(&nopLogger{}, service, newTestCache())

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		ctrl.ListActivities(rec, httptest.NewRequest(http.MethodGet, "/activities", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 1, service.listCalls)
}

func TestListActivities_UpcomingFilter(t *testing.T) {
	service := &mockActivityService{listFn: func() ([]models.Activity, error) {
		return sampleActivities(), nil
	}}
	ctrl := NewApiController(&nopLogger{}, service, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.ListActivities(rec, httptest.NewRequest(http.MethodGet, "/activities?filter=upcoming", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Fête du Village")
	assert.Contains(t, rec.Body.String(), "Atelier Poterie")
}

func TestListActivities_PastFilter(t *testing.T) {
	service := &mockActivityService{listFn: func() ([]models.Activity, error) {
		return sampleActivities(), nil
	}}
	ctrl := NewApiController(&nopLogger{}, service, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.ListActivities(rec, httptest.NewRequest(http.MethodGet, "/activities?filter=past", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fête du Village")
	assert.NotContains(t, rec.Body.String(), "Atelier Poterie")
}

func TestListActivities_UnknownFilterRejected(t *testing.T) {
	ctrl := NewApiController(&nopLogger{}, &mockActivityService{}, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.ListActivities(rec, httptest.NewRequest(http.MethodGet, "/activities?filter=tomorrow", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetActivity_Found(t *testing.T) {
	service := &mockActivityService{getFn: func(id string) (*models.Activity, error) {
		require.Equal(t, "2", id)
		a := sampleActivities()[1]
		return &a, nil
	}}
	ctrl := NewApiController(&nopLogger{}, service, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.GetActivity(rec, httptest.NewRequest(http.MethodGet, "/activity?id=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Atelier Poterie")
}

func TestGetActivity_NotFound(t *testing.T) {
	service := &mockActivityService{getFn: func(_ string) (*models.Activity, error) {
		return nil, models.ErrNotFound
	}}
	ctrl := NewApiController(&nopLogger{}, service, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.GetActivity(rec, httptest.NewRequest(http.MethodGet, "/activity?id=99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetActivity_MissingID(t *testing.T) {
	ctrl := NewApiController(&nopLogger{}, &mockActivityService{}, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.GetActivity(rec, httptest.NewRequest(http.MethodGet, "/activity", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddActivity_CreatesAndInvalidatesCache(t *testing.T) {
	service := &mockActivityService{addFn: func(in models.ActivityInput) (*models.Activity, error) {
		a := models.NewActivity("1700000000000", in)
		return &a, nil
	}}
	cache := newTestCache()
	cache.Set(cacheKeyListAll, []byte("[]"))
	cache.Set(cacheKeyListUpcoming, []byte("[]"))
	ctrl := NewApiController(&nopLogger{}, service, cache)

	body := `{"name":"Vide-grenier","date":"2026-09-12","time":"08:00","location":"Parking","description":"Stands ouverts à tous"}`
	rec := httptest.NewRecorder()
	ctrl.AddActivity(rec, httptest.NewRequest(http.MethodPost, "/activities", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"1700000000000"`)
	assert.Empty(t, cache.data)
}

func TestAddActivity_MalformedBody(t *testing.T) {
	ctrl := NewApiController(&nopLogger{}, &mockActivityService{}, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.AddActivity(rec, httptest.NewRequest(http.MethodPost, "/activities", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddActivity_MissingFieldsRejected(t *testing.T) {
	ctrl := NewApiController(&nopLogger{}, &mockActivityService{}, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.AddActivity(rec, httptest.NewRequest(http.MethodPost, "/activities", strings.NewReader(`{"name":"Seule"}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestUpdateActivity_AppliesPatch(t *testing.T) {
	service := &mockActivityService{updateFn: func(id string, p models.ActivityPatch) (*models.Activity, error) {
		require.Equal(t, "1", id)
		a := sampleActivities()[0]
		a.Apply(p)
		return &a, nil
	}}
	cache := newTestCache()
	cache.Set(cacheKeyListPast, []byte("[]"))
	ctrl := NewApiController(&nopLogger{}, service, cache)

	rec := httptest.NewRecorder()
	ctrl.UpdateActivity(rec, httptest.NewRequest(http.MethodPut, "/activity?id=1", strings.NewReader(`{"location":"Mairie"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mairie")
	assert.Contains(t, rec.Body.String(), "Fête du Village")
	assert.Empty(t, cache.data)
}

func TestUpdateActivity_NotFound(t *testing.T) {
	service := &mockActivityService{updateFn: func(_ string, _ models.ActivityPatch) (*models.Activity, error) {
		return nil, models.ErrNotFound
	}}
	ctrl := NewApiController(&nopLogger{}, service, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.UpdateActivity(rec, httptest.NewRequest(http.MethodPut, "/activity?id=99", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteActivity_ReportsOutcome(t *testing.T) {
	service := &mockActivityService{deleteFn: func(id string) (bool, error) {
		return id == "1", nil
	}}
	ctrl := NewApiController(&nopLogger{}, service, newTestCache())

	rec := httptest.NewRecorder()
	ctrl.DeleteActivity(rec, httptest.NewRequest(http.MethodDelete, "/activity?id=1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ctrl.DeleteActivity(rec, httptest.NewRequest(http.MethodDelete, "/activity?id=42", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":false}`, rec.Body.String())
}

func TestWriteError_MapsSentinels(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, models.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	writeError(rec, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
