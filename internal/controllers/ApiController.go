package controllers

import (
	"errors"
	"net/http"
	"time"

	"acsd/internal/models"
	"acsd/internal/providers"
	"acsd/internal/services"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const (
	cacheKeyListAll      = "activities:all"
	cacheKeyListUpcoming = "activities:upcoming"
	cacheKeyListPast     = "activities:past"
)

// ApiController exposes the activity CRUD operations.
type ApiController struct {
	logger  providers.Logger
	service services.ActivityServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.ActivityServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeRawJSON(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeRawJSON(w, http.StatusOK, gson)
}

// invalidateLists drops every cached activity response. Called after any
// mutation so readers never see a stale collection.
func (ac *ApiController) invalidateLists() {
	ac.cache.Del(cacheKeyListAll)
	ac.cache.Del(cacheKeyListUpcoming)
	ac.cache.Del(cacheKeyListPast)
}

func (ac *ApiController) ListActivities(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	cacheKey := cacheKeyListAll
	switch filter {
	case "upcoming":
		cacheKey = cacheKeyListUpcoming
	case "past":
		cacheKey = cacheKeyListPast
	case "":
	default:
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ac.serveFromCacheOrCompute(w, cacheKey, func() (any, error) {
		activities, err := ac.service.List(r.Context())
		if err != nil {
			return nil, err
		}
		if filter == "" {
			return activities, nil
		}

		today := time.Now().Format("2006-01-02")
		filtered := make([]models.Activity, 0, len(activities))
		for _, a := range activities {
			if a.IsUpcoming(today) == (filter == "upcoming") {
				filtered = append(filtered, a)
			}
		}
		return filtered, nil
	})
}

func (ac *ApiController) GetActivity(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	activity, err := ac.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (ac *ApiController) AddActivity(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var input models.ActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if v := validate.Struct(&input); !v.Validate() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": v.Errors.One()})
		return
	}

	activity, err := ac.service.Add(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	ac.invalidateLists()
	writeJSON(w, http.StatusCreated, activity)
}

func (ac *ApiController) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var patch models.ActivityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	activity, err := ac.service.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	ac.invalidateLists()
	writeJSON(w, http.StatusOK, activity)
}

func (ac *ApiController) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	deleted, err := ac.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	ac.invalidateLists()
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

// --- shared response helpers ---

func writeRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeRawJSON(w, status, gson)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidCredentials):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	default:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
