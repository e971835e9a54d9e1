package controllers

import (
	"net/http"

	"acsd/internal/models"
	"acsd/internal/providers"
	"acsd/internal/services"

	json "github.com/goccy/go-json"
)

type PageController struct {
	logger  providers.Logger
	service services.PageServiceInterface
	cache   providers.CacheProviderInterface
}

func NewPageController(logger providers.Logger, service services.PageServiceInterface, cache providers.CacheProviderInterface) *PageController {
	return &PageController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func pageCacheKey(pageKey string) string {
	return "page:" + pageKey
}

func (pc *PageController) GetPage(w http.ResponseWriter, r *http.Request) {
	pageKey := r.URL.Query().Get("key")
	if pageKey == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	cacheKey := pageCacheKey(pageKey)
	if data, ok := pc.cache.Get(cacheKey); ok {
		writeRawJSON(w, http.StatusOK, data)
		return
	}

	doc, err := pc.service.Get(r.Context(), pageKey)
	if err != nil {
		writeError(w, err)
		return
	}

	gson, err := json.Marshal(doc)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	pc.cache.Set(cacheKey, gson)
	writeRawJSON(w, http.StatusOK, gson)
}

func (pc *PageController) SavePage(w http.ResponseWriter, r *http.Request) {
	pageKey := r.URL.Query().Get("key")
	if pageKey == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var doc models.EditablePageData
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := pc.service.Save(r.Context(), pageKey, &doc); err != nil {
		writeError(w, err)
		return
	}

	pc.cache.Del(pageCacheKey(pageKey))
	pc.logger.Infof(providers.TypeApp, "Page %q saved", pageKey)
	w.WriteHeader(http.StatusNoContent)
}

func (pc *PageController) PageRevisions(w http.ResponseWriter, r *http.Request) {
	pageKey := r.URL.Query().Get("key")
	if pageKey == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	revisions, err := pc.service.Revisions(r.Context(), pageKey)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, revisions)
}
