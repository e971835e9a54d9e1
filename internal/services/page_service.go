package services

import (
	"context"

	"acsd/internal/models"
	"acsd/internal/persistence"
	"acsd/internal/providers"
	"acsd/internal/storage"
	"acsd/internal/structures"

	json "github.com/goccy/go-json"
)

type PageServiceInterface interface {
	Get(ctx context.Context, pageKey string) (*models.EditablePageData, error)
	Save(ctx context.Context, pageKey string, doc *models.EditablePageData) error
	Revisions(ctx context.Context, pageKey string) ([]persistence.Revision, error)
}

// PageService reads and replaces whole page documents. Unlike activities,
// page content is never lazily persisted: a miss falls back to the built-in
// default for the history page or to the generic placeholder, without
// writing anything.
type PageService struct {
	delays
	store          storage.Store
	archiver       persistence.PageArchiver
	logger         providers.Logger
	historyPageKey string
}

func NewPageService(store storage.Store, conf *structures.Config, archiver persistence.PageArchiver, logger providers.Logger) PageServiceInterface {
	return &PageService{
		delays:         delays{conf: conf.Latency},
		store:          store,
		archiver:       archiver,
		logger:         logger,
		historyPageKey: conf.Content.HistoryPageKey,
	}
}

func (s *PageService) Get(ctx context.Context, pageKey string) (*models.EditablePageData, error) {
	if err := s.wait(ctx, s.conf.PageRead); err != nil {
		return nil, err
	}

	if doc, ok := s.stored(pageKey); ok {
		return doc, nil
	}
	if pageKey == s.historyPageKey {
		return DefaultHistoryPage(), nil
	}
	return PlaceholderPage(), nil
}

// Save overwrites the stored document wholesale. The previous version, if
// any, goes to the revision archive first.
func (s *PageService) Save(ctx context.Context, pageKey string, doc *models.EditablePageData) error {
	if err := s.wait(ctx, s.conf.PageWrite); err != nil {
		return err
	}

	if previous, ok := s.stored(pageKey); ok {
		if err := s.archiver.Archive(pageKey, previous); err != nil {
			s.logger.Errorf(providers.TypeApp, "Failed to archive page %q: %s", pageKey, err)
		}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.store.Set(storage.PageContentKey(pageKey), raw)
	return nil
}

func (s *PageService) Revisions(ctx context.Context, pageKey string) ([]persistence.Revision, error) {
	if err := s.wait(ctx, s.conf.PageRead); err != nil {
		return nil, err
	}
	return s.archiver.Revisions(pageKey)
}

// stored returns the persisted document for the key. A corrupt payload is
// reported and treated as absent, so the default path takes over.
func (s *PageService) stored(pageKey string) (*models.EditablePageData, bool) {
	raw, ok := s.store.Get(storage.PageContentKey(pageKey))
	if !ok {
		return nil, false
	}
	var doc models.EditablePageData
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warnf(providers.TypeApp, "Corrupt page document %q, falling back to defaults: %s", pageKey, err)
		return nil, false
	}
	return &doc, true
}
