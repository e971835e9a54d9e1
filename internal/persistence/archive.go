package persistence

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"acsd/internal/models"
	"acsd/internal/persistence/interfaces"
	"acsd/internal/providers"
	"acsd/internal/structures"

	json "github.com/goccy/go-json"
)

// Revision is one archived version of a page document.
type Revision struct {
	Document *models.EditablePageData `json:"document"`
	SavedAt  time.Time                `json:"saved_at"`
}

// revisionFile is the on-disk format for a single page's archive.
type revisionFile struct {
	Revisions []Revision `json:"revisions"`
}

// PageArchiver records superseded page documents so an admin edit can be
// recovered. A nil-safe noop is returned when no archive dir is configured.
type PageArchiver interface {
	Archive(pageKey string, doc *models.EditablePageData) error
	Revisions(pageKey string) ([]Revision, error)
}

// PageArchive keeps one compressed file per page key under dir. Every
// Archive call appends a revision and prunes entries older than ttl.
// Unreadable archive files are dropped with a warning, never a failure.
type PageArchive struct {
	mu         sync.Mutex
	dir        string
	ttl        time.Duration
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

// NewPageArchiver builds the archiver from configuration.
func NewPageArchiver(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) PageArchiver {
	return NewPageArchive(conf.Persistence.ArchiveDir, conf.Persistence.ArchiveTTL, compressor, logger)
}

func NewPageArchive(dir string, ttl time.Duration, compressor interfaces.CompressorInterface, logger providers.Logger) PageArchiver {
	if dir == "" {
		return &noopArchive{}
	}
	return &PageArchive{
		dir:        dir,
		ttl:        ttl,
		compressor: compressor,
		logger:     logger,
	}
}

func (pa *PageArchive) Archive(pageKey string, doc *models.EditablePageData) error {
	pa.mu.Lock()
	defer pa.mu.Unlock()

	rf := pa.loadRevisionFile(pageKey)
	rf.Revisions = append(rf.Revisions, Revision{
		Document: doc.Clone(),
		SavedAt:  time.Now(),
	})

	if pa.ttl > 0 {
		cutoff := time.Now().Add(-pa.ttl)
		kept := rf.Revisions[:0]
		for _, rev := range rf.Revisions {
			if rev.SavedAt.After(cutoff) {
				kept = append(kept, rev)
			}
		}
		rf.Revisions = kept
	}

	return pa.writeRevisionFile(pageKey, rf)
}

func (pa *PageArchive) Revisions(pageKey string) ([]Revision, error) {
	pa.mu.Lock()
	defer pa.mu.Unlock()

	rf := pa.loadRevisionFile(pageKey)
	sort.Slice(rf.Revisions, func(i, j int) bool {
		return rf.Revisions[i].SavedAt.After(rf.Revisions[j].SavedAt)
	})
	return rf.Revisions, nil
}

// loadRevisionFile reads and decompresses a page's archive from disk.
// Must be called under pa.mu.
func (pa *PageArchive) loadRevisionFile(pageKey string) *revisionFile {
	path := pa.revisionFilePath(pageKey)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			pa.logger.Errorf(providers.TypeApp, "Failed to read archive %s: %s", path, err)
		}
		return &revisionFile{}
	}

	decompressed, err := pa.compressor.Decompress(data)
	if err != nil {
		pa.logger.Warnf(providers.TypeApp, "Archive %s is unreadable, dropping it: %s", path, err)
		return &revisionFile{}
	}

	var rf revisionFile
	if err := json.Unmarshal(decompressed, &rf); err != nil {
		pa.logger.Warnf(providers.TypeApp, "Archive %s is corrupt, dropping it: %s", path, err)
		return &revisionFile{}
	}
	return &rf
}

// writeRevisionFile serializes and atomically writes a page's archive.
// Must be called under pa.mu.
func (pa *PageArchive) writeRevisionFile(pageKey string, rf *revisionFile) error {
	jsonData, err := json.Marshal(rf)
	if err != nil {
		return err
	}

	compressed, err := pa.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	path := pa.revisionFilePath(pageKey)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0644); err != nil {
		return err
	}

	return os.Rename(tmpFile, path)
}

func (pa *PageArchive) revisionFilePath(pageKey string) string {
	return filepath.Join(pa.dir, sanitizeFileName(pageKey)+".rev.zst")
}

// sanitizeFileName keeps page keys from escaping the archive dir.
func sanitizeFileName(key string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	return r.Replace(key)
}

type noopArchive struct{}

func (n *noopArchive) Archive(_ string, _ *models.EditablePageData) error { return nil }
func (n *noopArchive) Revisions(_ string) ([]Revision, error)             { return nil, nil }
