package persistence

import (
	"os"

	"acsd/internal/persistence/interfaces"
	"acsd/internal/providers"
	"acsd/internal/storage"

	json "github.com/goccy/go-json"
)

const snapshotVersion = 1

// snapshotEnvelope is the on-disk format: a versioned dump of the whole
// storage namespace. Values are the raw stored blobs.
type snapshotEnvelope struct {
	Version int               `json:"version"`
	Entries map[string][]byte `json:"entries"`
}

// FileManager persists the storage namespace to a single compressed file
// and restores it on startup. A snapshot that cannot be read back is
// treated as absent: the daemon starts empty rather than refusing to boot.
type FileManager struct {
	store      storage.Store
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, store storage.Store, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		store:      store,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	envelope := snapshotEnvelope{
		Version: snapshotVersion,
		Entries: f.store.Snapshot(),
	}

	jsonData, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "Snapshot %s is unreadable, starting empty: %s", fileName, err)
		return nil
	}

	var envelope snapshotEnvelope
	if err := json.Unmarshal(decompressedData, &envelope); err != nil {
		f.logger.Warnf(providers.TypeApp, "Snapshot %s is corrupt, starting empty: %s", fileName, err)
		return nil
	}
	if envelope.Version != snapshotVersion || envelope.Entries == nil {
		f.logger.Warnf(providers.TypeApp, "Snapshot %s has unsupported version %d, starting empty", fileName, envelope.Version)
		return nil
	}

	f.store.Restore(envelope.Entries)
	return nil
}
