package kvstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// File is a Store persisted as a single JSON object in one file, the
// process-local analogue of a browser's per-origin local storage. The whole
// snapshot is loaded on open and rewritten on every mutation; record counts
// here are tiny, so that is fine.
type File struct {
	mu      sync.RWMutex
	path    string
	records map[string]string
	logger  *zap.Logger
}

// OpenFile loads (or creates) the store at path.
func OpenFile(path string, logger *zap.Logger) *File {
	f := &File{
		path:    path,
		records: make(map[string]string),
		logger:  logger,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("unable to read storage file, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return f
	}
	if err := json.Unmarshal(data, &f.records); err != nil {
		logger.Warn("storage file is corrupt, starting empty",
			zap.String("path", path), zap.Error(err))
		f.records = make(map[string]string)
	}
	return f
}

func (f *File) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	val, ok := f.records[key]
	return val, ok
}

func (f *File) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[key] = value
	f.flushLocked()
}

func (f *File) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, key)
	f.flushLocked()
}

func (f *File) flushLocked() {
	data, err := json.MarshalIndent(f.records, "", "  ")
	if err != nil {
		f.logger.Warn("unable to encode storage snapshot", zap.Error(err))
		return
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			f.logger.Warn("unable to create storage directory",
				zap.String("dir", dir), zap.Error(err))
			return
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		f.logger.Warn("unable to write storage file",
			zap.String("path", f.path), zap.Error(err))
	}
}
