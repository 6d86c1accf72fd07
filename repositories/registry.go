//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=../mocks/mock_registry.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"pdfkita/domain"
)

// KeyUploadedFiles holds the JSON array of staged files.
const KeyUploadedFiles = "uploadedFile"

// IUploadRegistry persists the list of files staged for conversion,
// in insertion order, keyed by original filename.
type IUploadRegistry interface {
	List() []domain.UploadedFile
	Find(name string) (domain.UploadedFile, bool)
	Put(file domain.UploadedFile) error
	Delete(name string) error
}

type UploadRegistry struct {
	store IStore
	log   *slog.Logger
}

func NewUploadRegistry(store IStore, log *slog.Logger) IUploadRegistry {
	return &UploadRegistry{store: store, log: log}
}

// List returns the staged files in insertion order. A missing or malformed
// persisted value degrades to an empty list so the workflow never blocks on
// a broken store; the next Put repairs the key.
func (r *UploadRegistry) List() []domain.UploadedFile {
	raw, ok := r.store.Get(KeyUploadedFiles)
	if !ok {
		return nil
	}

	var files []domain.UploadedFile
	if err := json.Unmarshal([]byte(raw), &files); err != nil {
		// Tolerate a single-object legacy value before giving up.
		var single domain.UploadedFile
		if err := json.Unmarshal([]byte(raw), &single); err != nil {
			r.log.Warn("corrupt upload registry, treating as empty", "error", err)
			return nil
		}
		return []domain.UploadedFile{single}
	}
	return files
}

func (r *UploadRegistry) Find(name string) (domain.UploadedFile, bool) {
	return lo.Find(r.List(), func(f domain.UploadedFile) bool {
		return f.Name == name
	})
}

// Put appends the file, replacing any existing record with the same name so
// a re-upload never silently duplicates a registry entry.
func (r *UploadRegistry) Put(file domain.UploadedFile) error {
	files := lo.Reject(r.List(), func(f domain.UploadedFile, _ int) bool {
		return f.Name == file.Name
	})
	return r.save(append(files, file))
}

func (r *UploadRegistry) Delete(name string) error {
	files := lo.Reject(r.List(), func(f domain.UploadedFile, _ int) bool {
		return f.Name == name
	})
	return r.save(files)
}

func (r *UploadRegistry) save(files []domain.UploadedFile) error {
	if files == nil {
		files = []domain.UploadedFile{}
	}
	data, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	return r.store.Set(KeyUploadedFiles, string(data))
}
