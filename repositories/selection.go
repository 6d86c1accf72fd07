//go:generate go run go.uber.org/mock/mockgen -source=selection.go -destination=../mocks/mock_selection.go -package=mocks
package repositories

import "pdfkita/domain"

// Keys for the current conversion result. Two plain-string keys rather than
// one JSON document: a crash between the two writes must be tolerated by
// readers, so each key degrades independently.
const (
	KeySelectedFile     = "selectedFile"
	KeySelectedFileName = "selectedFileName"
)

// ISelectionRepository persists the most recent conversion result until the
// next conversion overwrites it.
type ISelectionRepository interface {
	Load() (domain.SelectedFile, bool)
	Save(selected domain.SelectedFile) error
}

type SelectionRepository struct {
	store IStore
}

func NewSelectionRepository(store IStore) ISelectionRepository {
	return &SelectionRepository{store: store}
}

// Load returns the last selection. A missing URL means no selection; a
// missing display name falls back to a generic one so a partial write
// still yields a usable selection.
func (s *SelectionRepository) Load() (domain.SelectedFile, bool) {
	url, ok := s.store.Get(KeySelectedFile)
	if !ok || url == "" {
		return domain.SelectedFile{}, false
	}
	name, ok := s.store.Get(KeySelectedFileName)
	if !ok || name == "" {
		name = "download.pdf"
	}
	return domain.SelectedFile{URL: url, DisplayName: name}, true
}

func (s *SelectionRepository) Save(selected domain.SelectedFile) error {
	if err := s.store.Set(KeySelectedFile, selected.URL); err != nil {
		return err
	}
	return s.store.Set(KeySelectedFileName, selected.DisplayName)
}
