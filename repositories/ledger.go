//go:generate go run go.uber.org/mock/mockgen -source=ledger.go -destination=../mocks/mock_ledger.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"pdfkita/domain"
)

// LedgerKeyPrefix prefixes the per-namespace download history keys.
const LedgerKeyPrefix = "downloadedFiles_"

// IDownloadLedger is the per-user append-only history of completed
// downloads. Insertion order is the display order; there is no TTL.
type IDownloadLedger interface {
	List(namespace string) []domain.DownloadRecord
	Append(namespace string, record domain.DownloadRecord) error
	DeleteByName(namespace, name string) error
}

type DownloadLedger struct {
	store IStore
	log   *slog.Logger
}

func NewDownloadLedger(store IStore, log *slog.Logger) IDownloadLedger {
	return &DownloadLedger{store: store, log: log}
}

// LedgerKey builds the storage key isolating one namespace's history.
func LedgerKey(namespace string) string {
	if namespace == "" {
		namespace = domain.GuestNamespace
	}
	return LedgerKeyPrefix + namespace
}

// List returns the namespace's history in insertion order.
// A corrupt persisted value degrades to an empty history.
func (l *DownloadLedger) List(namespace string) []domain.DownloadRecord {
	raw, ok := l.store.Get(LedgerKey(namespace))
	if !ok {
		return nil
	}

	var records []domain.DownloadRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		var single domain.DownloadRecord
		if err := json.Unmarshal([]byte(raw), &single); err != nil {
			l.log.Warn("corrupt download ledger, treating as empty",
				"namespace", namespace, "error", err)
			return nil
		}
		return []domain.DownloadRecord{single}
	}
	return records
}

// Append adds a record to the history. Appends never merge: two downloads of
// the same file produce two entries with distinct timestamps.
func (l *DownloadLedger) Append(namespace string, record domain.DownloadRecord) error {
	return l.save(namespace, append(l.List(namespace), record))
}

// DeleteByName removes every entry carrying that name and re-persists.
// Purely local: there is no remote counterpart to this operation.
func (l *DownloadLedger) DeleteByName(namespace, name string) error {
	records := lo.Reject(l.List(namespace), func(r domain.DownloadRecord, _ int) bool {
		return r.Name == name
	})
	return l.save(namespace, records)
}

func (l *DownloadLedger) save(namespace string, records []domain.DownloadRecord) error {
	if records == nil {
		records = []domain.DownloadRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	return l.store.Set(LedgerKey(namespace), string(data))
}
