//go:generate go run go.uber.org/mock/mockgen -source=ledger_service.go -destination=../mocks/mock_ledger_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"pdfkita/client"
	"pdfkita/domain"
	"pdfkita/repositories"
)

// remoteLogTimeout bounds the background download-log call.
const remoteLogTimeout = 10 * time.Second

// ILedgerService maintains the per-user download history. The local ledger
// is authoritative for display; the remote log is a best-effort mirror.
type ILedgerService interface {
	RecordDownload(session domain.Session, selected domain.SelectedFile) (domain.DownloadRecord, error)
	ListDownloads(session domain.Session) []domain.DownloadRecord
	DeleteDownload(session domain.Session, name string) error
}

type LedgerService struct {
	api      client.IConvertAPI
	registry repositories.IUploadRegistry
	ledger   repositories.IDownloadLedger
	log      *slog.Logger

	// dispatch runs the remote mirroring task. Defaults to a goroutine;
	// tests swap in a synchronous runner.
	dispatch func(task func())
}

func NewLedgerService(
	api client.IConvertAPI,
	registry repositories.IUploadRegistry,
	ledger repositories.IDownloadLedger,
	log *slog.Logger,
) *LedgerService {
	return &LedgerService{
		api: api, registry: registry, ledger: ledger, log: log,
		dispatch: func(task func()) { go task() },
	}
}

// RecordDownload appends one history entry for the downloaded file, then
// mirrors it remotely without awaiting the result. Appends never merge, so
// downloading the same file twice yields two entries with distinct dates.
func (s *LedgerService) RecordDownload(session domain.Session, selected domain.SelectedFile) (domain.DownloadRecord, error) {
	record := domain.DownloadRecord{
		Name: selected.DisplayName,
		Date: time.Now().UTC(),
		Size: s.lookupSize(selected.DisplayName),
	}

	if err := s.ledger.Append(session.Namespace(), record); err != nil {
		return domain.DownloadRecord{}, err
	}

	entry := client.DownloadLog{
		FileName: record.Name,
		UserName: session.Namespace(),
		Size:     record.Size,
		Date:     record.Date,
	}
	s.dispatch(func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteLogTimeout)
		defer cancel()
		if err := s.api.LogDownload(ctx, entry); err != nil {
			// Never rolled back locally: the ledger already has the entry.
			s.log.Warn("remote download log failed", "file", entry.FileName, "error", err)
		}
	})

	return record, nil
}

func (s *LedgerService) ListDownloads(session domain.Session) []domain.DownloadRecord {
	return s.ledger.List(session.Namespace())
}

// DeleteDownload is purely local; the remote mirror keeps whatever it has.
func (s *LedgerService) DeleteDownload(session domain.Session, name string) error {
	return s.ledger.DeleteByName(session.Namespace(), name)
}

// lookupSize cross-references the upload registry. The ledger stores the
// produced PDF's name while the registry holds source names, so the match
// falls back to comparing name stems. nil when nothing matches.
func (s *LedgerService) lookupSize(name string) *int64 {
	if file, ok := s.registry.Find(name); ok {
		return lo.ToPtr(file.Size)
	}
	file, ok := lo.Find(s.registry.List(), func(f domain.UploadedFile) bool {
		return domain.Stem(f.Name) == domain.Stem(name)
	})
	if !ok {
		return nil
	}
	return lo.ToPtr(file.Size)
}
