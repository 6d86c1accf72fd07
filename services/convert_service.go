//go:generate go run go.uber.org/mock/mockgen -source=convert_service.go -destination=../mocks/mock_convert_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"pdfkita/client"
	"pdfkita/domain"
	"pdfkita/errors"
	"pdfkita/repositories"
)

// IConvertService drives the validate → quota → convert → deliver sequence.
type IConvertService interface {
	// Convert turns the named staged file into a PDF.
	Convert(ctx context.Context, sourceName string, kind domain.Kind) (*domain.Job, error)
	// ConvertFirst converts the oldest staged file.
	ConvertFirst(ctx context.Context, kind domain.Kind) (*domain.Job, error)
}

type ConvertService struct {
	api       client.IConvertAPI
	registry  repositories.IUploadRegistry
	selection repositories.ISelectionRepository
	sessions  repositories.ISessionRepository
	quota     IQuotaGate
	log       *slog.Logger
}

func NewConvertService(
	api client.IConvertAPI,
	registry repositories.IUploadRegistry,
	selection repositories.ISelectionRepository,
	sessions repositories.ISessionRepository,
	quota IQuotaGate,
	log *slog.Logger,
) IConvertService {
	return &ConvertService{
		api: api, registry: registry, selection: selection,
		sessions: sessions, quota: quota, log: log,
	}
}

// ConvertFirst keeps the historical single-file behavior: the implicit
// source is the oldest registry entry.
func (s *ConvertService) ConvertFirst(ctx context.Context, kind domain.Kind) (*domain.Job, error) {
	files := s.registry.List()
	if len(files) == 0 {
		return nil, errors.ErrNoFileSelected
	}
	return s.convert(ctx, files[0], kind)
}

func (s *ConvertService) Convert(ctx context.Context, sourceName string, kind domain.Kind) (*domain.Job, error) {
	if len(s.registry.List()) == 0 {
		return nil, errors.ErrNoFileSelected
	}
	source, ok := s.registry.Find(sourceName)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not staged", errors.ErrFileNotFound, sourceName)
	}
	return s.convert(ctx, source, kind)
}

// convert runs the job state machine. Ordering is deliberate: the quota is
// consumed before the remote call, so a transport failure after consumption
// still counts against the guest's one free conversion.
func (s *ConvertService) convert(ctx context.Context, source domain.UploadedFile, kind domain.Kind) (*domain.Job, error) {
	job := domain.NewJob(source, kind)

	if !kind.Accepts(source.Name) {
		job.Fail()
		return job, fmt.Errorf("%w: %q is not a %s source",
			errors.ErrExtensionMismatch, source.Name, kind)
	}

	if !s.quota.TryConsume(s.sessions.Current()) {
		job.Fail()
		return job, errors.ErrQuotaExceeded
	}

	job.Status = domain.Converting
	fileURL, err := s.api.Convert(ctx, kind, source.Name)
	if err != nil {
		job.Fail()
		return job, err
	}

	selected := domain.SelectedFile{
		URL:         fileURL,
		DisplayName: domain.PDFName(source.Name),
	}
	if err := s.selection.Save(selected); err != nil {
		job.Fail()
		return job, fmt.Errorf("persist selection: %w", err)
	}

	job.Succeed(selected)
	s.log.Info("conversion succeeded",
		"job", job.ID, "source", source.Name, "kind", kind, "url", fileURL)
	return job, nil
}
