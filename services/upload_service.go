//go:generate go run go.uber.org/mock/mockgen -source=upload_service.go -destination=../mocks/mock_upload_service.go -package=mocks
package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"

	"pdfkita/client"
	"pdfkita/domain"
	"pdfkita/errors"
	"pdfkita/repositories"
)

// placeholderOwner stands in for a real owner reference while uploads are
// single-user.
const placeholderOwner = 1

// IUploadService manages the files staged for conversion: local registry
// plus the remote copies it mirrors.
type IUploadService interface {
	ListFiles() []domain.UploadedFile
	ValidateExtension(filename string) bool
	AddFile(ctx context.Context, name string, content []byte) (domain.UploadedFile, error)
	RemoveFile(ctx context.Context, name string) error
}

type UploadService struct {
	api      client.IConvertAPI
	registry repositories.IUploadRegistry
	log      *slog.Logger
}

func NewUploadService(api client.IConvertAPI, registry repositories.IUploadRegistry, log *slog.Logger) IUploadService {
	return &UploadService{api: api, registry: registry, log: log}
}

func (s *UploadService) ListFiles() []domain.UploadedFile {
	return s.registry.List()
}

func (s *UploadService) ValidateExtension(filename string) bool {
	return domain.ValidExtension(filename)
}

// AddFile uploads the raw content and, only on success, records the file in
// the registry under the server's canonical naming. A rejected extension or
// a failed upload leaves the registry untouched.
func (s *UploadService) AddFile(ctx context.Context, name string, content []byte) (domain.UploadedFile, error) {
	if !domain.ValidExtension(name) {
		return domain.UploadedFile{}, fmt.Errorf("%w: %q", errors.ErrInvalidExtension, name)
	}

	result, err := s.api.UploadFile(ctx, name, bytes.NewReader(content))
	if err != nil {
		return domain.UploadedFile{}, err
	}

	file := domain.UploadedFile{
		Name:       result.OriginalName,
		Size:       int64(len(content)),
		MimeType:   mimetype.Detect(content).String(),
		RemotePath: "/uploads/" + result.Filename,
		UploadedBy: placeholderOwner,
	}
	if err := s.registry.Put(file); err != nil {
		return domain.UploadedFile{}, fmt.Errorf("persist registry: %w", err)
	}

	s.log.Info("file staged", "name", file.Name, "size", file.Size, "type", file.MimeType)
	return file, nil
}

// RemoveFile requests remote deletion first; the local record goes away only
// when the server confirmed. Locally present but remotely absent is the one
// divergence this workflow never accepts.
func (s *UploadService) RemoveFile(ctx context.Context, name string) error {
	if err := s.api.DeleteFile(ctx, name); err != nil {
		return err
	}
	return s.registry.Delete(name)
}
