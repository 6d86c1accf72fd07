//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=../mocks/mock_resolver.go -package=mocks
package services

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"pdfkita/domain"
	"pdfkita/errors"
	"pdfkita/repositories"
)

// IResolver reconstructs a retrievable URL for a historical download. A
// re-download may happen long after the conversion, when only the filename
// and the upload registry still identify the content.
type IResolver interface {
	ResolveURL(record domain.DownloadRecord) (string, error)
}

type Resolver struct {
	baseURL   string
	registry  repositories.IUploadRegistry
	selection repositories.ISelectionRepository
	log       *slog.Logger
}

func NewResolver(
	baseURL string,
	registry repositories.IUploadRegistry,
	selection repositories.ISelectionRepository,
	log *slog.Logger,
) IResolver {
	return &Resolver{
		baseURL:   strings.TrimRight(baseURL, "/"),
		registry:  registry,
		selection: selection,
		log:       log,
	}
}

// ResolveURL tries, in order: the matching registry entry's remote path
// combined with the base address, then the last conversion result's URL.
// Stale absolute URLs pointing at a loopback host are rewritten onto the
// configured base address.
func (r *Resolver) ResolveURL(record domain.DownloadRecord) (string, error) {
	if file, ok := r.findSource(record.Name); ok && file.RemotePath != "" {
		return r.baseURL + file.RemotePath, nil
	}

	if selected, ok := r.selection.Load(); ok {
		return r.normalize(selected.URL), nil
	}

	return "", errors.ErrFileNotFound
}

// findSource matches the ledger entry (a PDF name) against the registry's
// source names, exact first, then by stem.
func (r *Resolver) findSource(name string) (domain.UploadedFile, bool) {
	if file, ok := r.registry.Find(name); ok {
		return file, true
	}
	return lo.Find(r.registry.List(), func(f domain.UploadedFile) bool {
		return domain.Stem(f.Name) == domain.Stem(name)
	})
}

// normalize rewrites loopback hosts recorded before a base-address change.
func (r *Resolver) normalize(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}
	host := parsed.Hostname()
	if host == "localhost" || host == "127.0.0.1" || host == "::1" {
		return r.baseURL + parsed.Path
	}
	return rawURL
}
