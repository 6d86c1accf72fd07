//go:generate go run go.uber.org/mock/mockgen -source=api.go -destination=../mocks/mock_api.go -package=mocks
package client

import (
	"context"
	"io"
	"time"

	"pdfkita/domain"
)

// UploadResult is the server's answer to a file upload: the name the caller
// sent and the canonical name the server stored the file under.
type UploadResult struct {
	OriginalName string `json:"originalname"`
	Filename     string `json:"filename"`
}

// DownloadLog is the payload of the fire-and-forget download log call.
type DownloadLog struct {
	FileName string    `json:"fileName"`
	UserName string    `json:"userName"`
	Size     *int64    `json:"size"`
	Date     time.Time `json:"date"`
}

// Profile is the subset of the remote user profile the client displays.
type Profile struct {
	Email string `json:"email"`
}

// IConvertAPI is the remote conversion/storage service. It owns file
// content; the local store only keeps presentation state and history.
type IConvertAPI interface {
	// UploadFile posts the raw content as a multipart form and returns the
	// server's canonical naming for it.
	UploadFile(ctx context.Context, name string, content io.Reader) (UploadResult, error)
	// DeleteFile asks the server to forget the file with that name.
	DeleteFile(ctx context.Context, name string) error
	// Convert asks for a PDF rendition and returns the produced file's URL.
	Convert(ctx context.Context, kind domain.Kind, fileName string) (string, error)
	// LogDownload records a download event server-side. Best effort only.
	LogDownload(ctx context.Context, entry DownloadLog) error
	// UserByUsername resolves a display name to profile data.
	UserByUsername(ctx context.Context, name string) (Profile, error)
	// Fetch retrieves the content behind a produced file URL. Relative URLs
	// are resolved against the service base address.
	Fetch(ctx context.Context, fileURL string) ([]byte, error)
}
