package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pdfkita/domain"
	apperrors "pdfkita/errors"
)

// ConvertAPI talks to the remote conversion service over HTTP/JSON.
type ConvertAPI struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewConvertAPI(baseURL string, timeout time.Duration, log *slog.Logger) *ConvertAPI {
	return &ConvertAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// BaseURL returns the configured service base address.
func (a *ConvertAPI) BaseURL() string {
	return a.baseURL
}

// UploadFile streams the content as the "file" field of a multipart form.
func (a *ConvertAPI) UploadFile(ctx context.Context, name string, content io.Reader) (UploadResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("file", name)
	if err != nil {
		return UploadResult{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, content); err != nil {
		return UploadResult{}, fmt.Errorf("copy file content: %w", err)
	}
	if err := w.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/files/upload", &buf)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := a.client.Do(req)
	if err != nil {
		return UploadResult{}, fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return UploadResult{}, fmt.Errorf("%w: status %d", apperrors.ErrUploadFailed, resp.StatusCode)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return UploadResult{}, fmt.Errorf("%w: decode response: %v", apperrors.ErrUploadFailed, err)
	}
	return result, nil
}

// DeleteFile issues DELETE /api/files/{name} with the name URL-encoded.
func (a *ConvertAPI) DeleteFile(ctx context.Context, name string) error {
	endpoint := a.baseURL + "/api/files/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrRemoteDeleteFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", apperrors.ErrRemoteDeleteFailed, resp.StatusCode)
	}
	return nil
}

// Convert posts {fileName} to the kind-mapped endpoint and returns the
// produced file's URL.
func (a *ConvertAPI) Convert(ctx context.Context, kind domain.Kind, fileName string) (string, error) {
	body := struct {
		FileName string `json:"fileName"`
	}{FileName: fileName}

	var result struct {
		FileURL string `json:"fileUrl"`
	}
	if err := a.postJSON(ctx, kind.Endpoint(), body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrConversionFailed, err)
	}
	return result.FileURL, nil
}

// LogDownload posts a download event. Callers treat any failure as
// non-fatal; the local ledger stays authoritative.
func (a *ConvertAPI) LogDownload(ctx context.Context, entry DownloadLog) error {
	return a.postJSON(ctx, "/api/files/log-download", entry, nil)
}

// UserByUsername fetches profile data for display purposes.
func (a *ConvertAPI) UserByUsername(ctx context.Context, name string) (Profile, error) {
	endpoint := a.baseURL + "/api/users/by-username/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Profile{}, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return Profile{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Profile{}, fmt.Errorf("profile lookup: status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, fmt.Errorf("profile lookup: decode response: %w", err)
	}
	return profile, nil
}

// Fetch downloads the content behind fileURL. A server-relative URL is
// resolved against the base address.
func (a *ConvertAPI) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	if strings.HasPrefix(fileURL, "/") {
		fileURL = a.baseURL + fileURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrFileNotFound, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (a *ConvertAPI) postJSON(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
