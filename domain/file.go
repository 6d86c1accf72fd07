package domain

import (
	"path"
	"strings"
	"time"
)

// UploadedFile is a file staged for conversion. JSON tags match the persisted
// registry format: the registry key holds a JSON array of these.
type UploadedFile struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	MimeType   string `json:"type"`
	RemotePath string `json:"path"`
	UploadedBy int    `json:"uploadedBy"`
}

// SelectedFile is the result of the last successful conversion, handed off
// to the download step. It lives until the next conversion overwrites it.
type SelectedFile struct {
	URL         string
	DisplayName string
}

// DownloadRecord is one entry of the per-user download history.
// Size is nil when the registry no longer knows the original file.
type DownloadRecord struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
	Size *int64    `json:"size"`
}

// allowed upload extensions, lowercase, without the dot
var allowedExtensions = map[string]struct{}{
	"doc": {}, "docx": {},
	"xls": {}, "xlsx": {},
	"jpg": {}, "jpeg": {},
}

// Extension returns the lowercase suffix after the last dot,
// or "" when the filename has none.
func Extension(filename string) string {
	ext := path.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ValidExtension reports whether filename carries one of the accepted
// office/image suffixes. A name without extension is rejected.
func ValidExtension(filename string) bool {
	_, ok := allowedExtensions[Extension(filename)]
	return ok
}

// Stem returns the filename without its extension.
func Stem(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename))
}

// PDFName replaces the extension of filename with ".pdf".
func PDFName(filename string) string {
	return Stem(filename) + ".pdf"
}
