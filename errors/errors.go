package errors

import "fmt"

var (
	// Validation failures: reported immediately, no network call is made.
	ErrInvalidExtension  = fmt.Errorf("file extension is not allowed")
	ErrExtensionMismatch = fmt.Errorf("file extension does not match the conversion type")
	ErrNoFileSelected    = fmt.Errorf("no file selected")
	ErrInvalidLogin      = fmt.Errorf("invalid login input")

	// QuotaExceeded means the anonymous session used its free conversion.
	ErrQuotaExceeded = fmt.Errorf("guest conversion quota exceeded")

	// Transport failures: the remote call failed or returned a non-success status.
	ErrUploadFailed       = fmt.Errorf("file upload failed")
	ErrRemoteDeleteFailed = fmt.Errorf("remote file deletion failed")
	ErrConversionFailed   = fmt.Errorf("conversion failed")

	ErrFileNotFound = fmt.Errorf("file not found")
)
