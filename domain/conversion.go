package domain

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Kind is the requested conversion target family.
type Kind string

const (
	Word  Kind = "word"
	Excel Kind = "excel"
	JPG   Kind = "jpg"
)

// Kinds lists every supported conversion kind.
func Kinds() []Kind {
	return []Kind{Word, Excel, JPG}
}

// ParseKind maps a user-supplied string to a Kind.
func ParseKind(s string) (Kind, bool) {
	kind, ok := lo.Find(Kinds(), func(k Kind) bool { return string(k) == s })
	return kind, ok
}

// Extensions returns the source extension family accepted by this kind.
func (k Kind) Extensions() []string {
	switch k {
	case Word:
		return []string{"doc", "docx"}
	case Excel:
		return []string{"xls", "xlsx"}
	case JPG:
		return []string{"jpg", "jpeg"}
	}
	return nil
}

// Accepts reports whether filename belongs to this kind's extension family.
func (k Kind) Accepts(filename string) bool {
	return lo.Contains(k.Extensions(), Extension(filename))
}

// Endpoint is the server-relative conversion endpoint for this kind.
func (k Kind) Endpoint() string {
	switch k {
	case Word:
		return "/api/convert/word-to-pdf"
	case Excel:
		return "/api/convert/excel-to-pdf"
	case JPG:
		return "/api/convert/jpg-to-pdf"
	}
	return ""
}

// JobStatus tracks the progress of a conversion attempt.
type JobStatus int

const (
	Validating JobStatus = iota
	Uploading
	Converting
	Succeeded
	Failed
)

func (s JobStatus) String() string {
	switch s {
	case Validating:
		return "validating"
	case Uploading:
		return "uploading"
	case Converting:
		return "converting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Job is one conversion attempt. It is transient: never persisted, discarded
// once it resolves to a SelectedFile or to a reported failure.
// There are no automatic retries; a new attempt starts a new job.
type Job struct {
	ID       string
	Source   UploadedFile
	Kind     Kind
	Status   JobStatus
	Selected *SelectedFile
}

// NewJob starts a conversion attempt in the Validating state.
func NewJob(source UploadedFile, kind Kind) *Job {
	return &Job{
		ID:     uuid.New().String(),
		Source: source,
		Kind:   kind,
		Status: Validating,
	}
}

// Fail moves the job to its terminal Failed state.
func (j *Job) Fail() { j.Status = Failed }

// Succeed records the produced file and moves the job to Succeeded.
func (j *Job) Succeed(selected SelectedFile) {
	j.Selected = &selected
	j.Status = Succeeded
}
