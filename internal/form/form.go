// Package form holds the state of the resume upload form: the picked file,
// the job description, and the lifecycle of the latest submission.
package form

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/amishk599/resumecheck/internal/model"
)

const (
	MsgNotPDF       = "Please select a PDF file"
	MsgNoFileChosen = "Please select a file"
)

// State is the lifecycle state of the latest submission.
type State int

const (
	Idle State = iota
	InFlight
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Form is not safe for concurrent use; the host UI owns it from a single
// event loop.
type Form struct {
	file           *model.ResumeFile
	jobDescription string
	state          State
	loading        bool
	result         *model.AnalysisResult
	errMsg         string
}

// New returns an idle form with nothing selected.
func New() *Form {
	return &Form{}
}

// SelectFile accepts f only if its declared media type is application/pdf.
// A rejected pick clears any previous selection.
func (f *Form) SelectFile(file model.ResumeFile) {
	if !file.IsPDF() {
		f.file = nil
		f.errMsg = MsgNotPDF
		return
	}
	f.file = &file
	f.errMsg = ""
}

// RejectFile clears the selection with a custom message, used when the
// picked path could not be read at all.
func (f *Form) RejectFile(msg string) {
	f.file = nil
	f.errMsg = msg
}

// SetJobDescription replaces the job description text verbatim.
func (f *Form) SetJobDescription(text string) {
	f.jobDescription = text
}

// Begin starts a submission. It returns false, without touching the
// state, when no file is selected; the form then shows MsgNoFileChosen.
// It does not refuse while another submission is in flight: the host UI
// keeps its submit control disabled for that.
func (f *Form) Begin() (model.Submission, bool) {
	if f.file == nil {
		f.errMsg = MsgNoFileChosen
		return model.Submission{}, false
	}

	f.state = InFlight
	f.loading = true
	f.errMsg = ""

	return model.Submission{
		ID:             uuid.NewString(),
		File:           *f.file,
		JobDescription: strings.TrimSpace(f.jobDescription),
	}, true
}

// Resolve records the outcome of a submission. On failure the result of an
// earlier successful submission is kept and shown under the new error.
func (f *Form) Resolve(result *model.AnalysisResult, err error) {
	f.loading = false
	if err != nil {
		f.state = Failed
		f.errMsg = model.UserMessage(err)
		return
	}
	f.state = Succeeded
	f.result = result
}

// Submit runs one full submission cycle synchronously.
// It reports whether a request was sent.
func (f *Form) Submit(ctx context.Context, uploader model.ResumeUploader) bool {
	sub, ok := f.Begin()
	if !ok {
		return false
	}
	f.Resolve(uploader.Upload(ctx, sub))
	return true
}

// CanSubmit reports whether the submit control is enabled.
func (f *Form) CanSubmit() bool {
	return f.file != nil && !f.loading
}

func (f *Form) File() *model.ResumeFile { return f.file }
func (f *Form) JobDescription() string { return f.jobDescription }
func (f *Form) State() State { return f.state }
func (f *Form) Loading() bool { return f.loading }
func (f *Form) Result() *model.AnalysisResult { return f.result }
func (f *Form) ErrorMessage() string { return f.errMsg }
