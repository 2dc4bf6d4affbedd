package model

import "context"

// PDFMediaType is the only media type the upload form accepts.
const PDFMediaType = "application/pdf"

// ResumeFile is a file picked by the user, described by what the picker
// declares about it. The content is only read when the upload is sent.
type ResumeFile struct {
	Path      string
	Name      string // base name shown to the user and sent as the part filename
	MediaType string // declared by extension, never sniffed
	Size      int64
	Pages     int // 0 when unknown
}

// IsPDF reports whether the declared media type is exactly application/pdf.
func (f ResumeFile) IsPDF() bool {
	return f.MediaType == PDFMediaType
}

// AnalysisResult is the report returned by the analysis backend.
type AnalysisResult struct {
	ResumeID        int64    `json:"resumeId,omitempty"`
	Status          string   `json:"status,omitempty"`
	Score           int      `json:"score"`
	SkillsMatched   []string `json:"skillsMatched"`
	SkillsMissing   []string `json:"skillsMissing"`
	Recommendations []string `json:"recommendations"`
}

// Submission is one upload attempt handed to a ResumeUploader.
type Submission struct {
	ID             string // correlation ID, sent as X-Request-ID
	File           ResumeFile
	JobDescription string // already trimmed; empty means "not attached"
}

// ResumeUploader sends a submission to the analysis backend.
type ResumeUploader interface {
	Upload(ctx context.Context, sub Submission) (*AnalysisResult, error)
}

// AnalysisFetcher loads a previously computed analysis by resume ID.
type AnalysisFetcher interface {
	FetchAnalysis(ctx context.Context, resumeID int64) (*AnalysisResult, error)
}
