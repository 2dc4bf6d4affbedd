package upload

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"

	"github.com/amishk599/resumecheck/internal/model"
)

const (
	fieldFile           = "file"
	fieldJobDescription = "jobDescription"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// payload builds the multipart/form-data body of an upload request.
type payload struct {
	buf bytes.Buffer
	w   *multipart.Writer
}

func newPayload() *payload {
	p := &payload{}
	p.w = multipart.NewWriter(&p.buf)
	return p
}

// addFile writes the "file" part with the declared media type of the resume,
// unlike multipart.Writer.CreateFormFile which always sends octet-stream.
func (p *payload) addFile(name, mediaType string, r io.Reader) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		fieldFile, quoteEscaper.Replace(name)))
	h.Set("Content-Type", mediaType)

	part, err := p.w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("write file part: %w", err)
	}
	return nil
}

// addJobDescription attaches the job description only when it has
// non-whitespace content. It reports whether the part was written.
func (p *payload) addJobDescription(text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	if err := p.w.WriteField(fieldJobDescription, text); err != nil {
		return false, fmt.Errorf("write jobDescription field: %w", err)
	}
	return true, nil
}

// finish closes the writer and returns the body and its content type.
func (p *payload) finish() (*bytes.Buffer, string, error) {
	if err := p.w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &p.buf, p.w.FormDataContentType(), nil
}

// buildPayload reads the resume from disk and encodes the submission.
func buildPayload(sub model.Submission) (*bytes.Buffer, string, error) {
	f, err := os.Open(sub.File.Path)
	if err != nil {
		return nil, "", fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	p := newPayload()
	if err := p.addFile(sub.File.Name, sub.File.MediaType, f); err != nil {
		return nil, "", err
	}
	if _, err := p.addJobDescription(sub.JobDescription); err != nil {
		return nil, "", err
	}
	return p.finish()
}
