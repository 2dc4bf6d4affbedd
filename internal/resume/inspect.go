// Package resume describes files picked by the user before they are uploaded.
package resume

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/amishk599/resumecheck/internal/model"
)

// Inspect stats the file at path and reports its declared media type.
// The media type comes from the extension only; content is not sniffed.
// Page count is filled in for PDFs when the document can be opened.
func Inspect(path string) (model.ResumeFile, error) {
	path = expandHome(strings.TrimSpace(path))
	name := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		return model.ResumeFile{Path: path, Name: name}, fmt.Errorf("stat %s: %w", name, err)
	}
	if info.IsDir() {
		return model.ResumeFile{Path: path, Name: name}, fmt.Errorf("%s is a directory", name)
	}

	f := model.ResumeFile{
		Path:      path,
		Name:      name,
		MediaType: DeclaredMediaType(name),
		Size:      info.Size(),
	}
	if f.IsPDF() {
		f.Pages = countPages(path)
	}
	return f, nil
}

// Reason returns the underlying cause of an Inspect error without the
// operation and path prefix.
func Reason(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

// DeclaredMediaType maps a file name to its media type by extension,
// without any parameters. Unknown extensions yield "".
func DeclaredMediaType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(mime.TypeByExtension(ext))
	if err != nil {
		return ""
	}
	return mt
}

// countPages returns the page count of a PDF, or 0 if it cannot be parsed.
func countPages(path string) (pages int) {
	// The parser panics on some malformed trailers.
	defer func() {
		if recover() != nil {
			pages = 0
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()
	return r.NumPage()
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
