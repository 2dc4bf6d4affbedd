package upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amishk599/resumecheck/internal/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSubmission(t *testing.T, jd string) model.Submission {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jane doe.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0644))
	return model.Submission{
		ID:             "sub-123",
		File:           model.ResumeFile{Path: path, Name: "jane doe.pdf", MediaType: model.PDFMediaType, Size: 13},
		JobDescription: jd,
	}
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL+"/", srv.Client(), discardLogger())
}

func TestUpload_SendsMultipartForm(t *testing.T) {
	var (
		gotMethod, gotPath, gotRequestID string
		gotFile, gotFileName, gotFileCT  string
		gotJD                            []string
		hasJD                            bool
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get("X-Request-ID")

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		fh := r.MultipartForm.File["file"]
		if len(fh) == 1 {
			gotFileName = fh[0].Filename
			gotFileCT = fh[0].Header.Get("Content-Type")
			f, _ := fh[0].Open()
			data, _ := io.ReadAll(f)
			f.Close()
			gotFile = string(data)
		}
		gotJD, hasJD = r.MultipartForm.Value["jobDescription"]

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"resumeId":7,"status":"DONE","score":85,"skillsMatched":["Go","SQL"],"skillsMissing":[],"recommendations":["Add cloud experience"],"parserResult":{"rawText":"..."}}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv).Upload(context.Background(), testSubmission(t, "Go, SQL, AWS"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/resumes/upload", gotPath)
	assert.Equal(t, "sub-123", gotRequestID)
	assert.Equal(t, "jane doe.pdf", gotFileName)
	assert.Equal(t, "application/pdf", gotFileCT)
	assert.Equal(t, "%PDF-1.4 fake", gotFile)
	require.True(t, hasJD)
	assert.Equal(t, []string{"Go, SQL, AWS"}, gotJD)

	assert.Equal(t, int64(7), result.ResumeID)
	assert.Equal(t, 85, result.Score)
	assert.Equal(t, []string{"Go", "SQL"}, result.SkillsMatched)
	assert.Empty(t, result.SkillsMissing)
	assert.Equal(t, []string{"Add cloud experience"}, result.Recommendations)
}

func TestUpload_OmitsBlankJobDescription(t *testing.T) {
	hasJD := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		_, hasJD = r.MultipartForm.Value["jobDescription"]
		w.Write([]byte(`{"score":50,"skillsMatched":[],"skillsMissing":[],"recommendations":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Upload(context.Background(), testSubmission(t, "   "))
	require.NoError(t, err)
	assert.False(t, hasJD, "blank job description must not be attached")
}

func TestUpload_ErrorMessageFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"message":"File too large"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Upload(context.Background(), testSubmission(t, ""))
	require.Error(t, err)

	var uerr *model.UploadError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, http.StatusRequestEntityTooLarge, uerr.StatusCode)
	assert.Equal(t, "File too large", model.UserMessage(err))
}

func TestUpload_ErrorWithoutParseableBody(t *testing.T) {
	bodies := map[string]string{
		"empty":      "",
		"html":       "<html>Bad Gateway</html>",
		"no message": `{"error":"Internal Server Error"}`,
		"blank":      `{"message":"  "}`,
		"non-string": `{"message":42}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv).Upload(context.Background(), testSubmission(t, ""))
			require.Error(t, err)
			assert.Equal(t, model.FallbackErrorMessage, model.UserMessage(err))
		})
	}
}

func TestUpload_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, &http.Client{}, discardLogger())
	_, err := c.Upload(context.Background(), testSubmission(t, ""))
	require.Error(t, err)

	var uerr *model.UploadError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, 0, uerr.StatusCode)
	assert.Equal(t, model.FallbackErrorMessage, model.UserMessage(err))
}

func TestUpload_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Upload(context.Background(), testSubmission(t, ""))
	require.Error(t, err)
	assert.Equal(t, model.FallbackErrorMessage, model.UserMessage(err))
}

func TestUpload_EmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err := newTestClient(srv).Upload(context.Background(), testSubmission(t, ""))
	assert.Error(t, err)
}

func TestUpload_SingleRequestNoRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Upload(context.Background(), testSubmission(t, ""))
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestUpload_MissingFileNeverSends(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	sub := model.Submission{File: model.ResumeFile{Path: filepath.Join(t.TempDir(), "gone.pdf"), Name: "gone.pdf", MediaType: model.PDFMediaType}}
	_, err := newTestClient(srv).Upload(context.Background(), sub)
	require.Error(t, err)
	assert.Equal(t, 0, calls)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFetchAnalysis(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"resumeId":3,"score":61,"skillsMatched":["Java"],"skillsMissing":["AWS"],"recommendations":[]}`))
	}))
	defer srv.Close()

	result, err := newTestClient(srv).FetchAnalysis(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/api/resumes/3/analysis", gotPath)
	assert.Equal(t, 61, result.Score)
	assert.Equal(t, []string{"AWS"}, result.SkillsMissing)
}

func TestFetchAnalysis_UnknownID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchAnalysis(context.Background(), 99)
	require.Error(t, err)

	var uerr *model.UploadError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, http.StatusNotFound, uerr.StatusCode)
	assert.Equal(t, "No analysis found for resume 99", model.UserMessage(err))
}
