package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crediverse/resume-analyzer/internal/config"
	"github.com/crediverse/resume-analyzer/internal/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Defaults() // no DatabaseURL: persistence disabled
	srv, err := New(cfg, pipeline.DefaultOptions())
	require.NoError(t, err)
	return srv
}

func doRequest(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestAnalyzeText_ReturnsReport(t *testing.T) {
	srv := newTestServer(t)

	body := `{"resume_text": "Experience\nBuilt APIs in Python and React.\nEducation\nBS Computer Science"}`
	req := httptest.NewRequest("POST", "/analyze/text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 40, resp.Report.Score.Total)
	assert.Contains(t, resp.Report.Skills, "python")
	assert.Contains(t, resp.Report.Skills, "react")
	assert.Nil(t, resp.Report.Coverage)
	assert.Nil(t, resp.ID)
}

func TestAnalyzeText_WithJobDescription(t *testing.T) {
	srv := newTestServer(t)

	body := `{"resume_text": "Skills\npython developer", "job_description": "Python SQL Docker"}`
	req := httptest.NewRequest("POST", "/analyze/text", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(srv, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Report.Coverage)
	assert.Equal(t, 33, resp.Report.Coverage.Percent)
	assert.Equal(t, []string{"python"}, resp.Report.Coverage.Present)
}

func TestAnalyzeText_MissingResumeText(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("POST", "/analyze/text", strings.NewReader(`{"job_description": "Go"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeText_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("POST", "/analyze/text", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeUpload_RejectsUnsupportedExtension(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("plain text resume"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(srv, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestAnalyzeUpload_RejectsCorruptDocument(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("definitely not a pdf"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(srv, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAnalyzeUpload_MissingFileField(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("job_description", "Go developer"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAnalyses_WithoutDatabase(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, httptest.NewRequest("GET", "/analyses", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetAnalysis_WithoutDatabase(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, httptest.NewRequest("GET", "/analyses/0b126321-36b0-4a14-9f5c-3b3a3e6f5a10", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, httptest.NewRequest("OPTIONS", "/analyze", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
