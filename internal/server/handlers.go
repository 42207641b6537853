package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/crediverse/resume-analyzer/internal/db"
	"github.com/crediverse/resume-analyzer/internal/ingestion"
	"github.com/crediverse/resume-analyzer/internal/pipeline"
	"github.com/crediverse/resume-analyzer/internal/types"
)

// AnalyzeTextRequest is the JSON body of POST /analyze/text for callers that
// already hold extracted resume text.
type AnalyzeTextRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description"`
	TopTracks      int    `json:"top_tracks" validate:"gte=0,lte=50"`
}

// AnalyzeResponse wraps a report with the stored record ID when persistence
// is configured.
type AnalyzeResponse struct {
	ID     *uuid.UUID   `json:"id,omitempty"`
	Pages  int          `json:"pages,omitempty"`
	Level  string       `json:"level,omitempty"`
	Report types.Report `json:"report"`
}

// handleAnalyzeUpload accepts a multipart resume upload ("resume" file field,
// optional "job_description", "name", and "email" fields), extracts its text,
// and runs the analysis pipeline.
func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(s.cfg.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds %d MB limit", s.cfg.MaxUploadMB))
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file field")
		return
	}
	defer file.Close()

	kind, err := ingestion.KindForFilename(header.Filename)
	if err != nil {
		s.errorResponse(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	doc, err := ingestion.Extract(data, kind)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", header.Filename).Msg("extraction failed")
		s.errorResponse(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("could not extract text from document: %v", err))
		return
	}

	report := pipeline.Analyze(r.Context(), pipeline.Request{
		ResumeText:     doc.Text,
		JobDescription: r.FormValue("job_description"),
		TopTracks:      s.cfg.TopTracks,
	}, s.opts)

	resp := AnalyzeResponse{
		Pages:  doc.Pages,
		Level:  ingestion.CandidateLevel(doc.Pages),
		Report: report,
	}

	if s.db != nil {
		id, err := s.db.SaveAnalysis(r.Context(), recordFromReport(
			r.FormValue("name"), r.FormValue("email"), doc.Pages, resp.Level, &report))
		if err != nil {
			// Persistence is best-effort; the analysis itself succeeded.
			s.logger.Error().Err(err).Msg("failed to persist analysis")
		} else {
			resp.ID = &id
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAnalyzeText analyzes pre-extracted resume text.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	report := pipeline.Analyze(r.Context(), pipeline.Request{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		TopTracks:      req.TopTracks,
	}, s.opts)

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{Report: report})
}

// handleListAnalyses returns recent stored analysis records.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}
	records, err := s.db.ListAnalyses(r.Context(), 50)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list analyses")
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	s.jsonResponse(w, http.StatusOK, records)
}

// handleGetAnalysis returns one stored analysis record.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis id")
		return
	}
	record, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, "analysis not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

// recordFromReport flattens a report into the persisted record shape.
func recordFromReport(name, email string, pages int, level string, report *types.Report) *db.AnalysisRecord {
	courses := make([]string, 0, len(report.RecommendedCourses))
	for _, c := range report.RecommendedCourses {
		courses = append(courses, c.Title)
	}
	return &db.AnalysisRecord{
		Name:               name,
		Email:              email,
		Score:              report.Score.Total,
		PageCount:          pages,
		PredictedField:     report.PredictedTrack,
		Level:              level,
		Skills:             report.Skills,
		RecommendedSkills:  report.RecommendedSkills,
		RecommendedCourses: courses,
	}
}
