package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-advisor/internal/analysis"
	"github.com/jonathan/resume-advisor/internal/fetch"
	"github.com/jonathan/resume-advisor/internal/ingestion"
	"github.com/jonathan/resume-advisor/internal/jobs"
	"github.com/jonathan/resume-advisor/internal/logger"
	"github.com/jonathan/resume-advisor/internal/parsing"
	"github.com/jonathan/resume-advisor/internal/session"
	"github.com/jonathan/resume-advisor/internal/types"
)

// AnalyzeResponse is returned by POST /analyze
type AnalyzeResponse struct {
	Analysis types.Analysis        `json:"analysis"`
	Job      types.JobRequirements `json:"job"`
	Document *ingestion.Metadata   `json:"document"`
}

// SessionResponse is returned when a session is created
type SessionResponse struct {
	Session  session.Snapshot `json:"session"`
	Analysis types.Analysis   `json:"analysis"`
}

// ChatRequest is the body of POST /sessions/{id}/chat
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ChatResponse carries the assistant reply
type ChatResponse struct {
	Reply session.Message `json:"reply"`
}

// TemplatesResponse lists the job templates
type TemplatesResponse struct {
	Templates []jobs.Template `json:"templates"`
	Fallback  jobs.Template   `json:"fallback"`
}

// upload is a resume upload analyzed against job requirements.
type upload struct {
	record types.ResumeRecord
	job    *types.JobRequirements
	doc    *ingestion.Document
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTemplates lists the role templates used to fill missing requirements
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{Templates: jobs.Templates(), Fallback: jobs.Fallback()})
}

// handleAnalyze analyzes an uploaded resume without keeping any state
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Analysis: analysis.Run(up.record, *up.job, s.lexicon),
		Job:      *up.job,
		Document: up.doc.Metadata,
	})
}

// handleCreateSession analyzes an upload and opens a chat session for it
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	up, err := s.readUpload(w, r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	sess := session.New(up.record, *up.job, s.lexicon)
	s.sessions.Put(sess)
	logger.Ctx(r.Context()).Info().Str("session", sess.ID.String()).Msg("session created")

	s.jsonResponse(w, http.StatusCreated, SessionResponse{
		Session:  sess.Snapshot(),
		Analysis: analysis.Run(up.record, *up.job, s.lexicon),
	})
}

// handleGetSession returns the session context and history
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sess.Snapshot())
}

// handleDeleteSession ends a session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.PathValue("id")); err != nil {
		s.errorFromErr(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleChat answers one user message within a session
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.PathValue("id"))
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if err := s.validateRequest(&req); err != nil {
		s.errorFromErr(w, err)
		return
	}

	reply := sess.Chat(r.Context(), s.generator, req.Message)
	s.jsonResponse(w, http.StatusOK, ChatResponse{Reply: reply})
}

// validateRequest runs struct validation and reports the first failing field.
func (s *Server) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := "failed " + fe.Tag() + " check"
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		}
		return &ErrValidation{Field: strings.ToLower(fe.Field()), Message: msg}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}

// readUpload parses the multipart form: a "resume" file plus job fields
// job_title, job_description, job_url, skills, min_experience and
// education_level. The resume is extracted before job_url is fetched.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &ErrPayloadTooLarge{Limit: s.maxUpload}
		}
		return nil, &ErrValidation{Field: "resume", Message: "multipart form with a resume file is required"}
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return nil, &ErrValidation{Field: "resume", Message: "resume file is required"}
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &ErrValidation{Field: "resume", Message: "failed to read upload"}
	}

	doc, err := ingestion.LoadBytes(header.Filename, data)
	if err != nil {
		return nil, err
	}

	in := jobs.Input{
		Title:          r.FormValue("job_title"),
		Description:    r.FormValue("job_description"),
		SkillsText:     r.FormValue("skills"),
		EducationLevel: r.FormValue("education_level"),
	}
	if raw := strings.TrimSpace(r.FormValue("min_experience")); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ErrValidation{Field: "min_experience", Message: "must be a whole number of years"}
		}
		in.MinExperience = years
	}
	if jobURL := strings.TrimSpace(r.FormValue("job_url")); jobURL != "" && strings.TrimSpace(in.Description) == "" {
		posting, err := fetch.JobPosting(r.Context(), jobURL, s.fetchOpts)
		if err != nil {
			return nil, err
		}
		in.Description = posting.Text
	}

	job, err := jobs.Build(in)
	if err != nil {
		return nil, err
	}

	return &upload{
		record: parsing.BuildRecord(doc.Text, s.lexicon),
		job:    job,
		doc:    doc,
	}, nil
}
