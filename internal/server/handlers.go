package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/job-recommender/internal/ranking"
	"github.com/jonathan/job-recommender/internal/types"
	"github.com/jonathan/job-recommender/internal/validation"
)

// maxProfileBytes bounds the /recommend request body.
const maxProfileBytes = 1 << 20

// handleRecommend ranks the catalog against the posted profile
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	profile, err := decodeProfile(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := validation.ValidateProfile(profile); err != nil {
		s.writeError(w, r, err)
		return
	}

	jobs, err := s.store.ListJobs(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	recommendations := ranking.Recommend(jobs, *profile)
	log.Printf("[recommend] %d of %d jobs recommended %s", len(recommendations), len(jobs), requestID(r.Context()))
	s.jsonResponse(w, http.StatusOK, recommendations)
}

// handleMetadata returns the skills and job titles available for profile forms
func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	meta, err := s.store.Metadata(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, meta)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleHome returns a plain-text banner
func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "Job Recommendation System is running.")
}

// decodeProfile reads a single JSON profile object from the request body.
func decodeProfile(w http.ResponseWriter, r *http.Request) (*types.UserProfile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProfileBytes)

	var profile types.UserProfile
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&profile); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ErrInvalidRequest{Reason: "body is empty"}
		}
		return nil, &ErrInvalidRequest{Reason: err.Error()}
	}
	if dec.More() {
		return nil, &ErrInvalidRequest{Reason: "body must contain a single JSON object"}
	}
	return &profile, nil
}

// writeError maps err to a status and JSON body, logging server-side failures.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[%s] %s failed: %v %s", r.Method, r.URL.Path, err, requestID(r.Context()))
	}
	s.jsonResponse(w, status, errorBody(err))
}
