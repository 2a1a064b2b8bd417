/* handlers.go
 * Contains the HTTP handlers for submitting, reading and exporting scouting entries
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"scouting-bot/api/api"
	"scouting-bot/api/external"
	"scouting-bot/api/match"
	"scouting-bot/api/store"
)

// NewServer creates a Server for cfg, filling in the default rate limits
func NewServer(cfg Config) *Server {
	rps := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		rps = defaultRequestsPerSecond
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}
	return &Server{
		api:      cfg.API,
		rps:      rps,
		burst:    burst,
		limiters: make(map[string]*clientLimiter),
		now:      time.Now,
	}
}

// Handler returns the routes of the server. Endpoints that write to the store are rate limited per client
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /entries", s.rateLimit(http.HandlerFunc(s.SubmitEntryHandler)))
	mux.HandleFunc("GET /entries/{key}", s.GetEntryHandler)
	mux.Handle("DELETE /entries/{key}", s.rateLimit(http.HandlerFunc(s.RemoveEntryHandler)))
	mux.HandleFunc("GET /teams/{team}", s.TeamHandler)
	mux.HandleFunc("GET /overview", s.OverviewHandler)
	mux.HandleFunc("GET /rankings", s.RankingsHandler)
	mux.Handle("POST /import", s.rateLimit(http.HandlerFunc(s.ImportHandler)))
	mux.HandleFunc("GET /export", s.ExportHandler)
	return logRequests(mux)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

// statusFor maps an api error to the status code returned to the client
func statusFor(err error) int {
	var validationErr *match.ValidationError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, match.ErrMalformed),
		errors.Is(err, match.ErrInvalidTeamNumber),
		errors.Is(err, external.ErrUnknownStrategy),
		errors.Is(err, external.ErrMissingFileName):
		return http.StatusBadRequest
	case errors.Is(err, external.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, store.ErrEntryNotFound), errors.Is(err, api.ErrNoEntries):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	body := ErrorResponse{Error: err.Error()}

	var validationErr *match.ValidationError
	if errors.As(err, &validationErr) {
		body.Period = validationErr.Period
	}
	if status == http.StatusInternalServerError {
		log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		body.Error = "internal server error"
	}
	writeJSON(w, status, body)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %w", match.ErrMalformed, err)
	}
	return data, nil
}

// SubmitEntryHandler validates and stores the entry in the request body
// Preconditions: Receives a POST request with a JSON entry as the body
// Postconditions: Responds 201 with the stored entry and its scores, or 400 with the rejected period and reason
func (s *Server) SubmitEntryHandler(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	entry, err := s.api.SubmitEntryJSON(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newEntryResponse(entry))
}

// GetEntryHandler responds with the entry stored under the key in the path, e.g. /entries/Q12:12897
func (s *Server) GetEntryHandler(w http.ResponseWriter, r *http.Request) {
	entry, err := s.api.GetEntry(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newEntryResponse(entry))
}

// RemoveEntryHandler deletes the entry stored under the key in the path
func (s *Server) RemoveEntryHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.api.RemoveEntry(r.Context(), r.PathValue("key")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TeamHandler responds with the report for the team in the path
func (s *Server) TeamHandler(w http.ResponseWriter, r *http.Request) {
	team, err := match.ParseTeamNumber(r.PathValue("team"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	report, err := s.api.GetTeamReport(r.Context(), team)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// OverviewHandler responds with the overview row of every scouted team
func (s *Server) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	overviews, err := s.api.GetOverview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overviews)
}

// RankingsHandler responds with the teams ranked by average total
func (s *Server) RankingsHandler(w http.ResponseWriter, r *http.Request) {
	rankings, err := s.api.GetRankings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rankings)
}

// ImportHandler imports an export file, either from the request body or from the url query parameter
// Preconditions: Receives a POST request with a strategy query parameter
// Postconditions: Responds 201 with the number of entries stored. Nothing is stored if any entry is invalid
func (s *Server) ImportHandler(w http.ResponseWriter, r *http.Request) {
	strategy := r.URL.Query().Get("strategy")

	var (
		result api.ImportResult
		err    error
	)
	if url := r.URL.Query().Get("url"); url != "" {
		result, err = s.api.ImportEntriesFromURL(r.Context(), strategy, url)
	} else {
		var data []byte
		data, err = readBody(w, r)
		if err == nil {
			result, err = s.api.ImportEntries(r.Context(), strategy, data)
		}
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// ExportHandler responds with every entry at the event as a file download
// Preconditions: Receives a GET request with type and filename query parameters
// Postconditions: Responds with the file as an attachment, or 400 if the type or filename is invalid
func (s *Server) ExportHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	file, err := s.api.ExportEntries(r.Context(), query.Get("type"), query.Get("filename"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Contents); err != nil {
		log.WithError(err).Error("failed to write export file")
	}
}
