/* models.go
 * Contains the configuration and response types for the HTTP server
 * Authors: Zachary Bower
 */

package web

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"scouting-bot/api/api"
	"scouting-bot/api/match"
)

const (
	defaultRequestsPerSecond = 2
	defaultBurst             = 10
	maxBodyBytes             = 10 << 20

	// limiterIdleTimeout is how long a client's limiter is kept after its last write request
	limiterIdleTimeout = 10 * time.Minute
)

// Config holds the configuration for the web server. A zero RequestsPerSecond or Burst uses the defaults
type Config struct {
	Addr              string
	API               *api.API
	RequestsPerSecond float64
	Burst             int
}

// Server is the HTTP server that exposes the scouting api
type Server struct {
	api *api.API

	rps   rate.Limit
	burst int

	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Scores are the period scores of an entry. They are computed on every request, never stored
type Scores struct {
	Auto    int `json:"auto"`
	TeleOp  int `json:"teleOp"`
	Endgame int `json:"endgame"`
	Total   int `json:"total"`
}

// EntryResponse is the body returned for a single entry
type EntryResponse struct {
	Key    string       `json:"key"`
	Entry  *match.Entry `json:"entry"`
	Scores Scores       `json:"scores"`
}

// ErrorResponse is the body returned for any failed request. Period is set for validation errors tied to one period
type ErrorResponse struct {
	Error  string       `json:"error"`
	Period match.Period `json:"period,omitempty"`
}

func newEntryResponse(entry *match.Entry) EntryResponse {
	return EntryResponse{
		Key:   entry.Key(),
		Entry: entry,
		Scores: Scores{
			Auto:    entry.AutoScore(),
			TeleOp:  entry.TeleOpScore(),
			Endgame: entry.EndgameScore(),
			Total:   entry.TotalScore(),
		},
	}
}
