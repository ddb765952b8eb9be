// internal/httpserver/server.go
//
// HTTP server wiring for the solver.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Stateless solver endpoints: POST /mask, /constraint, /entropy.
//   - Session endpoints: mounted under /session (see routes_session.go).
//
// Notes:
//   - Errors are JSON {"error": "..."}; solver.ErrInvalidInput maps to 400,
//     solver.ErrInvalidState to 409, missing sessions to 404.
//   - CORS allows a single configured origin.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlesolver/internal/cache"
	"github.com/robalobadob/wordlesolver/internal/game"
	"github.com/robalobadob/wordlesolver/internal/solver"
	"github.com/robalobadob/wordlesolver/internal/store"
	"github.com/robalobadob/wordlesolver/internal/words"
)

// Options configures a Server.
type Options struct {
	Secret       []byte        // HS256 key for session tokens
	TokenTTL     time.Duration // session token lifetime
	Workers      int           // ranking concurrency, 0 = GOMAXPROCS
	ClientOrigin string        // CORS origin
}

// Server bundles router, word lists, session store and optional cache.
type Server struct {
	r     *chi.Mux
	words *words.Lists
	store store.Store
	cache *cache.Store // nil disables caching
	opts  Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(lists *words.Lists, st store.Store, c *cache.Store, opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), words: lists, store: st, cache: c, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /mask","POST /constraint","POST /entropy","/session/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	s.r.Post("/mask", s.handleMask)
	s.r.Post("/constraint", s.handleConstraint)
	s.r.Post("/entropy", s.handleEntropy)

	s.mountSession(s.r)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.opts.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- errors ------------------------------------

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// statusFor maps domain errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, solver.ErrInvalidInput), errors.Is(err, game.ErrNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrInvalidState), errors.Is(err, game.ErrSessionFinished):
		return http.StatusConflict
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		writeError(w, status, "internal_error")
		return
	}
	writeError(w, status, err.Error())
}

// ------------------------------- solver ------------------------------------

type maskReq struct {
	Guess    string `json:"guess"`
	Solution string `json:"solution"`
}
type maskRes struct {
	Mask     int      `json:"mask"`
	Pattern  string   `json:"pattern"`
	Statuses []string `json:"statuses"`
}

// handleMask returns the feedback guess would receive against solution.
func (s *Server) handleMask(w http.ResponseWriter, r *http.Request) {
	var req maskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	m, err := solver.Encode(req.Guess, req.Solution)
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(newMaskRes(m))
}

func newMaskRes(m solver.Mask) maskRes {
	res := maskRes{Mask: int(m), Pattern: m.String()}
	for _, st := range m.Statuses() {
		res.Statuses = append(res.Statuses, st.String())
	}
	return res
}

type constraintReq struct {
	Guess string `json:"guess"`
	Mask  string `json:"mask"` // "02112" or "67"
}
type constraintRes struct {
	Pattern   string                   `json:"pattern"`
	Located   []string                 `json:"located"`
	Unlocated [][]string               `json:"unlocated"`
	Letters   map[string]solver.Bounds `json:"letters"`
}

// handleConstraint decodes a mask into the constraint it implies.
func (s *Server) handleConstraint(w http.ResponseWriter, r *http.Request) {
	var req constraintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	m, err := solver.ParseMask(req.Mask)
	if err != nil {
		writeErr(w, err)
		return
	}
	c, err := solver.Decode(m, req.Guess)
	if err != nil {
		writeErr(w, err)
		return
	}

	res := constraintRes{
		Pattern:   c.Pattern(),
		Located:   make([]string, solver.WordLength),
		Unlocated: make([][]string, solver.WordLength),
		Letters:   make(map[string]solver.Bounds, len(c.Letters)),
	}
	for i := 0; i < solver.WordLength; i++ {
		if c.Located[i] != 0 {
			res.Located[i] = string(c.Located[i])
		}
		res.Unlocated[i] = []string{}
		for _, l := range c.Unlocated[i] {
			res.Unlocated[i] = append(res.Unlocated[i], string(l))
		}
	}
	for l, b := range c.Letters {
		res.Letters[string(l)] = b
	}
	_ = json.NewEncoder(w).Encode(res)
}

type entropyReq struct {
	Guess string   `json:"guess"`
	Pool  []string `json:"pool"` // defaults to every answer
}
type entropyRes struct {
	Guess   string         `json:"guess"`
	Entropy float64        `json:"entropy"`
	Score   float64        `json:"score"`
	Buckets map[string]int `json:"buckets"` // mask pattern → pool words
}

// handleEntropy reports the expected information of a guess against a pool.
func (s *Server) handleEntropy(w http.ResponseWriter, r *http.Request) {
	var req entropyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	pool := req.Pool
	if len(pool) == 0 {
		pool = s.words.Answers()
	}

	h, err := solver.Entropy(req.Guess, pool)
	if err != nil {
		writeErr(w, err)
		return
	}
	score, err := solver.Score(req.Guess, pool)
	if err != nil {
		writeErr(w, err)
		return
	}
	sizes, err := solver.BucketSizes(req.Guess, pool)
	if err != nil {
		writeErr(w, err)
		return
	}

	guess, _ := solver.ParseWord(req.Guess)
	res := entropyRes{Guess: guess, Entropy: h, Score: score, Buckets: map[string]int{}}
	for m, k := range sizes {
		if k > 0 {
			res.Buckets[solver.Mask(m).String()] = k
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}
