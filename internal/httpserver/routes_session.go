// internal/httpserver/routes_session.go
//
// HTTP routes for solving sessions.
// Exposes three endpoints under /session:
//   - POST /session/new      → start a session over all answers, returns a token
//   - GET  /session/suggest  → best next guess for the remaining candidates
//   - POST /session/feedback → apply an observed guess + mask, narrowing candidates
//
// Sessions live in the store; clients address them with an HS256 JWT whose
// "sid" claim is the session ID, sent as a Bearer token or cookie.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlesolver/internal/cache"
	"github.com/robalobadob/wordlesolver/internal/game"
	"github.com/robalobadob/wordlesolver/internal/solver"
)

const sessionCookieName = "wordle_session"

// maxCandidates caps the candidate list echoed by /session/feedback.
const maxCandidates = 20

// mountSession registers all /session routes.
func (s *Server) mountSession(r chi.Router) {
	r.Route("/session", func(r chi.Router) {
		r.Post("/new", s.handleNewSession)
		r.With(s.requireSession).Get("/suggest", s.handleSuggest)
		r.With(s.requireSession).Post("/feedback", s.handleFeedback)
	})
}

// -----------------------------------------------------------------------------
// /session/new

type newSessionRes struct {
	Token     string `json:"token"`
	Remaining int    `json:"remaining"`
}

// handleNewSession creates a session over every answer and returns its token.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := game.New(s.words.Allowed(), s.words.Answers())
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signToken(sess.ID)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  exp,
	})
	log.Info().Str("session", sess.ID).Int("remaining", sess.RemainingCount()).Msg("session started")
	_ = json.NewEncoder(w).Encode(newSessionRes{Token: tok, Remaining: sess.RemainingCount()})
}

// -----------------------------------------------------------------------------
// /session/suggest

type suggestRes struct {
	Guess     string  `json:"guess"`
	Entropy   float64 `json:"entropy"`
	Score     float64 `json:"score"`
	Remaining int     `json:"remaining"`
	Cached    bool    `json:"cached"`
}

// handleSuggest ranks the allowed guesses against the remaining candidates,
// consulting the cache first when one is configured.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())
	if sess.State() != game.StateSolving {
		writeErr(w, game.ErrSessionFinished)
		return
	}
	pool := sess.Remaining()
	res := suggestRes{Remaining: len(pool)}

	var key string
	if s.cache != nil && len(pool) > 1 {
		key = cache.Fingerprint(s.words.Allowed(), pool)
		if e, err := s.cache.Get(r.Context(), key); err == nil {
			res.Guess, res.Entropy, res.Score, res.Cached = e.Guess, e.Entropy, e.Score, true
			_ = json.NewEncoder(w).Encode(res)
			return
		} else if !errors.Is(err, cache.ErrNotFound) {
			log.Warn().Err(err).Msg("cache lookup")
		}
	}

	start := time.Now()
	best, err := sess.Suggest(r.Context(), solver.RankOptions{Workers: s.opts.Workers})
	if err != nil {
		writeErr(w, err)
		return
	}
	log.Debug().
		Str("session", sess.ID).
		Str("guess", best.Guess).
		Float64("score", best.Score).
		Int("pool", len(pool)).
		Dur("took", time.Since(start)).
		Msg("ranked")

	if key != "" {
		e := cache.Entry{
			Guess: best.Guess, Entropy: best.Entropy, Score: best.Score,
			PoolSize: len(pool), AllowedSize: len(s.words.Allowed()),
		}
		if err := s.cache.Put(r.Context(), key, e); err != nil {
			log.Warn().Err(err).Msg("cache store")
		}
	}

	res.Guess, res.Entropy, res.Score = best.Guess, best.Entropy, best.Score
	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// /session/feedback

type feedbackReq struct {
	Guess string `json:"guess"`
	Mask  string `json:"mask"` // "02112" or "67"
}
type feedbackRes struct {
	Remaining  int        `json:"remaining"`
	State      game.State `json:"state"`
	Candidates []string   `json:"candidates"`
}

// handleFeedback applies an observed guess and mask to the session.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r.Context())

	var req feedbackReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	m, err := solver.ParseMask(req.Mask)
	if err != nil {
		writeErr(w, err)
		return
	}
	if _, err := solver.ParseWord(req.Guess); err != nil {
		writeErr(w, err)
		return
	}
	if !s.words.IsAllowed(req.Guess) {
		writeErr(w, fmt.Errorf("%w: %s", game.ErrNotAllowed, req.Guess))
		return
	}
	left, state, err := sess.ApplyGuess(req.Guess, m)
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	candidates := sess.Remaining()
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	_ = json.NewEncoder(w).Encode(feedbackRes{Remaining: left, State: state, Candidates: candidates})
}

// ------------------------------ tokens --------------------------------------

// signToken creates an HS256 JWT naming the session.
func (s *Server) signToken(sid string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.TokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	})
	ss, err := t.SignedString(s.opts.Secret)
	return ss, exp, err
}

// parseToken verifies tok and returns its session ID.
func (s *Server) parseToken(tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.opts.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return "", errors.New("invalid token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("invalid token")
	}
	return sid, nil
}

// bearerOrCookie extracts a token from the Authorization header or the session cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// ---------------------------- session middleware ----------------------------

type ctxSessionKey struct{}

// requireSession resolves the token to a stored session and injects it into
// the request context.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		sid, err := s.parseToken(tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		sess, err := s.store.Get(r.Context(), sid)
		if err != nil {
			writeErr(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) *game.Session {
	sess, _ := ctx.Value(ctxSessionKey{}).(*game.Session)
	return sess
}
