package remotetest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-strings-editor/internal/app"
	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/utils"
)

const (
	requestIDHeader = "X-Request-ID"
	hashHeader      = "HashSHA256"
)

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = s.ids.Generate()
		}

		l := s.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID).Str("path", r.URL.Path)
		})

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}

func (s *Server) withInjectedFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		if len(s.failures) == 0 {
			s.mu.Unlock()
			next.ServeHTTP(w, r)
			return
		}
		f := s.failures[0]
		s.failures = s.failures[1:]
		s.mu.Unlock()

		logger.FromRequest(r).Debug().Int("status", f.status).Msg("answering with injected failure")
		http.Error(w, f.body, f.status)
	})
}

// auth rejects requests without a valid bearer token and stores the
// token subject under utils.UsernameCtxKey.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		s.mu.Lock()
		signKey := s.signKey
		s.mu.Unlock()

		token, err := utils.ValidateAndParseJWTToken(tokenString, signKey, tokenIssuer)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Err(err).Msg("token expired")
				http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		username, _ := token.GetUsername()
		ctx := context.WithValue(r.Context(), utils.UsernameCtxKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// commitHashing verifies the HashSHA256 header against the raw body.
func (s *Server) commitHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !s.hasher.Verify(body, r.Header.Get(hashHeader)) {
			log.Error().Str("hash from request", r.Header.Get(hashHeader)).Msg("hashes are not equal")
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
