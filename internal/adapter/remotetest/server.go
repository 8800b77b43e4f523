// Package remotetest runs an in-memory strings repository that speaks the
// REST contract of the HTTP sync collaborator. Tests and local trials point
// the client at it through httptest.
package remotetest

import (
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/utils"
	"github.com/MKhiriev/go-strings-editor/internal/validators"
	"github.com/MKhiriev/go-strings-editor/models"
)

const (
	tokenIssuer     = "strings-remote"
	defaultTokenTTL = time.Hour
)

type partitionState struct {
	entries  []models.WireEntry
	message  string
	revision string
}

type failure struct {
	status int
	body   string
}

// Server is the in-memory remote. The zero value is not usable; call New.
type Server struct {
	router *chi.Mux

	hasher    *utils.Hasher
	ids       *utils.UUIDGenerator
	validator validators.Validator
	signKey   string
	logger    *logger.Logger

	mu         sync.Mutex
	users      map[string]string
	partitions map[models.Partition]*partitionState
	tokenTTL   time.Duration
	failures   []failure
	logins     int
	commits    int
}

// New creates a remote that verifies request bodies with hashKey.
func New(hashKey string, log *logger.Logger) *Server {
	s := &Server{
		hasher:     utils.NewHasher(hashKey),
		ids:        utils.NewUUIDGenerator(),
		validator:  validators.NewStringsValidator(),
		signKey:    utils.NewUUIDGenerator().Generate(),
		logger:     log,
		users:      make(map[string]string),
		partitions: make(map[models.Partition]*partitionState),
		tokenTTL:   defaultTokenTTL,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID)
	router.Use(s.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(s.withInjectedFailures)

	router.Post("/api/auth/login", s.login)

	router.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/api/strings/{platform}", s.fetch)
		r.With(s.commitHashing).Post("/api/strings/{platform}/commits", s.commit)
	})

	return router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// AddUser registers an account.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

// Seed replaces the contents of partition p.
func (s *Server) Seed(p models.Partition, entries []models.Entry, message string) {
	wire := make([]models.WireEntry, 0, len(entries))
	for _, e := range entries {
		wire = append(wire, e.ToWire())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.partitions[p] = &partitionState{entries: wire, message: message, revision: s.ids.Generate()}
}

// Entries returns the current contents of partition p, nil when unknown.
func (s *Server) Entries(p models.Partition) []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.partitions[p]
	if !ok {
		return nil
	}
	return s.response(state).ToEntries(p)
}

// LastCommitMessage returns the message of the last commit to p.
func (s *Server) LastCommitMessage(p models.Partition) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.partitions[p]; ok {
		return state.message
	}
	return ""
}

// SetTokenTTL changes the lifetime of tokens issued from now on.
func (s *Server) SetTokenTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenTTL = ttl
}

// FailNext makes the next request answer with status and body, whatever
// its route.
func (s *Server) FailNext(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{status: status, body: body})
}

// RevokeTokens changes the signing key so every issued token stops verifying.
func (s *Server) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signKey = s.ids.Generate()
}

// Logins returns the number of successful logins.
func (s *Server) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logins
}

// Commits returns the number of applied commits.
func (s *Server) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Server) response(state *partitionState) models.StringsResponse {
	return models.StringsResponse{
		Entries:       slices.Clone(state.entries),
		CommitMessage: state.message,
		Revision:      state.revision,
	}
}
