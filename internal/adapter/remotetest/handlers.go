package remotetest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-strings-editor/internal/app"
	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/utils"
	"github.com/MKhiriev/go-strings-editor/internal/validators"
	"github.com/MKhiriev/go-strings-editor/models"
)

var (
	errKeyExists   = errors.New(app.MsgKeyAlreadyExists)
	errKeyNotFound = errors.New(app.MsgKeyNotFound)
)

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	password, ok := s.users[req.Username]
	ttl, signKey := s.tokenTTL, s.signKey
	s.mu.Unlock()

	if !ok || password != req.Password {
		log.Warn().Str("username", req.Username).Msg("no user was found/wrong password")
		http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, req.Username, ttl, signKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.logins++
	s.mu.Unlock()

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) fetch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	partition, err := partitionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, app.MsgUnknownPartition, http.StatusNotFound)
		return
	}

	s.mu.Lock()
	state, ok := s.partitions[partition]
	var resp models.StringsResponse
	if ok {
		resp = s.response(state)
	}
	s.mu.Unlock()

	if !ok {
		log.Warn().Stringer("partition", partition).Msg("partition not hosted")
		http.Error(w, app.MsgUnknownPartition, http.StatusNotFound)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Send()
	}
}

func (s *Server) commit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	partition, err := partitionFromRequest(r)
	if err != nil {
		log.Err(err).Send()
		http.Error(w, app.MsgUnknownPartition, http.StatusNotFound)
		return
	}

	var req models.CommitRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if req.Length != len(req.Insertions)+len(req.Edits) {
		log.Error().Int("length", req.Length).Msg("declared length does not match body")
		http.Error(w, app.MsgLengthMismatch, http.StatusBadRequest)
		return
	}

	payload := payloadFromRequest(req, partition)
	if err = s.validator.Validate(r.Context(), payload); err != nil {
		log.Err(err).Msg("invalid commit")
		if errors.Is(err, validators.ErrImmutableKey) {
			http.Error(w, app.MsgImmutableKey, http.StatusBadRequest)
			return
		}
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	state, ok := s.partitions[partition]
	if !ok {
		s.mu.Unlock()
		http.Error(w, app.MsgUnknownPartition, http.StatusNotFound)
		return
	}

	entries, err := applyCommit(state.entries, req)
	if err != nil {
		s.mu.Unlock()
		log.Err(err).Msg("commit rejected")
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	state.entries = entries
	state.message = req.Message
	state.revision = s.ids.Generate()
	s.commits++
	resp := s.response(state)
	s.mu.Unlock()

	username, _ := utils.GetUsernameFromContext(r.Context())
	log.Info().Str("username", username).Stringer("partition", partition).
		Int("changes", req.Length).Str("revision", resp.Revision).Msg("commit applied")

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Send()
	}
}

func partitionFromRequest(r *http.Request) (models.Partition, error) {
	raw := chi.URLParam(r, "platform")
	if language := r.URL.Query().Get("language"); language != "" {
		raw += "/" + language
	}
	return models.ParsePartition(raw)
}

func payloadFromRequest(req models.CommitRequest, partition models.Partition) models.CommitPayload {
	insertions := make([]models.Entry, 0, len(req.Insertions))
	for _, w := range req.Insertions {
		insertions = append(insertions, models.NewEntry(w.Key, w.Value, partition))
	}

	edits := make(map[string]models.Entry, len(req.Edits))
	for original, w := range req.Edits {
		edits[original] = models.NewEntry(w.Key, w.Value, partition)
	}

	return models.NewCommitPayload(insertions, edits, req.Message)
}

// applyCommit returns a new entry list with edits replaced in place and
// insertions placed first, newest first. current is not modified.
func applyCommit(current []models.WireEntry, req models.CommitRequest) ([]models.WireEntry, error) {
	entries := slices.Clone(current)

	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Key] = i
	}

	taken := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, edited := req.Edits[e.Key]; !edited {
			taken[e.Key] = struct{}{}
		}
	}

	for original, replacement := range req.Edits {
		i, ok := index[original]
		if !ok {
			return nil, fmt.Errorf("%s: %w", original, errKeyNotFound)
		}
		if _, dup := taken[replacement.Key]; dup {
			return nil, fmt.Errorf("%s: %w", replacement.Key, errKeyExists)
		}
		taken[replacement.Key] = struct{}{}
		entries[i] = replacement
	}

	for _, ins := range req.Insertions {
		if _, dup := taken[ins.Key]; dup {
			return nil, fmt.Errorf("%s: %w", ins.Key, errKeyExists)
		}
		taken[ins.Key] = struct{}{}
	}

	return append(slices.Clone(req.Insertions), entries...), nil
}
