package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-strings-editor/internal/config"
	"github.com/MKhiriev/go-strings-editor/internal/crypto"
	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/store"
	"github.com/MKhiriev/go-strings-editor/internal/utils"
	"github.com/MKhiriev/go-strings-editor/internal/validators"
	"github.com/MKhiriev/go-strings-editor/models"
)

const (
	requestIDHeader = "X-Request-ID"
	hashHeader      = "HashSHA256"

	// tokenLeeway treats tokens about to expire as already expired.
	tokenLeeway = 30 * time.Second
)

type httpSyncCollaborator struct {
	client *utils.HTTPClient
	hasher *utils.Hasher
	ids    *utils.UUIDGenerator

	credentials store.CredentialRepository
	sealer      crypto.CredentialSealer
	validator   validators.Validator

	mu        sync.Mutex
	partition models.Partition

	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPSyncCollaborator constructs the HTTP/REST implementation of
// [SyncCollaborator] starting at partition.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPSyncCollaborator(
	adapterCfg config.ClientAdapter,
	appCfg config.ClientApp,
	credentials store.CredentialRepository,
	sealer crypto.CredentialSealer,
	validator validators.Validator,
	partition models.Partition,
	logger *logger.Logger,
) (SyncCollaborator, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpSyncCollaborator{
		client:      utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher:      utils.NewHasher(appCfg.HashKey),
		ids:         utils.NewUUIDGenerator(),
		credentials: credentials,
		sealer:      sealer,
		validator:   validator,
		partition:   partition,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Load implements [SyncCollaborator]. It fetches the current partition with
// GET /api/strings/{platform}, logging in first when no usable token is
// cached.
func (h *httpSyncCollaborator) Load(ctx context.Context) (models.LoadedState, error) {
	return h.fetch(ctx, h.currentPartition())
}

// ChangePartition implements [SyncCollaborator].
func (h *httpSyncCollaborator) ChangePartition(ctx context.Context, target models.Partition) (models.LoadedState, error) {
	if err := h.validator.Validate(ctx, target); err != nil {
		return models.LoadedState{}, fmt.Errorf("%w: %w", ErrUnknownPartition, err)
	}

	state, err := h.fetch(ctx, target)
	if err != nil {
		return models.LoadedState{}, err
	}

	h.mu.Lock()
	h.partition = target
	h.mu.Unlock()

	return state, nil
}

// Push implements [SyncCollaborator]. It POSTs the change set to
// POST /api/strings/{platform}/commits with an HMAC of the body in the
// HashSHA256 header. The payload is validated before anything is sent.
func (h *httpSyncCollaborator) Push(ctx context.Context, insertions []models.Entry, edits map[string]models.Entry, message string) (models.LoadedState, error) {
	partition := h.currentPartition()

	payload := models.NewCommitPayload(insertions, edits, message)
	if err := h.validator.Validate(ctx, payload); err != nil {
		return models.LoadedState{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	body, err := json.Marshal(models.NewCommitRequest(payload))
	if err != nil {
		return models.LoadedState{}, fmt.Errorf("%w: encode commit: %w", ErrInvalidPayload, err)
	}
	sum := h.hasher.SumHex(body)
	requestID := h.ids.Generate()

	h.logger.Debug().Str("request_id", requestID).Stringer("partition", partition).
		Int("changes", payload.Len()).Msg("pushing commit")

	resp, err := h.authorized(ctx, func(req *resty.Request) (*resty.Response, error) {
		return withPartition(req, partition).
			SetHeader("Content-Type", "application/json").
			SetHeader(hashHeader, sum).
			SetHeader(requestIDHeader, requestID).
			SetBody(body).
			Post("/api/strings/{platform}/commits")
	})
	if err != nil {
		return models.LoadedState{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoadedState{}, err
	}

	return h.decodeState(ctx, resp, partition)
}

// StoreCredentials implements [SyncCollaborator]. The password is sealed
// before it reaches the store; any cached token is discarded.
func (h *httpSyncCollaborator) StoreCredentials(ctx context.Context, username, password string) bool {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		h.logger.Warn().Msg("refusing to store empty credentials")
		return false
	}

	sealed, err := h.sealer.Seal(password)
	if err != nil {
		h.logger.Err(err).Msg("sealing password failed")
		return false
	}

	creds := models.Credentials{Username: username, SealedPassword: sealed}
	if err = h.credentials.SaveCredentials(ctx, creds); err != nil {
		h.logger.Err(err).Msg("saving credentials failed")
		return false
	}

	h.logger.Info().Str("username", username).Msg("credentials stored")
	return true
}

// Logout implements [SyncCollaborator].
func (h *httpSyncCollaborator) Logout(ctx context.Context) {
	if err := h.credentials.DeleteCredentials(ctx); err != nil {
		h.logger.Err(err).Msg("deleting credentials failed")
		return
	}
	h.logger.Info().Msg("credentials deleted")
}

func (h *httpSyncCollaborator) currentPartition() models.Partition {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.partition
}

func (h *httpSyncCollaborator) fetch(ctx context.Context, partition models.Partition) (models.LoadedState, error) {
	resp, err := h.authorized(ctx, func(req *resty.Request) (*resty.Response, error) {
		return withPartition(req, partition).Get("/api/strings/{platform}")
	})
	if err != nil {
		return models.LoadedState{}, fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoadedState{}, err
	}

	return h.decodeState(ctx, resp, partition)
}

func (h *httpSyncCollaborator) decodeState(ctx context.Context, resp *resty.Response, partition models.Partition) (models.LoadedState, error) {
	var sr models.StringsResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.LoadedState{}, fmt.Errorf("%w: decode strings response: %w", ErrRequestFailed, err)
	}

	state := models.LoadedState{
		Entries:       sr.ToEntries(partition),
		CommitMessage: sr.CommitMessage,
		Partition:     partition,
	}

	if err := h.validator.Validate(ctx, state); err != nil {
		h.logger.Warn().Err(err).Stringer("partition", partition).Msg("remote baseline is not well-formed")
	}

	return state, nil
}

// authorized sends the request built by send with a bearer token. A cached
// token rejected by the remote is dropped and the request is retried once
// with a fresh login.
func (h *httpSyncCollaborator) authorized(ctx context.Context, send func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	token, cached, err := h.bearer(ctx, false)
	if err != nil {
		return nil, err
	}

	resp, err := send(h.client.R().SetContext(ctx).SetAuthToken(token))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	if !cached || !tokenRejected(resp) {
		return resp, nil
	}

	h.logger.Debug().Msg("cached token rejected, logging in again")
	if err = h.credentials.SaveToken(ctx, ""); err != nil {
		h.logger.Err(err).Msg("dropping rejected token failed")
	}

	if token, _, err = h.bearer(ctx, true); err != nil {
		return nil, err
	}

	resp, err = send(h.client.R().SetContext(ctx).SetAuthToken(token))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	return resp, nil
}

// bearer returns a token for the stored login. cached reports whether the
// token came from the store rather than a login made by this call.
func (h *httpSyncCollaborator) bearer(ctx context.Context, fresh bool) (token string, cached bool, err error) {
	creds, err := h.credentials.GetCredentials(ctx)
	if errors.Is(err, store.ErrCredentialsNotFound) {
		return "", false, ErrNoCredentials
	}
	if err != nil {
		return "", false, fmt.Errorf("reading stored credentials: %w", err)
	}

	if !fresh && creds.HasToken() && !utils.TokenExpired(creds.Token, h.now(), tokenLeeway) {
		return creds.Token, true, nil
	}

	password, err := h.sealer.Open(creds.SealedPassword)
	if err != nil {
		return "", false, fmt.Errorf("%w: stored password unreadable: %w", ErrBadCredentials, err)
	}

	token, err = h.login(ctx, creds.Username, password)
	if err != nil {
		return "", false, err
	}

	if err = h.credentials.SaveToken(ctx, token); err != nil {
		h.logger.Err(err).Msg("caching token failed")
	}

	return token, false, nil
}

// login POSTs the credentials to POST /api/auth/login and returns the token
// from the Authorization response header.
func (h *httpSyncCollaborator) login(ctx context.Context, username, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Username: username, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("%w: login request: %w", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("%w: login parse bearer token: %w", ErrRequestFailed, err)
	}

	h.logger.Debug().Str("username", username).Msg("logged in")
	return token, nil
}

func withPartition(req *resty.Request, partition models.Partition) *resty.Request {
	req.SetPathParam("platform", string(partition.Platform))
	if partition.Language != "" {
		req.SetQueryParam("language", partition.Language)
	}
	return req
}
