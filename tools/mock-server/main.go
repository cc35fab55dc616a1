// Package main implements a mock MercadoLibre API server for local development.
// It serves items from a JSON fixture and runs a rotating OAuth token endpoint,
// so the storefront's refresh-and-retry path can be exercised without real
// marketplace credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// tokenState is the single valid access/refresh pair. Every successful
// refresh rotates both tokens and invalidates the previous pair.
type tokenState struct {
	mu           sync.Mutex
	clientID     string
	clientSecret string
	access       string
	refresh      string
	generation   int
	ttl          int
}

func newTokenState(clientID, clientSecret, access, refresh string, ttl int) *tokenState {
	return &tokenState{
		clientID:     clientID,
		clientSecret: clientSecret,
		access:       access,
		refresh:      refresh,
		ttl:          ttl,
	}
}

func (s *tokenState) validAccess(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token != "" && token == s.access
}

// expire invalidates the current access token without issuing a new one.
func (s *tokenState) expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
}

type itemIndex map[string]json.RawMessage

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/items.json", "path to items fixture")
	clientID := flag.String("client-id", "mock-client", "accepted OAuth client_id")
	clientSecret := flag.String("client-secret", "mock-secret", "accepted OAuth client_secret")
	accessToken := flag.String("access-token", "APP_USR-mock-0", "initially valid access token")
	refreshToken := flag.String("refresh-token", "TG-mock-0", "initially valid refresh token")
	ttl := flag.Int("token-ttl", 21600, "expires_in reported for issued tokens, in seconds")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	items, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(items))

	state := newTokenState(*clientID, *clientSecret, *accessToken, *refreshToken, *ttl)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock MercadoLibre server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, state, items)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, state *tokenState, items itemIndex) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", tokenHandler(logger, state))
	mux.HandleFunc("GET /items/{id}", itemHandler(logger, state, items))
	mux.HandleFunc("POST /mock/expire", expireHandler(logger, state))
	return mux
}

func loadFixture(path string) (itemIndex, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	items := make(itemIndex, len(raw))
	for i, r := range raw {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(r, &head); err != nil || head.ID == "" {
			return nil, fmt.Errorf("fixture item %d has no id", i)
		}
		items[head.ID] = r
	}
	return items, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// writeError mimics the marketplace's error payload.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(map[string]any{
		"message": message,
		"error":   code,
		"status":  status,
		"cause":   []string{},
	})
}

func tokenHandler(logger *slog.Logger, state *tokenState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
			return
		}

		if gt := r.PostForm.Get("grant_type"); gt != "refresh_token" {
			writeError(w, http.StatusBadRequest, "unsupported_grant_type",
				fmt.Sprintf("grant_type %q is not supported", gt))
			return
		}

		state.mu.Lock()
		defer state.mu.Unlock()

		if r.PostForm.Get("client_id") != state.clientID ||
			r.PostForm.Get("client_secret") != state.clientSecret {
			logger.Warn("token request with bad client credentials")
			writeError(w, http.StatusUnauthorized, "invalid_client", "invalid client_id or client_secret")
			return
		}

		if r.PostForm.Get("refresh_token") != state.refresh {
			logger.Warn("token request with stale refresh token")
			writeError(w, http.StatusBadRequest, "invalid_grant", "Error validating grant. Your authorization code or refresh token may be expired or it was already used")
			return
		}

		state.generation++
		state.access = fmt.Sprintf("APP_USR-mock-%d", state.generation)
		state.refresh = fmt.Sprintf("TG-mock-%d", state.generation)

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  state.access,
			"token_type":    "Bearer",
			"expires_in":    state.ttl,
			"scope":         "offline_access read write",
			"user_id":       123456789,
			"refresh_token": state.refresh,
		})
		logger.Info("issued mock token pair", "generation", state.generation)
	}
}

func itemHandler(logger *slog.Logger, state *tokenState, items itemIndex) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || !state.validAccess(token) {
			writeError(w, http.StatusUnauthorized, "unauthorized", "invalid access token")
			return
		}

		id := r.PathValue("id")
		item, found := items[id]
		if !found {
			writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("Item with id %s not found", id))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(item)
		logger.Info("served item", "id", id)
	}
}

func expireHandler(logger *slog.Logger, state *tokenState) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		state.expire()
		logger.Info("access token expired on request")
		w.WriteHeader(http.StatusNoContent)
	}
}
