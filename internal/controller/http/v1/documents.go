package v1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultSignedURLExpiry = 60
	maxSignedURLExpiry     = 7 * 24 * 60 * 60
)

type DocumentSigner interface {
	SignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

type DocumentsHandler struct {
	log    *slog.Logger
	signer DocumentSigner
}

func NewDocumentsHandler(log *slog.Logger, signer DocumentSigner) *DocumentsHandler {
	return &DocumentsHandler{
		log:    log,
		signer: signer,
	}
}

type SignedURLRequest struct {
	Path    string `json:"path"`
	Expires *int   `json:"expires"`
}

type SignedURLResponse struct {
	SignedURL string    `json:"signedUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *DocumentsHandler) SignedURL(w http.ResponseWriter, r *http.Request) {
	var req SignedURLRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeError(w, r, h.log, badRequest("invalid JSON body: %v", err))
		return
	}

	path := strings.TrimSpace(req.Path)
	if path == "" {
		writeError(w, r, h.log, badRequest("path is required"))
		return
	}

	expires := defaultSignedURLExpiry
	if req.Expires != nil {
		expires = *req.Expires
	}
	if expires < 1 || expires > maxSignedURLExpiry {
		writeError(w, r, h.log, badRequest("expires must be in [1;%d] seconds", maxSignedURLExpiry))
		return
	}

	ttl := time.Duration(expires) * time.Second

	url, err := h.signer.SignedURL(r.Context(), path, ttl)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, SignedURLResponse{
		SignedURL: url,
		ExpiresAt: time.Now().Add(ttl).UTC(),
	})
}
