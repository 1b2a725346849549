package relay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

type SignRequest struct {
	Message string `json:"message" example:"hello"`
	Secret  string `json:"secret" example:"s3cret"`
}

type SignResponse struct {
	Status    string `json:"status" example:"ok"`
	Message   string `json:"message" example:"hello"`
	Signature string `json:"signature" example:"4c3f0a..."`
}

type VerifyRequest struct {
	Message   string `json:"message" example:"hello"`
	Signature string `json:"signature" example:"4c3f0a..."`
	Secret    string `json:"secret" example:"s3cret"`
}

type VerifyResponse struct {
	Status  string `json:"status" example:"ok"`
	Valid   bool   `json:"valid" example:"true"`
	Message string `json:"message" example:"hello"`
}

// Sign returns the hex HMAC-SHA256 of message under secret.
func Sign(message string, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares signature with the expected HMAC in constant time.
func Verify(message string, signature string, secret string) bool {
	return hmac.Equal([]byte(Sign(message, secret)), []byte(signature))
}

// PostSign godoc
// @Summary Sign a message
// @Description HMAC-SHA256 of message keyed by secret, hex encoded
// @Tags Relay
// @Accept json
// @Produce json
// @Param request body SignRequest true "Message and secret"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Router /sign [post]
func (h *Handler) PostSign(w http.ResponseWriter, r *http.Request) {
	var req SignRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Message == "" || req.Secret == "" {
		writeError(w, http.StatusBadRequest, "missing message or secret")
		return
	}

	writeJSON(w, http.StatusOK, SignResponse{
		Status:    "ok",
		Message:   req.Message,
		Signature: Sign(req.Message, req.Secret),
	})
}

// PostVerify godoc
// @Summary Verify a signature
// @Description Recomputes the HMAC-SHA256 and compares it in constant time
// @Tags Relay
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Message, signature and secret"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /verify [post]
func (h *Handler) PostVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Message == "" || req.Signature == "" || req.Secret == "" {
		writeError(w, http.StatusBadRequest, "missing message, signature, or secret")
		return
	}

	writeJSON(w, http.StatusOK, VerifyResponse{
		Status:  "ok",
		Valid:   Verify(req.Message, req.Signature, req.Secret),
		Message: req.Message,
	})
}
