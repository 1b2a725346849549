package relay

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

var randomUpperBound = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

type RandomResponse struct {
	Status    string `json:"status" example:"ok"`
	Random    int64  `json:"random" example:"482193004117283645"`
	Entropy   string `json:"entropy" example:"9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"`
	Timestamp int64  `json:"timestamp" example:"1735819200"`
}

// GetRandom godoc
// @Summary Secure random number
// @Description Uniform integer in [0, 10^18) from a CSPRNG, with a sha256 entropy digest
// @Tags Relay
// @Produce json
// @Success 200 {object} RandomResponse
// @Failure 500 {object} ErrorResponse
// @Router /random [get]
func (h *Handler) GetRandom(w http.ResponseWriter, _ *http.Request) {
	n, err := rand.Int(h.entropy, randomUpperBound)
	if err != nil {
		logrus.WithError(err).WithField("handler", "GetRandom").Error("random source failed")
		writeError(w, http.StatusInternalServerError, "random source unavailable")
		return
	}

	now := h.clock.Now()
	value := n.Int64()
	digest := sha256.Sum256([]byte(strconv.FormatInt(value, 10) + strconv.FormatInt(now.UnixMilli(), 10)))

	writeJSON(w, http.StatusOK, RandomResponse{
		Status:    "ok",
		Random:    value,
		Entropy:   hex.EncodeToString(digest[:]),
		Timestamp: now.Unix(),
	})
}
