package verify_account_token

import (
	"net/http"

	"github.com/m04kA/GymSpace-BookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingToken       = "не указан токен"
)

type Handler struct {
	verifier TokenVerifier
	logger   Logger
}

func NewHandler(verifier TokenVerifier, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/account-tokens/verify
//
// Проверка токена регистрации аккаунта. Сам токен нигде не
// сохраняется и не логируется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyTokenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /account-tokens/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Token == "" {
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	valid := h.verifier.VerifyToken(req.Token)
	if !valid {
		h.logger.Warn("POST /account-tokens/verify - Token rejected")
	} else {
		h.logger.Info("POST /account-tokens/verify - Token accepted")
	}
	handlers.RespondJSON(w, http.StatusOK, &VerifyTokenResponse{Valid: valid})
}
