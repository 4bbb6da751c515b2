package quiz

import (
	"net/http"

	"github.com/ayodejiAA/trivia/internal/logging"
	"github.com/ayodejiAA/trivia/pkg/http/body"
	httperrors "github.com/ayodejiAA/trivia/pkg/http/errors"
)

// HTTPHandler exposes the quiz endpoint.
type HTTPHandler struct {
	svc *Service
}

// NewHTTPHandler constructs a quiz HTTP handler.
func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Register mounts the routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /quizzes", h.HandleNext)
}

// HandleNext handles POST /quizzes and answers {"success": true, "question": Question|null}.
func (h *HTTPHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context()).With().Str("component", "quiz_http").Logger()

	payload, err := body.DecodeRequest(w, r)
	if err != nil {
		httperrors.Respond(w, logger, err)
		return
	}
	round, err := ParseRound(payload)
	if err != nil {
		httperrors.Respond(w, logger, err)
		return
	}

	next, err := h.svc.Next(r.Context(), round)
	if err != nil {
		httperrors.Respond(w, logger, err)
		return
	}
	body.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": next,
	})
}
