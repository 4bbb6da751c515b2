package question

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ayodejiAA/trivia/internal/logging"
	"github.com/ayodejiAA/trivia/pkg/http/body"
	httperrors "github.com/ayodejiAA/trivia/pkg/http/errors"
)

// HTTPHandler exposes the category and question endpoints.
type HTTPHandler struct {
	svc *Service
}

// NewHTTPHandler constructs the question HTTP handler.
func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Register mounts the routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("POST /categories", h.CreateCategory)
	mux.HandleFunc("DELETE /categories/{id}", h.DeleteCategory)
	mux.HandleFunc("GET /categories/{id}/questions", h.CategoryQuestions)
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.CreateOrSearch)
	mux.HandleFunc("GET /questions/{id}", h.GetQuestion)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
}

// ListCategories handles GET /categories
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	body.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"categories":       CategoryTypes(categories),
		"total_categories": len(categories),
	})
}

// CreateCategory handles POST /categories with {"type": "..."}
func (h *HTTPHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	payload, err := body.DecodeRequest(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	categoryType, ok := payload["type"].(string)
	if !ok || len(payload) != 1 {
		httperrors.RespondBadRequest(w)
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), categoryType)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	body.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"category_id": category.ID,
	})
}

// DeleteCategory handles DELETE /categories/{id}
func (h *HTTPHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	body.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

// ListQuestions handles GET /questions?page=N. A missing or non-numeric page means page 1; a page
// too large for an int lies past the end.
func (h *HTTPHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParam(r.URL.Query().Get("page"))
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.Page(r.Context(), page)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	body.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
		"categories":      CategoryTypes(result.Categories),
	})
}

// CreateOrSearch handles POST /questions, which either searches or creates depending on the
// payload shape (see Classify).
func (h *HTTPHandler) CreateOrSearch(w http.ResponseWriter, r *http.Request) {
	payload, err := body.DecodeRequest(w, r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, err := Classify(payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	switch req.Kind {
	case KindSearch:
		result, err := h.svc.Search(r.Context(), req.SearchTerm)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		body.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"success":         true,
			"questions":       result.Questions,
			"total_questions": result.TotalQuestions,
		})
	case KindCreate:
		id, err := h.svc.Create(r.Context(), req.Create)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		body.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"success":     true,
			"question_id": id,
		})
	}
}

// GetQuestion handles GET /questions/{id}
func (h *HTTPHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	body.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	body.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

// CategoryQuestions handles GET /categories/{id}/questions
func (h *HTTPHandler) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	result, err := h.svc.ByCategory(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	body.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  len(result.Questions),
		"current_category": result.Category.Type,
	})
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context()).With().Str("component", "question_http").Logger()
	httperrors.Respond(w, logger, err)
}

func pageParam(raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	switch {
	case err == nil:
		return page, true
	case errors.Is(err, strconv.ErrRange):
		return 0, false
	default:
		return 1, true
	}
}

// pathID parses the {id} wildcard. Ids that are not int32 match no resource.
func pathID(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}
