package trivia

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/logging"
	httperrors "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// HTTPHandlers exposes the trivia REST endpoints on top of a Store.
type HTTPHandlers struct {
	store    Store
	picker   Picker
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewHTTPHandlers constructs the endpoint handlers. picker defaults to the
// uniform source when nil.
func NewHTTPHandlers(store Store, picker Picker, logger zerolog.Logger) *HTTPHandlers {
	if picker == nil {
		picker = UniformPicker()
	}
	return &HTTPHandlers{
		store:    store,
		picker:   picker,
		validate: validator.New(),
		logger:   logger.With().Str("component", "trivia_http").Logger(),
	}
}

type categoriesResponse struct {
	Success         bool           `json:"success"`
	Categories      map[int]string `json:"categories"`
	TotalCategories int            `json:"total_categories"`
}

type questionsResponse struct {
	Success         bool           `json:"success"`
	Questions       []Question     `json:"questions"`
	TotalQuestions  int            `json:"total_questions"`
	Categories      map[int]string `json:"categories"`
	CurrentCategory []string       `json:"current_category"`
}

type deleteResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

type createResponse struct {
	Success   bool       `json:"success"`
	Questions []Question `json:"questions"`
}

type searchResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory string     `json:"current_category"`
}

type categoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory string     `json:"current_category"`
}

type quizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// HandleCategories serves GET /categories.
func (h *HTTPHandlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w)
		return
	}
	if len(categories) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	byID, _ := BuildCategoryIndex(categories)
	writeJSON(w, categoriesResponse{
		Success:         true,
		Categories:      byID,
		TotalCategories: len(categories),
	})
}

// HandleQuestions serves GET /questions?page=N and POST /questions.
func (h *HTTPHandlers) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createQuestion(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

func (h *HTTPHandlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	page, ok := ParsePage(r.URL.Query().Get("page"))
	if !ok {
		h.logger.Debug().Str("page", r.URL.Query().Get("page")).Msg("malformed page, serving page 1")
	}

	questions, err := h.store.ListQuestions(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list questions failed")
		httperrors.RespondInternalError(w)
		return
	}
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list categories failed")
		httperrors.RespondInternalError(w)
		return
	}

	current := Paginate(questions, page, QuestionsPerPage)
	if len(current) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	byID, labels := BuildCategoryIndex(categories)
	writeJSON(w, questionsResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(questions),
		Categories:      byID,
		CurrentCategory: labels,
	})
}

func (h *HTTPHandlers) createQuestion(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req NewQuestion
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	inserted, err := h.store.InsertQuestion(r.Context(), req)
	if err != nil {
		h.logger.Warn().Err(err).Msg("insert question rejected")
		httperrors.RespondUnprocessable(w)
		return
	}
	h.logger.Info().Int("id", inserted.ID).Msg("question created")

	questions, err := h.store.ListQuestions(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list questions failed")
		httperrors.RespondInternalError(w)
		return
	}

	page, _ := ParsePage(r.URL.Query().Get("page"))
	writeJSON(w, createResponse{
		Success:   true,
		Questions: Paginate(questions, page, QuestionsPerPage),
	})
}

// HandleDeleteQuestion serves DELETE /questions/{id}.
func (h *HTTPHandlers) HandleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	deleted, err := h.store.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int("id", id).Msg("delete question failed")
		httperrors.RespondInternalError(w)
		return
	}
	if !deleted {
		httperrors.RespondUnprocessable(w)
		return
	}
	h.logger.Info().Int("id", id).Msg("question deleted")

	writeJSON(w, deleteResponse{Success: true, Deleted: id})
}

// HandleSearch serves POST /search_question. The search term is matched as
// a case-insensitive substring of the question text; zero matches is the
// endpoint's failure condition, not the search's.
func (h *HTTPHandlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	defer r.Body.Close()

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	questions, err := h.store.ListQuestions(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list questions failed")
		httperrors.RespondInternalError(w)
		return
	}

	matches, total := Search(questions, req.SearchTerm)
	if total == 0 {
		httperrors.RespondUnprocessable(w)
		return
	}

	page, _ := ParsePage(r.URL.Query().Get("page"))
	current := Paginate(matches, page, QuestionsPerPage)

	// The scope label reported is the first match's category.
	label := ""
	if cat, err := h.store.GetCategory(r.Context(), matches[0].Category); err == nil && cat != nil {
		label = cat.Type
	}

	writeJSON(w, searchResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  total,
		CurrentCategory: label,
	})
}

// HandleQuestionsByCategory serves GET /categories/{id}/questions.
func (h *HTTPHandlers) HandleQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	category, err := h.store.GetCategory(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int("category", id).Msg("get category failed")
		httperrors.RespondInternalError(w)
		return
	}
	if category == nil {
		httperrors.RespondNotFound(w)
		return
	}

	questions, err := h.store.QuestionsByCategory(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int("category", id).Msg("questions by category failed")
		httperrors.RespondInternalError(w)
		return
	}
	if len(questions) == 0 {
		httperrors.RespondNotFound(w)
		return
	}

	writeJSON(w, categoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}

// HandleQuiz serves POST /quizzes: one uniformly random question outside
// the served history, scoped to a category when one is given. A null
// question signals the round is exhausted.
func (h *HTTPHandlers) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	defer r.Body.Close()

	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	scope := req.CategoryID()
	var (
		questions []Question
		err       error
	)
	if scope != nil {
		questions, err = h.store.QuestionsByCategory(r.Context(), *scope)
	} else {
		questions, err = h.store.ListQuestions(r.Context())
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("quiz question fetch failed")
		httperrors.RespondInternalError(w)
		return
	}

	next := NextQuestion(questions, scope, req.Previous(), h.picker)
	if next != nil {
		reqLog := logging.FromContext(r.Context())
		reqLog.Debug().Int("id", next.ID).Msg("quiz question served")
	}
	writeJSON(w, quizResponse{Success: true, Question: next})
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "encoding error", http.StatusInternalServerError)
	}
}
