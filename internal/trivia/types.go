package trivia

// QuestionsPerPage is the fixed page size for every paginated listing.
const QuestionsPerPage = 10

// Question is a single trivia question as stored and served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

// Category is a question category; Type is its display label.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// NewQuestion is the create-question payload. The store assigns the id.
type NewQuestion struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Difficulty int    `json:"difficulty" validate:"required,min=1"`
	Category   int    `json:"category" validate:"required,min=1"`
}

// SearchRequest carries the substring to match against question text. An
// empty or absent term matches every question; the endpoint's zero-match
// rule is what turns that into a failure, not this struct.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizScope narrows quiz play to one category. A nil scope, a zero id, or
// the legacy "click" type all mean "any category".
type QuizScope struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// QuizRequest is the play-quiz payload. PreviousQuestions holds the ids the
// client has already been served this round; the client, not the server,
// owns that history. At least one of the two fields must be present.
type QuizRequest struct {
	PreviousQuestions *[]int     `json:"previous_questions" validate:"required_without=QuizCategory"`
	QuizCategory      *QuizScope `json:"quiz_category" validate:"required_without=PreviousQuestions"`
}

// Previous returns the served-question history; nil when the field was
// absent, which eligibility filtering treats the same as empty.
func (r QuizRequest) Previous() []int {
	if r.PreviousQuestions == nil {
		return nil
	}
	return *r.PreviousQuestions
}

// CategoryID returns the effective category scope, or nil for "any".
func (r QuizRequest) CategoryID() *int {
	if r.QuizCategory == nil || r.QuizCategory.ID == 0 || r.QuizCategory.Type == "click" {
		return nil
	}
	id := r.QuizCategory.ID
	return &id
}
