package trivia

import "context"

// Store is the persistence capability the handlers and core functions are
// built against. Implementations must return questions and categories in
// ascending id order.
type Store interface {
	// ListQuestions returns every question, ordered by id.
	ListQuestions(ctx context.Context) ([]Question, error)
	// ListCategories returns every category, ordered by id.
	ListCategories(ctx context.Context) ([]Category, error)
	// GetCategory returns the category with the given id, or nil when absent.
	GetCategory(ctx context.Context, id int) (*Category, error)
	// QuestionsByCategory returns the questions in one category, ordered by id.
	QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
	// InsertQuestion stores q and returns it with its assigned id.
	InsertQuestion(ctx context.Context, q NewQuestion) (Question, error)
	// DeleteQuestion removes a question; the bool reports whether it existed.
	DeleteQuestion(ctx context.Context, id int) (bool, error)
}
