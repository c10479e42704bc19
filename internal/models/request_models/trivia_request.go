package request_models

// QuestionsPostRequest is the body of POST /questions, which either creates a
// question or, when searchTerm is present, searches them.
type QuestionsPostRequest struct {
	Question   *string  `json:"question"`
	Answer     *string  `json:"answer"`
	Difficulty *FlexInt `json:"difficulty"`
	Category   *FlexInt `json:"category"`
	SearchTerm *string  `json:"searchTerm"`
}

func (r QuestionsPostRequest) IsSearch() bool {
	return r.SearchTerm != nil
}

func (r QuestionsPostRequest) NewQuestion() NewQuestion {
	q := NewQuestion{
		Difficulty: r.Difficulty.Int(),
		CategoryID: uint(max(r.Category.Int(), 0)),
	}
	if r.Question != nil {
		q.Question = *r.Question
	}
	if r.Answer != nil {
		q.Answer = *r.Answer
	}
	return q
}

type NewQuestion struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	CategoryID uint   `validate:"required"`
	Difficulty int    `validate:"required,min=1"`
}

type QuizRequest struct {
	PreviousQuestions []FlexInt     `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

type QuizCategory struct {
	ID   *FlexInt `json:"id"`
	Type string   `json:"type"`
}
