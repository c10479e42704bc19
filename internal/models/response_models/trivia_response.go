package response_models

type Question struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type QuestionPage struct {
	Questions      []Question
	TotalQuestions int64
	Categories     map[uint]string
}

type CategoryQuestions struct {
	Questions       []Question
	TotalQuestions  int
	CurrentCategory string
}
