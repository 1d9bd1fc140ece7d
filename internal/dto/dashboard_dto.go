package dto

type DashboardStatsResponse struct {
	TotalNodes            int            `json:"total_nodes"`
	NodesByType           map[string]int `json:"nodes_by_type"`
	PinnedNodes           int            `json:"pinned_nodes"`
	TotalQuestions        int            `json:"total_questions"`
	SolvedQuestions       int            `json:"solved_questions"`
	QuestionsByMastery    map[string]int `json:"questions_by_mastery"`
	QuestionsByDifficulty map[string]int `json:"questions_by_difficulty"`
	DueReviews            int            `json:"due_reviews"`
	TotalDocuments        int            `json:"total_documents"`
	TotalStudySeconds     int            `json:"total_study_seconds"`
}
