package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateQuestionRequest struct {
	Title    string   `json:"title" binding:"required,min=1,max=255"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category" binding:"required,min=1,max=100"`
	Tags     []string `json:"tags"`
}

type QuestionListParams struct {
	Status    string `form:"status"`
	Category  string `form:"category"`
	AuthorID  uint   `form:"author_id"`
	TagID     uint   `form:"tag_id"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// Missing category and tags are legal: the scorer treats them as empty.
type DuplicateCheckRequest struct {
	Title    string   `json:"title" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type SimilarQuestion struct {
	Question          Question `json:"question"`
	TitleSimilarity   float64  `json:"titleSimilarity"`
	ContentSimilarity float64  `json:"contentSimilarity"`
	OverallSimilarity float64  `json:"overallSimilarity"`
}

type DuplicateCheckResponse struct {
	SimilarQuestions   []SimilarQuestion `json:"similarQuestions"`
	LikelyDuplicate    bool              `json:"likelyDuplicate"`
	DuplicateThreshold float64           `json:"duplicateThreshold"`
}

const (
	ActionMarkDuplicate = "mark_duplicate"
	ActionNotDuplicate  = "not_duplicate"
)

type DuplicateMarkRequest struct {
	QuestionID    uint   `json:"questionId" binding:"required"`
	DuplicateOfID *uint  `json:"duplicateOfId"`
	Action        string `json:"action" binding:"required,oneof=mark_duplicate not_duplicate"`
}

type AnalyzeRequest struct {
	Content     string `json:"content" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

const (
	ActionProcess   = "process"
	ActionFeedback  = "feedback"
	ActionReprocess = "reprocess"
)

type AutoProcessRequest struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType" binding:"required"`
	ContentID   uint   `json:"contentId" binding:"required"`
	Action      string `json:"action" binding:"required,oneof=process feedback reprocess"`
	Accurate    *bool  `json:"accurate"`
	Notes       string `json:"notes"`
}

type QualityPreviewRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}
