package models

import (
	"time"
)

const (
	AlgorithmJaccard      = "jaccard_heuristic"
	AlgorithmManualReview = "manual_review"
)

// SimilarityRecord links two questions with a computed or manually assigned
// similarity score. A score of 1.0 is reserved for manual determination.
type SimilarityRecord struct {
	ID                uint      `json:"id" gorm:"primarykey"`
	QuestionID        uint      `json:"question_id" gorm:"not null;index"`
	SimilarQuestionID uint      `json:"similar_question_id" gorm:"not null"`
	Score             float64   `json:"score" gorm:"not null"`
	Algorithm         string    `json:"algorithm" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at"`
}

type QueueStatus string

const (
	QueuePending  QueueStatus = "pending"
	QueueReviewed QueueStatus = "reviewed"
)

// ModerationQueueEntry is one item awaiting human review, FIFO by CreatedAt.
// Concurrent inserts for the same content may produce duplicate entries; they
// are tolerated and simply reviewed twice.
type ModerationQueueEntry struct {
	ID             uint        `json:"id" gorm:"primarykey"`
	ContentID      uint        `json:"content_id" gorm:"not null;index"`
	ContentType    string      `json:"content_type" gorm:"not null"`
	SpamScore      int         `json:"spam_score"`
	ToxicityScore  int         `json:"toxicity_score"`
	QualityScore   int         `json:"quality_score"`
	Recommendation string      `json:"recommendation"`
	Status         QueueStatus `json:"status" gorm:"default:'pending';index"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// ModerationFeedback records whether an automated decision was accurate.
// Audit log only; it does not alter scoring thresholds.
type ModerationFeedback struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ContentID   uint      `json:"content_id" gorm:"not null;index"`
	ContentType string    `json:"content_type"`
	ModeratorID uint      `json:"moderator_id" gorm:"not null"`
	Accurate    bool      `json:"accurate"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}
