package models

import (
	"time"

	"gorm.io/gorm"
)

type QuestionStatus string

const (
	StatusActive    QuestionStatus = "active"
	StatusFlagged   QuestionStatus = "flagged"
	StatusReview    QuestionStatus = "review"
	StatusDuplicate QuestionStatus = "duplicate"
)

type Question struct {
	ID            uint           `json:"id" gorm:"primarykey"`
	AuthorID      uint           `json:"author_id" gorm:"not null"`
	Author        User           `json:"author" gorm:"foreignKey:AuthorID"`
	Title         string         `json:"title" gorm:"not null"`
	Content       string         `json:"content" gorm:"type:text"`
	Category      string         `json:"category" gorm:"index"`
	Status        QuestionStatus `json:"status" gorm:"default:'active';index"`
	DuplicateOfID *uint          `json:"duplicate_of_id"`
	DuplicateOf   *Question      `json:"duplicate_of,omitempty" gorm:"foreignKey:DuplicateOfID"`
	Tags          []Tag          `json:"tags" gorm:"many2many:question_tags;"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
