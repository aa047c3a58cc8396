package repositories

import (
	"strings"

	"petcare-api/models"

	"gorm.io/gorm"
)

// Sortable columns for question listings. Anything else falls back to
// created_at; sort input is never interpolated into SQL directly.
var questionSortColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"category":   true,
	"status":     true,
}

func questionOrderClause(sortBy, sortOrder string) string {
	if !questionSortColumns[sortBy] {
		sortBy = "created_at"
	}
	direction := "desc"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "asc"
	}
	return "questions." + sortBy + " " + direction
}

type QuestionRepository interface {
	Create(question *models.Question) error
	GetByID(id uint) (*models.Question, error)
	GetList(params models.QuestionListParams, isPublic bool) ([]models.Question, int64, error)
	Update(question *models.Question) error
	Delete(id uint) error
	GetCandidates(category string, tagNames []string, limit int) ([]models.Question, error)
	CountQuestionsByTag() (map[uint]int, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *models.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := r.db.Preload("Author").
		Preload("Tags").
		Preload("DuplicateOf").
		First(&question, id).Error
	return &question, err
}

func (r *questionRepository) GetList(params models.QuestionListParams, isPublic bool) ([]models.Question, int64, error) {
	var questions []models.Question
	var total int64

	query := r.db.Model(&models.Question{}).Preload("Author").Preload("Tags")

	// The public feed only shows active questions.
	if isPublic {
		query = query.Where("status = ?", models.StatusActive)
	} else if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if params.TagID > 0 {
		query = query.Joins("JOIN question_tags ON questions.id = question_tags.question_id").
			Where("question_tags.tag_id = ?", params.TagID)
	}

	query.Count(&total)

	query = query.Order(questionOrderClause(params.SortBy, params.SortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&questions).Error

	return questions, total, err
}

func (r *questionRepository) Update(question *models.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Question{}, id).Error
}

// GetCandidates returns the bounded pool for a duplicate check: active
// questions in the same category or sharing at least one tag, newest first,
// capped for performance.
func (r *questionRepository) GetCandidates(category string, tagNames []string, limit int) ([]models.Question, error) {
	var questions []models.Question

	query := r.db.Model(&models.Question{}).Preload("Tags").
		Where("status = ?", models.StatusActive)

	if len(tagNames) > 0 {
		tagged := r.db.Table("question_tags").
			Select("question_tags.question_id").
			Joins("JOIN tags ON tags.id = question_tags.tag_id").
			Where("tags.name IN ?", tagNames)
		query = query.Where("category = ? OR questions.id IN (?)", category, tagged)
	} else {
		query = query.Where("category = ?", category)
	}

	err := query.Order("created_at desc").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) CountQuestionsByTag() (map[uint]int, error) {
	type tagCount struct {
		TagID uint
		Count int
	}

	var counts []tagCount
	err := r.db.Table("question_tags").
		Select("question_tags.tag_id, COUNT(*) as count").
		Joins("JOIN questions ON questions.id = question_tags.question_id").
		Where("questions.deleted_at IS NULL").
		Group("question_tags.tag_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint]int, len(counts))
	for _, c := range counts {
		result[c.TagID] = c.Count
	}
	return result, nil
}
