package repositories

import (
	"petcare-api/models"

	"gorm.io/gorm"
)

type ModerationRepository interface {
	CreateQueueEntry(entry *models.ModerationQueueEntry) error
	QueuePosition(entry *models.ModerationQueueEntry) (int, error)
	GetQueue(status models.QueueStatus, page, limit int) ([]models.ModerationQueueEntry, int64, error)
	MarkReviewed(id uint) error
	CreateFeedback(feedback *models.ModerationFeedback) error
	CreateSimilarityRecord(record *models.SimilarityRecord) error
	DeleteManualSimilarityRecords(questionID uint) error
	GetSimilarityRecords(questionID uint) ([]models.SimilarityRecord, error)
}

type moderationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) CreateQueueEntry(entry *models.ModerationQueueEntry) error {
	return r.db.Create(entry).Error
}

// QueuePosition is the FIFO position: one more than the number of older
// pending entries. Concurrent inserts can briefly report the same position;
// that is tolerated.
func (r *moderationRepository) QueuePosition(entry *models.ModerationQueueEntry) (int, error) {
	var older int64
	err := r.db.Model(&models.ModerationQueueEntry{}).
		Where("status = ? AND id < ?", models.QueuePending, entry.ID).
		Count(&older).Error
	return int(older) + 1, err
}

func (r *moderationRepository) GetQueue(status models.QueueStatus, page, limit int) ([]models.ModerationQueueEntry, int64, error) {
	var entries []models.ModerationQueueEntry
	var total int64

	query := r.db.Model(&models.ModerationQueueEntry{}).Where("status = ?", status)
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Order("id asc").Offset(offset).Limit(limit).Find(&entries).Error
	return entries, total, err
}

func (r *moderationRepository) MarkReviewed(id uint) error {
	result := r.db.Model(&models.ModerationQueueEntry{}).
		Where("id = ?", id).
		Update("status", models.QueueReviewed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *moderationRepository) CreateFeedback(feedback *models.ModerationFeedback) error {
	return r.db.Create(feedback).Error
}

func (r *moderationRepository) CreateSimilarityRecord(record *models.SimilarityRecord) error {
	return r.db.Create(record).Error
}

func (r *moderationRepository) DeleteManualSimilarityRecords(questionID uint) error {
	return r.db.Where("question_id = ? AND algorithm = ?", questionID, models.AlgorithmManualReview).
		Delete(&models.SimilarityRecord{}).Error
}

func (r *moderationRepository) GetSimilarityRecords(questionID uint) ([]models.SimilarityRecord, error) {
	var records []models.SimilarityRecord
	err := r.db.Where("question_id = ?", questionID).Order("score desc").Find(&records).Error
	return records, err
}
