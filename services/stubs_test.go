package services

import (
	"petcare-api/models"

	"gorm.io/gorm"
)

// In-memory repository stubs shared by the service tests.

type stubQuestionRepo struct {
	questions  map[uint]*models.Question
	candidates []models.Question
	nextID     uint
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{questions: map[uint]*models.Question{}, nextID: 1}
}

func (r *stubQuestionRepo) add(q models.Question) *models.Question {
	if q.ID == 0 {
		q.ID = r.nextID
	}
	if q.ID >= r.nextID {
		r.nextID = q.ID + 1
	}
	stored := q
	r.questions[stored.ID] = &stored
	return &stored
}

func (r *stubQuestionRepo) Create(question *models.Question) error {
	question.ID = r.nextID
	r.nextID++
	stored := *question
	r.questions[question.ID] = &stored
	return nil
}

func (r *stubQuestionRepo) GetByID(id uint) (*models.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *q
	return &copied, nil
}

func (r *stubQuestionRepo) GetList(params models.QuestionListParams, isPublic bool) ([]models.Question, int64, error) {
	var out []models.Question
	for _, q := range r.questions {
		if isPublic && q.Status != models.StatusActive {
			continue
		}
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (r *stubQuestionRepo) Update(question *models.Question) error {
	if _, ok := r.questions[question.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *question
	r.questions[question.ID] = &stored
	return nil
}

func (r *stubQuestionRepo) Delete(id uint) error {
	delete(r.questions, id)
	return nil
}

func (r *stubQuestionRepo) GetCandidates(category string, tagNames []string, limit int) ([]models.Question, error) {
	if limit > 0 && len(r.candidates) > limit {
		return r.candidates[:limit], nil
	}
	return r.candidates, nil
}

func (r *stubQuestionRepo) CountQuestionsByTag() (map[uint]int, error) {
	return map[uint]int{}, nil
}

type stubTagRepo struct {
	tags   map[string]*models.Tag
	nextID uint
}

func newStubTagRepo() *stubTagRepo {
	return &stubTagRepo{tags: map[string]*models.Tag{}, nextID: 1}
}

func (r *stubTagRepo) Create(tag *models.Tag) error {
	tag.ID = r.nextID
	r.nextID++
	stored := *tag
	r.tags[tag.Name] = &stored
	return nil
}

func (r *stubTagRepo) GetByName(name string) (*models.Tag, error) {
	t, ok := r.tags[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *stubTagRepo) GetByID(id uint) (*models.Tag, error) {
	for _, t := range r.tags {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTagRepo) GetAll() ([]models.Tag, error) {
	var out []models.Tag
	for _, t := range r.tags {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTagRepo) BulkUpdate(tags []models.Tag) error {
	for i := range tags {
		stored := tags[i]
		r.tags[stored.Name] = &stored
	}
	return nil
}

type stubModerationRepo struct {
	queue             []models.ModerationQueueEntry
	feedback          []models.ModerationFeedback
	similarityRecords []models.SimilarityRecord
	nextID            uint
}

func newStubModerationRepo() *stubModerationRepo {
	return &stubModerationRepo{nextID: 1}
}

func (r *stubModerationRepo) CreateQueueEntry(entry *models.ModerationQueueEntry) error {
	entry.ID = r.nextID
	r.nextID++
	if entry.Status == "" {
		entry.Status = models.QueuePending
	}
	r.queue = append(r.queue, *entry)
	return nil
}

func (r *stubModerationRepo) QueuePosition(entry *models.ModerationQueueEntry) (int, error) {
	position := 1
	for _, e := range r.queue {
		if e.Status == models.QueuePending && e.ID < entry.ID {
			position++
		}
	}
	return position, nil
}

func (r *stubModerationRepo) GetQueue(status models.QueueStatus, page, limit int) ([]models.ModerationQueueEntry, int64, error) {
	var out []models.ModerationQueueEntry
	for _, e := range r.queue {
		if e.Status == status {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubModerationRepo) MarkReviewed(id uint) error {
	for i := range r.queue {
		if r.queue[i].ID == id {
			r.queue[i].Status = models.QueueReviewed
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubModerationRepo) CreateFeedback(feedback *models.ModerationFeedback) error {
	feedback.ID = r.nextID
	r.nextID++
	r.feedback = append(r.feedback, *feedback)
	return nil
}

func (r *stubModerationRepo) CreateSimilarityRecord(record *models.SimilarityRecord) error {
	record.ID = r.nextID
	r.nextID++
	r.similarityRecords = append(r.similarityRecords, *record)
	return nil
}

func (r *stubModerationRepo) DeleteManualSimilarityRecords(questionID uint) error {
	kept := r.similarityRecords[:0]
	for _, rec := range r.similarityRecords {
		if rec.QuestionID == questionID && rec.Algorithm == models.AlgorithmManualReview {
			continue
		}
		kept = append(kept, rec)
	}
	r.similarityRecords = kept
	return nil
}

func (r *stubModerationRepo) GetSimilarityRecords(questionID uint) ([]models.SimilarityRecord, error) {
	var out []models.SimilarityRecord
	for _, rec := range r.similarityRecords {
		if rec.QuestionID == questionID {
			out = append(out, rec)
		}
	}
	return out, nil
}
