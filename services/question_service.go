package services

import (
	"errors"
	"fmt"

	"petcare-api/models"
	"petcare-api/observability"
	"petcare-api/repositories"
	"petcare-api/scoring"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// CreateQuestionResult carries the persisted question (nil when blocked) and
// the moderation outcome the handler needs for the response.
type CreateQuestionResult struct {
	Question      *models.Question `json:"question,omitempty"`
	Analysis      scoring.Analysis `json:"analysis"`
	QueuePosition int              `json:"queuePosition,omitempty"`
}

type QuestionService interface {
	CreateQuestion(req models.CreateQuestionRequest, userID uint) (*CreateQuestionResult, error)
	GetQuestion(id uint, isPublic bool) (*models.Question, error)
	GetQuestions(params models.QuestionListParams, isPublic bool) ([]models.Question, int64, error)
	DeleteQuestion(id uint, userID uint, role models.UserRole) error
	QualityPreview(title, content string) (scoring.GuidanceResult, scoring.IntentResult)
}

type questionService struct {
	questionRepo   repositories.QuestionRepository
	tagRepo        repositories.TagRepository
	moderationRepo repositories.ModerationRepository
	classifier     *scoring.Classifier
	quality        *scoring.QualityScorer
	intent         *scoring.IntentDetector
	similarity     *scoring.SimilarityScorer
	cfg            scoring.Config
	logger         zerolog.Logger
}

func NewQuestionService(
	questionRepo repositories.QuestionRepository,
	tagRepo repositories.TagRepository,
	moderationRepo repositories.ModerationRepository,
	cfg scoring.Config,
	logger zerolog.Logger,
) QuestionService {
	return &questionService{
		questionRepo:   questionRepo,
		tagRepo:        tagRepo,
		moderationRepo: moderationRepo,
		classifier:     scoring.NewClassifier(cfg),
		quality:        scoring.NewQualityScorer(cfg),
		intent:         scoring.NewIntentDetector(cfg),
		similarity:     scoring.NewSimilarityScorer(cfg),
		cfg:            cfg,
		logger:         logger,
	}
}

// CreateQuestion runs the moderation pipeline before persisting. A blocked
// question is never stored; a review outcome stores it out of the public feed
// and enqueues it; a flag outcome stores it marked for monitoring.
func (s *questionService) CreateQuestion(req models.CreateQuestionRequest, userID uint) (*CreateQuestionResult, error) {
	analysis := s.classifier.Analyze(req.Title + " " + req.Content)
	observability.ModerationDecisions.WithLabelValues(string(analysis.Recommendation)).Inc()

	if analysis.Recommendation == scoring.RecommendBlock {
		s.logger.Warn().
			Uint("author_id", userID).
			Int("spam", analysis.Spam.Score).
			Int("toxicity", analysis.Toxicity.Score).
			Msg("question blocked by moderation")
		return &CreateQuestionResult{Analysis: analysis}, ErrContentBlocked
	}

	tags, err := s.processTags(req.Tags)
	if err != nil {
		return nil, err
	}

	status := models.StatusActive
	switch analysis.Recommendation {
	case scoring.RecommendReview:
		status = models.StatusReview
	case scoring.RecommendFlag:
		status = models.StatusFlagged
	}

	question := &models.Question{
		AuthorID: userID,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		Status:   status,
		Tags:     tags,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}

	result := &CreateQuestionResult{Question: question, Analysis: analysis}

	if status == models.StatusReview {
		entry := &models.ModerationQueueEntry{
			ContentID:      question.ID,
			ContentType:    "question",
			SpamScore:      analysis.Spam.Score,
			ToxicityScore:  analysis.Toxicity.Score,
			QualityScore:   analysis.Quality.Score,
			Recommendation: string(analysis.Recommendation),
		}
		if err := s.moderationRepo.CreateQueueEntry(entry); err != nil {
			return nil, err
		}
		position, err := s.moderationRepo.QueuePosition(entry)
		if err != nil {
			return nil, err
		}
		result.QueuePosition = position
	}

	s.updateTagUsageCounts()
	s.recordSimilarities(question)

	loaded, err := s.questionRepo.GetByID(question.ID)
	if err != nil {
		return nil, err
	}
	result.Question = loaded

	return result, nil
}

// recordSimilarities persists jaccard scores against the candidate pool so
// moderators can see what the checker saw at submission time. Best effort:
// a failure here never blocks the creation that already happened.
func (s *questionService) recordSimilarities(question *models.Question) {
	tagNames := make([]string, len(question.Tags))
	for i, t := range question.Tags {
		tagNames[i] = t.Name
	}

	candidates, err := s.questionRepo.GetCandidates(question.Category, tagNames, s.cfg.CandidatePoolCap)
	if err != nil {
		s.logger.Error().Err(err).Uint("question_id", question.ID).Msg("failed to load similarity candidates")
		return
	}

	pool := make([]scoring.SimilarityInput, 0, len(candidates))
	ids := make([]uint, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == question.ID {
			continue
		}
		poolTags := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			poolTags[i] = t.Name
		}
		pool = append(pool, scoring.SimilarityInput{Title: c.Title, Content: c.Content, Tags: poolTags})
		ids = append(ids, c.ID)
	}

	input := scoring.SimilarityInput{Title: question.Title, Content: question.Content, Tags: tagNames}
	for _, m := range s.similarity.Rank(input, pool) {
		record := &models.SimilarityRecord{
			QuestionID:        question.ID,
			SimilarQuestionID: ids[m.Index],
			Score:             m.Score.Overall,
			Algorithm:         models.AlgorithmJaccard,
		}
		if err := s.moderationRepo.CreateSimilarityRecord(record); err != nil {
			s.logger.Error().Err(err).Uint("question_id", question.ID).Msg("failed to store similarity record")
			return
		}
	}
}

func (s *questionService) GetQuestion(id uint, isPublic bool) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question", ErrNotFound)
		}
		return nil, err
	}

	if isPublic && question.Status != models.StatusActive {
		return nil, fmt.Errorf("%w: question", ErrNotFound)
	}

	return question, nil
}

func (s *questionService) GetQuestions(params models.QuestionListParams, isPublic bool) ([]models.Question, int64, error) {
	return s.questionRepo.GetList(params, isPublic)
}

func (s *questionService) DeleteQuestion(id uint, userID uint, role models.UserRole) error {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: question", ErrNotFound)
		}
		return err
	}

	if question.AuthorID != userID && !role.CanModerate() {
		return ErrUnauthorized
	}

	return s.questionRepo.Delete(id)
}

// QualityPreview returns the writer-facing guidance shown in the editor.
// Advisory only; nothing here gates persistence.
func (s *questionService) QualityPreview(title, content string) (scoring.GuidanceResult, scoring.IntentResult) {
	return s.quality.Guidance(title, content), s.intent.Detect(title, content)
}

func (s *questionService) processTags(tagNames []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range tagNames {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newTag := &models.Tag{Name: name}
				if err := s.tagRepo.Create(newTag); err != nil {
					return nil, err
				}
				tags = append(tags, *newTag)
			} else {
				return nil, err
			}
		} else {
			tags = append(tags, *tag)
		}
	}

	return tags, nil
}

func (s *questionService) updateTagUsageCounts() {
	tagCounts, err := s.questionRepo.CountQuestionsByTag()
	if err != nil {
		return
	}

	allTags, err := s.tagRepo.GetAll()
	if err != nil {
		return
	}

	for i := range allTags {
		if count, exists := tagCounts[allTags[i].ID]; exists {
			allTags[i].UsageCount = count
		} else {
			allTags[i].UsageCount = 0
		}
	}

	if err := s.tagRepo.BulkUpdate(allTags); err != nil {
		s.logger.Error().Err(err).Msg("failed to update tag usage counts")
	}
}
