package services

import (
	"errors"
	"fmt"
	"time"

	"petcare-api/models"
	"petcare-api/observability"
	"petcare-api/repositories"
	"petcare-api/scoring"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type AnalyzeResult struct {
	Spam           scoring.SpamResult     `json:"spam"`
	Quality        scoring.QualityResult  `json:"quality"`
	Toxicity       scoring.ToxicityResult `json:"toxicity"`
	OverallScore   int                    `json:"overallScore"`
	Recommendation scoring.Recommendation `json:"recommendation"`
	ProcessingTime string                 `json:"processingTime"`
}

type AutoProcessResult struct {
	Recommendation scoring.Recommendation `json:"recommendation"`
	Blocked        bool                   `json:"blocked"`
	QueuePosition  int                    `json:"queuePosition,omitempty"`
	Status         models.QuestionStatus  `json:"status,omitempty"`
}

type ModerationService interface {
	Analyze(req models.AnalyzeRequest) *AnalyzeResult
	AutoProcess(req models.AutoProcessRequest, moderatorID uint) (*AutoProcessResult, error)
	GetQueue(page, limit int) ([]models.ModerationQueueEntry, int64, error)
	MarkReviewed(id uint, moderatorID uint) error
}

type moderationService struct {
	questionRepo   repositories.QuestionRepository
	moderationRepo repositories.ModerationRepository
	classifier     *scoring.Classifier
	logger         zerolog.Logger
}

func NewModerationService(
	questionRepo repositories.QuestionRepository,
	moderationRepo repositories.ModerationRepository,
	cfg scoring.Config,
	logger zerolog.Logger,
) ModerationService {
	return &moderationService{
		questionRepo:   questionRepo,
		moderationRepo: moderationRepo,
		classifier:     scoring.NewClassifier(cfg),
		logger:         logger,
	}
}

// Analyze scores text without persisting anything. Moderation scores are
// ephemeral and recomputed on demand.
func (s *moderationService) Analyze(req models.AnalyzeRequest) *AnalyzeResult {
	start := time.Now()
	analysis := s.classifier.Analyze(req.Content)
	elapsed := time.Since(start)

	observability.AnalyzeDuration.Observe(elapsed.Seconds())

	return &AnalyzeResult{
		Spam:           analysis.Spam,
		Quality:        analysis.Quality,
		Toxicity:       analysis.Toxicity,
		OverallScore:   analysis.OverallScore,
		Recommendation: analysis.Recommendation,
		ProcessingTime: elapsed.String(),
	}
}

func (s *moderationService) AutoProcess(req models.AutoProcessRequest, moderatorID uint) (*AutoProcessResult, error) {
	switch req.Action {
	case models.ActionProcess, models.ActionReprocess:
		return s.process(req)
	case models.ActionFeedback:
		return s.recordFeedback(req, moderatorID)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidRequest, req.Action)
	}
}

func (s *moderationService) GetQueue(page, limit int) ([]models.ModerationQueueEntry, int64, error) {
	return s.moderationRepo.GetQueue(models.QueuePending, page, limit)
}

// MarkReviewed closes a queue entry once a moderator has acted on it, so it
// stops counting towards FIFO positions.
func (s *moderationService) MarkReviewed(id uint, moderatorID uint) error {
	if err := s.moderationRepo.MarkReviewed(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: queue entry", ErrNotFound)
		}
		return err
	}

	s.logger.Info().
		Uint("entry_id", id).
		Uint("moderator_id", moderatorID).
		Msg("queue entry reviewed")
	return nil
}

// process applies the recommendation to stored content. Reprocessing uses the
// stored text when the request carries none.
func (s *moderationService) process(req models.AutoProcessRequest) (*AutoProcessResult, error) {
	question, err := s.questionRepo.GetByID(req.ContentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: content", ErrNotFound)
		}
		return nil, err
	}

	content := req.Content
	if content == "" {
		content = question.Title + " " + question.Content
	}

	analysis := s.classifier.Analyze(content)
	observability.ModerationDecisions.WithLabelValues(string(analysis.Recommendation)).Inc()

	result := &AutoProcessResult{Recommendation: analysis.Recommendation}

	switch analysis.Recommendation {
	case scoring.RecommendBlock:
		// Blocked content does not stay visible as active content.
		if err := s.questionRepo.Delete(question.ID); err != nil {
			return nil, err
		}
		result.Blocked = true
		s.logger.Warn().
			Uint("content_id", question.ID).
			Int("spam", analysis.Spam.Score).
			Int("toxicity", analysis.Toxicity.Score).
			Msg("content blocked on auto-process")

	case scoring.RecommendReview:
		question.Status = models.StatusReview
		if err := s.questionRepo.Update(question); err != nil {
			return nil, err
		}
		entry := &models.ModerationQueueEntry{
			ContentID:      question.ID,
			ContentType:    req.ContentType,
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
		result.Status = models.StatusReview

	case scoring.RecommendFlag:
		question.Status = models.StatusFlagged
		if err := s.questionRepo.Update(question); err != nil {
			return nil, err
		}
		result.Status = models.StatusFlagged

	default:
		question.Status = models.StatusActive
		if err := s.questionRepo.Update(question); err != nil {
			return nil, err
		}
		result.Status = models.StatusActive
	}

	return result, nil
}

// recordFeedback stores the moderator's verdict on an automated decision.
// Audit log only: thresholds are not adjusted from feedback.
func (s *moderationService) recordFeedback(req models.AutoProcessRequest, moderatorID uint) (*AutoProcessResult, error) {
	if req.Accurate == nil {
		return nil, fmt.Errorf("%w: accurate is required for feedback", ErrInvalidRequest)
	}

	feedback := &models.ModerationFeedback{
		ContentID:   req.ContentID,
		ContentType: req.ContentType,
		ModeratorID: moderatorID,
		Accurate:    *req.Accurate,
		Notes:       req.Notes,
	}
	if err := s.moderationRepo.CreateFeedback(feedback); err != nil {
		return nil, err
	}

	observability.ModerationFeedback.WithLabelValues(accuracyLabel(*req.Accurate)).Inc()
	s.logger.Info().
		Uint("content_id", req.ContentID).
		Uint("moderator_id", moderatorID).
		Bool("accurate", *req.Accurate).
		Msg("moderation feedback recorded")

	return &AutoProcessResult{}, nil
}

func accuracyLabel(accurate bool) string {
	if accurate {
		return "accurate"
	}
	return "inaccurate"
}
