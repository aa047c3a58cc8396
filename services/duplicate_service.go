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

type DuplicateService interface {
	CheckDuplicates(req models.DuplicateCheckRequest) (*models.DuplicateCheckResponse, error)
	MarkDuplicate(req models.DuplicateMarkRequest, moderatorID uint) (*models.Question, error)
}

type duplicateService struct {
	questionRepo   repositories.QuestionRepository
	moderationRepo repositories.ModerationRepository
	scorer         *scoring.SimilarityScorer
	cfg            scoring.Config
	logger         zerolog.Logger
}

func NewDuplicateService(
	questionRepo repositories.QuestionRepository,
	moderationRepo repositories.ModerationRepository,
	cfg scoring.Config,
	logger zerolog.Logger,
) DuplicateService {
	return &duplicateService{
		questionRepo:   questionRepo,
		moderationRepo: moderationRepo,
		scorer:         scoring.NewSimilarityScorer(cfg),
		cfg:            cfg,
		logger:         logger,
	}
}

// CheckDuplicates ranks existing questions against the draft. The candidate
// pool is bounded by category/tag overlap and capped in the repository query.
func (s *duplicateService) CheckDuplicates(req models.DuplicateCheckRequest) (*models.DuplicateCheckResponse, error) {
	observability.DuplicateChecks.Inc()

	candidates, err := s.questionRepo.GetCandidates(req.Category, req.Tags, s.cfg.CandidatePoolCap)
	if err != nil {
		return nil, err
	}

	pool := make([]scoring.SimilarityInput, len(candidates))
	for i, q := range candidates {
		tagNames := make([]string, len(q.Tags))
		for j, t := range q.Tags {
			tagNames[j] = t.Name
		}
		pool[i] = scoring.SimilarityInput{Title: q.Title, Content: q.Content, Tags: tagNames}
	}

	candidate := scoring.SimilarityInput{Title: req.Title, Content: req.Content, Tags: req.Tags}
	matches := s.scorer.Rank(candidate, pool)

	similar := make([]models.SimilarQuestion, len(matches))
	for i, m := range matches {
		similar[i] = models.SimilarQuestion{
			Question:          candidates[m.Index],
			TitleSimilarity:   m.Score.Title,
			ContentSimilarity: m.Score.Content,
			OverallSimilarity: m.Score.Overall,
		}
	}

	likely := s.scorer.LikelyDuplicate(matches)
	if likely {
		observability.DuplicatesDetected.Inc()
	}

	return &models.DuplicateCheckResponse{
		SimilarQuestions:   similar,
		LikelyDuplicate:    likely,
		DuplicateThreshold: s.cfg.DuplicateThreshold,
	}, nil
}

// MarkDuplicate applies a moderator's manual determination. Marking persists a
// similarity record with score 1.0 under the manual_review algorithm and flips
// the question to duplicate status; not_duplicate clears the link and restores
// active status. Cross-category links are refused.
func (s *duplicateService) MarkDuplicate(req models.DuplicateMarkRequest, moderatorID uint) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question", ErrNotFound)
		}
		return nil, err
	}

	switch req.Action {
	case models.ActionMarkDuplicate:
		if req.DuplicateOfID == nil {
			return nil, fmt.Errorf("%w: duplicateOfId is required for mark_duplicate", ErrInvalidRequest)
		}
		if *req.DuplicateOfID == question.ID {
			return nil, fmt.Errorf("%w: a question cannot duplicate itself", ErrInvalidRequest)
		}

		original, err := s.questionRepo.GetByID(*req.DuplicateOfID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: duplicate-of question", ErrNotFound)
			}
			return nil, err
		}

		// Duplicate links never cross categories.
		if original.Category != question.Category {
			return nil, fmt.Errorf("%w: cannot link duplicates across categories", ErrInvalidRequest)
		}

		record := &models.SimilarityRecord{
			QuestionID:        question.ID,
			SimilarQuestionID: original.ID,
			Score:             1.0,
			Algorithm:         models.AlgorithmManualReview,
		}
		if err := s.moderationRepo.CreateSimilarityRecord(record); err != nil {
			return nil, err
		}

		question.Status = models.StatusDuplicate
		question.DuplicateOfID = &original.ID

		s.logger.Info().
			Uint("question_id", question.ID).
			Uint("duplicate_of", original.ID).
			Uint("moderator_id", moderatorID).
			Msg("question marked as duplicate")

	case models.ActionNotDuplicate:
		if err := s.moderationRepo.DeleteManualSimilarityRecords(question.ID); err != nil {
			return nil, err
		}
		question.Status = models.StatusActive
		question.DuplicateOfID = nil

		s.logger.Info().
			Uint("question_id", question.ID).
			Uint("moderator_id", moderatorID).
			Msg("duplicate mark cleared")

	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidRequest, req.Action)
	}

	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}

	return question, nil
}
