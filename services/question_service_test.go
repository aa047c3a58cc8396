package services

import (
	"testing"

	"petcare-api/models"
	"petcare-api/scoring"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newQuestionServiceForTest(questionRepo *stubQuestionRepo, tagRepo *stubTagRepo, moderationRepo *stubModerationRepo) QuestionService {
	return NewQuestionService(questionRepo, tagRepo, moderationRepo, scoring.DefaultConfig(), zerolog.Nop())
}

func TestCreateQuestionApproved(t *testing.T) {
	questionRepo := newStubQuestionRepo()
	tagRepo := newStubTagRepo()
	moderationRepo := newStubModerationRepo()
	svc := newQuestionServiceForTest(questionRepo, tagRepo, moderationRepo)

	result, err := svc.CreateQuestion(models.CreateQuestionRequest{
		Title:    "Labrador limping after walks",
		Content:  cleanQuestion,
		Category: "health",
		Tags:     []string{"dog", "limping"},
	}, 5)

	assert.NoError(t, err)
	assert.Equal(t, scoring.RecommendApprove, result.Analysis.Recommendation)
	assert.Equal(t, models.StatusActive, result.Question.Status)
	assert.Equal(t, uint(5), result.Question.AuthorID)
	assert.Zero(t, result.QueuePosition)

	// Unknown tags are created on the fly.
	tag, err := tagRepo.GetByName("limping")
	assert.NoError(t, err)
	assert.Equal(t, "limping", tag.Name)
}

func TestCreateQuestionBlockedIsNotPersisted(t *testing.T) {
	questionRepo := newStubQuestionRepo()
	tagRepo := newStubTagRepo()
	moderationRepo := newStubModerationRepo()
	svc := newQuestionServiceForTest(questionRepo, tagRepo, moderationRepo)

	result, err := svc.CreateQuestion(models.CreateQuestionRequest{
		Title:    "Best offer",
		Content:  spamBlast,
		Category: "general",
	}, 5)

	assert.ErrorIs(t, err, ErrContentBlocked)
	assert.NotNil(t, result, "the analysis still comes back so the caller can explain the rejection")
	assert.Equal(t, scoring.RecommendBlock, result.Analysis.Recommendation)
	assert.Nil(t, result.Question)
	assert.Empty(t, questionRepo.questions)
}

func TestCreateQuestionReviewGoesToQueue(t *testing.T) {
	questionRepo := newStubQuestionRepo()
	tagRepo := newStubTagRepo()
	moderationRepo := newStubModerationRepo()
	svc := newQuestionServiceForTest(questionRepo, tagRepo, moderationRepo)

	result, err := svc.CreateQuestion(models.CreateQuestionRequest{
		Title:    "Dog food deal",
		Content:  "Special discount on dog food, order now from our shop at http://petdeals.example or call 9876543210",
		Category: "general",
	}, 5)

	assert.NoError(t, err)
	assert.Equal(t, scoring.RecommendReview, result.Analysis.Recommendation)
	assert.Equal(t, models.StatusReview, result.Question.Status)
	assert.Equal(t, 1, result.QueuePosition)
	if assert.Len(t, moderationRepo.queue, 1) {
		assert.Equal(t, result.Question.ID, moderationRepo.queue[0].ContentID)
	}
}

func TestCreateQuestionRecordsSimilarity(t *testing.T) {
	questionRepo := newStubQuestionRepo()
	tagRepo := newStubTagRepo()
	moderationRepo := newStubModerationRepo()

	existing := questionRepo.add(models.Question{
		ID:       50,
		Title:    "Labrador limping after walks",
		Content:  cleanQuestion,
		Category: "health",
		Status:   models.StatusActive,
	})
	questionRepo.candidates = []models.Question{*existing}

	svc := newQuestionServiceForTest(questionRepo, tagRepo, moderationRepo)

	result, err := svc.CreateQuestion(models.CreateQuestionRequest{
		Title:    "Labrador limping after walks",
		Content:  cleanQuestion,
		Category: "health",
	}, 5)

	assert.NoError(t, err)
	records, _ := moderationRepo.GetSimilarityRecords(result.Question.ID)
	if assert.Len(t, records, 1) {
		assert.Equal(t, existing.ID, records[0].SimilarQuestionID)
		assert.Equal(t, models.AlgorithmJaccard, records[0].Algorithm)
		assert.Greater(t, records[0].Score, 0.7)
	}
}

func TestGetQuestionPublicHidesNonActive(t *testing.T) {
	questionRepo := newStubQuestionRepo()
	q := questionRepo.add(models.Question{Title: "Flagged", Category: "general", Status: models.StatusFlagged})

	svc := newQuestionServiceForTest(questionRepo, newStubTagRepo(), newStubModerationRepo())

	_, err := svc.GetQuestion(q.ID, true)
	assert.ErrorIs(t, err, ErrNotFound)

	loaded, err := svc.GetQuestion(q.ID, false)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusFlagged, loaded.Status)
}

func TestDeleteQuestionAuthorization(t *testing.T) {
	questionRepo := newStubQuestionRepo()
	q := questionRepo.add(models.Question{Title: "Mine", AuthorID: 5, Category: "general", Status: models.StatusActive})

	svc := newQuestionServiceForTest(questionRepo, newStubTagRepo(), newStubModerationRepo())

	err := svc.DeleteQuestion(q.ID, 6, models.RoleOwner)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = svc.DeleteQuestion(q.ID, 6, models.RoleModerator)
	assert.NoError(t, err)
	assert.Empty(t, questionRepo.questions)
}

func TestQualityPreviewSuggestsImprovements(t *testing.T) {
	svc := newQuestionServiceForTest(newStubQuestionRepo(), newStubTagRepo(), newStubModerationRepo())

	guidance, intent := svc.QualityPreview("help", "my dog is not eating since two days, need advice please help")

	assert.Less(t, guidance.Score, 50)
	assert.NotEmpty(t, guidance.Suggestions)
	assert.True(t, intent.IsQuestion, "a plea for help reads as a question")
}
