package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectQuestionMarkShortCircuit(t *testing.T) {
	d := NewIntentDetector(DefaultConfig())

	result := d.Detect("Kya karna chahiye agar dog ko ulti ho rahi hai?", "")

	assert.True(t, result.IsQuestion)
	assert.Equal(t, 1.0, result.Confidence)
	assert.Contains(t, result.Indicators, "contains question mark")
}

func TestDetectGratitudeIsNotAQuestion(t *testing.T) {
	d := NewIntentDetector(DefaultConfig())

	result := d.Detect("Thank you so much for the help!", "")

	assert.False(t, result.IsQuestion)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestDetectHelpRequestWithoutQuestionMark(t *testing.T) {
	d := NewIntentDetector(DefaultConfig())

	result := d.Detect("My dog won't eat since two days, please help", "")

	assert.True(t, result.IsQuestion)
	assert.Greater(t, result.Confidence, 0.2)
	assert.NotEmpty(t, result.Indicators)
	assert.LessOrEqual(t, len(result.Indicators), 3)
}

func TestDetectAnnouncementIsNotAQuestion(t *testing.T) {
	d := NewIntentDetector(DefaultConfig())

	result := d.Detect("Happy to announce our new clinic is now open in Pune", "")

	assert.False(t, result.IsQuestion, "announcement exclusion outweighs the city match")
}

func TestDetectHinglishHelpRequest(t *testing.T) {
	d := NewIntentDetector(DefaultConfig())

	result := d.Detect("Dog ko bukhar hai kya karna chahiye batao", "")

	assert.True(t, result.IsQuestion)
	assert.Greater(t, result.Confidence, 0.2)
}

func TestIntentDetectEmptyText(t *testing.T) {
	d := NewIntentDetector(DefaultConfig())

	result := d.Detect("", "")

	assert.False(t, result.IsQuestion)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestConfidenceBounds(t *testing.T) {
	samples := []struct {
		title string
		body  string
	}{
		{"What should I feed a two month old kitten", "Looking for advice on kitten food brands"},
		{"Best vet near me in Mumbai", "anyone tried the clinic in bandra, your experience"},
		{"We adopted a puppy today", "just wanted to share some photos"},
		{"", "how why when which what"},
	}
	for _, s := range samples {
		result := NewIntentDetector(DefaultConfig()).Detect(s.title, s.body)
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 1.0)
	}
}
