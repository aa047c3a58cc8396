package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectThreats(t *testing.T) {
	d := NewToxicityDetector(DefaultConfig())

	result := d.Detect("Shut up, nobody cares about your opinion. You will regret posting this, I will find you.")

	assert.True(t, result.IsToxic)
	assert.Greater(t, result.Categories["threats"], 0)
	assert.Greater(t, result.Categories["harassment"], 0)
	assert.GreaterOrEqual(t, result.Score, 50)
	assert.Contains(t, []ToxicitySeverity{SeverityHigh, SeverityCritical}, result.Severity)
}

func TestDetectAnimalAbuseLanguage(t *testing.T) {
	d := NewToxicityDetector(DefaultConfig())

	result := d.Detect("If he chews the sofa again just beat the dog, works every time. Or chain it all day.")

	assert.True(t, result.IsToxic)
	assert.GreaterOrEqual(t, result.Categories["animal_abuse"], 70)
}

func TestDetectHealthMisinformation(t *testing.T) {
	d := NewToxicityDetector(DefaultConfig())

	result := d.Detect("There is no need for vaccines, rabies is fake and parvo heals on its own.")

	assert.True(t, result.IsToxic)
	assert.Greater(t, result.Categories["misinformation"], 0)
}

func TestDetectCleanText(t *testing.T) {
	d := NewToxicityDetector(DefaultConfig())

	result := d.Detect("My kitten sleeps most of the day, is that normal for an eight week old?")

	assert.False(t, result.IsToxic)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, SeverityLow, result.Severity)
}

func TestSeverityBuckets(t *testing.T) {
	cases := []struct {
		score    int
		severity ToxicitySeverity
	}{
		{0, SeverityLow},
		{24, SeverityLow},
		{25, SeverityMedium},
		{49, SeverityMedium},
		{50, SeverityHigh},
		{74, SeverityHigh},
		{75, SeverityCritical},
		{100, SeverityCritical},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.severity, severityBucket(tc.score), "score %d", tc.score)
	}
}
