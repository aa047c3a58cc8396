package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPromotionalBlast(t *testing.T) {
	d := NewSpamDetector(DefaultConfig())

	result := d.Detect("BUY NOW BEST OFFER!!! BUY NOW BEST OFFER!!! CALL 9876543210 NOW")

	assert.True(t, result.IsSpam)
	assert.Greater(t, result.Score, 70)
	assert.Contains(t, result.Signals, "promotional_keywords")
	assert.Contains(t, result.Signals, "contact_number")
	assert.Contains(t, result.Signals, "caps_ratio")
	assert.Greater(t, result.Confidence, 0.5, "several independent signals agree")
}

func TestDetectRepeatedPhraseBlast(t *testing.T) {
	d := NewSpamDetector(DefaultConfig())

	// One promotional phrase hammered in all caps with a phone number.
	result := d.Detect("BUY NOW BUY NOW BUY NOW BUY NOW CALL 9876543210")

	assert.Greater(t, result.Score, 70)
	assert.True(t, result.IsSpam)
	assert.Contains(t, result.Signals, "promotional_keywords")
	assert.Contains(t, result.Signals, "repetition")
}

func TestDetectBenignQuestion(t *testing.T) {
	d := NewSpamDetector(DefaultConfig())

	result := d.Detect("My two year old beagle has been scratching his ears a lot this week. The vet visit is booked for Friday, but is there anything I can do at home until then?")

	assert.False(t, result.IsSpam)
	assert.Less(t, result.Score, 30)
}

func TestDetectURLHeavyPost(t *testing.T) {
	d := NewSpamDetector(DefaultConfig())

	result := d.Detect("Check http://example.com/deal and http://example.com/deal2 and www.example.com/deal3 for pet food")

	assert.Contains(t, result.Signals, "urls")
	assert.Greater(t, result.Score, 0)
}

func TestDetectEmptyText(t *testing.T) {
	d := NewSpamDetector(DefaultConfig())

	result := d.Detect("   ")

	assert.Equal(t, 0, result.Score)
	assert.False(t, result.IsSpam)
	assert.Empty(t, result.Signals)
}

func TestDetectScoreCapped(t *testing.T) {
	d := NewSpamDetector(DefaultConfig())

	blast := strings.Repeat("BUY NOW MIRACLE CURE CLICK HERE http://spam.example 9876543210 ", 10)
	result := d.Detect(blast)

	assert.LessOrEqual(t, result.Score, 100)
	assert.True(t, result.IsSpam)
}
