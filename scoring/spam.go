package scoring

import (
	"regexp"
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Promotional phrases typical of marketplace spam. Weights reflect how
// strongly a phrase alone signals spam.
var spamPhrases = []string{
	"buy now",
	"order now",
	"best offer",
	"limited offer",
	"limited time",
	"special discount",
	"huge discount",
	"lowest price",
	"best price",
	"free home delivery",
	"cash on delivery",
	"guaranteed results",
	"100% effective",
	"100% natural",
	"miracle cure",
	"instant results",
	"dm for price",
	"whatsapp now",
	"whatsapp us",
	"click here",
	"visit our website",
	"promo code",
	"earn money",
	"work from home",
	"franchise opportunity",
}

var spamPhraseWeights = map[string]int{
	"buy now":            3,
	"order now":          3,
	"best offer":         3,
	"miracle cure":       3,
	"guaranteed results": 3,
	"100% effective":     3,
	"dm for price":       3,
	"whatsapp now":       3,
	"click here":         3,
	"earn money":         3,
	"work from home":     3,
	"limited offer":      2,
	"limited time":       2,
	"special discount":   2,
	"huge discount":      2,
	"instant results":    2,
	"promo code":         2,
	"free home delivery": 2,
}

var (
	urlRe     = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)
	phoneRe   = regexp.MustCompile(`\b(?:\+?91[\- ]?)?\d{10}\b`)
	wordishRe = regexp.MustCompile(`^[a-z']+$`)
)

// Signal caps: keyword hits dominate, the rest corroborate.
const (
	spamKeywordCap    = 40
	spamKeywordFactor = 8
	spamURLCap        = 20
	spamURLFactor     = 10
	spamContactScore  = 10
	spamCapsHigh      = 15
	spamCapsMild      = 8
	spamRepeatHigh    = 15
	spamRepeatMild    = 10
	spamGibberish     = 10
	spamShortBlast    = 5
	spamSignalCount   = 6
)

type SpamResult struct {
	Score      int      `json:"score"`
	IsSpam     bool     `json:"isSpam"`
	Confidence float64  `json:"confidence"`
	Signals    []string `json:"signals"`
}

// SpamDetector scores text for spam likelihood from weighted phrase matches
// plus independent corroborating signals (URLs, contact numbers, shouting,
// repetition, gibberish). Matching is a single Aho-Corasick pass.
type SpamDetector struct {
	cfg     Config
	matcher *ahocorasick.Matcher
}

func NewSpamDetector(cfg Config) *SpamDetector {
	return &SpamDetector{
		cfg:     cfg,
		matcher: ahocorasick.NewStringMatcher(spamPhrases),
	}
}

// Detect never fails: empty text scores zero.
func (d *SpamDetector) Detect(text string) SpamResult {
	if strings.TrimSpace(text) == "" {
		return SpamResult{}
	}

	lower := strings.ToLower(text)
	words := strings.Fields(lower)
	signals := make([]string, 0, spamSignalCount)
	score := 0

	// 1. Weighted promotional phrase hits. The automaton reports each phrase
	// once; every occurrence counts, so a single phrase blasted repeatedly
	// scores as hard as several distinct ones.
	keywordScore := 0
	for _, hit := range d.matcher.Match([]byte(lower)) {
		phrase := spamPhrases[hit]
		weight, ok := spamPhraseWeights[phrase]
		if !ok {
			weight = 1
		}
		keywordScore += weight * strings.Count(lower, phrase) * spamKeywordFactor
	}
	if keywordScore > spamKeywordCap {
		keywordScore = spamKeywordCap
	}
	if keywordScore > 0 {
		score += keywordScore
		signals = append(signals, "promotional_keywords")
	}

	// 2. URLs.
	if urls := len(urlRe.FindAllString(text, -1)); urls > 0 {
		urlScore := urls * spamURLFactor
		if urlScore > spamURLCap {
			urlScore = spamURLCap
		}
		score += urlScore
		signals = append(signals, "urls")
	}

	// 3. Contact numbers.
	if phoneRe.MatchString(text) {
		score += spamContactScore
		signals = append(signals, "contact_number")
	}

	// 4. Shouting: ratio of capitalized letters.
	if capsScore := capsRatioScore(text); capsScore > 0 {
		score += capsScore
		signals = append(signals, "caps_ratio")
	}

	// 5. Phrase repetition: the same trigram recurring.
	if repeatScore := repetitionScore(words); repeatScore > 0 {
		score += repeatScore
		signals = append(signals, "repetition")
	}

	// 6. Language quality proxy: mostly non-words reads like gibberish or
	// keyword stuffing. Short blasts that still hit a promotional phrase
	// count here too.
	if languagePenalty(words, keywordScore) > 0 {
		score += languagePenalty(words, keywordScore)
		signals = append(signals, "language_quality")
	}

	if score > 100 {
		score = 100
	}

	return SpamResult{
		Score:      score,
		IsSpam:     score >= d.cfg.SpamThreshold,
		Confidence: float64(len(signals)) / float64(spamSignalCount),
		Signals:    signals,
	}
}

func capsRatioScore(text string) int {
	letters, upper := 0, 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters < 15 {
		return 0
	}
	ratio := float64(upper) / float64(letters)
	switch {
	case ratio > 0.6:
		return spamCapsHigh
	case ratio > 0.3:
		return spamCapsMild
	default:
		return 0
	}
}

func repetitionScore(words []string) int {
	if len(words) < 6 {
		return 0
	}
	trigrams := make(map[string]int)
	maxCount := 0
	for i := 0; i+2 < len(words); i++ {
		key := words[i] + " " + words[i+1] + " " + words[i+2]
		trigrams[key]++
		if trigrams[key] > maxCount {
			maxCount = trigrams[key]
		}
	}
	switch {
	case maxCount >= 3:
		return spamRepeatHigh
	case maxCount >= 2:
		return spamRepeatMild
	default:
		return 0
	}
}

func languagePenalty(words []string, keywordScore int) int {
	if len(words) == 0 {
		return 0
	}
	if len(words) < 10 && keywordScore > 0 {
		return spamShortBlast
	}
	if len(words) < 5 {
		return 0
	}
	wordish := 0
	for _, w := range words {
		if wordishRe.MatchString(strings.Trim(w, ".,!?")) {
			wordish++
		}
	}
	if float64(wordish)/float64(len(words)) < 0.5 {
		return spamGibberish
	}
	return 0
}
