package scoring

import (
	"regexp"
	"strings"
	"unicode"
)

type QualityResult struct {
	Score         int      `json:"score"`
	WordCount     int      `json:"wordCount"`
	SentenceCount int      `json:"sentenceCount"`
	Suggestions   []string `json:"suggestions"`
}

// Component caps. Length carries the most weight: a two-word post cannot be a
// good question no matter how well it is punctuated.
const (
	qualityLengthCap    = 25
	qualityStructureCap = 20
	qualityMeaningCap   = 20
	qualityGrammarCap   = 15
	qualityCohesionCap  = 20
)

var fillerWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"or": {}, "so": {}, "that": {}, "the": {}, "their": {}, "there": {},
	"these": {}, "this": {}, "to": {}, "was": {}, "were": {}, "with": {},
	"very": {}, "really": {}, "just": {}, "actually": {}, "basically": {},
}

var connectiveRe = regexp.MustCompile(`\b(because|since|however|therefore|also|then|after|before|when|but|although)\b`)

var punctRunRe = regexp.MustCompile(`[!?.]{4,}`)

// QualityScorer rates how useful a post is likely to be for other readers,
// 0-100, with free-text improvement suggestions for the author.
type QualityScorer struct {
	cfg Config
}

func NewQualityScorer(cfg Config) *QualityScorer {
	return &QualityScorer{cfg: cfg}
}

func (q *QualityScorer) Score(text string) QualityResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return QualityResult{Suggestions: []string{"Write something — the post is empty."}}
	}

	words := strings.Fields(strings.ToLower(trimmed))
	sentences := countSentences(trimmed)
	suggestions := []string{}

	score := lengthScore(len(words), &suggestions)
	score += structureScore(len(words), sentences, &suggestions)
	score += meaningScore(words, &suggestions)
	score += grammarScore(trimmed)
	score += cohesionScore(trimmed, words)

	if score > 100 {
		score = 100
	}

	return QualityResult{
		Score:         score,
		WordCount:     len(words),
		SentenceCount: sentences,
		Suggestions:   suggestions,
	}
}

func countSentences(text string) int {
	count := 0
	for _, part := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

func lengthScore(wordCount int, suggestions *[]string) int {
	switch {
	case wordCount >= 60:
		return qualityLengthCap
	case wordCount >= 30:
		return 20
	case wordCount >= 15:
		return 14
	case wordCount >= 5:
		*suggestions = append(*suggestions, "Add more detail — describe the situation in a few full sentences.")
		return 8
	default:
		*suggestions = append(*suggestions, "Add more detail — a couple of words is not enough for others to help.")
		return 2
	}
}

func structureScore(wordCount, sentences int, suggestions *[]string) int {
	if sentences < 2 {
		*suggestions = append(*suggestions, "Break the post into more than one sentence for readability.")
		return 8
	}
	avg := float64(wordCount) / float64(sentences)
	if avg >= 6 && avg <= 25 {
		return qualityStructureCap
	}
	if avg > 25 {
		*suggestions = append(*suggestions, "Sentences are long — shorter sentences are easier to follow.")
	}
	return 12
}

func meaningScore(words []string, suggestions *[]string) int {
	meaningful := 0
	for _, w := range words {
		if _, filler := fillerWords[strings.Trim(w, ".,!?")]; !filler {
			meaningful++
		}
	}
	ratio := float64(meaningful) / float64(len(words))
	if ratio < 0.4 {
		*suggestions = append(*suggestions, "The post is mostly filler words — add concrete facts.")
	}

	scaled := ratio / 0.6
	if scaled > 1 {
		scaled = 1
	}
	return int(scaled * qualityMeaningCap)
}

func grammarScore(text string) int {
	runes := []rune(text)
	score := 0
	if unicode.IsUpper(runes[0]) {
		score += 5
	}
	if strings.ContainsRune(".!?", runes[len(runes)-1]) {
		score += 5
	}
	if !punctRunRe.MatchString(text) {
		score += 5
	}
	return score
}

func cohesionScore(text string, words []string) int {
	score := 0
	if connectives := len(connectiveRe.FindAllString(strings.ToLower(text), -1)); connectives > 0 {
		score += connectives * 5
		if score > 10 {
			score = 10
		}
	}

	// Topic consistency: a non-filler word recurring suggests the post stays
	// on one subject.
	counts := make(map[string]int)
	for _, w := range words {
		w = strings.Trim(w, ".,!?")
		if _, filler := fillerWords[w]; filler || len(w) < 3 {
			continue
		}
		counts[w]++
		if counts[w] >= 2 {
			return score + 10
		}
	}
	return score
}

// Contextual details a good pet question usually carries.
var contextKeywordRe = regexp.MustCompile(`\b(age|year|years|month|months|old|breed|since|day|days|week|weeks|male|female|kg|vaccinated|diet|vet)\b`)

type GuidanceResult struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// Guidance rates a draft question for the writer-facing quality hint shown in
// the editor. It is advisory only; nothing server-side enforces it.
func (q *QualityScorer) Guidance(title, content string) GuidanceResult {
	score := 0
	suggestions := []string{}

	titleLen := len(strings.TrimSpace(title))
	switch {
	case titleLen >= 20 && titleLen <= 150:
		score += 30
	case titleLen > 0:
		score += 10
		if titleLen < 20 {
			suggestions = append(suggestions, "Title too short — summarize the problem in a full phrase.")
		} else {
			suggestions = append(suggestions, "Title too long — keep it under 150 characters.")
		}
	default:
		suggestions = append(suggestions, "Add a title.")
	}

	bodyWords := len(strings.Fields(content))
	switch {
	case bodyWords >= 40:
		score += 40
	case bodyWords >= 15:
		score += 25
	case bodyWords > 0:
		score += 10
		suggestions = append(suggestions, "Add more context — what happened, and since when?")
	default:
		suggestions = append(suggestions, "Describe the situation in the body of the question.")
	}

	context := len(contextKeywordRe.FindAllString(strings.ToLower(title+" "+content), -1))
	if context > 0 {
		bonus := context * 10
		if bonus > 30 {
			bonus = 30
		}
		score += bonus
	} else {
		suggestions = append(suggestions, "Mention specifics like your pet's age, breed, or how long this has been going on.")
	}

	if score > 100 {
		score = 100
	}
	return GuidanceResult{Score: score, Suggestions: suggestions}
}
