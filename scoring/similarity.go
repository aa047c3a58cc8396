package scoring

import (
	"regexp"
	"sort"
	"strings"
)

// SimilarityInput is the text side of a question, independent of storage.
type SimilarityInput struct {
	Title   string
	Content string
	Tags    []string
}

type SimilarityScore struct {
	Title   float64
	Content float64
	Tag     float64
	Overall float64
}

// RankedMatch points back into the candidate pool by index.
type RankedMatch struct {
	Index int
	Score SimilarityScore
}

// SimilarityScorer computes lexical Jaccard overlap between questions. It is
// purely lexical: no stemming, synonyms, or language detection, so paraphrases
// are not caught. That is a documented limitation, not a bug.
type SimilarityScorer struct {
	cfg Config
}

func NewSimilarityScorer(cfg Config) *SimilarityScorer {
	return &SimilarityScorer{cfg: cfg}
}

var sentenceSplitRe = regexp.MustCompile(`[.!?;]+`)

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(strings.TrimSpace(text))) {
		set[w] = struct{}{}
	}
	return set
}

// Jaccard returns |intersection| / |union| of the word sets of a and b.
// Two empty texts have an empty union and score 0.
func Jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

// phraseBoost rewards exact phrase overlap between two titles. Titles are
// split on sentence punctuation and each phrase checked for substring
// containment in either direction.
func (s *SimilarityScorer) phraseBoost(titleA, titleB string) float64 {
	lowerA := strings.ToLower(titleA)
	lowerB := strings.ToLower(titleB)

	boost := 0.0
	for _, phrase := range sentenceSplitRe.Split(lowerA, -1) {
		phrase = strings.TrimSpace(phrase)
		if len(phrase) < 10 {
			continue
		}
		if strings.Contains(lowerB, phrase) || strings.Contains(phrase, lowerB) {
			boost += s.cfg.PhraseBoostStep
		}
		if boost >= s.cfg.PhraseBoostMax {
			return s.cfg.PhraseBoostMax
		}
	}
	return boost
}

// tagSimilarity is |intersection| / max(|a|, |b|), or 0 when either side has
// no tags.
func tagSimilarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, t := range a {
		setA[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	intersection := 0
	seen := make(map[string]struct{}, len(b))
	for _, t := range b {
		name := strings.ToLower(strings.TrimSpace(t))
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, ok := setA[name]; ok {
			intersection++
		}
	}

	maxLen := len(setA)
	if len(seen) > maxLen {
		maxLen = len(seen)
	}
	return float64(intersection) / float64(maxLen)
}

// Score compares two questions and blends title, content, and tag similarity
// into an overall score in [0,1]. Sub-scores are capped at 1 before blending.
func (s *SimilarityScorer) Score(a, b SimilarityInput) SimilarityScore {
	titleSim := Jaccard(a.Title, b.Title) + s.phraseBoost(a.Title, b.Title)
	if titleSim > 1 {
		titleSim = 1
	}

	contentSim := Jaccard(a.Content, b.Content)
	tagSim := tagSimilarity(a.Tags, b.Tags)

	overall := s.cfg.TextWeight*(s.cfg.TitleWeight*titleSim+s.cfg.ContentWeight*contentSim) +
		s.cfg.TagWeight*tagSim
	if overall > 1 {
		overall = 1
	}

	return SimilarityScore{
		Title:   titleSim,
		Content: contentSim,
		Tag:     tagSim,
		Overall: overall,
	}
}

// Rank scores the candidate against each pool entry, keeps those above the
// similarity floor, and returns the top matches sorted by overall score.
func (s *SimilarityScorer) Rank(candidate SimilarityInput, pool []SimilarityInput) []RankedMatch {
	matches := make([]RankedMatch, 0, len(pool))
	for i, other := range pool {
		score := s.Score(candidate, other)
		if score.Overall > s.cfg.SimilarityFloor {
			matches = append(matches, RankedMatch{Index: i, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score.Overall > matches[j].Score.Overall
	})

	if len(matches) > s.cfg.MaxSimilarResults {
		matches = matches[:s.cfg.MaxSimilarResults]
	}
	return matches
}

// LikelyDuplicate reports whether the best match crosses the duplicate
// threshold. An empty pool is never a duplicate.
func (s *SimilarityScorer) LikelyDuplicate(matches []RankedMatch) bool {
	return len(matches) > 0 && matches[0].Score.Overall > s.cfg.DuplicateThreshold
}
