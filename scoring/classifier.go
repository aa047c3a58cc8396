package scoring

type Analysis struct {
	Spam           SpamResult     `json:"spam"`
	Quality        QualityResult  `json:"quality"`
	Toxicity       ToxicityResult `json:"toxicity"`
	OverallScore   int            `json:"overallScore"`
	Recommendation Recommendation `json:"recommendation"`
}

// Classifier bundles the three independent sub-scorers and the recommendation
// policy. Stateless and safe for concurrent use.
type Classifier struct {
	cfg      Config
	spam     *SpamDetector
	quality  *QualityScorer
	toxicity *ToxicityDetector
}

func NewClassifier(cfg Config) *Classifier {
	return &Classifier{
		cfg:      cfg,
		spam:     NewSpamDetector(cfg),
		quality:  NewQualityScorer(cfg),
		toxicity: NewToxicityDetector(cfg),
	}
}

// Analyze scores one content item. The contentType tag is carried through for
// callers; the heuristics treat all text the same way. Malformed input never
// errors — empty text just scores low.
func (c *Classifier) Analyze(text string) Analysis {
	spam := c.spam.Detect(text)
	quality := c.quality.Score(text)
	toxicity := c.toxicity.Detect(text)

	// Overall content health: quality pulled down by the worse of the two
	// negative signals.
	worst := spam.Score
	if toxicity.Score > worst {
		worst = toxicity.Score
	}
	overall := (quality.Score + (100 - worst)) / 2

	return Analysis{
		Spam:           spam,
		Quality:        quality,
		Toxicity:       toxicity,
		OverallScore:   overall,
		Recommendation: c.cfg.Recommend(spam.Score, toxicity.Score, quality.Score),
	}
}
