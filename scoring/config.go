package scoring

// Config collects every heuristic weight and threshold in one place so the
// moderation and duplicate policies can be tuned (and tested) independently of
// the scoring algorithms. Values are overridable through MOD_* environment
// variables; the defaults are the documented ones.
type Config struct {
	// Duplicate / similarity scoring.
	TitleWeight        float64 `env:"MOD_TITLE_WEIGHT" envDefault:"0.7"`
	ContentWeight      float64 `env:"MOD_CONTENT_WEIGHT" envDefault:"0.3"`
	TextWeight         float64 `env:"MOD_TEXT_WEIGHT" envDefault:"0.8"`
	TagWeight          float64 `env:"MOD_TAG_WEIGHT" envDefault:"0.2"`
	PhraseBoostStep    float64 `env:"MOD_PHRASE_BOOST_STEP" envDefault:"0.1"`
	PhraseBoostMax     float64 `env:"MOD_PHRASE_BOOST_MAX" envDefault:"0.2"`
	SimilarityFloor    float64 `env:"MOD_SIMILARITY_FLOOR" envDefault:"0.3"`
	DuplicateThreshold float64 `env:"MOD_DUPLICATE_THRESHOLD" envDefault:"0.7"`
	MaxSimilarResults  int     `env:"MOD_MAX_SIMILAR_RESULTS" envDefault:"5"`
	CandidatePoolCap   int     `env:"MOD_CANDIDATE_POOL_CAP" envDefault:"100"`

	// Classifier thresholds. Spam and toxicity escalate the recommendation,
	// low quality only ever pushes towards flag/review.
	SpamThreshold    int     `env:"MOD_SPAM_THRESHOLD" envDefault:"50"`
	SpamBlockScore   int     `env:"MOD_SPAM_BLOCK_SCORE" envDefault:"70"`
	SpamReviewScore  int     `env:"MOD_SPAM_REVIEW_SCORE" envDefault:"50"`
	SpamFlagScore    int     `env:"MOD_SPAM_FLAG_SCORE" envDefault:"30"`
	ToxicThreshold   int     `env:"MOD_TOXIC_THRESHOLD" envDefault:"40"`
	ToxicBlockScore  int     `env:"MOD_TOXIC_BLOCK_SCORE" envDefault:"70"`
	ToxicReviewScore int     `env:"MOD_TOXIC_REVIEW_SCORE" envDefault:"50"`
	ToxicFlagScore   int     `env:"MOD_TOXIC_FLAG_SCORE" envDefault:"30"`
	QualityReviewMin int     `env:"MOD_QUALITY_REVIEW_MIN" envDefault:"20"`
	QualityFlagMin   int     `env:"MOD_QUALITY_FLAG_MIN" envDefault:"40"`
	IntentConfidence float64 `env:"MOD_INTENT_CONFIDENCE" envDefault:"0.2"`
}

// DefaultConfig returns the documented default policy.
func DefaultConfig() Config {
	return Config{
		TitleWeight:        0.7,
		ContentWeight:      0.3,
		TextWeight:         0.8,
		TagWeight:          0.2,
		PhraseBoostStep:    0.1,
		PhraseBoostMax:     0.2,
		SimilarityFloor:    0.3,
		DuplicateThreshold: 0.7,
		MaxSimilarResults:  5,
		CandidatePoolCap:   100,
		SpamThreshold:      50,
		SpamBlockScore:     70,
		SpamReviewScore:    50,
		SpamFlagScore:      30,
		ToxicThreshold:     40,
		ToxicBlockScore:    70,
		ToxicReviewScore:   50,
		ToxicFlagScore:     30,
		QualityReviewMin:   20,
		QualityFlagMin:     40,
		IntentConfidence:   0.2,
	}
}

type Recommendation string

const (
	RecommendApprove Recommendation = "approve"
	RecommendFlag    Recommendation = "flag"
	RecommendReview  Recommendation = "review"
	RecommendBlock   Recommendation = "block"
)

// Severity orders recommendations from approve (0) to block (3).
func (r Recommendation) Severity() int {
	switch r {
	case RecommendBlock:
		return 3
	case RecommendReview:
		return 2
	case RecommendFlag:
		return 1
	default:
		return 0
	}
}

// Recommend derives the overall action from the three sub-scores. Each rule
// only escalates, so raising spam or toxicity can never soften the outcome.
func (c Config) Recommend(spam, toxicity, quality int) Recommendation {
	switch {
	case spam >= c.SpamBlockScore || toxicity >= c.ToxicBlockScore:
		return RecommendBlock
	case spam >= c.SpamReviewScore || toxicity >= c.ToxicReviewScore || quality < c.QualityReviewMin:
		return RecommendReview
	case spam >= c.SpamFlagScore || toxicity >= c.ToxicFlagScore || quality < c.QualityFlagMin:
		return RecommendFlag
	default:
		return RecommendApprove
	}
}
