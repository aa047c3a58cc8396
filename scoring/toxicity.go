package scoring

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Keyword families. Each family scores independently; the overall score is
// the worst family, which also drives the severity bucket.
var toxicityFamilies = map[string][]string{
	"harassment": {
		"idiot", "stupid", "loser", "pathetic", "shut up", "nobody cares",
		"get lost", "you people are", "clueless moron", "worst owner",
	},
	"threats": {
		"i will kill", "kill you", "hurt you", "beat you up", "i will find you",
		"you will regret", "watch your back",
	},
	"profanity": {
		"damn you", "bastard", "screw you", "go to hell", "bloody fool",
		"bullshit",
	},
	"animal_abuse": {
		"beat the dog", "beat your dog", "kick the dog", "kick the cat",
		"starve it", "starve the", "left it to die", "abandon it on",
		"drown the", "hit it hard", "chain it all day", "just put it down yourself",
	},
	"misinformation": {
		"no need for vaccines", "vaccines are harmful", "vaccines cause autism",
		"rabies is fake", "bleach cures", "chocolate is safe for dogs",
		"antibiotics cure everything", "skip the vet", "parvo heals on its own",
		"turmeric cures cancer",
	},
}

const toxicityHitWeight = 35

type ToxicitySeverity string

const (
	SeverityLow      ToxicitySeverity = "low"
	SeverityMedium   ToxicitySeverity = "medium"
	SeverityHigh     ToxicitySeverity = "high"
	SeverityCritical ToxicitySeverity = "critical"
)

type ToxicityResult struct {
	Score      int              `json:"score"`
	IsToxic    bool             `json:"isToxic"`
	Severity   ToxicitySeverity `json:"severity"`
	Categories map[string]int   `json:"categories"`
}

// ToxicityDetector flags harassment, threats, profanity, language normalizing
// animal abuse, and pet-health misinformation. One Aho-Corasick automaton
// covers every family; pattern index maps back to its family.
type ToxicityDetector struct {
	cfg      Config
	matcher  *ahocorasick.Matcher
	patterns []string
	families []string
}

func NewToxicityDetector(cfg Config) *ToxicityDetector {
	d := &ToxicityDetector{cfg: cfg}
	for family, phrases := range toxicityFamilies {
		for _, p := range phrases {
			d.patterns = append(d.patterns, p)
			d.families = append(d.families, family)
		}
	}
	d.matcher = ahocorasick.NewStringMatcher(d.patterns)
	return d
}

func (d *ToxicityDetector) Detect(text string) ToxicityResult {
	categories := make(map[string]int, len(toxicityFamilies))
	for family := range toxicityFamilies {
		categories[family] = 0
	}

	if strings.TrimSpace(text) == "" {
		return ToxicityResult{Severity: SeverityLow, Categories: categories}
	}

	for _, hit := range d.matcher.Match([]byte(strings.ToLower(text))) {
		family := d.families[hit]
		categories[family] += toxicityHitWeight
		if categories[family] > 100 {
			categories[family] = 100
		}
	}

	overall := 0
	for _, score := range categories {
		if score > overall {
			overall = score
		}
	}

	return ToxicityResult{
		Score:      overall,
		IsToxic:    overall >= d.cfg.ToxicThreshold,
		Severity:   severityBucket(overall),
		Categories: categories,
	}
}

func severityBucket(score int) ToxicitySeverity {
	switch {
	case score >= 75:
		return SeverityCritical
	case score >= 50:
		return SeverityHigh
	case score >= 25:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
