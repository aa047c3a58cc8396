package scoring

import (
	"regexp"
	"strings"
)

type IntentResult struct {
	IsQuestion bool     `json:"isQuestion"`
	Confidence float64  `json:"confidence"`
	Type       string   `json:"type"`
	Indicators []string `json:"indicators"`
}

type indicatorFamily struct {
	name   string
	weight float64
	re     *regexp.Regexp
}

type exclusionFamily struct {
	name   string
	weight float64
	re     *regexp.Regexp
}

// Weighted indicator families, English and Hinglish. Match counts multiply the
// family weight; the strongest family names the question type.
var intentFamilies = []indicatorFamily{
	{"interrogative_what", 1.0, regexp.MustCompile(`\bwhat(s|'s)?\b`)},
	{"interrogative_how", 1.0, regexp.MustCompile(`\bhow\b`)},
	{"interrogative_why", 1.0, regexp.MustCompile(`\bwhy\b`)},
	{"interrogative_which", 1.0, regexp.MustCompile(`\b(which|when|where|who)\b`)},
	{"modal_query", 1.2, regexp.MustCompile(`\b(should i|can i|could i|shall i|do i need|is it (ok|okay|safe|normal)|does (it|this|my))\b`)},
	{"urgency", 0.8, regexp.MustCompile(`\b(urgent|urgently|emergency|asap|immediately|right away)\b`)},
	{"help_seeking", 1.2, regexp.MustCompile(`\b(please help|help me|need help|need advice|any advice|any suggestions?|looking for (help|advice))\b`)},
	{"recommendation", 1.0, regexp.MustCompile(`\b(suggest|recommend|recommendations?|advise|guide me)\b`)},
	{"comparison", 1.0, regexp.MustCompile(`\b(vs|versus|better than|which one|compare|difference between)\b`)},
	{"selection", 0.9, regexp.MustCompile(`\b(best|good|top) (vet|clinic|food|groomer|breed|shampoo|trainer|boarding)\b`)},
	{"location", 0.9, regexp.MustCompile(`\b(near me|nearby|in my area|close by)\b`)},
	{"location_city", 0.7, regexp.MustCompile(`\b(mumbai|delhi|bangalore|bengaluru|pune|hyderabad|chennai|kolkata|jaipur|ahmedabad|gurgaon|noida|lucknow)\b`)},
	{"experience", 1.1, regexp.MustCompile(`\b(anyone (tried|used|faced)|has anyone|have you (tried|used)|did anyone|your experience)\b`)},
	{"validation", 1.1, regexp.MustCompile(`\b(is this normal|am i doing (it|this) (right|wrong)|did i do)\b`)},
	{"problem_statement", 1.0, regexp.MustCompile(`\b(not eating|won'?t (eat|drink|stop)|refuses to|stopped (eating|drinking)|problem with|issue with|suffering from|keeps (crying|barking|scratching))\b`)},
	{"symptom", 0.8, regexp.MustCompile(`\b(vomit(ing|s)?|diarrhea|limping|itching|scratching|fever|shedding|loose motion|ulti|bukhar)\b`)},
	{"hinglish_interrogative", 1.2, regexp.MustCompile(`\b(kya|kaise|kyun|kyu|kab|kaun|kahan|kidhar|kitna|kitne)\b`)},
	{"hinglish_help", 1.2, regexp.MustCompile(`\b(batao|bataiye|bataye|madad|karna chahiye|karu[n]?|sujhav|salah)\b`)},
	{"hinglish_problem", 0.9, regexp.MustCompile(`\b(ho (raha|rahi) hai|nahi kha (raha|rahi)|pareshan|dikkat|samasya)\b`)},
	{"advice_topic", 0.9, regexp.MustCompile(`\b(tips (for|on)|advice on|thoughts on|opinions? on)\b`)},
}

// Non-question patterns subtract from the score: gratitude posts,
// announcements, celebrations, and personal narratives routinely contain
// incidental indicator words.
var intentExclusions = []exclusionFamily{
	{"gratitude", 2.0, regexp.MustCompile(`\b(thank you|thanks|thank u|thankful|grateful|dhanyavad|shukriya)\b`)},
	{"announcement", 1.5, regexp.MustCompile(`\b((happy|pleased|proud) to announce|introducing|now open|we are launching|grand opening|new arrival)\b`)},
	{"celebration", 1.5, regexp.MustCompile(`\b(congratulations|congrats|celebrated|celebrating|birthday|anniversary)\b`)},
	{"narrative", 1.2, regexp.MustCompile(`\b(just wanted to share|sharing (a|my|some)|today i|yesterday i|we adopted|i (bought|got) a|look at my)\b`)},
}

// IntentDetector decides whether text reads as a question or help request.
type IntentDetector struct {
	cfg Config
}

func NewIntentDetector(cfg Config) *IntentDetector {
	return &IntentDetector{cfg: cfg}
}

const maxIndicators = 3

// Detect combines title and body. A literal question mark short-circuits to a
// confident yes; otherwise the weighted families vote and exclusions veto.
func (d *IntentDetector) Detect(title, body string) IntentResult {
	text := strings.ToLower(strings.TrimSpace(title + " " + body))
	if text == "" {
		return IntentResult{Type: "none", Indicators: []string{}}
	}

	if strings.Contains(text, "?") {
		bestType, _, _, _ := matchFamilies(text)
		if bestType == "" {
			bestType = "direct_question"
		}
		return IntentResult{
			IsQuestion: true,
			Confidence: 1.0,
			Type:       bestType,
			Indicators: []string{"contains question mark"},
		}
	}

	bestType, score, familiesMatched, indicators := matchFamilies(text)

	for _, excl := range intentExclusions {
		if matches := len(excl.re.FindAllString(text, -1)); matches > 0 {
			score -= float64(matches) * excl.weight
		}
	}

	confidence := normalizeIntentScore(score, familiesMatched)
	if bestType == "" {
		bestType = "none"
	}

	return IntentResult{
		IsQuestion: confidence > d.cfg.IntentConfidence,
		Confidence: confidence,
		Type:       bestType,
		Indicators: indicators,
	}
}

func matchFamilies(text string) (bestType string, score float64, familiesMatched int, indicators []string) {
	indicators = []string{}
	bestContribution := 0.0

	for _, family := range intentFamilies {
		matches := family.re.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		contribution := float64(len(matches)) * family.weight
		score += contribution
		familiesMatched++

		if contribution > bestContribution {
			bestContribution = contribution
			bestType = family.name
		}
		if len(indicators) < maxIndicators {
			indicators = append(indicators, family.name+": \""+matches[0]+"\"")
		}
	}
	return bestType, score, familiesMatched, indicators
}

// normalizeIntentScore maps the penalized total onto [0,1] with a three-tier
// piecewise scale and a boost when more than one family agreed.
func normalizeIntentScore(score float64, familiesMatched int) float64 {
	if score <= 0 {
		return 0
	}

	var confidence float64
	switch {
	case score >= 5:
		confidence = 0.7 + (score-5)*0.04
	case score >= 2.5:
		confidence = 0.4 + (score-2.5)*0.12
	default:
		confidence = score * 0.16
	}

	if familiesMatched > 1 {
		confidence *= 1.15
	}
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}
