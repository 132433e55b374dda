package query

import (
	"regexp"
	"strings"
	"time"
)

// timeRule pairs a phrase pattern with a resolver anchored at "now".
// Rules are evaluated in declaration order, first match wins.
type timeRule struct {
	pattern *regexp.Regexp
	resolve func(now time.Time) time.Time
}

var timeRules = []timeRule{
	{regexp.MustCompile(`\btoday\b`), func(now time.Time) time.Time {
		return midnight(now)
	}},
	{regexp.MustCompile(`\btomorrow\b`), func(now time.Time) time.Time {
		return midnight(now).AddDate(0, 0, 1)
	}},
	{regexp.MustCompile(`\bthis week\b`), func(now time.Time) time.Time {
		return midnight(now)
	}},
	{regexp.MustCompile(`\bnext week\b`), func(now time.Time) time.Time {
		return midnight(now).AddDate(0, 0, 7)
	}},
}

// inPlacePattern runs over the original text so the captured place
// keeps the caller's casing; the match itself is case-insensitive.
var (
	nearMePattern  = regexp.MustCompile(`\bnear me\b`)
	inPlacePattern = regexp.MustCompile(`(?i)\bin ([A-Za-z][A-Za-z\s,]*)`)
)

// timePhrases are stripped from the tail of a captured place name so
// "in berlin tomorrow" yields "berlin" rather than "berlin tomorrow".
var timePhrases = []string{"today", "tomorrow", "this week", "next week"}

// keywordVocabulary lists the topic terms the extractor recognizes.
// Matched terms are reported in this order, not input order.
var keywordVocabulary = []string{
	"programming", "coding", "software", "tech", "python", "javascript",
	"data science", "machine learning", "ai", "web development", "mobile",
}

// Extractor parses free-text queries into SearchQuery values. It holds
// no mutable state and is safe for concurrent use.
type Extractor struct {
	clock      Clock
	maxResults int
}

// NewExtractor builds an Extractor. A nil clock falls back to
// time.Now; a non-positive cap falls back to DefaultMaxResults.
func NewExtractor(clock Clock, maxResults int) *Extractor {
	if clock == nil {
		clock = time.Now
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Extractor{clock: clock, maxResults: maxResults}
}

// Extract parses text into a SearchQuery. It is total: any input,
// including the empty string, yields a valid query with absent fields
// left at their zero values.
func (e *Extractor) Extract(text string) SearchQuery {
	q := SearchQuery{MaxResults: e.maxResults}
	lower := strings.ToLower(text)

	for _, rule := range timeRules {
		if rule.pattern.MatchString(lower) {
			t := rule.resolve(e.clock())
			q.StartTime = &t
			break
		}
	}

	if nearMePattern.MatchString(lower) {
		q.Location = CurrentLocation
	} else if m := inPlacePattern.FindStringSubmatch(text); m != nil {
		q.Location = trimPlace(m[1])
	}

	for _, term := range []string{"remote", "online", "virtual"} {
		if strings.Contains(lower, term) {
			q.RemoteOnly = true
			break
		}
	}

	for _, keyword := range keywordVocabulary {
		if strings.Contains(lower, keyword) {
			q.Keywords = append(q.Keywords, keyword)
		}
	}

	return q
}

// trimPlace cleans a captured place name: trailing time phrases are
// dropped, then surrounding whitespace and commas.
func trimPlace(place string) string {
	place = strings.TrimSpace(place)
	lower := strings.ToLower(place)
	for _, phrase := range timePhrases {
		if strings.HasSuffix(lower, phrase) {
			place = strings.TrimSpace(place[:len(place)-len(phrase)])
			break
		}
	}
	return strings.Trim(place, " ,")
}

// midnight truncates t to the start of its day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
