package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers while
// preventing memory exhaustion from malicious requests.
const maxAcceptLanguageLength = 4096

// langWithQ represents a language tag with its quality value
type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader parses Accept-Language headers according to RFC 7231.
// Entries are returned ordered by quality, malformed q values count as 1.0.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.TrimSpace(langAndQ[0])
		q := 1.0

		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if lang != "" && lang != "*" && q > 0 {
			languages = append(languages, langWithQ{lang: lang, q: q})
		}
	}

	// Stable so equal weights keep header order
	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})

	return languages
}

// MatchAcceptLanguage picks the best supported culture for an Accept-Language header.
// Exact matches are tried first across all entries, then each entry's parent chain
// (fr-CA -> fr), so a lower weighted exact match beats a higher weighted parent match.
func MatchAcceptLanguage(header string, supported []Culture) (Culture, bool) {
	if header == "" || len(supported) == 0 {
		return Invariant, false
	}

	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		if c, ok := Find(supported, lq.lang); ok {
			return c, true
		}
	}

	for _, lq := range languages {
		requested, err := Parse(lq.lang)
		if err != nil {
			continue
		}
		for _, ancestor := range requested.Chain()[1:] {
			if ancestor.IsInvariant() {
				break
			}
			if c, ok := Find(supported, ancestor.Name()); ok {
				return c, true
			}
		}
	}

	return Invariant, false
}
