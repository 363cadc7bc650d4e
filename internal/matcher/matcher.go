package matcher

import (
	"errors"
	"strings"
)

var ErrNoKeywords = errors.New("no keywords given")

// Matcher decides which keyword, if any, a line matches
type Matcher interface {
	Match(line string) (string, bool)
	Keywords() []string
}

// KeywordMatcher matches a line on the first keyword, in list order, that
// occurs in it as a literal substring. A line yields at most one keyword.
type KeywordMatcher struct {
	keywords        []string
	caseInsensitive bool
}

func NewKeywordMatcher(keywords []string, caseInsensitive bool) (*KeywordMatcher, error) {
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}

	normalized := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k == "" {
			return nil, errors.New("empty keyword")
		}
		if caseInsensitive {
			k = strings.ToLower(k)
		}
		normalized = append(normalized, k)
	}

	return &KeywordMatcher{
		keywords:        normalized,
		caseInsensitive: caseInsensitive,
	}, nil
}

// Match returns the triggering keyword. In case-insensitive mode it is lower-cased.
func (m *KeywordMatcher) Match(line string) (string, bool) {
	if m.caseInsensitive {
		line = strings.ToLower(line)
	}

	for _, k := range m.keywords {
		if strings.Contains(line, k) {
			return k, true
		}
	}
	return "", false
}

// Keywords returns the normalized keyword list
func (m *KeywordMatcher) Keywords() []string {
	return m.keywords
}
