package app

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

const wildcard = "*"

var defaultMatcher = &Matcher{}

// NormalizeRepository brings repository url or pattern to comparable form.
// Lowercases, trims whitespace, strips http(s) scheme and one trailing slash.
func NormalizeRepository(repository string) string {
	s := strings.TrimSpace(strings.ToLower(repository))
	if strings.HasPrefix(s, "https://") {
		s = strings.TrimPrefix(s, "https://")
	} else {
		s = strings.TrimPrefix(s, "http://")
	}

	return strings.TrimSuffix(s, "/")
}

// MatchesRepository tells if repository url matches any of given patterns.
// Globs are compiled on every call, see Matcher for cached variant.
func MatchesRepository(repositoryURL string, patterns []string) bool {
	return defaultMatcher.Matches(repositoryURL, patterns)
}

// Matcher matches repository urls against project patterns.
// Compiled glob expressions are kept in lru cache keyed by normalized pattern.
type Matcher struct {
	globs *lru.Cache
}

// NewMatcher creates new Matcher instance.
func NewMatcher(cacheSize int) (*Matcher, error) {
	if cacheSize <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	globs, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for patterns: %w", err)
	}

	return &Matcher{
		globs: globs,
	}, nil
}

// Matches tells if repository url matches any of given patterns.
// Exact patterns are checked before globs.
func (m *Matcher) Matches(repositoryURL string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	query := NormalizeRepository(repositoryURL)
	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		normalized = append(normalized, NormalizeRepository(p))
	}

	for _, p := range normalized {
		if !strings.Contains(p, wildcard) && p == query {
			return true
		}
	}

	for _, p := range normalized {
		if !strings.Contains(p, wildcard) {
			continue
		}
		re := m.glob(p)
		if re != nil && re.MatchString(query) {
			return true
		}
	}

	return false
}

func (m *Matcher) glob(pattern string) *regexp.Regexp {
	if m.globs != nil {
		if val, ok := m.globs.Get(pattern); ok {
			return val.(*regexp.Regexp)
		}
	}

	re, err := compileGlob(pattern)
	if err != nil {
		return nil
	}
	if m.globs != nil {
		m.globs.Add(pattern, re)
	}

	return re
}

// compileGlob turns pattern into anchored expression where '*' matches any sequence.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	quoted := regexp.QuoteMeta(pattern)
	expr := strings.ReplaceAll(quoted, regexp.QuoteMeta(wildcard), ".*")

	return regexp.Compile("^" + expr + "$")
}
