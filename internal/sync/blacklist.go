// Package sync implements the clean/import/patch pipeline that refreshes a
// vendored source tree from an upstream repository checkout.
package sync

import (
	"fmt"
	"regexp"
	"strings"
)

// Blacklist is an immutable set of glob-style path patterns identifying
// files that must never be imported from the upstream checkout.
//
// Patterns are matched against the full relative path from the repository
// root, anchored at both ends. `*` matches any run of characters including
// directory separators and `?` matches a single character, so
// `third_party/*` excludes the whole subtree.
type Blacklist struct {
	patterns []string
	re       *regexp.Regexp
}

// NewBlacklist compiles a blacklist from glob-style patterns.
func NewBlacklist(patterns []string) (*Blacklist, error) {
	b := &Blacklist{patterns: append([]string(nil), patterns...)}
	if len(patterns) == 0 {
		return b, nil
	}

	alts := make([]string, len(patterns))
	for i, pattern := range patterns {
		alts[i] = "(?:" + translatePattern(pattern) + ")"
	}

	re, err := regexp.Compile("^(?:" + strings.Join(alts, "|") + ")\\z")
	if err != nil {
		return nil, fmt.Errorf("failed to compile blacklist: %w", err)
	}
	b.re = re
	return b, nil
}

// Patterns returns a copy of the patterns the blacklist was built from.
func (b *Blacklist) Patterns() []string {
	return append([]string(nil), b.patterns...)
}

// Match reports whether the relative path matches any blacklist pattern.
func (b *Blacklist) Match(path string) bool {
	if b.re == nil {
		return false
	}
	return b.re.MatchString(path)
}

// Filter returns the paths that do not match any blacklist pattern,
// preserving input order.
func (b *Blacklist) Filter(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if !b.Match(path) {
			kept = append(kept, path)
		}
	}
	return kept
}

// translatePattern converts a glob-style pattern into a regular expression
// fragment. Unlike path matching in the standard library, `*` here crosses
// directory separators.
func translatePattern(pattern string) string {
	var sb strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return sb.String()
}
