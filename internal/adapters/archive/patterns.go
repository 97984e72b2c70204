package archive

import (
	"regexp"
	"strings"
)

// matcher matches one resolved pattern against slash-normalized relative
// paths. Patterns with glob wildcards are translated to regular
// expressions; wildcard-free patterns match by substring containment
// anywhere in the path, not by exact equality.
type matcher struct {
	pattern   string
	substring bool
	re        *regexp.Regexp
}

func newMatcher(pattern string) matcher {
	if !strings.ContainsAny(pattern, "*?") {
		return matcher{pattern: pattern, substring: true}
	}

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
	return matcher{pattern: pattern, re: regexp.MustCompile(sb.String())}
}

func (m matcher) matches(path string) bool {
	if m.substring {
		return strings.Contains(path, m.pattern)
	}
	return m.re.MatchString(path)
}

// filter applies the resolved include/exclude sets. A path is included
// unless it matches any exclude; when includes are non-empty, it must also
// match at least one include.
type filter struct {
	excludes []matcher
	includes []matcher
}

func newFilter(excludes, includes []string) filter {
	f := filter{}
	for _, p := range excludes {
		f.excludes = append(f.excludes, newMatcher(p))
	}
	for _, p := range includes {
		f.includes = append(f.includes, newMatcher(p))
	}
	return f
}

// excluded reports whether the path matches any exclude pattern. It is
// also used to prune whole directories during the walk.
func (f filter) excluded(path string) bool {
	for _, m := range f.excludes {
		if m.matches(path) {
			return true
		}
	}
	return false
}

// admits reports whether a file path should be written to the archive.
func (f filter) admits(path string) bool {
	if f.excluded(path) {
		return false
	}
	if len(f.includes) == 0 {
		return true
	}
	for _, m := range f.includes {
		if m.matches(path) {
			return true
		}
	}
	return false
}
