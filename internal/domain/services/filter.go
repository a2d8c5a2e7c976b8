// Package services implements domain business logic and use cases.
package services

import (
	"strings"

	"depscope/internal/domain/entities"
)

// patternSegments is the number of recognized segments in an ignore
// pattern: groupId:artifactId:type:version.
const patternSegments = 4

// IgnorePattern is a 4-segment dependency exclusion pattern. Each segment
// supports full and partial * wildcards; an empty or missing segment is an
// implicit wildcard. Extra segments beyond the four recognized ones are
// dropped.
type IgnorePattern struct {
	segments [patternSegments]string
}

// ParseIgnorePattern parses a raw groupId:artifactId:type:version pattern.
// Parsing never fails: malformed input degrades to wildcards.
func ParseIgnorePattern(raw string) IgnorePattern {
	var p IgnorePattern
	parts := strings.Split(raw, ":")
	for i := 0; i < patternSegments; i++ {
		if i < len(parts) && parts[i] != "" {
			p.segments[i] = parts[i]
		} else {
			p.segments[i] = "*"
		}
	}
	return p
}

// ParseIgnorePatterns parses a list of raw patterns, preserving order.
func ParseIgnorePatterns(raw []string) []IgnorePattern {
	patterns := make([]IgnorePattern, 0, len(raw))
	for _, r := range raw {
		patterns = append(patterns, ParseIgnorePattern(r))
	}
	return patterns
}

// Matches reports whether all four segments match the artifact. Matching is
// case-sensitive; the version segment is matched against the base version so
// ":::*-SNAPSHOT" catches timestamped snapshots too.
func (p IgnorePattern) Matches(a entities.Artifact) bool {
	values := [patternSegments]string{a.GroupID, a.ArtifactID, a.TypeOrDefault(), a.BaseVersion()}
	for i, segment := range p.segments {
		if !WildcardMatch(segment, values[i]) {
			return false
		}
	}
	return true
}

// String renders the pattern back in groupId:artifactId:type:version form.
func (p IgnorePattern) String() string {
	return strings.Join(p.segments[:], ":")
}

// WildcardMatch reports whether value matches pattern, where * matches any
// run of characters including the empty string. Any number of * may appear
// anywhere in the pattern; all other characters match literally.
func WildcardMatch(pattern, value string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return pattern == value
	}

	parts := strings.Split(pattern, "*")

	// Anchor the leading literal as a prefix and the trailing literal as a
	// suffix, then require the middle literals to appear in order.
	if !strings.HasPrefix(value, parts[0]) {
		return false
	}
	value = value[len(parts[0]):]

	if last := parts[len(parts)-1]; last != "" {
		if !strings.HasSuffix(value, last) {
			return false
		}
		value = value[:len(value)-len(last)]
	}

	for _, mid := range parts[1 : len(parts)-1] {
		if mid == "" {
			continue
		}
		idx := strings.Index(value, mid)
		if idx < 0 {
			return false
		}
		value = value[idx+len(mid):]
	}
	return true
}

// FilterArtifacts splits artifacts into those kept and those removed by the
// pattern lists. An artifact is removed iff it matches any pattern in any
// list. The input set is never mutated; both result sets preserve the input
// order.
func FilterArtifacts(artifacts *entities.ArtifactSet, lists ...[]IgnorePattern) (kept, removed *entities.ArtifactSet) {
	kept = entities.NewArtifactSet()
	removed = entities.NewArtifactSet()

	for _, artifact := range artifacts.Items() {
		if matchesAny(artifact, lists) {
			removed.Add(artifact)
		} else {
			kept.Add(artifact)
		}
	}
	return kept, removed
}

func matchesAny(artifact entities.Artifact, lists [][]IgnorePattern) bool {
	for _, list := range lists {
		for _, pattern := range list {
			if pattern.Matches(artifact) {
				return true
			}
		}
	}
	return false
}
