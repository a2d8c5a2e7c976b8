package entities

// ArtifactSet is an insertion-ordered set of artifacts keyed by Artifact.ID.
// Iteration order is the order artifacts were added, which keeps report
// output reproducible across runs.
type ArtifactSet struct {
	items []Artifact
	index map[string]struct{}
}

// NewArtifactSet creates a set containing the given artifacts in order.
func NewArtifactSet(artifacts ...Artifact) *ArtifactSet {
	s := &ArtifactSet{index: make(map[string]struct{})}
	for _, a := range artifacts {
		s.Add(a)
	}
	return s
}

// Add appends the artifact unless it is already present.
// Returns true if the set changed.
func (s *ArtifactSet) Add(a Artifact) bool {
	if _, ok := s.index[a.ID()]; ok {
		return false
	}
	s.index[a.ID()] = struct{}{}
	s.items = append(s.items, a)
	return true
}

// AddAll appends every artifact from other, preserving order.
func (s *ArtifactSet) AddAll(other *ArtifactSet) {
	if other == nil {
		return
	}
	for _, a := range other.items {
		s.Add(a)
	}
}

// Contains reports whether an artifact with the same identity is present.
func (s *ArtifactSet) Contains(a Artifact) bool {
	_, ok := s.index[a.ID()]
	return ok
}

// Remove deletes the artifact with the same identity, preserving the order
// of the remaining artifacts. Returns true if the set changed.
func (s *ArtifactSet) Remove(a Artifact) bool {
	if _, ok := s.index[a.ID()]; !ok {
		return false
	}
	delete(s.index, a.ID())
	for i, item := range s.items {
		if item.ID() == a.ID() {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of artifacts in the set.
func (s *ArtifactSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// IsEmpty reports whether the set contains no artifacts.
func (s *ArtifactSet) IsEmpty() bool {
	return s.Len() == 0
}

// Items returns a copy of the artifacts in insertion order. Mutating the
// returned slice does not affect the set.
func (s *ArtifactSet) Items() []Artifact {
	if s == nil {
		return nil
	}
	items := make([]Artifact, len(s.items))
	copy(items, s.items)
	return items
}

// Clone returns an independent copy of the set.
func (s *ArtifactSet) Clone() *ArtifactSet {
	if s == nil {
		return NewArtifactSet()
	}
	return NewArtifactSet(s.items...)
}
