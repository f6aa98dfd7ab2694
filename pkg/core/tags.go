package core

import "strings"

// Tag is one @name or @name(value) annotation on a task line.
type Tag struct {
	Name  string
	Value string
	// HasValue distinguishes "@name(value)" from a bare "@name".
	// A tag can be present without carrying a value.
	HasValue bool
}

// String renders the tag in its source notation.
func (t Tag) String() string {
	if t.HasValue {
		return "@" + t.Name + "(" + t.Value + ")"
	}
	return "@" + t.Name
}

// TagSet is an ordered name/value mapping. Iteration order is discovery
// order; setting an existing name overwrites its value in place, it does
// not move the tag.
type TagSet struct {
	tags []Tag
}

// Len returns the number of tags in the set.
func (s *TagSet) Len() int { return len(s.tags) }

// All returns a copy of the tags in mapping order.
func (s *TagSet) All() []Tag {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// Has reports whether a tag with the given name is present, with or
// without a value.
func (s *TagSet) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Get returns the tag with the given name.
func (s *TagSet) Get(name string) (Tag, bool) {
	for _, t := range s.tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// Set stores a tag with a value, overwriting any existing tag of the same
// name while preserving its position.
func (s *TagSet) Set(name, value string) {
	s.put(Tag{Name: name, Value: value, HasValue: true})
}

// SetFlag stores a value-less tag, overwriting any existing tag of the
// same name while preserving its position.
func (s *TagSet) SetFlag(name string) {
	s.put(Tag{Name: name})
}

// Delete removes the tag with the given name and reports whether it was
// present.
func (s *TagSet) Delete(name string) bool {
	for i, t := range s.tags {
		if t.Name == name {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return true
		}
	}
	return false
}

// String renders the tags space-separated in mapping order.
func (s *TagSet) String() string {
	parts := make([]string, len(s.tags))
	for i, t := range s.tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func (s *TagSet) put(tag Tag) {
	for i, t := range s.tags {
		if t.Name == tag.Name {
			s.tags[i] = tag
			return
		}
	}
	s.tags = append(s.tags, tag)
}

// splitTags separates a trimmed line into its body and raw tag segments.
// The body is everything before the first "@"; every further "@" starts a
// new segment. The split is purely positional, so an "@" with no following
// text yields an empty segment rather than an error.
func splitTags(line string) (body string, segments []string) {
	parts := strings.Split(line, "@")
	return parts[0], parts[1:]
}

// parseTag parses one raw segment (without its leading "@") into a Tag.
// The segment is split on the first "("; a present "(" means the remainder,
// with a single trailing ")" removed, is the value.
func parseTag(segment string) Tag {
	segment = strings.TrimSpace(segment)
	name, rest, found := strings.Cut(segment, "(")
	if !found {
		return Tag{Name: strings.TrimSpace(name)}
	}
	return Tag{
		Name:     strings.TrimSpace(name),
		Value:    strings.TrimSuffix(rest, ")"),
		HasValue: true,
	}
}
