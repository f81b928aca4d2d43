package sim

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
)

var (
	// ErrInvalidTag is returned when a tag cannot appear in maze text.
	ErrInvalidTag = errors.New("sim: invalid tag")
	// ErrDuplicateTag is returned when two kinds claim the same tag.
	ErrDuplicateTag = errors.New("sim: duplicate tag")
)

// Reserved characters of the maze text format.
const (
	Separator = '|'
	Void      = ' '
)

// spawnTags maps spawn letters to player slots.
var spawnTags = map[rune]int{'X': 1, 'Y': 2}

// SpawnTag returns the letter marking the spawn point of a player slot.
func SpawnTag(slot int) rune {
	for r, s := range spawnTags {
		if s == slot {
			return r
		}
	}
	return Void
}

// TagRegistry maps single-character tags to kinds.
type TagRegistry struct {
	kinds map[rune]Kind
}

// NewTagRegistry returns an empty registry.
func NewTagRegistry() *TagRegistry {
	return &TagRegistry{kinds: make(map[rune]Kind)}
}

// Register binds tag to k. Reserved, non-printable and already bound tags are rejected.
func (r *TagRegistry) Register(tag rune, k Kind) error {
	if tag == Void || tag == Separator || tag == '\n' || !unicode.IsPrint(tag) {
		return fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	if _, ok := spawnTags[tag]; ok {
		return fmt.Errorf("%w: %q is a spawn letter", ErrInvalidTag, tag)
	}
	if prev, ok := r.kinds[tag]; ok {
		return fmt.Errorf("%w: %q already bound to %s", ErrDuplicateTag, tag, prev)
	}
	r.kinds[tag] = k
	return nil
}

// Lookup returns the kind bound to tag.
func (r *TagRegistry) Lookup(tag rune) (Kind, bool) {
	k, ok := r.kinds[tag]
	return k, ok
}

// Tags returns all bound tags in ascending order.
func (r *TagRegistry) Tags() []rune {
	out := make([]rune, 0, len(r.kinds))
	for t := range r.kinds {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BuildTagRegistry registers the tag of every kind that has one.
func BuildTagRegistry(kinds []Kind) (*TagRegistry, error) {
	r := NewTagRegistry()
	for _, k := range kinds {
		tag := SpecOf(k).Tag
		if tag == 0 {
			continue
		}
		if err := r.Register(tag, k); err != nil {
			return nil, fmt.Errorf("sim: register %s: %w", k, err)
		}
	}
	return r, nil
}

var defaultTags = mustBuildTags()

func mustBuildTags() *TagRegistry {
	r, err := BuildTagRegistry(Kinds())
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultTags returns the registry used by Parse.
func DefaultTags() *TagRegistry {
	return defaultTags
}
