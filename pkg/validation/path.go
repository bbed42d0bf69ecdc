package validation

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Segment is one step of a Path: either an array index or an object key.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Index returns a segment addressing the i-th element of a sequence.
func Index(i int) Segment {
	return Segment{index: i, isIndex: true}
}

// Key returns a segment addressing a named field or map entry.
func Key(k string) Segment {
	return Segment{key: k}
}

// IsIndex reports whether the segment is an integer index.
func (s Segment) IsIndex() bool { return s.isIndex }

// Int returns the index of an index segment, or -1 for a key segment.
func (s Segment) Int() int {
	if !s.isIndex {
		return -1
	}
	return s.index
}

// Name returns the key of a key segment, or "" for an index segment.
func (s Segment) Name() string {
	if s.isIndex {
		return ""
	}
	return s.key
}

// String renders the segment as "[i]" or "/key".
func (s Segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return "/" + s.key
}

// MarshalJSON encodes an index as a JSON number and a key as a JSON string.
func (s Segment) MarshalJSON() ([]byte, error) {
	if s.isIndex {
		return []byte(strconv.Itoa(s.index)), nil
	}
	return json.Marshal(s.key)
}

// Path locates a node within a document.
type Path []Segment

// NewPath builds a path from keys (string), indices (int) and segments.
// Any other part type panics.
func NewPath(parts ...any) Path {
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case int:
			p = append(p, Index(v))
		case string:
			p = append(p, Key(v))
		case Segment:
			p = append(p, v)
		default:
			panic("validation: path parts must be int, string or Segment")
		}
	}
	return p
}

// Append returns a new path with segs added. The receiver is never modified,
// so sibling paths derived from the same parent do not share storage.
func (p Path) Append(segs ...Segment) Path {
	out := make(Path, len(p), len(p)+len(segs))
	copy(out, p)
	return append(out, segs...)
}

// Key returns a new path extended by a key segment.
func (p Path) Key(k string) Path { return p.Append(Key(k)) }

// Index returns a new path extended by an index segment.
func (p Path) Index(i int) Path { return p.Append(Index(i)) }

// Last returns the final segment and false when the path is empty.
func (p Path) Last() (Segment, bool) {
	if len(p) == 0 {
		return Segment{}, false
	}
	return p[len(p)-1], true
}

// Equal reports whether both paths have the same segments in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the path by concatenating its segments, for example
// "/components[2]/name". The empty path renders as "".
func (p Path) String() string {
	var sb strings.Builder
	for _, s := range p {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Pointer renders the path as an RFC 6901 JSON Pointer, for example
// "/components/2/name". The empty path renders as "".
func (p Path) Pointer() string {
	var sb strings.Builder
	for _, s := range p {
		sb.WriteByte('/')
		if s.isIndex {
			sb.WriteString(strconv.Itoa(s.index))
			continue
		}
		sb.WriteString(pointerEscaper.Replace(s.key))
	}
	return sb.String()
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")
