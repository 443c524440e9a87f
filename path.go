package coax

import (
	"strconv"
	"strings"
	"unicode"
)

// segment is one step in a Path: a field name or a sequence index.
type segment struct {
	name  string
	index int
	isIdx bool
}

// Path is an immutable location inside a nested document, used exclusively
// for error reporting. Every descent returns a new Path; validators holding a
// shared prefix are never affected by siblings descending further.
type Path struct {
	segs []segment
}

// Root returns the path denoting the document root, rendered "$".
func Root() Path { return Path{} }

// Field returns a new Path with a field-name segment appended.
func (p Path) Field(name string) Path {
	segs := make([]segment, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	return Path{segs: append(segs, segment{name: name})}
}

// Index returns a new Path with an index segment appended.
func (p Path) Index(i int) Path {
	segs := make([]segment, len(p.segs), len(p.segs)+1)
	copy(segs, p.segs)
	return Path{segs: append(segs, segment{index: i, isIdx: true})}
}

// String renders the root marker "$" followed by ".name" and "[i]" segments.
// Field names that are empty or contain whitespace or structural characters
// are single-quoted, with internal single quotes escaped, so the textual form
// stays unambiguous.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p.segs {
		if s.isIdx {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(s.index))
			b.WriteByte(']')
			continue
		}
		b.WriteByte('.')
		writeSegmentName(&b, s.name)
	}
	return b.String()
}

func writeSegmentName(b *strings.Builder, name string) {
	if !needsQuoting(name) {
		b.WriteString(name)
		return
	}
	b.WriteByte('\'')
	for _, r := range name {
		if r == '\'' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
}

func needsQuoting(name string) bool {
	if name == "" {
		return true
	}
	for _, r := range name {
		switch r {
		case '.', '[', ']', '{', '}', '$':
			return true
		}
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
