// Package docpath tracks the location of the value being written.
//
// A Path is a stack of segments, each a member name or an array index. Push
// returns a Scope whose Pop restores the path to the depth it had before the
// push, so deferred pops keep the stack balanced on every exit path.
package docpath

import (
	"strconv"
	"strings"
)

type segment struct {
	name  string
	index int
	isIdx bool
}

// Path is a stack of member names and array indices.
type Path struct {
	segs []segment
}

// Scope is returned by Push and PushIndex.
type Scope struct {
	p     *Path
	depth int
}

// Push appends a member name.
func (p *Path) Push(name string) Scope {
	s := Scope{p: p, depth: len(p.segs)}
	p.segs = append(p.segs, segment{name: name})
	return s
}

// PushIndex appends an array index.
func (p *Path) PushIndex(i int) Scope {
	s := Scope{p: p, depth: len(p.segs)}
	p.segs = append(p.segs, segment{index: i, isIdx: true})
	return s
}

// Pop truncates the path back to its depth before the matching push.
// Calling Pop on the zero Scope is a no-op.
func (s Scope) Pop() {
	if s.p == nil || len(s.p.segs) < s.depth {
		return
	}
	s.p.segs = s.p.segs[:s.depth]
}

// Depth returns the number of segments.
func (p *Path) Depth() int {
	return len(p.segs)
}

// Segments returns the segments rendered individually, indices as "[i]".
func (p *Path) Segments() []string {
	out := make([]string, len(p.segs))
	for i, seg := range p.segs {
		if seg.isIdx {
			out[i] = "[" + strconv.Itoa(seg.index) + "]"
		} else {
			out[i] = seg.name
		}
	}
	return out
}

// String renders the path as ".list[1].x". The root path renders as "".
func (p *Path) String() string {
	var b strings.Builder
	for _, seg := range p.segs {
		if seg.isIdx {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.index))
			b.WriteByte(']')
			continue
		}
		b.WriteByte('.')
		b.WriteString(seg.name)
	}
	return b.String()
}
