package state

import "github.com/atomicstack/roster/internal/roster"

// List tracks the cursor and viewport over the filtered roster view.
type List struct {
	Items          []roster.Record
	Term           string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{LastCursor: -1}
}

// Current returns the record under the cursor.
func (l *List) Current() (roster.Record, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return roster.Record{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the position of id in Items, or -1.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// SetItems replaces the visible records. When the term is unchanged the
// cursor follows the selected record; a new non-empty term moves it to the
// best match, and clearing the term restores the position held before
// filtering started.
func (l *List) SetItems(items []roster.Record, term string) {
	selected := ""
	if rec, ok := l.Current(); ok {
		selected = rec.ID
	}
	prevTerm := l.Term
	l.Items = items
	l.Term = term

	switch {
	case term != prevTerm && term != "":
		if prevTerm == "" {
			l.LastCursor = l.Cursor
		}
		l.Cursor = BestMatchIndex(items, term)
	case term != prevTerm && term == "":
		if l.LastCursor >= 0 && l.LastCursor < len(items) {
			l.Cursor = l.LastCursor
		} else if idx := l.IndexOf(selected); idx >= 0 {
			l.Cursor = idx
		}
		l.LastCursor = -1
	default:
		if idx := l.IndexOf(selected); idx >= 0 {
			l.Cursor = idx
		}
	}
	l.clamp()
}

func (l *List) clamp() {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// MoveTo places the cursor on row idx, clamped to the list. It reports
// whether the cursor moved.
func (l *List) MoveTo(idx int) bool {
	old := l.Cursor
	n := len(l.Items)
	switch {
	case n == 0, idx < 0:
		idx = 0
	case idx >= n:
		idx = n - 1
	}
	l.Cursor = idx
	return n > 0 && l.Cursor != old
}

// MoveBy shifts the cursor by delta rows.
func (l *List) MoveBy(delta int) bool {
	return l.MoveTo(max(l.Cursor, 0) + delta)
}

// PageBy shifts the cursor by whole pages of maxVisible rows. A non-positive
// maxVisible pages over the whole list.
func (l *List) PageBy(pages, maxVisible int) bool {
	size := maxVisible
	if size <= 0 || size > len(l.Items) {
		size = len(l.Items)
	}
	return l.MoveBy(pages * size)
}

// Reveal scrolls the viewport the least amount that keeps the cursor within
// maxVisible rows. A non-positive maxVisible means every row is shown.
func (l *List) Reveal(maxVisible int) {
	l.clamp()
	if maxVisible <= 0 || len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if lowest := l.Cursor - maxVisible + 1; l.ViewportOffset < lowest {
		l.ViewportOffset = lowest
	}
	if l.ViewportOffset > l.Cursor {
		l.ViewportOffset = l.Cursor
	}
	if last := len(l.Items) - maxVisible; l.ViewportOffset > last {
		l.ViewportOffset = last
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}
