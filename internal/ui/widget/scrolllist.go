package widget

import "strconv"

// ScrollList windows vertically stacked content through a clipped viewport.
// Items size the content container; the viewport slides over it by whole
// lines. The chat transcript and history cards are scroll lists.
type ScrollList struct {
	node     *Node
	viewport *Node
	content  *Node
	items    []*Text
	offset   int
}

// NewScrollList builds an empty scroll list.
func (f *Factory) NewScrollList(parent *Node, name string, pos Point, size Size) *ScrollList {
	l := &ScrollList{}
	l.node = newChild(parent, name, pos, size)
	l.viewport = newChild(l.node, name+"/viewport", Point{}, size)
	l.viewport.SetClip(true)
	l.content = newChild(l.viewport, name+"/content", Point{}, Size{W: size.W, H: 0})
	return l
}

func (l *ScrollList) Node() *Node  { return l.node }
func (l *ScrollList) Name() string { return l.node.name }

// Append adds one entry. Multi-line text is allowed; each entry sizes
// itself by its line count.
func (l *ScrollList) Append(f *Factory, text string) {
	h := lineCount(text)
	item := f.NewText(l.content, itemName(l.node.name, len(l.items)), Point{}, Size{W: l.content.size.W, H: h}, text, false)
	l.items = append(l.items, item)
	l.restack()
	l.ScrollToBottom()
}

// Clear removes every entry.
func (l *ScrollList) Clear() {
	l.items = nil
	l.content.children = nil
	l.content.size.H = 0
	l.offset = 0
	l.content.SetPos(Point{})
}

// Len returns the entry count.
func (l *ScrollList) Len() int { return len(l.items) }

// Offset returns the current scroll offset in lines from the top.
func (l *ScrollList) Offset() int { return l.offset }

// ScrollBy slides the window by n lines, clamped to the content.
func (l *ScrollList) ScrollBy(n int) { l.scrollTo(l.offset + n) }

// ScrollToBottom shows the newest entries.
func (l *ScrollList) ScrollToBottom() { l.scrollTo(l.content.size.H - l.viewport.size.H) }

func (l *ScrollList) scrollTo(off int) {
	maxOff := l.content.size.H - l.viewport.size.H
	if maxOff < 0 {
		maxOff = 0
	}
	if off < 0 {
		off = 0
	}
	if off > maxOff {
		off = maxOff
	}
	l.offset = off
	// Place the content's top edge at -offset inside the viewport. The
	// center-anchor term is subtracted out so truncation never skews the
	// window by a row.
	l.content.SetPos(Point{Y: -off - (l.viewport.size.H-l.content.size.H)/2})
}

// restack lays items top to bottom and resizes the content container to the
// sum of item heights (content-driven sizing).
func (l *ScrollList) restack() {
	total := 0
	for _, it := range l.items {
		total += it.node.size.H
	}
	l.content.size.H = total
	y := 0
	for _, it := range l.items {
		h := it.node.size.H
		it.node.SetPos(Point{Y: y - (total-h)/2})
		y += h
	}
}

func lineCount(s string) int {
	if s == "" {
		return 1
	}
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}

func itemName(base string, i int) string {
	return base + "/item" + strconv.Itoa(i)
}
