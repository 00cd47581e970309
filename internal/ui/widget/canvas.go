package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Render draws the node's subtree onto a canvas of the node's own size.
// Children composite over the parent's content at their anchored positions;
// a clipping node simply drops child cells that fall outside its bounds,
// which is how the dropdown viewport and scroll lists window their content.
func Render(n *Node) string {
	if n == nil || !n.visible {
		return ""
	}
	base := ""
	if n.view != nil {
		base = n.view()
	}
	canvas := fitCanvas(base, n.size.W, n.size.H)
	for _, c := range n.children {
		if !c.visible {
			continue
		}
		x, y := n.childOrigin(c)
		canvas = overlayAt(canvas, Render(c), x, y, n.size.W, n.size.H)
	}
	return canvas
}

// Compose draws over on top of base at cell (x, y) inside a width×height
// canvas. The application model uses it to float the task overlay above the
// visible primary panel.
func Compose(base, over string, x, y, width, height int) string {
	return overlayAt(fitCanvas(base, width, height), over, x, y, width, height)
}

func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, max(x, 0), "")
		leftWidth := ansi.StringWidth(left)
		if leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		overlayLine := padRightANSI(line, overlayWidth)
		if x < 0 {
			overlayLine = ansi.TruncateLeft(overlayLine, -x, "")
		}
		pos := max(x, 0) + ansi.StringWidth(overlayLine)
		right := ""
		if pos < width {
			right = ansi.TruncateLeft(target, pos, "")
			rightWidth := ansi.StringWidth(right)
			gap := width - pos - rightWidth
			if gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}
		merged := left + overlayLine + right
		baseLines[row] = ansi.Truncate(merged, width, "")
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = ansi.Truncate(padRightANSI(lines[i], width), width, "")
	}
	return strings.Join(lines, "\n")
}

// splitToLines splits into lines; when height > 0 the result is padded or
// truncated to exactly that many lines.
func splitToLines(s string, height int) []string {
	var lines []string
	if s == "" {
		lines = []string{}
	} else {
		lines = strings.Split(s, "\n")
	}
	if height <= 0 {
		return lines
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

func padRightANSI(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
