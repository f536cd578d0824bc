package uitest

import (
	"strings"

	"github.com/go-keel/keel/pkg/graphics"
)

// Commands returns the draw commands of list in paint order.
func Commands(list *graphics.DrawList) []graphics.DrawCmd {
	if list == nil {
		return nil
	}
	cmds := make([]graphics.DrawCmd, 0, list.Len())
	list.ItemsInPaintOrder(func(item *graphics.DrawItem) {
		cmds = append(cmds, item.Cmd)
	})
	return cmds
}

// CountOf returns how many commands of type T the list holds.
func CountOf[T graphics.DrawCmd](list *graphics.DrawList) int {
	n := 0
	for _, cmd := range Commands(list) {
		if _, ok := cmd.(T); ok {
			n++
		}
	}
	return n
}

// Texts returns the strings of every text command in paint order.
func Texts(list *graphics.DrawList) []string {
	var out []string
	for _, cmd := range Commands(list) {
		if tc, ok := cmd.(graphics.TextCmd); ok {
			out = append(out, tc.Text)
		}
	}
	return out
}

// HasText reports whether any text command contains substr.
func HasText(list *graphics.DrawList, substr string) bool {
	for _, s := range Texts(list) {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// FilledRects returns the rectangles of every plain and rounded rect fill
// painted with color c, in paint order.
func FilledRects(list *graphics.DrawList, c graphics.Color) []graphics.Rect {
	var out []graphics.Rect
	for _, cmd := range Commands(list) {
		switch v := cmd.(type) {
		case graphics.RectCmd:
			if v.Paint.Color == c && v.Paint.Gradient == nil {
				out = append(out, v.Rect)
			}
		case graphics.RoundedRectCmd:
			if v.Paint.Color == c && v.Paint.Gradient == nil {
				out = append(out, v.Rect)
			}
		}
	}
	return out
}

// ClipBalanced reports whether every clip push has a matching pop and the
// depth never goes negative.
func ClipBalanced(list *graphics.DrawList) bool {
	depth := 0
	for _, cmd := range Commands(list) {
		switch cmd.(type) {
		case graphics.ClipPushCmd:
			depth++
		case graphics.ClipPopCmd:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
