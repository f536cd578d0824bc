package graphics

import "sort"

// FontID identifies a registered font face. The zero value means "no font";
// text measured or drawn with it degrades to zero size rather than failing.
type FontID uint32

// ZIndex orders draw items back to front. Higher values appear on top.
//
// Within one frame the painter assigns z values monotonically per draw call,
// so z reflects paint order, not a user-authored stacking level.
type ZIndex int32

// SortKey is the total ordering key for draw items: z ascending, then
// insertion order ascending. Including the insertion order makes the paint
// order deterministic regardless of sort stability.
type SortKey struct {
	Z     ZIndex
	Order uint32
}

// Less reports whether k sorts before other.
func (k SortKey) Less(other SortKey) bool {
	if k.Z != other.Z {
		return k.Z < other.Z
	}
	return k.Order < other.Order
}

// DrawCmd is one primitive paint operation. The renderer switches on the
// concrete type. Implementations: RectCmd, RoundedRectCmd, CircleCmd,
// TextCmd, ClipPushCmd, ClipPopCmd.
type DrawCmd interface {
	isDrawCmd()
}

// RectCmd fills an axis-aligned rectangle.
type RectCmd struct {
	Rect  Rect
	Paint Paint
}

// RoundedRectCmd fills a rounded rectangle with per-corner radii and an
// optional border.
type RoundedRectCmd struct {
	Rect   Rect
	Radii  CornerRadii
	Paint  Paint
	Border Border
}

// CircleCmd fills a circle with an optional border.
type CircleCmd struct {
	Center Offset
	Radius float64
	Paint  Paint
	Border Border
}

// TextCmd draws a single text run starting at Origin (top-left of the first
// line). MaxWidth <= 0 means unbounded.
type TextCmd struct {
	Text     string
	Font     FontID
	Size     float64
	Color    Color
	Origin   Offset
	MaxWidth float64
}

// ClipPushCmd begins a scissor region. Commands between it and the matching
// ClipPopCmd are clipped to Rect (intersected with any enclosing clip).
type ClipPushCmd struct {
	Rect Rect
}

// ClipPopCmd ends the most recent scissor region.
type ClipPopCmd struct{}

func (RectCmd) isDrawCmd()        {}
func (RoundedRectCmd) isDrawCmd() {}
func (CircleCmd) isDrawCmd()      {}
func (TextCmd) isDrawCmd()        {}
func (ClipPushCmd) isDrawCmd()    {}
func (ClipPopCmd) isDrawCmd()     {}

// DrawItem is one recorded command together with its ordering key.
type DrawItem struct {
	Key SortKey
	Cmd DrawCmd
}

// DrawList is the recorded draw stream for one frame.
//
// Push is O(1). Paint-order iteration re-sorts lazily, only when new items
// were pushed since the last sort, and reuses an internal index buffer so
// steady-state frames allocate nothing.
//
// The list is cleared and reused every frame; items never outlive the frame
// that recorded them.
type DrawList struct {
	items     []DrawItem
	nextOrder uint32

	sortedIndices []int
	sortedDirty   bool
}

// Clear removes all recorded items while keeping allocated capacity.
func (d *DrawList) Clear() {
	d.items = d.items[:0]
	d.nextOrder = 0
	d.sortedIndices = d.sortedIndices[:0]
	d.sortedDirty = true
}

// Len returns the number of recorded items.
func (d *DrawList) Len() int {
	return len(d.items)
}

// Items returns the recorded items in insertion order.
func (d *DrawList) Items() []DrawItem {
	return d.items
}

// Push records a draw command with the given z-index, assigning the next
// frame-local insertion order.
func (d *DrawList) Push(z ZIndex, cmd DrawCmd) {
	order := d.nextOrder
	d.nextOrder++
	d.items = append(d.items, DrawItem{
		Key: SortKey{Z: z, Order: order},
		Cmd: cmd,
	})
	d.sortedDirty = true
}

// IndicesInPaintOrder returns indices into Items in paint order
// (back to front). The returned slice is owned by the DrawList and valid
// until the next Push or Clear.
func (d *DrawList) IndicesInPaintOrder() []int {
	if d.sortedDirty {
		d.rebuildSortedIndices()
	}
	return d.sortedIndices
}

// ItemsInPaintOrder calls visit for each item in paint order.
func (d *DrawList) ItemsInPaintOrder(visit func(item *DrawItem)) {
	for _, i := range d.IndicesInPaintOrder() {
		visit(&d.items[i])
	}
}

func (d *DrawList) rebuildSortedIndices() {
	d.sortedIndices = d.sortedIndices[:0]
	for i := range d.items {
		d.sortedIndices = append(d.sortedIndices, i)
	}
	// SortKey includes the insertion order, so an unstable sort still yields
	// a deterministic total order.
	sort.Slice(d.sortedIndices, func(a, b int) bool {
		return d.items[d.sortedIndices[a]].Key.Less(d.items[d.sortedIndices[b]].Key)
	})
	d.sortedDirty = false
}
