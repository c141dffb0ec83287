package main

import (
	"fmt"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/grindlemire/go-dnd/internal/config"
	"github.com/grindlemire/go-dnd/internal/geom"
	"github.com/grindlemire/go-dnd/internal/impact"
	"github.com/grindlemire/go-dnd/internal/measure"
	"github.com/grindlemire/go-dnd/internal/session"
)

const (
	columnWidth = 14
	rowHeight   = 5
	listSpacing = 2
	padding     = 1
	// Cells are roughly twice as tall as they are wide.
	horizontalStretch = 3
)

var (
	styleList     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTarget   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleItem     = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleMoved    = tcell.StyleDefault.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite)
	styleMerge    = tcell.StyleDefault.Background(tcell.ColorPurple).Foreground(tcell.ColorWhite)
	styleDragging = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// canvas is the part of tcell.Screen the board draws on.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// board holds the demo lists and the drag in progress, if any.
type board struct {
	axis     geom.Axis
	itemSize float64
	gap      float64
	combine  bool
	minSize  float64

	lists []impact.DroppableID
	order map[impact.DroppableID][]impact.DraggableID

	draggables impact.DraggableMap
	droppables impact.DroppableMap
	viewport   impact.Viewport

	drag   *session.Drag
	grab   geom.Point
	status string

	log *zap.Logger
}

func newBoard(cfg config.DemoConfig, width, height int, log *zap.Logger) (*board, error) {
	direction, ok := geom.ParseDirection(cfg.Axis)
	if !ok {
		return nil, fmt.Errorf("unknown axis %q", cfg.Axis)
	}
	if log == nil {
		log = zap.NewNop()
	}

	b := &board{
		axis:     geom.AxisFor(direction),
		itemSize: float64(cfg.ItemSize),
		gap:      float64(cfg.Gap),
		combine:  cfg.Combine,
		order:    make(map[impact.DroppableID][]impact.DraggableID, cfg.Lists),
		viewport: impact.NewViewport(float64(width), float64(height), geom.Origin),
		status:   "drag an item with the mouse, esc to quit",
		log:      log,
	}
	if b.axis == geom.Horizontal {
		b.itemSize *= horizontalStretch
	}
	b.minSize = float64(cfg.Items)*(b.itemSize+b.gap) - b.gap + 2*padding

	for l := range cfg.Lists {
		id := impact.DroppableID(fmt.Sprintf("list-%d", l+1))
		b.lists = append(b.lists, id)
		items := make([]impact.DraggableID, cfg.Items)
		for i := range items {
			items[i] = impact.DraggableID(fmt.Sprintf("%c%d", 'a'+rune(l%26), i+1))
		}
		b.order[id] = items
	}
	return b, b.measure()
}

// measure rebuilds item geometry from the current order.
func (b *board) measure() error {
	lists := make([]measure.List, 0, len(b.lists))
	for i, id := range b.lists {
		var origin geom.Point
		var cross float64
		if b.axis == geom.Vertical {
			origin = geom.Point{X: float64(1 + i*(columnWidth+listSpacing)), Y: 1}
			cross = columnWidth
		} else {
			origin = geom.Point{X: 1, Y: float64(1 + i*(rowHeight+listSpacing))}
			cross = rowHeight
		}

		items := make([]measure.Item, len(b.order[id]))
		for n, item := range b.order[id] {
			items[n] = measure.Item{ID: item, Size: b.itemSize}
		}
		lists = append(lists, measure.List{
			ID:             id,
			Type:           "demo",
			Axis:           b.axis,
			Origin:         origin,
			CrossSize:      cross,
			Padding:        padding,
			Gap:            b.gap,
			MinSize:        b.minSize,
			Items:          items,
			CombineEnabled: b.combine,
		})
	}

	draggables, droppables, err := measure.Board(lists...)
	if err != nil {
		return err
	}
	b.draggables, b.droppables = draggables, droppables
	return nil
}

func (b *board) resize(width, height int) {
	b.viewport = impact.NewViewport(float64(width), float64(height), geom.Origin)
}

func (b *board) dragging() bool {
	return b.drag != nil
}

// cellCenter maps a terminal cell to the point at its middle.
func cellCenter(x, y int) geom.Point {
	return geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// press lifts the item under the pointer. It reports whether a drag started.
func (b *board) press(p geom.Point) (bool, error) {
	if b.dragging() {
		return false, nil
	}
	ids := make([]impact.DraggableID, 0, len(b.draggables))
	for id := range b.draggables {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		d := b.draggables[id]
		if !d.BorderBox.ContainsPoint(p) {
			continue
		}
		drag, err := session.Start(id, b.draggables, b.droppables, b.viewport, session.WithLogger(b.log))
		if err != nil {
			return false, err
		}
		b.drag = drag
		b.grab = d.BorderBox.Center().Sub(p)
		b.status = session.Describe(drag.Impact())
		return true, nil
	}
	return false, nil
}

func (b *board) motion(p geom.Point) error {
	if !b.dragging() {
		return nil
	}
	next, err := b.drag.Move(p.Add(b.grab))
	if err != nil {
		return err
	}
	b.status = session.Describe(next)
	return nil
}

// release drops the dragged item and commits the new order.
func (b *board) release() error {
	if !b.dragging() {
		return nil
	}
	result, err := b.drag.Drop()
	b.drag = nil
	if err != nil {
		return err
	}
	b.order = session.Apply(b.order, result)
	b.status = fmt.Sprintf("%s: %s", result.DraggableID, outcome(result))
	return b.measure()
}

func (b *board) cancel() error {
	if !b.dragging() {
		return nil
	}
	result, err := b.drag.Cancel()
	b.drag = nil
	if err != nil {
		return err
	}
	b.status = fmt.Sprintf("%s: %s", result.DraggableID, outcome(result))
	return nil
}

func outcome(r session.Result) string {
	switch {
	case r.Reason == session.ReasonCancel:
		return "cancelled"
	case r.Merge != nil:
		return fmt.Sprintf("merged into %s", r.Merge.DraggableID)
	case r.Destination != nil:
		return fmt.Sprintf("moved to %s[%d]", r.Destination.DroppableID, r.Destination.Index)
	default:
		return "dropped outside"
	}
}

// boxOf returns where an item is drawn given the current impact.
func (b *board) boxOf(d impact.Draggable) geom.Rect {
	if !b.dragging() {
		return d.BorderBox
	}
	if d.Descriptor.ID == b.drag.Draggable().Descriptor.ID {
		return d.BorderBox.Shift(b.drag.Center().Sub(d.BorderBox.Center()))
	}

	box := d.BorderBox
	onLift := b.drag.OnLift()
	if onLift.WasDisplaced[d.Descriptor.ID] {
		box = box.Shift(onLift.DisplacedBy.Point.Negate())
	}
	current := b.drag.Impact()
	if _, ok := current.Movement.Map[d.Descriptor.ID]; ok {
		box = box.Shift(current.Movement.DisplacedBy.Point)
	}
	return box
}

func (b *board) draw(c canvas) {
	width, height := c.Size()
	for y := range height {
		for x := range width {
			c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	var current impact.DragImpact
	var dragged impact.DraggableID
	if b.dragging() {
		current = b.drag.Impact()
		dragged = b.drag.Draggable().Descriptor.ID
	}

	for _, id := range b.lists {
		style := styleList
		if b.dragging() && current.DroppableID() == id {
			style = styleTarget
		}
		outline(c, b.droppables[id].BorderBox, style)
		label(c, int(b.droppables[id].BorderBox.Left)+1, int(b.droppables[id].BorderBox.Top), string(id), style)

		for _, item := range b.order[id] {
			if item == dragged {
				continue
			}
			d := b.draggables[item]
			style := styleItem
			switch {
			case current.Merge != nil && current.Merge.DraggableID == item:
				style = styleMerge
			case current.Movement.Map != nil:
				if _, ok := current.Movement.Map[item]; ok {
					style = styleMoved
				}
			}
			fill(c, b.boxOf(d), string(item), style)
		}
	}

	if b.dragging() {
		fill(c, b.boxOf(b.drag.Draggable()), string(dragged), styleDragging)
	}
	label(c, 1, height-1, b.status, styleStatus)
}

func cells(r geom.Rect) (left, top, right, bottom int) {
	return int(math.Round(r.Left)), int(math.Round(r.Top)), int(math.Round(r.Right)), int(math.Round(r.Bottom))
}

func fill(c canvas, r geom.Rect, text string, style tcell.Style) {
	left, top, right, bottom := cells(r)
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			c.SetContent(x, y, ' ', nil, style)
		}
	}
	label(c, left+1, top+(bottom-top-1)/2, text, style)
}

func outline(c canvas, r geom.Rect, style tcell.Style) {
	left, top, right, bottom := cells(r)
	right, bottom = right-1, bottom-1
	for x := left + 1; x < right; x++ {
		c.SetContent(x, top, tcell.RuneHLine, nil, style)
		c.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		c.SetContent(left, y, tcell.RuneVLine, nil, style)
		c.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	c.SetContent(left, top, tcell.RuneULCorner, nil, style)
	c.SetContent(right, top, tcell.RuneURCorner, nil, style)
	c.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	c.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func label(c canvas, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		c.SetContent(x+i, y, r, nil, style)
	}
}
