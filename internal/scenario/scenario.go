package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-dnd/internal/geom"
	"github.com/grindlemire/go-dnd/internal/impact"
	"github.com/grindlemire/go-dnd/internal/measure"
)

// Point is a YAML friendly 2D coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) point() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// Viewport is the visible window.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scroll Point   `yaml:"scroll"`
}

// Item is one list entry.
type Item struct {
	ID   string  `yaml:"id"`
	Size float64 `yaml:"size"`
}

// List is one stacked list.
type List struct {
	ID        string  `yaml:"id"`
	Type      string  `yaml:"type"`
	Axis      string  `yaml:"axis"` // overrides the scenario axis
	Origin    Point   `yaml:"origin"`
	CrossSize float64 `yaml:"cross_size"`
	Padding   float64 `yaml:"padding"`
	Gap       float64 `yaml:"gap"`
	MinSize   float64 `yaml:"min_size"`
	Combine   bool    `yaml:"combine"`
	Disabled  bool    `yaml:"disabled"`
	Items     []Item  `yaml:"items"`
}

// Scroll records a list scroll since lift.
type Scroll struct {
	List string  `yaml:"list"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Step is one action. Exactly one field must be set.
type Step struct {
	Move   *Point  `yaml:"move,omitempty"`
	MoveBy *Point  `yaml:"move_by,omitempty"`
	Scroll *Scroll `yaml:"scroll,omitempty"`
	Drop   bool    `yaml:"drop,omitempty"`
	Cancel bool    `yaml:"cancel,omitempty"`
}

// Action names the step for reports.
func (s Step) Action() string {
	switch {
	case s.Move != nil:
		return fmt.Sprintf("move %v,%v", s.Move.X, s.Move.Y)
	case s.MoveBy != nil:
		return fmt.Sprintf("move by %v,%v", s.MoveBy.X, s.MoveBy.Y)
	case s.Scroll != nil:
		return fmt.Sprintf("scroll %s %v,%v", s.Scroll.List, s.Scroll.X, s.Scroll.Y)
	case s.Drop:
		return "drop"
	case s.Cancel:
		return "cancel"
	default:
		return "?"
	}
}

func (s Step) count() int {
	n := 0
	for _, set := range []bool{s.Move != nil, s.MoveBy != nil, s.Scroll != nil, s.Drop, s.Cancel} {
		if set {
			n++
		}
	}
	return n
}

// Scenario is a full drag description.
type Scenario struct {
	Name     string   `yaml:"name"`
	Axis     string   `yaml:"axis"`
	Viewport Viewport `yaml:"viewport"`
	Lists    []List   `yaml:"lists"`
	Drag     string   `yaml:"drag"`
	Steps    []Step   `yaml:"steps"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid scenario")

// Parse decodes a scenario from YAML. Unknown fields are rejected.
func Parse(r io.Reader) (Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Scenario{}, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return Scenario{}, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Load reads and parses a scenario file. A missing name defaults to the path.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks the parts of a scenario the measurer does not.
func (s Scenario) Validate() error {
	if _, ok := geom.ParseDirection(s.axis()); !ok {
		return fmt.Errorf("%w: unknown axis %q", ErrInvalid, s.Axis)
	}
	if len(s.Lists) == 0 {
		return fmt.Errorf("%w: no lists", ErrInvalid)
	}
	for _, l := range s.Lists {
		if l.Axis == "" {
			continue
		}
		if _, ok := geom.ParseDirection(l.Axis); !ok {
			return fmt.Errorf("%w: list %q has unknown axis %q", ErrInvalid, l.ID, l.Axis)
		}
	}
	if s.Drag == "" {
		return fmt.Errorf("%w: no item to drag", ErrInvalid)
	}
	for i, step := range s.Steps {
		if step.count() != 1 {
			return fmt.Errorf("%w: step %d must set exactly one action", ErrInvalid, i+1)
		}
		if (step.Drop || step.Cancel) && i != len(s.Steps)-1 {
			return fmt.Errorf("%w: step %d ends the drag but is not the last step", ErrInvalid, i+1)
		}
	}
	return nil
}

func (s Scenario) axis() string {
	if s.Axis == "" {
		return "vertical"
	}
	return s.Axis
}

// Build measures the scenario's lists.
func (s Scenario) Build() (impact.DraggableMap, impact.DroppableMap, impact.Viewport, error) {
	direction, _ := geom.ParseDirection(s.axis())

	lists := make([]measure.List, 0, len(s.Lists))
	for _, l := range s.Lists {
		d := direction
		if l.Axis != "" {
			d, _ = geom.ParseDirection(l.Axis)
		}
		typ := l.Type
		if typ == "" {
			typ = "default"
		}
		items := make([]measure.Item, len(l.Items))
		for i, item := range l.Items {
			items[i] = measure.Item{ID: impact.DraggableID(item.ID), Size: item.Size}
		}
		lists = append(lists, measure.List{
			ID:             impact.DroppableID(l.ID),
			Type:           impact.TypeID(typ),
			Axis:           geom.AxisFor(d),
			Origin:         l.Origin.point(),
			CrossSize:      l.CrossSize,
			Padding:        l.Padding,
			Gap:            l.Gap,
			MinSize:        l.MinSize,
			Items:          items,
			Disabled:       l.Disabled,
			CombineEnabled: l.Combine,
		})
	}

	draggables, droppables, err := measure.Board(lists...)
	if err != nil {
		return nil, nil, impact.Viewport{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	width, height := s.Viewport.Width, s.Viewport.Height
	if width == 0 && height == 0 {
		width, height = 1920, 1080
	}
	return draggables, droppables, impact.NewViewport(width, height, s.Viewport.Scroll.point()), nil
}
