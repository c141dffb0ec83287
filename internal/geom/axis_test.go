package geom

import "testing"

func TestAxis_Accessors(t *testing.T) {
	r := NewRect(10, 100, 30, 50)

	type tc struct {
		axis      Axis
		start     float64
		end       float64
		size      float64
		main      float64
		cross     float64
		direction string
	}

	tests := map[string]tc{
		"vertical": {
			axis:      Vertical,
			start:     100,
			end:       150,
			size:      50,
			main:      125,
			cross:     25,
			direction: "vertical",
		},
		"horizontal": {
			axis:      Horizontal,
			start:     10,
			end:       40,
			size:      30,
			main:      25,
			cross:     125,
			direction: "horizontal",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.axis.StartOf(r); got != tt.start {
				t.Errorf("StartOf() = %v, want %v", got, tt.start)
			}
			if got := tt.axis.EndOf(r); got != tt.end {
				t.Errorf("EndOf() = %v, want %v", got, tt.end)
			}
			if got := tt.axis.SizeOf(r); got != tt.size {
				t.Errorf("SizeOf() = %v, want %v", got, tt.size)
			}
			if got := tt.axis.Main(r.Center()); got != tt.main {
				t.Errorf("Main() = %v, want %v", got, tt.main)
			}
			if got := tt.axis.Cross(r.Center()); got != tt.cross {
				t.Errorf("Cross() = %v, want %v", got, tt.cross)
			}
			if got := tt.axis.Direction.String(); got != tt.direction {
				t.Errorf("Direction = %q, want %q", got, tt.direction)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	type tc struct {
		in   string
		want Direction
		ok   bool
	}

	tests := map[string]tc{
		"vertical":   {in: "vertical", want: DirectionVertical, ok: true},
		"column":     {in: "column", want: DirectionVertical, ok: true},
		"horizontal": {in: "horizontal", want: DirectionHorizontal, ok: true},
		"row":        {in: "row", want: DirectionHorizontal, ok: true},
		"unknown":    {in: "diagonal", want: DirectionNone, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseDirection(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseDirection(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}

	if AxisFor(DirectionHorizontal) != Horizontal {
		t.Errorf("AxisFor(horizontal) did not return Horizontal")
	}
	if AxisFor(DirectionNone) != Vertical {
		t.Errorf("AxisFor(none) should default to Vertical")
	}
}
