package scenario

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-dnd/internal/impact"
	"github.com/grindlemire/go-dnd/internal/session"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func outcomes(r Report) []string {
	out := []string{session.Describe(r.Lift)}
	for _, s := range r.Steps {
		out = append(out, session.Describe(s.Impact))
	}
	return out
}

func TestRun(t *testing.T) {
	type tc struct {
		path     string
		outcomes []string
		lists    map[impact.DroppableID][]impact.DraggableID
	}

	tests := map[string]tc{
		"reorder": {
			path:     "testdata/reorder.yaml",
			outcomes: []string{"home[2]", "home[0]", "home[1]", "home[1]"},
			lists: map[impact.DroppableID][]impact.DraggableID{
				"home": {"a", "c", "b", "d"},
			},
		},
		"foreign": {
			path:     "testdata/foreign.yaml",
			outcomes: []string{"home[2]", "foreign[1]", "foreign[2]", "foreign[2]"},
			lists: map[impact.DroppableID][]impact.DraggableID{
				"home":    {"a", "b", "d"},
				"foreign": {"e", "f", "c", "g", "h"},
			},
		},
		"combine": {
			path:     "testdata/combine.yaml",
			outcomes: []string{"home[2]", "merge b in home", "merge b in home"},
			lists: map[impact.DroppableID][]impact.DraggableID{
				"home": {"a", "b"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Load(tt.path)
			require.NoError(t, err)

			r, err := Run(context.Background(), s, nil)
			require.NoError(t, err)
			require.Equal(t, tt.outcomes, outcomes(r))
			require.NotNil(t, r.Result)
			require.Equal(t, session.ReasonDrop, r.Result.Reason)
			require.Equal(t, tt.lists, r.Lists)
		})
	}
}

func TestRun_TracksHeading(t *testing.T) {
	s, err := Load("testdata/reorder.yaml")
	require.NoError(t, err)

	r, err := Run(context.Background(), s, nil)
	require.NoError(t, err)
	require.Equal(t, impact.Up, r.Steps[0].Direction.Vertical)
	require.Equal(t, impact.Down, r.Steps[1].Direction.Vertical)
	require.Equal(t, 51.0, r.Steps[1].Center.Y)
}

func TestRun_ScrollTurnsHeading(t *testing.T) {
	s, err := Load("testdata/foreign.yaml")
	require.NoError(t, err)

	r, err := Run(context.Background(), s, nil)
	require.NoError(t, err)
	require.Equal(t, impact.Up, r.Steps[0].Direction.Vertical)
	require.Equal(t, impact.Down, r.Steps[1].Direction.Vertical)
	require.Equal(t, "foreign[2]", session.Describe(r.Steps[1].Impact))
	// The pointer itself did not move.
	require.Equal(t, r.Steps[0].Center, r.Steps[1].Center)
}

func TestRun_Cancel(t *testing.T) {
	s, err := Load("testdata/reorder.yaml")
	require.NoError(t, err)
	s.Steps[2] = Step{Cancel: true}

	r, err := Run(context.Background(), s, nil)
	require.NoError(t, err)
	require.Equal(t, session.ReasonCancel, r.Result.Reason)
	require.Equal(t, []impact.DraggableID{"a", "b", "c", "d"}, r.Lists["home"])
}

func TestRun_Errors(t *testing.T) {
	s, err := Load("testdata/reorder.yaml")
	require.NoError(t, err)

	missing := s
	missing.Drag = "nope"
	_, err = Run(context.Background(), missing, nil)
	require.ErrorIs(t, err, impact.ErrDraggableNotFound)

	badScroll := s
	badScroll.Steps = []Step{{Scroll: &Scroll{List: "nope"}}}
	_, err = Run(context.Background(), badScroll, nil)
	require.ErrorIs(t, err, impact.ErrDroppableNotFound)
	require.Contains(t, err.Error(), "step 1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, s, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunFiles(t *testing.T) {
	paths := []string{"testdata/foreign.yaml", "testdata/reorder.yaml", "testdata/combine.yaml"}

	reports, err := RunFiles(context.Background(), paths, 2, nil)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	require.Equal(t, "move to foreign list", reports[0].Name)
	require.Equal(t, "reorder in home", reports[1].Name)
	require.Equal(t, "combine onto neighbour", reports[2].Name)

	_, err = RunFiles(context.Background(), append(paths, "testdata/missing.yaml"), 0, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.yaml")
}

func TestWriteTable(t *testing.T) {
	reports, err := RunFiles(context.Background(), []string{"testdata/reorder.yaml"}, 1, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteTable(&buf, reports)
	out := buf.String()

	for _, want := range []string{"reorder in home (dragging c)", "move by 0,21", "home[1]", "up/right", "d*", "home: a,c,b,d"} {
		require.Contains(t, out, want)
	}
}

func TestWriteJSON(t *testing.T) {
	reports, err := RunFiles(context.Background(), []string{"testdata/foreign.yaml"}, 1, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, reports))

	var got []struct {
		Name  string `json:"name"`
		Steps []struct {
			Action      string `json:"action"`
			Outcome     string `json:"outcome"`
			Destination *struct {
				Droppable string `json:"droppable"`
				Index     int    `json:"index"`
			} `json:"destination"`
			Displaced []decodedDisplacement `json:"displaced"`
		} `json:"steps"`
		Result string              `json:"result"`
		Lists  map[string][]string `json:"lists"`
	}
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)

	r := got[0]
	require.Equal(t, "move to foreign list", r.Name)
	require.Len(t, r.Steps, 4)
	require.Equal(t, "lift", r.Steps[0].Action)
	require.Equal(t, "foreign", r.Steps[1].Destination.Droppable)
	require.Equal(t, 1, r.Steps[1].Destination.Index)
	require.Equal(t, []string{"f", "g", "h"}, ids(r.Steps[1].Displaced))
	require.Equal(t, "drop", r.Result)
	require.Equal(t, "e,f,c,g,h", strings.Join(r.Lists["foreign"], ","))
}

type decodedDisplacement struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
}

func ids(in []decodedDisplacement) []string {
	out := make([]string, len(in))
	for i, d := range in {
		out[i] = d.ID
	}
	return out
}
