package scenario

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"

	"github.com/grindlemire/go-dnd/internal/impact"
	"github.com/grindlemire/go-dnd/internal/session"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteTable renders one table per report.
func WriteTable(w io.Writer, reports []Report) {
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (dragging %s)\n", r.Name, r.Draggable)
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.AppendHeader(table.Row{"#", "Action", "Center", "Heading", "Outcome", "Displaced"})
		tw.AppendRow(table.Row{0, "lift", fmt.Sprintf("%g,%g", r.Center.X, r.Center.Y), "", session.Describe(r.Lift), displaced(r.Lift)})
		for n, s := range r.Steps {
			tw.AppendRow(table.Row{
				n + 1,
				s.Action,
				fmt.Sprintf("%g,%g", s.Center.X, s.Center.Y),
				s.Direction.String(),
				session.Describe(s.Impact),
				displaced(s.Impact),
			})
		}
		if r.Result != nil {
			tw.AppendSeparator()
			tw.AppendRow(table.Row{"", r.Result.Reason.String(), "", "", "", lists(r.Lists)})
		}
		tw.Render()
	}
}

// displaced lists displaced ids closest first. Hidden ones are bracketed and
// ones that keep their place without animation are starred.
func displaced(i impact.DragImpact) string {
	parts := make([]string, 0, len(i.Movement.Displaced))
	for _, d := range i.Movement.Displaced {
		label := string(d.DraggableID)
		if !d.ShouldAnimate() {
			label += "*"
		}
		if !d.IsVisible {
			label = "(" + label + ")"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func lists(l map[impact.DroppableID][]impact.DraggableID) string {
	ids := make([]impact.DroppableID, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		items := make([]string, len(l[id]))
		for i, item := range l[id] {
			items[i] = string(item)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", id, strings.Join(items, ",")))
	}
	return strings.Join(parts, "\n")
}

type jsonDisplacement struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
	Kind    string `json:"kind"`
}

type jsonImpact struct {
	Action      string             `json:"action"`
	X           float64            `json:"x"`
	Y           float64            `json:"y"`
	Heading     string             `json:"heading,omitempty"`
	Outcome     string             `json:"outcome"`
	Destination *impact.Location   `json:"destination,omitempty"`
	Merge       *impact.Merge      `json:"merge,omitempty"`
	Displaced   []jsonDisplacement `json:"displaced"`
}

type jsonReport struct {
	Name      string                                      `json:"name"`
	Draggable string                                      `json:"draggable"`
	Steps     []jsonImpact                                `json:"steps"`
	Result    string                                      `json:"result,omitempty"`
	Lists     map[impact.DroppableID][]impact.DraggableID `json:"lists,omitempty"`
}

func toJSONImpact(action string, i impact.DragImpact) jsonImpact {
	out := jsonImpact{
		Action:      action,
		Outcome:     session.Describe(i),
		Destination: i.Destination,
		Merge:       i.Merge,
		Displaced:   make([]jsonDisplacement, 0, len(i.Movement.Displaced)),
	}
	for _, d := range i.Movement.Displaced {
		out.Displaced = append(out.Displaced, jsonDisplacement{
			ID:      string(d.DraggableID),
			Visible: d.IsVisible,
			Kind:    d.Kind.String(),
		})
	}
	return out
}

// WriteJSON writes reports as an indented JSON array.
func WriteJSON(w io.Writer, reports []Report) error {
	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		jr := jsonReport{
			Name:      r.Name,
			Draggable: string(r.Draggable),
			Steps:     make([]jsonImpact, 0, len(r.Steps)+1),
		}
		lift := toJSONImpact("lift", r.Lift)
		lift.X, lift.Y = r.Center.X, r.Center.Y
		jr.Steps = append(jr.Steps, lift)
		for _, s := range r.Steps {
			ji := toJSONImpact(s.Action, s.Impact)
			ji.X, ji.Y = s.Center.X, s.Center.Y
			ji.Heading = s.Direction.String()
			jr.Steps = append(jr.Steps, ji)
		}
		if r.Result != nil {
			jr.Result = r.Result.Reason.String()
			jr.Lists = r.Lists
		}
		out = append(out, jr)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode reports: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}
	return nil
}
