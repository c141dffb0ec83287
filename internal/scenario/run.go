package scenario

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-dnd/internal/geom"
	"github.com/grindlemire/go-dnd/internal/impact"
	"github.com/grindlemire/go-dnd/internal/session"
)

// StepReport is the state of the drag after one step.
type StepReport struct {
	Action    string
	Center    geom.Point
	Direction impact.UserDirection
	Impact    impact.DragImpact
}

// Report is the outcome of replaying one scenario.
type Report struct {
	Name      string
	Draggable impact.DraggableID
	Center    geom.Point
	Lift      impact.DragImpact
	Steps     []StepReport

	// Result is set when the last step dropped or cancelled the drag.
	Result *session.Result
	// Lists holds the item order of every list after the result was applied.
	Lists map[impact.DroppableID][]impact.DraggableID
}

// Run replays s. The context is checked between steps.
func Run(ctx context.Context, s Scenario, log *zap.Logger) (Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	draggables, droppables, viewport, err := s.Build()
	if err != nil {
		return Report{}, err
	}

	drag, err := session.Start(impact.DraggableID(s.Drag), draggables, droppables, viewport, session.WithLogger(log))
	if err != nil {
		return Report{}, fmt.Errorf("failed to lift %q: %w", s.Drag, err)
	}

	report := Report{
		Name:      s.Name,
		Draggable: impact.DraggableID(s.Drag),
		Center:    drag.Center(),
		Lift:      drag.Impact(),
		Steps:     make([]StepReport, 0, len(s.Steps)),
		Lists:     order(s),
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		switch {
		case step.Move != nil:
			_, err = drag.Move(step.Move.point())
		case step.MoveBy != nil:
			_, err = drag.MoveBy(step.MoveBy.point())
		case step.Scroll != nil:
			_, err = drag.ScrollDroppable(impact.DroppableID(step.Scroll.List), geom.Point{X: step.Scroll.X, Y: step.Scroll.Y})
		case step.Drop, step.Cancel:
			var r session.Result
			if step.Drop {
				r, err = drag.Drop()
			} else {
				r, err = drag.Cancel()
			}
			if err == nil {
				report.Result = &r
				report.Lists = session.Apply(report.Lists, r)
			}
		}
		if err != nil {
			return Report{}, fmt.Errorf("step %d (%s): %w", i+1, step.Action(), err)
		}

		report.Steps = append(report.Steps, StepReport{
			Action:    step.Action(),
			Center:    drag.Center(),
			Direction: drag.Direction(),
			Impact:    drag.Impact(),
		})
	}
	return report, nil
}

func order(s Scenario) map[impact.DroppableID][]impact.DraggableID {
	lists := make(map[impact.DroppableID][]impact.DraggableID, len(s.Lists))
	for _, l := range s.Lists {
		ids := make([]impact.DraggableID, len(l.Items))
		for i, item := range l.Items {
			ids[i] = impact.DraggableID(item.ID)
		}
		lists[impact.DroppableID(l.ID)] = ids
	}
	return lists
}

// RunFiles loads and replays every file with at most parallel scenarios in
// flight. Reports keep the order of paths. The first failure cancels the rest.
func RunFiles(ctx context.Context, paths []string, parallel int, log *zap.Logger) ([]Report, error) {
	if log == nil {
		log = zap.NewNop()
	}

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	reports := make([]Report, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			s, err := Load(path)
			if err != nil {
				return err
			}
			r, err := Run(ctx, s, log.With(zap.String("scenario", s.Name)))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = r
			log.Debug("replayed", zap.String("scenario", s.Name), zap.Int("steps", len(r.Steps)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
