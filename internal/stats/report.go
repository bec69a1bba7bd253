package stats

import (
	"context"
	"io"

	"github.com/verte-zerg/spr/internal/model"
)

// SessionLister is the read side of the history store. It applies every
// filter in cfg, including Last.
type SessionLister interface {
	ListSessions(ctx context.Context, cfg model.HistoryConfig) ([]model.SessionAggregate, error)
}

// Report contains precomputed data for history rendering.
type Report struct {
	Sessions []model.SessionAggregate
}

// BuildReport loads sessions for the history view.
func BuildReport(ctx context.Context, st SessionLister, cfg model.HistoryConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	return Report{Sessions: sessions}, nil
}

// Render writes the summary followed by the session table.
func (r Report) Render(w io.Writer) error {
	if err := RenderSummary(w, r.Sessions); err != nil {
		return err
	}
	if len(r.Sessions) == 0 {
		return nil
	}
	return WriteHistory(w, r.Sessions)
}
