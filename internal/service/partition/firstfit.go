package partition

import (
	"context"
	"log/slog"

	"github.com/aerogate/gateplan/internal/domain"
)

// FirstFit folds one aircraft into an existing assignment without
// disturbing any gate's current contents. Gates are scanned in index
// order and the aircraft joins the first gate with no conflict against
// any member; if none qualifies a new gate is opened.
//
// Unlike the batch allocators this checks every member of each gate,
// because the candidate may arrive before aircraft already placed. It
// is a best-effort fit: repeated incremental insertions can leave the
// assignment with more gates than a full recompute would use.
func FirstFit(ctx context.Context, assignment *domain.Assignment, a domain.Aircraft) (gateIndex int, opened bool) {
	for gi := range assignment.Gates {
		if !assignment.Gates[gi].ConflictsWith(a) {
			assignment.Gates[gi].Append(a)

			slog.DebugContext(ctx, "first-fit: placed in existing gate",
				slog.Int("gate", gi),
				slog.String("aircraft", a.Code),
			)
			return gi, false
		}
	}

	idx := assignment.OpenGate(a)

	slog.DebugContext(ctx, "first-fit: opened new gate",
		slog.Int("gate", idx),
		slog.String("aircraft", a.Code),
	)
	return idx, true
}
