package extract

import (
	"context"
	"errors"

	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"

	"wcoget/internal/log"
	"wcoget/internal/media"
)

// Outcome is the result of resolving one episode in a batch. Exactly one of
// Links being set, Err being set, or neither (no result) holds.
type Outcome struct {
	Episode media.Episode
	Links   mo.Option[media.Links]
	Err     error
}

// NoResult reports whether the episode was skipped rather than resolved or failed.
func (o Outcome) NoResult() bool {
	return o.Err == nil && o.Links.IsAbsent()
}

// ResolveAll resolves episodes with at most workers in flight and returns one
// Outcome per episode in input order. A failed episode does not stop the
// others. Once ctx is done, episodes not yet started fail with ctx.Err().
func ResolveAll(ctx context.Context, x Extractor, episodes []media.Episode, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}
	outcomes := make([]Outcome, len(episodes))

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i, ep := range episodes {
		g.Go(func() error {
			outcomes[i] = resolveOne(ctx, x, ep)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func resolveOne(ctx context.Context, x Extractor, ep media.Episode) Outcome {
	out := Outcome{Episode: ep}
	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	out.Links, out.Err = x.Resolve(ctx, ep)

	logger := log.WithFields(log.Fields{"episode": ep.Title})
	switch {
	case errors.Is(out.Err, context.Canceled):
		logger.Debug("canceled")
	case out.Err != nil:
		logger.WithError(out.Err).Warn("resolution failed")
	case out.Links.IsAbsent():
		logger.Info("no result")
	default:
		logger.Debug("resolved")
	}
	return out
}
