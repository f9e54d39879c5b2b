// Package extract turns an episode page into the CDN links of its video.
//
// Resolution is a chain of dependent hops: the episode page points at a video
// page (directly through an iframe or through the script cipher), the video
// page's script names a lookup endpoint, and the lookup endpoint returns the
// hosts and id that make up the final links.
package extract

import (
	"context"

	"github.com/samber/mo"

	"wcoget/internal/media"
)

// Extractor resolves a single episode. A None result with a nil error means
// the page did not contain what the heuristics look for.
type Extractor interface {
	Resolve(ctx context.Context, ep media.Episode) (mo.Option[media.Links], error)
}

var _ Extractor = (*Resolver)(nil)
