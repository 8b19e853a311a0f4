package queries

import (
	"context"
)

// Page placements the backend recognizes; anything else falls back to
// the unfiltered list.
const (
	PageHomepage = "homepage"
	PageShop     = "shop"
	PageAll      = "all"
)

type AnnouncementGateway interface {
	ListAnnouncements(ctx context.Context, pageType string) ([]*AnnouncementView, error)
}

type AnnouncementQueries interface {
	ListActive(ctx context.Context, pageType string) ([]*AnnouncementView, error)
}

type announcementQueriesImpl struct {
	gw AnnouncementGateway
}

func NewAnnouncementQueries(gw AnnouncementGateway) AnnouncementQueries {
	return &announcementQueriesImpl{gw: gw}
}

func (q *announcementQueriesImpl) ListActive(ctx context.Context, pageType string) ([]*AnnouncementView, error) {
	switch pageType {
	case PageHomepage, PageShop, PageAll:
	default:
		pageType = ""
	}
	return q.gw.ListAnnouncements(ctx, pageType)
}
