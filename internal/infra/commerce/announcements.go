package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"time"

	"maison-storefront/internal/infra"
	"maison-storefront/internal/usecase/queries"
)

type wireAnnouncement struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	Type            string     `json:"announcement_type"`
	Priority        string     `json:"priority"`
	ShowOnHomepage  bool       `json:"show_on_homepage"`
	ShowOnShop      bool       `json:"show_on_shop"`
	ShowOnAllPages  bool       `json:"show_on_all_pages"`
	BackgroundColor string     `json:"background_color"`
	TextColor       string     `json:"text_color"`
	LinkURL         string     `json:"link_url"`
	LinkText        string     `json:"link_text"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
}

func (c *Client) ListAnnouncements(ctx context.Context, pageType string) ([]*queries.AnnouncementView, error) {
	query := url.Values{}
	if pageType != "" {
		query.Set("page", pageType)
	}

	var raw json.RawMessage
	if err := c.get(ctx, "/announcements/", query, &raw); err != nil {
		return nil, err
	}

	// Either a bare array or the {"announcements": [...], "count": n} envelope.
	wires, err := decodeAnnouncements(raw)
	if err != nil {
		return nil, infra.WrapGatewayErr(c.logger, infra.KindDecodeFailed, "decode announcements", err)
	}

	views := make([]*queries.AnnouncementView, 0, len(wires))
	for _, w := range wires {
		views = append(views, &queries.AnnouncementView{
			ID:              w.ID,
			Title:           w.Title,
			Message:         w.Message,
			Type:            w.Type,
			Priority:        w.Priority,
			ShowOnHomepage:  w.ShowOnHomepage,
			ShowOnShop:      w.ShowOnShop,
			ShowOnAllPages:  w.ShowOnAllPages,
			BackgroundColor: w.BackgroundColor,
			TextColor:       w.TextColor,
			LinkURL:         w.LinkURL,
			LinkText:        w.LinkText,
			StartDate:       w.StartDate,
			EndDate:         w.EndDate,
		})
	}
	return views, nil
}

func decodeAnnouncements(raw json.RawMessage) ([]wireAnnouncement, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []wireAnnouncement
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var envelope struct {
		Announcements []wireAnnouncement `json:"announcements"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	return envelope.Announcements, nil
}
