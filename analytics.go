package twitcheroo

import (
	"context"
	"net/url"
)

// DateRange bounds an analytics report.
type DateRange struct {
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at"`
}

// ExtensionAnalyticsReport is a downloadable analytics report for an
// extension. The URL is valid for five minutes.
type ExtensionAnalyticsReport struct {
	ExtensionID string    `json:"extension_id"`
	URL         string    `json:"URL"`
	Type        string    `json:"type"`
	DateRange   DateRange `json:"date_range"`
}

// GameAnalyticsReport is a downloadable analytics report for a game.
type GameAnalyticsReport struct {
	GameID    string    `json:"game_id"`
	URL       string    `json:"URL"`
	Type      string    `json:"type"`
	DateRange DateRange `json:"date_range"`
}

// ExtensionAnalyticsParams filters GetExtensionAnalytics. StartedAt and
// EndedAt must be used together.
type ExtensionAnalyticsParams struct {
	ExtensionID string
	Type        string
	StartedAt   string
	EndedAt     string
	First       int
	After       string
}

// GetExtensionAnalytics gets URLs that extension developers can use to
// download analytics reports for their extensions.
func (c *Client) GetExtensionAnalytics(ctx context.Context, p *ExtensionAnalyticsParams) ([]ExtensionAnalyticsReport, error) {
	if err := c.requireScope("analytics:read:extensions"); err != nil {
		return nil, err
	}
	if p == nil {
		p = &ExtensionAnalyticsParams{}
	}
	if (p.StartedAt == "") != (p.EndedAt == "") {
		return nil, &RequestError{Message: "started_at and ended_at must be used together"}
	}

	q := url.Values{}
	optString(q, "extension_id", p.ExtensionID)
	optString(q, "type", p.Type)
	optString(q, "started_at", p.StartedAt)
	optString(q, "ended_at", p.EndedAt)
	optInt(q, "first", p.First)
	optString(q, "after", p.After)

	return doList[ExtensionAnalyticsReport](ctx, c, "GET", "/analytics/extensions", q, nil)
}

// GameAnalyticsParams filters GetGameAnalytics. StartedAt and EndedAt must
// be used together.
type GameAnalyticsParams struct {
	GameID    string
	Type      string
	StartedAt string
	EndedAt   string
	First     int
	After     string
}

// GetGameAnalytics gets URLs that game developers can use to download
// analytics reports for their games.
func (c *Client) GetGameAnalytics(ctx context.Context, p *GameAnalyticsParams) ([]GameAnalyticsReport, error) {
	if err := c.requireScope("analytics:read:games"); err != nil {
		return nil, err
	}
	if p == nil {
		p = &GameAnalyticsParams{}
	}
	if (p.StartedAt == "") != (p.EndedAt == "") {
		return nil, &RequestError{Message: "started_at and ended_at must be used together"}
	}

	q := url.Values{}
	optString(q, "game_id", p.GameID)
	optString(q, "type", p.Type)
	optString(q, "started_at", p.StartedAt)
	optString(q, "ended_at", p.EndedAt)
	optInt(q, "first", p.First)
	optString(q, "after", p.After)

	return doList[GameAnalyticsReport](ctx, c, "GET", "/analytics/games", q, nil)
}
