package twitcheroo

import (
	"context"
	"net/url"
)

// ChannelSearchResult is one channel matching a search query.
type ChannelSearchResult struct {
	ID                  string   `json:"id"`
	BroadcasterLogin    string   `json:"broadcaster_login"`
	DisplayName         string   `json:"display_name"`
	BroadcasterLanguage string   `json:"broadcaster_language"`
	GameID              string   `json:"game_id"`
	GameName            string   `json:"game_name"`
	IsLive              bool     `json:"is_live"`
	TagIDs              []string `json:"tag_ids"`
	ThumbnailURL        string   `json:"thumbnail_url"`
	Title               string   `json:"title"`
	StartedAt           string   `json:"started_at"`
}

// SearchCategories returns the games or categories whose names match the
// query entirely or partially.
func (c *Client) SearchCategories(ctx context.Context, query string, first int, after string) ([]Game, error) {
	if query == "" {
		return nil, &RequestError{Message: "query is a required parameter"}
	}
	q := url.Values{}
	q.Set("query", query)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[Game](ctx, c, "GET", "/search/categories", q, nil)
}

// SearchChannels returns the channels whose names or descriptions match the
// query entirely or partially. With liveOnly set, only live channels are
// returned.
func (c *Client) SearchChannels(ctx context.Context, query string, liveOnly bool, first int, after string) ([]ChannelSearchResult, error) {
	if query == "" {
		return nil, &RequestError{Message: "query is a required parameter"}
	}
	q := url.Values{}
	q.Set("query", query)
	setBool(q, "live_only", liveOnly)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[ChannelSearchResult](ctx, c, "GET", "/search/channels", q, nil)
}
