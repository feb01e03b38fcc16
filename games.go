package twitcheroo

import (
	"context"
	"net/url"
)

// Game is a game or category on the platform.
type Game struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BoxArtURL string `json:"box_art_url"`
	IGDBID    string `json:"igdb_id"`
}

// GetTopGames gets games sorted by number of current viewers, most popular
// first.
func (c *Client) GetTopGames(ctx context.Context, first int, after, before string) ([]Game, error) {
	q := url.Values{}
	optInt(q, "first", first)
	optString(q, "after", after)
	optString(q, "before", before)
	return doList[Game](ctx, c, "GET", "/games/top", q, nil)
}

// GetGames gets game information by game IDs or names.
func (c *Client) GetGames(ctx context.Context, ids, names []string) ([]Game, error) {
	if len(ids) == 0 && len(names) == 0 {
		return nil, &RequestError{Message: "at least one id or name is required"}
	}
	q := url.Values{}
	addEach(q, "id", ids)
	addEach(q, "name", names)
	return doList[Game](ctx, c, "GET", "/games", q, nil)
}
