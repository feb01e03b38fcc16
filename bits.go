package twitcheroo

import (
	"context"
	"net/url"
)

// BitsLeaderboardEntry is one ranked user on the Bits leaderboard.
type BitsLeaderboardEntry struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`
	Rank      int    `json:"rank"`
	Score     int    `json:"score"`
}

// BitsLeaderboard is the full leaderboard response, including the date
// range the results cover.
type BitsLeaderboard struct {
	Data      []BitsLeaderboardEntry `json:"data"`
	DateRange DateRange              `json:"date_range"`
	Total     int                    `json:"total"`
}

// BitsLeaderboardParams filters GetBitsLeaderboard.
type BitsLeaderboardParams struct {
	Count     int
	Period    string
	StartedAt string
	UserID    string
}

// GetBitsLeaderboard gets a ranked list of Bits leaderboard information
// for an authorized broadcaster.
func (c *Client) GetBitsLeaderboard(ctx context.Context, p *BitsLeaderboardParams) (*BitsLeaderboard, error) {
	if err := c.requireScope("bits:read"); err != nil {
		return nil, err
	}
	if p == nil {
		p = &BitsLeaderboardParams{}
	}

	q := url.Values{}
	optInt(q, "count", p.Count)
	optString(q, "period", p.Period)
	optString(q, "started_at", p.StartedAt)
	optString(q, "user_id", p.UserID)

	return doJSON[BitsLeaderboard](ctx, c, "GET", "/bits/leaderboard", q, nil)
}

// CheermoteTier is one Bits tier of a Cheermote.
type CheermoteTier struct {
	MinBits        int            `json:"min_bits"`
	ID             string         `json:"id"`
	Color          string         `json:"color"`
	Images         map[string]any `json:"images"`
	CanCheer       bool           `json:"can_cheer"`
	ShowInBitsCard bool           `json:"show_in_bits_card"`
}

// Cheermote is an animated emote to which viewers can assign Bits.
type Cheermote struct {
	Prefix       string          `json:"prefix"`
	Tiers        []CheermoteTier `json:"tiers"`
	Type         string          `json:"type"`
	Order        int             `json:"order"`
	LastUpdated  string          `json:"last_updated"`
	IsCharitable bool            `json:"is_charitable"`
}

// GetCheermotes retrieves the list of available Cheermotes. Pass a
// broadcaster ID to include that channel's custom Cheermotes.
func (c *Client) GetCheermotes(ctx context.Context, broadcasterID string) ([]Cheermote, error) {
	q := url.Values{}
	optString(q, "broadcaster_id", broadcasterID)
	return doList[Cheermote](ctx, c, "GET", "/bits/cheermotes", q, nil)
}
