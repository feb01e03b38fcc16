package twitcheroo

import (
	"context"
	"net/url"
)

// CreatedClip is the ID and edit URL of a freshly created clip.
type CreatedClip struct {
	ID      string `json:"id"`
	EditURL string `json:"edit_url"`
}

// CreateClip creates a clip programmatically, returning its ID and an edit
// URL. With hasDelay set, clipping waits out the broadcast delay.
func (c *Client) CreateClip(ctx context.Context, broadcasterID string, hasDelay bool) ([]CreatedClip, error) {
	if err := c.requireScope("clips:edit"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	setBool(q, "has_delay", hasDelay)
	return doList[CreatedClip](ctx, c, "POST", "/clips", q, nil)
}

// Clip is clip metadata.
type Clip struct {
	ID              string  `json:"id"`
	URL             string  `json:"url"`
	EmbedURL        string  `json:"embed_url"`
	BroadcasterID   string  `json:"broadcaster_id"`
	BroadcasterName string  `json:"broadcaster_name"`
	CreatorID       string  `json:"creator_id"`
	CreatorName     string  `json:"creator_name"`
	VideoID         string  `json:"video_id"`
	GameID          string  `json:"game_id"`
	Language        string  `json:"language"`
	Title           string  `json:"title"`
	ViewCount       int     `json:"view_count"`
	CreatedAt       string  `json:"created_at"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	Duration        float64 `json:"duration"`
}

// GetClipsParams filters GetClips. Exactly one of BroadcasterID, GameID, or
// IDs must be provided.
type GetClipsParams struct {
	BroadcasterID string
	GameID        string
	IDs           []string
	After         string
	Before        string
	StartedAt     string
	EndedAt       string
	First         int
}

// GetClips gets clip information by clip IDs, broadcaster ID, or game ID.
func (c *Client) GetClips(ctx context.Context, p *GetClipsParams) ([]Clip, error) {
	if p == nil || (p.BroadcasterID == "" && p.GameID == "" && len(p.IDs) == 0) {
		return nil, &RequestError{Message: "one of broadcaster_id, game_id, or id is required"}
	}

	q := url.Values{}
	optString(q, "broadcaster_id", p.BroadcasterID)
	optString(q, "game_id", p.GameID)
	addEach(q, "id", p.IDs)
	optString(q, "after", p.After)
	optString(q, "before", p.Before)
	optString(q, "started_at", p.StartedAt)
	optString(q, "ended_at", p.EndedAt)
	optInt(q, "first", p.First)
	return doList[Clip](ctx, c, "GET", "/clips", q, nil)
}
