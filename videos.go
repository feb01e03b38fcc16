package twitcheroo

import (
	"context"
	"net/url"
)

// Video is a past broadcast, highlight, or upload.
type Video struct {
	ID            string `json:"id"`
	StreamID      string `json:"stream_id"`
	UserID        string `json:"user_id"`
	UserLogin     string `json:"user_login"`
	UserName      string `json:"user_name"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CreatedAt     string `json:"created_at"`
	PublishedAt   string `json:"published_at"`
	URL           string `json:"url"`
	ThumbnailURL  string `json:"thumbnail_url"`
	Viewable      string `json:"viewable"`
	ViewCount     int    `json:"view_count"`
	Language      string `json:"language"`
	Type          string `json:"type"`
	Duration      string `json:"duration"`
	MutedSegments []struct {
		Duration int `json:"duration"`
		Offset   int `json:"offset"`
	} `json:"muted_segments"`
}

// GetVideosParams filters GetVideos. Exactly one of IDs, UserID, or GameID
// must be provided.
type GetVideosParams struct {
	IDs      []string
	UserID   string
	GameID   string
	Language string
	Period   string
	Sort     string
	Type     string
	First    int
	After    string
	Before   string
}

// GetVideos gets video information by video IDs, user ID, or game ID.
func (c *Client) GetVideos(ctx context.Context, p *GetVideosParams) ([]Video, error) {
	if p == nil || (len(p.IDs) == 0 && p.UserID == "" && p.GameID == "") {
		return nil, &RequestError{Message: "one of id, user_id, or game_id is required"}
	}

	q := url.Values{}
	addEach(q, "id", p.IDs)
	optString(q, "user_id", p.UserID)
	optString(q, "game_id", p.GameID)
	optString(q, "language", p.Language)
	optString(q, "period", p.Period)
	optString(q, "sort", p.Sort)
	optString(q, "type", p.Type)
	optInt(q, "first", p.First)
	optString(q, "after", p.After)
	optString(q, "before", p.Before)
	return doList[Video](ctx, c, "GET", "/videos", q, nil)
}

// DeleteVideos deletes one or more videos. Returns the IDs of the deleted
// videos.
func (c *Client) DeleteVideos(ctx context.Context, videoIDs ...string) ([]string, error) {
	if err := c.requireScope("channel:manage:videos"); err != nil {
		return nil, err
	}
	if len(videoIDs) == 0 {
		return nil, &RequestError{Message: "at least one video id is required"}
	}
	q := url.Values{}
	addEach(q, "id", videoIDs)
	return doList[string](ctx, c, "DELETE", "/videos", q, nil)
}
