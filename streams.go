package twitcheroo

import (
	"context"
	"net/url"
)

// Stream is an active stream.
type Stream struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	UserLogin    string   `json:"user_login"`
	UserName     string   `json:"user_name"`
	GameID       string   `json:"game_id"`
	GameName     string   `json:"game_name"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	ViewerCount  int      `json:"viewer_count"`
	StartedAt    string   `json:"started_at"`
	Language     string   `json:"language"`
	ThumbnailURL string   `json:"thumbnail_url"`
	TagIDs       []string `json:"tag_ids"`
	IsMature     bool     `json:"is_mature"`
}

// GetStreamsParams filters GetStreams.
type GetStreamsParams struct {
	UserIDs    []string
	UserLogins []string
	GameIDs    []string
	Languages  []string
	First      int
	After      string
	Before     string
}

// GetStreams gets information about active streams, sorted by number of
// current viewers in descending order.
func (c *Client) GetStreams(ctx context.Context, p *GetStreamsParams) ([]Stream, error) {
	if p == nil {
		p = &GetStreamsParams{}
	}
	q := url.Values{}
	addEach(q, "user_id", p.UserIDs)
	addEach(q, "user_login", p.UserLogins)
	addEach(q, "game_id", p.GameIDs)
	addEach(q, "language", p.Languages)
	optInt(q, "first", p.First)
	optString(q, "after", p.After)
	optString(q, "before", p.Before)
	return doList[Stream](ctx, c, "GET", "/streams", q, nil)
}

// GetFollowedStreams gets the active streams of channels the authenticated
// user follows.
func (c *Client) GetFollowedStreams(ctx context.Context, userID string, first int, after string) ([]Stream, error) {
	if err := c.requireScope("user:read:follows"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("user_id", userID)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[Stream](ctx, c, "GET", "/streams/followed", q, nil)
}

// StreamKey is a channel's stream key.
type StreamKey struct {
	StreamKey string `json:"stream_key"`
}

// GetStreamKey gets the channel stream key for a user.
func (c *Client) GetStreamKey(ctx context.Context, broadcasterID string) ([]StreamKey, error) {
	if err := c.requireScope("channel:read:stream_key"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return doList[StreamKey](ctx, c, "GET", "/streams/key", q, nil)
}

// StreamMarker is an arbitrary point in a stream that the broadcaster
// marked.
type StreamMarker struct {
	ID              string `json:"id"`
	CreatedAt       string `json:"created_at"`
	Description     string `json:"description"`
	PositionSeconds int    `json:"position_seconds"`
	URL             string `json:"URL,omitempty"`
}

// CreateStreamMarker creates a marker at the current point in a user's
// stream.
func (c *Client) CreateStreamMarker(ctx context.Context, userID, description string) ([]StreamMarker, error) {
	if err := c.requireScope("channel:manage:broadcast"); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, &RequestError{Message: "user_id is a required body parameter"}
	}
	body := map[string]string{"user_id": userID}
	if description != "" {
		body["description"] = description
	}
	return doList[StreamMarker](ctx, c, "POST", "/streams/markers", nil, body)
}

// VideoMarkers groups markers by the video they were placed in.
type VideoMarkers struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`
	Videos    []struct {
		VideoID string         `json:"video_id"`
		Markers []StreamMarker `json:"markers"`
	} `json:"videos"`
}

// GetStreamMarkers gets the markers in a user's most recent stream or in a
// specific VOD. Exactly one of userID or videoID must be provided.
func (c *Client) GetStreamMarkers(ctx context.Context, userID, videoID string, first int, after, before string) ([]VideoMarkers, error) {
	if err := c.requireScope("user:read:broadcast"); err != nil {
		return nil, err
	}
	if (userID == "") == (videoID == "") {
		return nil, &RequestError{Message: "exactly one of user_id or video_id is required"}
	}
	q := url.Values{}
	optString(q, "user_id", userID)
	optString(q, "video_id", videoID)
	optInt(q, "first", first)
	optString(q, "after", after)
	optString(q, "before", before)
	return doList[VideoMarkers](ctx, c, "GET", "/streams/markers", q, nil)
}
