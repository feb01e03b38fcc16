package twitcheroo

import (
	"context"
	"net/url"
)

// Team is a Twitch Team.
type Team struct {
	ID                 string `json:"id"`
	TeamName           string `json:"team_name"`
	TeamDisplayName    string `json:"team_display_name"`
	Info               string `json:"info"`
	ThumbnailURL       string `json:"thumbnail_url"`
	Banner             string `json:"banner"`
	BackgroundImageURL string `json:"background_image_url"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
	Users              []struct {
		UserID    string `json:"user_id"`
		UserLogin string `json:"user_login"`
		UserName  string `json:"user_name"`
	} `json:"users,omitempty"`
	BroadcasterID    string `json:"broadcaster_id,omitempty"`
	BroadcasterLogin string `json:"broadcaster_login,omitempty"`
	BroadcasterName  string `json:"broadcaster_name,omitempty"`
}

// GetChannelTeams retrieves the Twitch Teams the specified broadcaster is a
// member of.
func (c *Client) GetChannelTeams(ctx context.Context, broadcasterID string) ([]Team, error) {
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return doList[Team](ctx, c, "GET", "/teams/channel", q, nil)
}

// GetTeams gets information about a specific Twitch Team, looked up by name
// or ID.
func (c *Client) GetTeams(ctx context.Context, name, id string) ([]Team, error) {
	if (name == "") == (id == "") {
		return nil, &RequestError{Message: "exactly one of name or id is required"}
	}
	q := url.Values{}
	optString(q, "name", name)
	optString(q, "id", id)
	return doList[Team](ctx, c, "GET", "/teams", q, nil)
}
