package twitcheroo

import (
	"context"
	"net/url"
)

// ChannelInformation describes a broadcaster's channel.
type ChannelInformation struct {
	BroadcasterID       string `json:"broadcaster_id"`
	BroadcasterLogin    string `json:"broadcaster_login"`
	BroadcasterName     string `json:"broadcaster_name"`
	BroadcasterLanguage string `json:"broadcaster_language"`
	GameID              string `json:"game_id"`
	GameName            string `json:"game_name"`
	Title               string `json:"title"`
	Delay               int    `json:"delay"`
}

// GetChannelInformation gets channel information for a broadcaster.
func (c *Client) GetChannelInformation(ctx context.Context, broadcasterID string) ([]ChannelInformation, error) {
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return doList[ChannelInformation](ctx, c, "GET", "/channels", q, nil)
}

// ChannelUpdate carries the modifiable channel fields. Zero-valued fields
// are omitted from the request.
type ChannelUpdate struct {
	GameID              string `json:"game_id,omitempty"`
	BroadcasterLanguage string `json:"broadcaster_language,omitempty"`
	Title               string `json:"title,omitempty"`
	Delay               int    `json:"delay,omitempty"`
}

// ModifyChannelInformation modifies channel information for a broadcaster.
func (c *Client) ModifyChannelInformation(ctx context.Context, broadcasterID string, update *ChannelUpdate) error {
	if err := c.requireScope("channel:manage:broadcast"); err != nil {
		return err
	}
	if update == nil || *update == (ChannelUpdate{}) {
		return &RequestError{Message: "at least one channel field must be set"}
	}

	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return c.doEmpty(ctx, "PATCH", "/channels", q, update)
}

// ChannelEditor is a user with editor permissions on a channel.
type ChannelEditor struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	CreatedAt string `json:"created_at"`
}

// GetChannelEditors gets the users who have editor permissions for a
// specific channel.
func (c *Client) GetChannelEditors(ctx context.Context, broadcasterID string) ([]ChannelEditor, error) {
	if err := c.requireScope("channel:read:editors"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return doList[ChannelEditor](ctx, c, "GET", "/channels/editors", q, nil)
}

// CommercialStatus reports the result of starting a commercial.
type CommercialStatus struct {
	Length     int    `json:"length"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

// StartCommercial starts a commercial on a specified channel.
func (c *Client) StartCommercial(ctx context.Context, broadcasterID string, length int) ([]CommercialStatus, error) {
	if err := c.requireScope("channel:edit:commercial"); err != nil {
		return nil, err
	}
	if broadcasterID == "" {
		return nil, &RequestError{Message: "broadcaster_id is a required body parameter"}
	}
	if length <= 0 {
		return nil, &RequestError{Message: "length is a required body parameter"}
	}

	body := map[string]any{
		"broadcaster_id": broadcasterID,
		"length":         length,
	}
	return doList[CommercialStatus](ctx, c, "POST", "/channels/commercial", nil, body)
}
