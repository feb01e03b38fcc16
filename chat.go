package twitcheroo

import (
	"context"
	"net/url"
)

// Emote is a chat emote.
type Emote struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Images struct {
		URL1x string `json:"url_1x"`
		URL2x string `json:"url_2x"`
		URL4x string `json:"url_4x"`
	} `json:"images"`
	Tier       string   `json:"tier,omitempty"`
	EmoteType  string   `json:"emote_type,omitempty"`
	EmoteSetID string   `json:"emote_set_id,omitempty"`
	OwnerID    string   `json:"owner_id,omitempty"`
	Format     []string `json:"format"`
	Scale      []string `json:"scale"`
	ThemeMode  []string `json:"theme_mode"`
}

// GetChannelEmotes gets all emotes that the specified channel created.
func (c *Client) GetChannelEmotes(ctx context.Context, broadcasterID string) ([]Emote, error) {
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return doList[Emote](ctx, c, "GET", "/chat/emotes", q, nil)
}

// GetGlobalEmotes gets all global emotes, usable by every user in any chat.
func (c *Client) GetGlobalEmotes(ctx context.Context) ([]Emote, error) {
	return doList[Emote](ctx, c, "GET", "/chat/emotes/global", nil, nil)
}

// GetEmoteSets gets emotes for one or more specified emote sets.
func (c *Client) GetEmoteSets(ctx context.Context, emoteSetIDs ...string) ([]Emote, error) {
	if len(emoteSetIDs) == 0 {
		return nil, &RequestError{Message: "at least one emote_set_id is required"}
	}
	q := url.Values{}
	addEach(q, "emote_set_id", emoteSetIDs)
	return doList[Emote](ctx, c, "GET", "/chat/emotes/set", q, nil)
}

// ChatBadgeSet is a set of chat badge versions.
type ChatBadgeSet struct {
	SetID    string `json:"set_id"`
	Versions []struct {
		ID         string `json:"id"`
		ImageURL1x string `json:"image_url_1x"`
		ImageURL2x string `json:"image_url_2x"`
		ImageURL4x string `json:"image_url_4x"`
	} `json:"versions"`
}

// GetGlobalChatBadges gets the chat badges usable in any channel's chat.
func (c *Client) GetGlobalChatBadges(ctx context.Context) ([]ChatBadgeSet, error) {
	return doList[ChatBadgeSet](ctx, c, "GET", "/chat/badges/global", nil, nil)
}

// GetChannelChatBadges gets the broadcaster's custom chat badges.
func (c *Client) GetChannelChatBadges(ctx context.Context, broadcasterID string) ([]ChatBadgeSet, error) {
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return doList[ChatBadgeSet](ctx, c, "GET", "/chat/badges", q, nil)
}

// ChatSettings is a broadcaster's chat configuration. Moderator-only fields
// are populated only when the request carries a moderator ID.
type ChatSettings struct {
	BroadcasterID                 string `json:"broadcaster_id"`
	EmoteMode                     bool   `json:"emote_mode"`
	FollowerMode                  bool   `json:"follower_mode"`
	FollowerModeDuration          int    `json:"follower_mode_duration"`
	ModeratorID                   string `json:"moderator_id,omitempty"`
	NonModeratorChatDelay         bool   `json:"non_moderator_chat_delay"`
	NonModeratorChatDelayDuration int    `json:"non_moderator_chat_delay_duration"`
	SlowMode                      bool   `json:"slow_mode"`
	SlowModeWaitTime              int    `json:"slow_mode_wait_time"`
	SubscriberMode                bool   `json:"subscriber_mode"`
	UniqueChatMode                bool   `json:"unique_chat_mode"`
}

// GetChatSettings gets the broadcaster's chat settings. The moderator ID is
// optional; providing one requires the moderator:read:chat_settings scope
// and unlocks the moderator-only fields.
func (c *Client) GetChatSettings(ctx context.Context, broadcasterID, moderatorID string) ([]ChatSettings, error) {
	if moderatorID != "" {
		if err := c.requireScope("moderator:read:chat_settings"); err != nil {
			return nil, err
		}
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	optString(q, "moderator_id", moderatorID)
	return doList[ChatSettings](ctx, c, "GET", "/chat/settings", q, nil)
}

// ChatSettingsUpdate carries the modifiable chat settings. Nil fields are
// left unchanged.
type ChatSettingsUpdate struct {
	EmoteMode                     *bool `json:"emote_mode,omitempty"`
	FollowerMode                  *bool `json:"follower_mode,omitempty"`
	FollowerModeDuration          *int  `json:"follower_mode_duration,omitempty"`
	NonModeratorChatDelay         *bool `json:"non_moderator_chat_delay,omitempty"`
	NonModeratorChatDelayDuration *int  `json:"non_moderator_chat_delay_duration,omitempty"`
	SlowMode                      *bool `json:"slow_mode,omitempty"`
	SlowModeWaitTime              *int  `json:"slow_mode_wait_time,omitempty"`
	SubscriberMode                *bool `json:"subscriber_mode,omitempty"`
	UniqueChatMode                *bool `json:"unique_chat_mode,omitempty"`
}

// UpdateChatSettings updates the broadcaster's chat settings.
func (c *Client) UpdateChatSettings(ctx context.Context, broadcasterID, moderatorID string, update *ChatSettingsUpdate) ([]ChatSettings, error) {
	if err := c.requireScope("moderator:manage:chat_settings"); err != nil {
		return nil, err
	}
	if update == nil {
		return nil, &RequestError{Message: "at least one chat setting must be set"}
	}

	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("moderator_id", moderatorID)
	return doList[ChatSettings](ctx, c, "PATCH", "/chat/settings", q, update)
}
