package twitcheroo

import (
	"context"
	"net/url"
)

// AutoModStatus reports whether a message meets AutoMod requirements.
type AutoModStatus struct {
	MsgID       string `json:"msg_id"`
	IsPermitted bool   `json:"is_permitted"`
}

// AutoModMessage is a candidate chat message for an AutoMod check.
type AutoModMessage struct {
	MsgID   string `json:"msg_id"`
	MsgText string `json:"msg_text"`
}

// CheckAutoModStatus determines whether messages meet the channel's AutoMod
// requirements.
func (c *Client) CheckAutoModStatus(ctx context.Context, broadcasterID string, messages []AutoModMessage) ([]AutoModStatus, error) {
	if err := c.requireScope("moderation:read"); err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, &RequestError{Message: "at least one message is required"}
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	body := map[string]any{"data": messages}
	return doList[AutoModStatus](ctx, c, "POST", "/moderation/enforcements/status", q, body)
}

// ManageHeldAutoModMessage allows or denies a message held for review by
// AutoMod. action is "ALLOW" or "DENY".
func (c *Client) ManageHeldAutoModMessage(ctx context.Context, userID, msgID, action string) error {
	if err := c.requireScope("moderator:manage:automod"); err != nil {
		return err
	}
	if action != "ALLOW" && action != "DENY" {
		return &RequestError{Message: "action must be ALLOW or DENY"}
	}
	body := map[string]string{
		"user_id": userID,
		"msg_id":  msgID,
		"action":  action,
	}
	return c.doEmpty(ctx, "POST", "/moderation/automod/message", nil, body)
}

// AutoModSettings is the broadcaster's AutoMod configuration.
type AutoModSettings struct {
	BroadcasterID           string `json:"broadcaster_id"`
	ModeratorID             string `json:"moderator_id"`
	OverallLevel            *int   `json:"overall_level"`
	Disability              int    `json:"disability"`
	Aggression              int    `json:"aggression"`
	SexualitySexOrGender    int    `json:"sexuality_sex_or_gender"`
	Misogyny                int    `json:"misogyny"`
	Bullying                int    `json:"bullying"`
	Swearing                int    `json:"swearing"`
	RaceEthnicityOrReligion int    `json:"race_ethnicity_or_religion"`
	SexBasedTerms           int    `json:"sex_based_terms"`
}

// GetAutoModSettings gets the broadcaster's AutoMod settings.
func (c *Client) GetAutoModSettings(ctx context.Context, broadcasterID, moderatorID string) ([]AutoModSettings, error) {
	if err := c.requireScope("moderator:read:automod_settings"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("moderator_id", moderatorID)
	return doList[AutoModSettings](ctx, c, "GET", "/moderation/automod/settings", q, nil)
}

// UpdateAutoModSettings updates the broadcaster's AutoMod settings.
func (c *Client) UpdateAutoModSettings(ctx context.Context, broadcasterID, moderatorID string, settings *AutoModSettings) ([]AutoModSettings, error) {
	if err := c.requireScope("moderator:manage:automod_settings"); err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, &RequestError{Message: "at least one setting must be set"}
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("moderator_id", moderatorID)
	return doList[AutoModSettings](ctx, c, "PUT", "/moderation/automod/settings", q, settings)
}

// BannedUser is a banned or timed-out user on a channel.
type BannedUser struct {
	UserID         string `json:"user_id"`
	UserLogin      string `json:"user_login"`
	UserName       string `json:"user_name"`
	ExpiresAt      string `json:"expires_at"`
	CreatedAt      string `json:"created_at"`
	Reason         string `json:"reason"`
	ModeratorID    string `json:"moderator_id"`
	ModeratorLogin string `json:"moderator_login"`
	ModeratorName  string `json:"moderator_name"`
}

// GetBannedUsers returns all banned and timed-out users for a channel.
func (c *Client) GetBannedUsers(ctx context.Context, broadcasterID string, userIDs []string, first int, after, before string) ([]BannedUser, error) {
	if err := c.requireScope("moderation:read"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	addEach(q, "user_id", userIDs)
	optInt(q, "first", first)
	optString(q, "after", after)
	optString(q, "before", before)
	return doList[BannedUser](ctx, c, "GET", "/moderation/banned", q, nil)
}

// Ban is the result of banning or timing out a user.
type Ban struct {
	BroadcasterID string `json:"broadcaster_id"`
	ModeratorID   string `json:"moderator_id"`
	UserID        string `json:"user_id"`
	CreatedAt     string `json:"created_at"`
	EndTime       string `json:"end_time"`
}

// BanUserParams describes a ban or timeout. Duration zero means a permanent
// ban.
type BanUserParams struct {
	UserID   string `json:"user_id"`
	Duration int    `json:"duration,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// BanUser bans a user from a broadcaster's chat room or puts them in a
// timeout.
func (c *Client) BanUser(ctx context.Context, broadcasterID, moderatorID string, ban *BanUserParams) ([]Ban, error) {
	if err := c.requireScope("moderator:manage:banned_users"); err != nil {
		return nil, err
	}
	if ban == nil || ban.UserID == "" {
		return nil, &RequestError{Message: "user_id is a required body parameter"}
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("moderator_id", moderatorID)
	body := map[string]any{"data": ban}
	return doList[Ban](ctx, c, "POST", "/moderation/bans", q, body)
}

// UnbanUser removes the ban or timeout placed on a user.
func (c *Client) UnbanUser(ctx context.Context, broadcasterID, moderatorID, userID string) error {
	if err := c.requireScope("moderator:manage:banned_users"); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("moderator_id", moderatorID)
	q.Set("user_id", userID)
	return c.doEmpty(ctx, "DELETE", "/moderation/bans", q, nil)
}

// BlockedTerm is a word or phrase the broadcaster blocks from chat.
type BlockedTerm struct {
	BroadcasterID string `json:"broadcaster_id"`
	ModeratorID   string `json:"moderator_id"`
	ID            string `json:"id"`
	Text          string `json:"text"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	ExpiresAt     string `json:"expires_at"`
}

// GetBlockedTerms gets the broadcaster's list of blocked terms.
func (c *Client) GetBlockedTerms(ctx context.Context, broadcasterID, moderatorID string, first int, after string) ([]BlockedTerm, error) {
	if err := c.requireScope("moderator:read:blocked_terms"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("moderator_id", moderatorID)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[BlockedTerm](ctx, c, "GET", "/moderation/blocked_terms", q, nil)
}

// AddBlockedTerm adds a word or phrase to the broadcaster's blocked terms.
func (c *Client) AddBlockedTerm(ctx context.Context, broadcasterID, moderatorID, text string) ([]BlockedTerm, error) {
	if err := c.requireScope("moderator:manage:blocked_terms"); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, &RequestError{Message: "text is a required body parameter"}
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("moderator_id", moderatorID)
	body := map[string]string{"text": text}
	return doList[BlockedTerm](ctx, c, "POST", "/moderation/blocked_terms", q, body)
}

// RemoveBlockedTerm removes a term from the broadcaster's blocked terms.
func (c *Client) RemoveBlockedTerm(ctx context.Context, broadcasterID, moderatorID, termID string) error {
	if err := c.requireScope("moderator:manage:blocked_terms"); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("moderator_id", moderatorID)
	q.Set("id", termID)
	return c.doEmpty(ctx, "DELETE", "/moderation/blocked_terms", q, nil)
}

// Moderator is a moderator on a channel.
type Moderator struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`
}

// GetModerators returns the moderators on a channel.
func (c *Client) GetModerators(ctx context.Context, broadcasterID string, userIDs []string, first int, after string) ([]Moderator, error) {
	if err := c.requireScope("moderation:read"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	addEach(q, "user_id", userIDs)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[Moderator](ctx, c, "GET", "/moderation/moderators", q, nil)
}
