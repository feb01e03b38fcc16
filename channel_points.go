package twitcheroo

import (
	"context"
	"net/url"
)

// CustomReward is a Channel Points reward on a channel.
type CustomReward struct {
	BroadcasterID         string `json:"broadcaster_id"`
	BroadcasterLogin      string `json:"broadcaster_login"`
	BroadcasterName       string `json:"broadcaster_name"`
	ID                    string `json:"id"`
	Title                 string `json:"title"`
	Prompt                string `json:"prompt"`
	Cost                  int    `json:"cost"`
	BackgroundColor       string `json:"background_color"`
	IsEnabled             bool   `json:"is_enabled"`
	IsUserInputRequired   bool   `json:"is_user_input_required"`
	IsPaused              bool   `json:"is_paused"`
	IsInStock             bool   `json:"is_in_stock"`
	RedemptionsThisStream int    `json:"redemptions_redeemed_current_stream"`
	CooldownExpiresAt     string `json:"cooldown_expires_at"`
}

// CustomRewardParams carries reward fields for create and update calls.
// Title and Cost are required on create.
type CustomRewardParams struct {
	Title                             string `json:"title,omitempty"`
	Cost                              int    `json:"cost,omitempty"`
	Prompt                            string `json:"prompt,omitempty"`
	IsEnabled                         *bool  `json:"is_enabled,omitempty"`
	BackgroundColor                   string `json:"background_color,omitempty"`
	IsUserInputRequired               *bool  `json:"is_user_input_required,omitempty"`
	IsMaxPerStreamEnabled             *bool  `json:"is_max_per_stream_enabled,omitempty"`
	MaxPerStream                      int    `json:"max_per_stream,omitempty"`
	IsMaxPerUserPerStreamEnabled      *bool  `json:"is_max_per_user_per_stream_enabled,omitempty"`
	MaxPerUserPerStream               int    `json:"max_per_user_per_stream,omitempty"`
	IsGlobalCooldownEnabled           *bool  `json:"is_global_cooldown_enabled,omitempty"`
	GlobalCooldownSeconds             int    `json:"global_cooldown_seconds,omitempty"`
	IsPaused                          *bool  `json:"is_paused,omitempty"`
	ShouldRedemptionsSkipRequestQueue *bool  `json:"should_redemptions_skip_request_queue,omitempty"`
}

// CreateCustomReward creates a Custom Reward on a channel.
func (c *Client) CreateCustomReward(ctx context.Context, broadcasterID string, reward *CustomRewardParams) ([]CustomReward, error) {
	if err := c.requireScope("channel:manage:redemptions"); err != nil {
		return nil, err
	}
	if reward == nil || reward.Title == "" {
		return nil, &RequestError{Message: "title is a required body parameter"}
	}
	if reward.Cost <= 0 {
		return nil, &RequestError{Message: "cost is a required body parameter"}
	}

	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return doList[CustomReward](ctx, c, "POST", "/channel_points/custom_rewards", q, reward)
}

// DeleteCustomReward deletes a Custom Reward on a channel.
func (c *Client) DeleteCustomReward(ctx context.Context, broadcasterID, rewardID string) error {
	if err := c.requireScope("channel:manage:redemptions"); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("id", rewardID)
	return c.doEmpty(ctx, "DELETE", "/channel_points/custom_rewards", q, nil)
}

// GetCustomRewards returns the Custom Rewards on a channel, optionally
// filtered by reward IDs or to rewards this client can manage.
func (c *Client) GetCustomRewards(ctx context.Context, broadcasterID string, rewardIDs []string, onlyManageable bool) ([]CustomReward, error) {
	if err := c.requireScope("channel:read:redemptions"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	addEach(q, "id", rewardIDs)
	setBool(q, "only_manageable_rewards", onlyManageable)
	return doList[CustomReward](ctx, c, "GET", "/channel_points/custom_rewards", q, nil)
}

// UpdateCustomReward updates a Custom Reward created on a channel.
func (c *Client) UpdateCustomReward(ctx context.Context, broadcasterID, rewardID string, update *CustomRewardParams) ([]CustomReward, error) {
	if err := c.requireScope("channel:manage:redemptions"); err != nil {
		return nil, err
	}
	if update == nil {
		return nil, &RequestError{Message: "at least one reward field must be set"}
	}

	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("id", rewardID)
	return doList[CustomReward](ctx, c, "PATCH", "/channel_points/custom_rewards", q, update)
}

// Redemption is a redeemed Custom Reward.
type Redemption struct {
	BroadcasterID    string `json:"broadcaster_id"`
	BroadcasterLogin string `json:"broadcaster_login"`
	BroadcasterName  string `json:"broadcaster_name"`
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	UserLogin        string `json:"user_login"`
	UserName         string `json:"user_name"`
	UserInput        string `json:"user_input"`
	Status           string `json:"status"`
	RedeemedAt       string `json:"redeemed_at"`
	Reward           struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Prompt string `json:"prompt"`
		Cost   int    `json:"cost"`
	} `json:"reward"`
}

// RedemptionsParams filters GetCustomRewardRedemptions.
type RedemptionsParams struct {
	BroadcasterID string
	RewardID      string
	IDs           []string
	Status        string
	Sort          string
	After         string
	First         int
}

// GetCustomRewardRedemptions returns redemptions for a Custom Reward on a
// channel that was created by the same client ID.
func (c *Client) GetCustomRewardRedemptions(ctx context.Context, p *RedemptionsParams) ([]Redemption, error) {
	if err := c.requireScope("channel:read:redemptions"); err != nil {
		return nil, err
	}
	if p == nil || p.BroadcasterID == "" || p.RewardID == "" {
		return nil, &RequestError{Message: "broadcaster_id and reward_id are required parameters"}
	}

	q := url.Values{}
	q.Set("broadcaster_id", p.BroadcasterID)
	q.Set("reward_id", p.RewardID)
	addEach(q, "id", p.IDs)
	optString(q, "status", p.Status)
	optString(q, "sort", p.Sort)
	optString(q, "after", p.After)
	optInt(q, "first", p.First)
	return doList[Redemption](ctx, c, "GET", "/channel_points/custom_rewards/redemptions", q, nil)
}

// UpdateRedemptionStatus updates the status of redemptions that are in the
// UNFULFILLED state.
func (c *Client) UpdateRedemptionStatus(ctx context.Context, broadcasterID, rewardID string, redemptionIDs []string, status string) ([]Redemption, error) {
	if err := c.requireScope("channel:manage:redemptions"); err != nil {
		return nil, err
	}
	if status == "" {
		return nil, &RequestError{Message: "status is a required body parameter"}
	}

	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("reward_id", rewardID)
	addEach(q, "id", redemptionIDs)
	body := map[string]string{"status": status}
	return doList[Redemption](ctx, c, "PATCH", "/channel_points/custom_rewards/redemptions", q, body)
}
