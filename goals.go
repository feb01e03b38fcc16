package twitcheroo

import (
	"context"
	"net/url"
)

// CreatorGoal is an active broadcaster goal, such as a follower target.
type CreatorGoal struct {
	ID               string `json:"id"`
	BroadcasterID    string `json:"broadcaster_id"`
	BroadcasterName  string `json:"broadcaster_name"`
	BroadcasterLogin string `json:"broadcaster_login"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	CurrentAmount    int    `json:"current_amount"`
	TargetAmount     int    `json:"target_amount"`
	CreatedAt        string `json:"created_at"`
}

// GetCreatorGoals gets the broadcaster's list of active goals.
func (c *Client) GetCreatorGoals(ctx context.Context, broadcasterID string) ([]CreatorGoal, error) {
	if err := c.requireScope("channel:read:goals"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return doList[CreatorGoal](ctx, c, "GET", "/goals", q, nil)
}

// HypeTrainEvent is one event in a channel's most recent Hype Train.
type HypeTrainEvent struct {
	ID             string `json:"id"`
	EventType      string `json:"event_type"`
	EventTimestamp string `json:"event_timestamp"`
	Version        string `json:"version"`
	EventData      struct {
		BroadcasterID    string `json:"broadcaster_id"`
		Level            int    `json:"level"`
		Total            int    `json:"total"`
		Goal             int    `json:"goal"`
		StartedAt        string `json:"started_at"`
		ExpiresAt        string `json:"expires_at"`
		CooldownEndTime  string `json:"cooldown_end_time"`
		LastContribution struct {
			Total int    `json:"total"`
			Type  string `json:"type"`
			User  string `json:"user"`
		} `json:"last_contribution"`
	} `json:"event_data"`
}

// GetHypeTrainEvents gets information about the most recent Hype Train of
// the given channel.
func (c *Client) GetHypeTrainEvents(ctx context.Context, broadcasterID string, first int, cursor string) ([]HypeTrainEvent, error) {
	if err := c.requireScope("channel:read:hype_train"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	optInt(q, "first", first)
	optString(q, "cursor", cursor)
	return doList[HypeTrainEvent](ctx, c, "GET", "/hypetrain/events", q, nil)
}
