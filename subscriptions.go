package twitcheroo

import (
	"context"
	"net/url"
)

// Subscription describes a user's subscription to a channel.
type Subscription struct {
	BroadcasterID    string `json:"broadcaster_id"`
	BroadcasterLogin string `json:"broadcaster_login"`
	BroadcasterName  string `json:"broadcaster_name"`
	GifterID         string `json:"gifter_id,omitempty"`
	GifterLogin      string `json:"gifter_login,omitempty"`
	GifterName       string `json:"gifter_name,omitempty"`
	IsGift           bool   `json:"is_gift"`
	Tier             string `json:"tier"`
	PlanName         string `json:"plan_name,omitempty"`
	UserID           string `json:"user_id,omitempty"`
	UserLogin        string `json:"user_login,omitempty"`
	UserName         string `json:"user_name,omitempty"`
}

// GetBroadcasterSubscriptions gets all of a broadcaster's subscriptions,
// optionally filtered by subscriber user IDs.
func (c *Client) GetBroadcasterSubscriptions(ctx context.Context, broadcasterID string, userIDs []string, first int, after string) ([]Subscription, error) {
	if err := c.requireScope("channel:read:subscriptions"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	addEach(q, "user_id", userIDs)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[Subscription](ctx, c, "GET", "/subscriptions", q, nil)
}

// CheckUserSubscription checks whether a specific user is subscribed to a
// specific channel.
func (c *Client) CheckUserSubscription(ctx context.Context, broadcasterID, userID string) ([]Subscription, error) {
	if err := c.requireScope("user:read:subscriptions"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("user_id", userID)
	return doList[Subscription](ctx, c, "GET", "/subscriptions/user", q, nil)
}
