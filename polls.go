package twitcheroo

import (
	"context"
	"net/url"
)

// PollChoice is one poll option and its vote tallies.
type PollChoice struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Votes              int    `json:"votes"`
	ChannelPointsVotes int    `json:"channel_points_votes"`
	BitsVotes          int    `json:"bits_votes"`
}

// Poll is a channel poll. Poll information is available for 90 days.
type Poll struct {
	ID                         string       `json:"id"`
	BroadcasterID              string       `json:"broadcaster_id"`
	BroadcasterName            string       `json:"broadcaster_name"`
	BroadcasterLogin           string       `json:"broadcaster_login"`
	Title                      string       `json:"title"`
	Choices                    []PollChoice `json:"choices"`
	ChannelPointsVotingEnabled bool         `json:"channel_points_voting_enabled"`
	ChannelPointsPerVote       int          `json:"channel_points_per_vote"`
	Status                     string       `json:"status"`
	Duration                   int          `json:"duration"`
	StartedAt                  string       `json:"started_at"`
	EndedAt                    string       `json:"ended_at"`
}

// GetPolls gets information about all polls or specific polls for a
// channel.
func (c *Client) GetPolls(ctx context.Context, broadcasterID string, pollIDs []string, first int, after string) ([]Poll, error) {
	if err := c.requireScope("channel:read:polls"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	addEach(q, "id", pollIDs)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[Poll](ctx, c, "GET", "/polls", q, nil)
}

// CreatePollParams describes a poll to create. Title, Choices, and
// Duration are required; a poll needs between two and five choices.
type CreatePollParams struct {
	BroadcasterID string `json:"broadcaster_id"`
	Title         string `json:"title"`
	Choices       []struct {
		Title string `json:"title"`
	} `json:"choices"`
	Duration                   int  `json:"duration"`
	ChannelPointsVotingEnabled bool `json:"channel_points_voting_enabled,omitempty"`
	ChannelPointsPerVote       int  `json:"channel_points_per_vote,omitempty"`
}

// CreatePoll creates a poll for a specific channel.
func (c *Client) CreatePoll(ctx context.Context, p *CreatePollParams) ([]Poll, error) {
	if err := c.requireScope("channel:manage:polls"); err != nil {
		return nil, err
	}
	if p == nil || p.BroadcasterID == "" || p.Title == "" || p.Duration <= 0 {
		return nil, &RequestError{Message: "broadcaster_id, title, and duration are required body parameters"}
	}
	if len(p.Choices) < 2 || len(p.Choices) > 5 {
		return nil, &RequestError{Message: "a poll requires between 2 and 5 choices"}
	}
	return doList[Poll](ctx, c, "POST", "/polls", nil, p)
}

// EndPoll ends a poll that is currently active. status is "TERMINATED" or
// "ARCHIVED".
func (c *Client) EndPoll(ctx context.Context, broadcasterID, pollID, status string) ([]Poll, error) {
	if err := c.requireScope("channel:manage:polls"); err != nil {
		return nil, err
	}
	if status != "TERMINATED" && status != "ARCHIVED" {
		return nil, &RequestError{Message: "status must be TERMINATED or ARCHIVED"}
	}
	body := map[string]string{
		"broadcaster_id": broadcasterID,
		"id":             pollID,
		"status":         status,
	}
	return doList[Poll](ctx, c, "PATCH", "/polls", nil, body)
}
