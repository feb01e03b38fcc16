package twitcheroo

import (
	"context"
	"net/url"
)

// PredictionOutcome is one possible outcome of a Channel Points Prediction.
type PredictionOutcome struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Users         int    `json:"users"`
	ChannelPoints int    `json:"channel_points"`
	Color         string `json:"color"`
	TopPredictors []struct {
		UserID            string `json:"user_id"`
		UserLogin         string `json:"user_login"`
		UserName          string `json:"user_name"`
		ChannelPointsUsed int    `json:"channel_points_used"`
		ChannelPointsWon  int    `json:"channel_points_won"`
	} `json:"top_predictors"`
}

// Prediction is a Channel Points Prediction on a channel.
type Prediction struct {
	ID               string              `json:"id"`
	BroadcasterID    string              `json:"broadcaster_id"`
	BroadcasterName  string              `json:"broadcaster_name"`
	BroadcasterLogin string              `json:"broadcaster_login"`
	Title            string              `json:"title"`
	WinningOutcomeID string              `json:"winning_outcome_id"`
	Outcomes         []PredictionOutcome `json:"outcomes"`
	PredictionWindow int                 `json:"prediction_window"`
	Status           string              `json:"status"`
	CreatedAt        string              `json:"created_at"`
	EndedAt          string              `json:"ended_at"`
	LockedAt         string              `json:"locked_at"`
}

// GetPredictions gets information about Channel Points Predictions for a
// channel.
func (c *Client) GetPredictions(ctx context.Context, broadcasterID string, predictionIDs []string, first int, after string) ([]Prediction, error) {
	if err := c.requireScope("channel:read:predictions"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	addEach(q, "id", predictionIDs)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[Prediction](ctx, c, "GET", "/predictions", q, nil)
}

// CreatePredictionParams describes a Prediction to create. Predictions need
// between two and ten outcome titles.
type CreatePredictionParams struct {
	BroadcasterID string `json:"broadcaster_id"`
	Title         string `json:"title"`
	Outcomes      []struct {
		Title string `json:"title"`
	} `json:"outcomes"`
	PredictionWindow int `json:"prediction_window"`
}

// CreatePrediction creates a Channel Points Prediction for a channel.
func (c *Client) CreatePrediction(ctx context.Context, p *CreatePredictionParams) ([]Prediction, error) {
	if err := c.requireScope("channel:manage:predictions"); err != nil {
		return nil, err
	}
	if p == nil || p.BroadcasterID == "" || p.Title == "" || p.PredictionWindow <= 0 {
		return nil, &RequestError{Message: "broadcaster_id, title, and prediction_window are required body parameters"}
	}
	if len(p.Outcomes) < 2 || len(p.Outcomes) > 10 {
		return nil, &RequestError{Message: "a prediction requires between 2 and 10 outcomes"}
	}
	return doList[Prediction](ctx, c, "POST", "/predictions", nil, p)
}

// EndPrediction locks, resolves, or cancels a Prediction. status is one of
// "RESOLVED", "CANCELED", or "LOCKED"; winningOutcomeID is required when
// resolving.
func (c *Client) EndPrediction(ctx context.Context, broadcasterID, predictionID, status, winningOutcomeID string) ([]Prediction, error) {
	if err := c.requireScope("channel:manage:predictions"); err != nil {
		return nil, err
	}
	if status != "RESOLVED" && status != "CANCELED" && status != "LOCKED" {
		return nil, &RequestError{Message: "status must be RESOLVED, CANCELED, or LOCKED"}
	}
	if status == "RESOLVED" && winningOutcomeID == "" {
		return nil, &RequestError{Message: "winning_outcome_id is required to resolve a prediction"}
	}

	body := map[string]string{
		"broadcaster_id": broadcasterID,
		"id":             predictionID,
		"status":         status,
	}
	if winningOutcomeID != "" {
		body["winning_outcome_id"] = winningOutcomeID
	}
	return doList[Prediction](ctx, c, "PATCH", "/predictions", nil, body)
}
