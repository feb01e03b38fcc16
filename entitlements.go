package twitcheroo

import (
	"context"
	"net/url"
)

// CodeStatus is the redemption status of one code.
type CodeStatus struct {
	Code   string `json:"code"`
	Status string `json:"status"`
}

// GetCodeStatus gets the status of one or more provided codes.
func (c *Client) GetCodeStatus(ctx context.Context, userID string, codes ...string) ([]CodeStatus, error) {
	if len(codes) == 0 {
		return nil, &RequestError{Message: "at least one code is required"}
	}
	q := url.Values{}
	q.Set("user_id", userID)
	addEach(q, "code", codes)
	return doList[CodeStatus](ctx, c, "GET", "/entitlements/codes", q, nil)
}

// RedeemCode redeems one or more redemption codes on behalf of a user.
func (c *Client) RedeemCode(ctx context.Context, userID string, codes ...string) ([]CodeStatus, error) {
	if len(codes) == 0 {
		return nil, &RequestError{Message: "at least one code is required"}
	}
	q := url.Values{}
	q.Set("user_id", userID)
	addEach(q, "code", codes)
	return doList[CodeStatus](ctx, c, "POST", "/entitlements/codes", q, nil)
}

// DropsEntitlement is a Drops entitlement granted to a user for a game.
type DropsEntitlement struct {
	ID                string `json:"id"`
	BenefitID         string `json:"benefit_id"`
	Timestamp         string `json:"timestamp"`
	UserID            string `json:"user_id"`
	GameID            string `json:"game_id"`
	FulfillmentStatus string `json:"fulfillment_status"`
	UpdatedAt         string `json:"updated_at"`
}

// DropsEntitlementsParams filters GetDropsEntitlements.
type DropsEntitlementsParams struct {
	IDs               []string
	UserID            string
	GameID            string
	FulfillmentStatus string
	After             string
	First             int
}

// GetDropsEntitlements gets the entitlements an organization has granted to
// a game, a user, or both.
func (c *Client) GetDropsEntitlements(ctx context.Context, p *DropsEntitlementsParams) ([]DropsEntitlement, error) {
	if p == nil {
		p = &DropsEntitlementsParams{}
	}
	q := url.Values{}
	addEach(q, "id", p.IDs)
	optString(q, "user_id", p.UserID)
	optString(q, "game_id", p.GameID)
	optString(q, "fulfillment_status", p.FulfillmentStatus)
	optString(q, "after", p.After)
	optInt(q, "first", p.First)
	return doList[DropsEntitlement](ctx, c, "GET", "/entitlements/drops", q, nil)
}

// EntitlementUpdate reports the per-status result of an entitlement update.
type EntitlementUpdate struct {
	Status string   `json:"status"`
	IDs    []string `json:"ids"`
}

// UpdateDropsEntitlements updates the fulfillment status on a set of Drops
// entitlements specified by their IDs.
func (c *Client) UpdateDropsEntitlements(ctx context.Context, entitlementIDs []string, fulfillmentStatus string) ([]EntitlementUpdate, error) {
	body := map[string]any{}
	if len(entitlementIDs) > 0 {
		body["entitlement_ids"] = entitlementIDs
	}
	if fulfillmentStatus != "" {
		body["fulfillment_status"] = fulfillmentStatus
	}
	return doList[EntitlementUpdate](ctx, c, "PATCH", "/entitlements/drops", nil, body)
}
