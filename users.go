package twitcheroo

import (
	"context"
	"net/url"
)

// User is a Twitch user.
type User struct {
	ID              string `json:"id"`
	Login           string `json:"login"`
	DisplayName     string `json:"display_name"`
	Type            string `json:"type"`
	BroadcasterType string `json:"broadcaster_type"`
	Description     string `json:"description"`
	ProfileImageURL string `json:"profile_image_url"`
	OfflineImageURL string `json:"offline_image_url"`
	ViewCount       int    `json:"view_count"`
	Email           string `json:"email,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// GetUsers gets information about one or more users, identified by user IDs
// and/or login names. With neither, the user behind the bearer token is
// returned.
func (c *Client) GetUsers(ctx context.Context, ids, logins []string) ([]User, error) {
	q := url.Values{}
	addEach(q, "id", ids)
	addEach(q, "login", logins)
	return doList[User](ctx, c, "GET", "/users", q, nil)
}

// UpdateUser updates the description of the user behind the bearer token.
func (c *Client) UpdateUser(ctx context.Context, description string) ([]User, error) {
	if err := c.requireScope("user:edit"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("description", description)
	return doList[User](ctx, c, "PUT", "/users", q, nil)
}

// Follow is a follow relationship between two users, most recent first.
type Follow struct {
	FromID     string `json:"from_id"`
	FromLogin  string `json:"from_login"`
	FromName   string `json:"from_name"`
	ToID       string `json:"to_id"`
	ToLogin    string `json:"to_login"`
	ToName     string `json:"to_name"`
	FollowedAt string `json:"followed_at"`
}

// UserFollows is the follows response, including the total relationship
// count.
type UserFollows struct {
	Total int      `json:"total"`
	Data  []Follow `json:"data"`
}

// GetUsersFollows gets information on follow relationships between users.
// At least one of fromID or toID is required.
func (c *Client) GetUsersFollows(ctx context.Context, fromID, toID string, first int, after string) (*UserFollows, error) {
	if fromID == "" && toID == "" {
		return nil, &RequestError{Message: "at least one of from_id or to_id is required"}
	}
	q := url.Values{}
	optString(q, "from_id", fromID)
	optString(q, "to_id", toID)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doJSON[UserFollows](ctx, c, "GET", "/users/follows", q, nil)
}

// BlockedUser is a user on someone's block list.
type BlockedUser struct {
	UserID      string `json:"user_id"`
	UserLogin   string `json:"user_login"`
	DisplayName string `json:"display_name"`
}

// GetUserBlockList gets a user's block list, most recent block first.
func (c *Client) GetUserBlockList(ctx context.Context, broadcasterID string, first int, after string) ([]BlockedUser, error) {
	if err := c.requireScope("user:read:blocked_users"); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[BlockedUser](ctx, c, "GET", "/users/blocks", q, nil)
}

// BlockUser blocks a user on behalf of the authenticated user. sourceContext
// and reason are optional hints about where and why the block happened.
func (c *Client) BlockUser(ctx context.Context, targetUserID, sourceContext, reason string) error {
	if err := c.requireScope("user:manage:blocked_users"); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("target_user_id", targetUserID)
	optString(q, "source_context", sourceContext)
	optString(q, "reason", reason)
	return c.doEmpty(ctx, "PUT", "/users/blocks", q, nil)
}

// UnblockUser unblocks a user on behalf of the authenticated user.
func (c *Client) UnblockUser(ctx context.Context, targetUserID string) error {
	if err := c.requireScope("user:manage:blocked_users"); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("target_user_id", targetUserID)
	return c.doEmpty(ctx, "DELETE", "/users/blocks", q, nil)
}

// UserExtension is an extension a user has installed.
type UserExtension struct {
	ID          string   `json:"id"`
	Version     string   `json:"version"`
	Name        string   `json:"name"`
	CanActivate bool     `json:"can_activate"`
	Type        []string `json:"type"`
}

// GetUserExtensions gets the extensions the user behind the bearer token
// has installed, active or not.
func (c *Client) GetUserExtensions(ctx context.Context) ([]UserExtension, error) {
	if err := c.requireScope("user:read:broadcast"); err != nil {
		return nil, err
	}
	return doList[UserExtension](ctx, c, "GET", "/users/extensions/list", nil, nil)
}

// ActiveExtension is an extension slot's activation state.
type ActiveExtension struct {
	Active  bool   `json:"active"`
	ID      string `json:"id,omitempty"`
	Version string `json:"version,omitempty"`
	Name    string `json:"name,omitempty"`
	X       int    `json:"x,omitempty"`
	Y       int    `json:"y,omitempty"`
}

// ActiveExtensions maps slot numbers to activation state per surface.
type ActiveExtensions struct {
	Panel     map[string]ActiveExtension `json:"panel"`
	Overlay   map[string]ActiveExtension `json:"overlay"`
	Component map[string]ActiveExtension `json:"component"`
}

type activeExtensionsEnvelope struct {
	Data ActiveExtensions `json:"data"`
}

// GetUserActiveExtensions gets the active extensions a user has installed,
// identified by user ID or the bearer token.
func (c *Client) GetUserActiveExtensions(ctx context.Context, userID string) (*ActiveExtensions, error) {
	q := url.Values{}
	optString(q, "user_id", userID)
	envelope, err := doJSON[activeExtensionsEnvelope](ctx, c, "GET", "/users/extensions", q, nil)
	if err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// UpdateUserExtensions updates the activation state, extension ID, and
// version of the installed extensions for the user behind the bearer token.
func (c *Client) UpdateUserExtensions(ctx context.Context, update *ActiveExtensions) (*ActiveExtensions, error) {
	if err := c.requireScope("user:edit:broadcast"); err != nil {
		return nil, err
	}
	if update == nil {
		return nil, &RequestError{Message: "extension activation data is required"}
	}
	body := activeExtensionsEnvelope{Data: *update}
	envelope, err := doJSON[activeExtensionsEnvelope](ctx, c, "PUT", "/users/extensions", nil, body)
	if err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}
