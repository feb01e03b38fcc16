package twitcheroo

import (
	"context"
	"net/url"
)

// ExtensionTransaction is a Bits-in-Extensions transaction.
type ExtensionTransaction struct {
	ID               string `json:"id"`
	Timestamp        string `json:"timestamp"`
	BroadcasterID    string `json:"broadcaster_id"`
	BroadcasterLogin string `json:"broadcaster_login"`
	BroadcasterName  string `json:"broadcaster_name"`
	UserID           string `json:"user_id"`
	UserLogin        string `json:"user_login"`
	UserName         string `json:"user_name"`
	ProductType      string `json:"product_type"`
	ProductData      struct {
		SKU  string `json:"sku"`
		Cost struct {
			Amount int    `json:"amount"`
			Type   string `json:"type"`
		} `json:"cost"`
		DisplayName   string `json:"displayName"`
		InDevelopment bool   `json:"inDevelopment"`
	} `json:"product_data"`
}

// ExtensionTransactionsParams filters GetExtensionTransactions.
type ExtensionTransactionsParams struct {
	ExtensionID string
	IDs         []string
	After       string
	First       int
}

// GetExtensionTransactions gets the list of transactions that have occurred
// for an extension across all of Twitch.
func (c *Client) GetExtensionTransactions(ctx context.Context, p *ExtensionTransactionsParams) ([]ExtensionTransaction, error) {
	if p == nil || p.ExtensionID == "" {
		return nil, &RequestError{Message: "extension_id is a required parameter"}
	}

	q := url.Values{}
	q.Set("extension_id", p.ExtensionID)
	addEach(q, "id", p.IDs)
	optString(q, "after", p.After)
	optInt(q, "first", p.First)
	return doList[ExtensionTransaction](ctx, c, "GET", "/extensions/transactions", q, nil)
}

// ExtensionLiveChannel is a live channel with a given extension installed
// or activated.
type ExtensionLiveChannel struct {
	BroadcasterID   string `json:"broadcaster_id"`
	BroadcasterName string `json:"broadcaster_name"`
	GameName        string `json:"game_name"`
	GameID          string `json:"game_id"`
	Title           string `json:"title"`
}

// GetExtensionLiveChannels returns one page of live channels that have
// installed or activated a specific extension.
func (c *Client) GetExtensionLiveChannels(ctx context.Context, extensionID string, first int, after string) ([]ExtensionLiveChannel, error) {
	if extensionID == "" {
		return nil, &RequestError{Message: "extension_id is a required parameter"}
	}
	q := url.Values{}
	q.Set("extension_id", extensionID)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[ExtensionLiveChannel](ctx, c, "GET", "/extensions/live", q, nil)
}

// Extension describes an extension version.
type Extension struct {
	ID                    string   `json:"id"`
	Version               string   `json:"version"`
	Name                  string   `json:"name"`
	AuthorName            string   `json:"author_name"`
	State                 string   `json:"state"`
	Description           string   `json:"description"`
	SubscriptionsSupport  string   `json:"subscriptions_support_level"`
	AllowlistedConfigURLs []string `json:"allowlisted_config_urls"`
	AllowlistedPanelURLs  []string `json:"allowlisted_panel_urls"`
}

// GetExtensions gets information about your extension, either the current
// version or a specified one.
func (c *Client) GetExtensions(ctx context.Context, extensionID, extensionVersion string) ([]Extension, error) {
	if extensionID == "" {
		return nil, &RequestError{Message: "extension_id is a required parameter"}
	}
	q := url.Values{}
	q.Set("extension_id", extensionID)
	optString(q, "extension_version", extensionVersion)
	return doList[Extension](ctx, c, "GET", "/extensions", q, nil)
}

// GetReleasedExtensions gets information about a released extension.
func (c *Client) GetReleasedExtensions(ctx context.Context, extensionID, extensionVersion string) ([]Extension, error) {
	if extensionID == "" {
		return nil, &RequestError{Message: "extension_id is a required parameter"}
	}
	q := url.Values{}
	q.Set("extension_id", extensionID)
	optString(q, "extension_version", extensionVersion)
	return doList[Extension](ctx, c, "GET", "/extensions/released", q, nil)
}

// ConfigurationSegment is one segment of an extension's configuration.
type ConfigurationSegment struct {
	Segment       string `json:"segment"`
	BroadcasterID string `json:"broadcaster_id,omitempty"`
	Content       string `json:"content"`
	Version       string `json:"version"`
}

// GetExtensionConfigurationSegment gets one or more configuration segments
// for an extension.
func (c *Client) GetExtensionConfigurationSegment(ctx context.Context, broadcasterID, extensionID, segment string) ([]ConfigurationSegment, error) {
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("extension_id", extensionID)
	q.Set("segment", segment)
	return doList[ConfigurationSegment](ctx, c, "GET", "/extensions/configurations", q, nil)
}

// ConfigurationSegmentUpdate carries a configuration segment write.
type ConfigurationSegmentUpdate struct {
	ExtensionID   string `json:"extension_id"`
	Segment       string `json:"segment"`
	BroadcasterID string `json:"broadcaster_id,omitempty"`
	Content       string `json:"content,omitempty"`
	Version       string `json:"version,omitempty"`
}

// SetExtensionConfigurationSegment sets a single configuration segment of
// any type.
func (c *Client) SetExtensionConfigurationSegment(ctx context.Context, update *ConfigurationSegmentUpdate) error {
	if update == nil || update.ExtensionID == "" || update.Segment == "" {
		return &RequestError{Message: "extension_id and segment are required body parameters"}
	}
	return c.doEmpty(ctx, "PUT", "/extensions/configurations", nil, update)
}

// SetExtensionRequiredConfiguration enables activation of an extension once
// the required broadcaster configuration is in place.
func (c *Client) SetExtensionRequiredConfiguration(ctx context.Context, broadcasterID, extensionID, extensionVersion, configurationVersion string) error {
	if extensionID == "" || extensionVersion == "" || configurationVersion == "" {
		return &RequestError{Message: "extension_id, extension_version, and configuration_version are required body parameters"}
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	body := map[string]string{
		"extension_id":          extensionID,
		"extension_version":     extensionVersion,
		"configuration_version": configurationVersion,
	}
	return c.doEmpty(ctx, "PUT", "/extensions/required_configuration", q, body)
}

// PubSubMessage is a message forwarded over the extension PubSub system.
type PubSubMessage struct {
	Target            []string `json:"target"`
	BroadcasterID     string   `json:"broadcaster_id"`
	IsGlobalBroadcast bool     `json:"is_global_broadcast"`
	Message           string   `json:"message"`
}

// SendExtensionPubSubMessage forwards a message using the same mechanism as
// the send JavaScript helper function.
func (c *Client) SendExtensionPubSubMessage(ctx context.Context, msg *PubSubMessage) error {
	if msg == nil || len(msg.Target) == 0 || msg.Message == "" {
		return &RequestError{Message: "target and message are required body parameters"}
	}
	return c.doEmpty(ctx, "POST", "/extensions/pubsub", nil, msg)
}

// SendExtensionChatMessage sends a chat message to a channel on behalf of
// an extension.
func (c *Client) SendExtensionChatMessage(ctx context.Context, broadcasterID, text, extensionID, extensionVersion string) error {
	if text == "" || extensionID == "" || extensionVersion == "" {
		return &RequestError{Message: "text, extension_id, and extension_version are required body parameters"}
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	body := map[string]string{
		"text":              text,
		"extension_id":      extensionID,
		"extension_version": extensionVersion,
	}
	return c.doEmpty(ctx, "POST", "/extensions/chat", q, body)
}

// ExtensionSecrets is an extension's JWT secret data: a format version and
// the currently valid secrets.
type ExtensionSecrets struct {
	FormatVersion int `json:"format_version"`
	Secrets       []struct {
		Content   string `json:"content"`
		ActiveAt  string `json:"active_at"`
		ExpiresAt string `json:"expires_at"`
	} `json:"secrets"`
}

// GetExtensionSecrets retrieves an extension's secret data.
func (c *Client) GetExtensionSecrets(ctx context.Context, extensionID string) ([]ExtensionSecrets, error) {
	q := url.Values{}
	optString(q, "extension_id", extensionID)
	return doList[ExtensionSecrets](ctx, c, "GET", "/extensions/jwt/secrets", q, nil)
}

// CreateExtensionSecret creates a JWT signing secret for an extension.
// delay is the number of seconds until the new secret becomes active.
func (c *Client) CreateExtensionSecret(ctx context.Context, extensionID string, delay int) ([]ExtensionSecrets, error) {
	q := url.Values{}
	optString(q, "extension_id", extensionID)
	optInt(q, "delay", delay)
	return doList[ExtensionSecrets](ctx, c, "POST", "/extensions/jwt/secrets", q, nil)
}

// ExtensionBitsProduct is a Bits product belonging to an extension.
type ExtensionBitsProduct struct {
	SKU  string `json:"sku"`
	Cost struct {
		Amount int    `json:"amount"`
		Type   string `json:"type"`
	} `json:"cost"`
	InDevelopment bool   `json:"in_development"`
	DisplayName   string `json:"display_name"`
	Expiration    string `json:"expiration"`
	IsBroadcast   bool   `json:"is_broadcast"`
}

// GetExtensionBitsProducts gets the Bits products that belong to an
// extension.
func (c *Client) GetExtensionBitsProducts(ctx context.Context, shouldIncludeAll bool) ([]ExtensionBitsProduct, error) {
	q := url.Values{}
	setBool(q, "should_include_all", shouldIncludeAll)
	return doList[ExtensionBitsProduct](ctx, c, "GET", "/bits/extensions", q, nil)
}

// UpdateExtensionBitsProduct adds or updates a Bits product that belongs to
// an extension. SKU, Cost, and DisplayName are required.
func (c *Client) UpdateExtensionBitsProduct(ctx context.Context, product *ExtensionBitsProduct) ([]ExtensionBitsProduct, error) {
	if product == nil || product.SKU == "" {
		return nil, &RequestError{Message: "sku is a required body parameter"}
	}
	if product.Cost.Amount <= 0 || product.Cost.Type == "" {
		return nil, &RequestError{Message: "cost.amount and cost.type are required body parameters"}
	}
	if product.DisplayName == "" {
		return nil, &RequestError{Message: "display_name is a required body parameter"}
	}
	return doList[ExtensionBitsProduct](ctx, c, "PUT", "/bits/extensions", nil, product)
}
