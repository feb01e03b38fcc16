package twitcheroo

import (
	"context"
	"net/url"
)

// StreamTag is a stream tag the platform defines.
type StreamTag struct {
	TagID                    string            `json:"tag_id"`
	IsAuto                   bool              `json:"is_auto"`
	LocalizationNames        map[string]string `json:"localization_names"`
	LocalizationDescriptions map[string]string `json:"localization_descriptions"`
}

// GetAllStreamTags gets the list of stream tags the platform defines,
// optionally filtered by tag IDs.
func (c *Client) GetAllStreamTags(ctx context.Context, tagIDs []string, first int, after string) ([]StreamTag, error) {
	q := url.Values{}
	addEach(q, "tag_id", tagIDs)
	optInt(q, "first", first)
	optString(q, "after", after)
	return doList[StreamTag](ctx, c, "GET", "/tags/streams", q, nil)
}

// GetStreamTags gets the tags set on the specified channel.
func (c *Client) GetStreamTags(ctx context.Context, broadcasterID string) ([]StreamTag, error) {
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return doList[StreamTag](ctx, c, "GET", "/streams/tags", q, nil)
}

// ReplaceStreamTags applies one or more tags to the specified channel,
// overwriting any existing tags. An empty tag list removes all tags.
func (c *Client) ReplaceStreamTags(ctx context.Context, broadcasterID string, tagIDs []string) error {
	if err := c.requireScope("channel:manage:broadcast"); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)

	var body any
	if len(tagIDs) > 0 {
		body = map[string][]string{"tag_ids": tagIDs}
	}
	return c.doEmpty(ctx, "PUT", "/streams/tags", q, body)
}
