package twitcheroo

import (
	"context"
	"net/url"
)

// ScheduleSegment is a single or recurring scheduled broadcast.
type ScheduleSegment struct {
	ID            string `json:"id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Title         string `json:"title"`
	CanceledUntil string `json:"canceled_until"`
	Category      *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"category"`
	IsRecurring bool `json:"is_recurring"`
}

// StreamSchedule is a channel's stream schedule.
type StreamSchedule struct {
	Segments         []ScheduleSegment `json:"segments"`
	BroadcasterID    string            `json:"broadcaster_id"`
	BroadcasterName  string            `json:"broadcaster_name"`
	BroadcasterLogin string            `json:"broadcaster_login"`
	Vacation         *struct {
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	} `json:"vacation"`
}

// scheduleEnvelope wraps the schedule response, whose data field is an
// object rather than an array.
type scheduleEnvelope struct {
	Data StreamSchedule `json:"data"`
}

// ScheduleParams filters GetChannelStreamSchedule.
type ScheduleParams struct {
	BroadcasterID string
	SegmentIDs    []string
	StartTime     string
	UTCOffset     string
	First         int
	After         string
}

// GetChannelStreamSchedule gets all or specific scheduled broadcasts from a
// channel's stream schedule.
func (c *Client) GetChannelStreamSchedule(ctx context.Context, p *ScheduleParams) (*StreamSchedule, error) {
	if p == nil || p.BroadcasterID == "" {
		return nil, &RequestError{Message: "broadcaster_id is a required parameter"}
	}
	q := url.Values{}
	q.Set("broadcaster_id", p.BroadcasterID)
	addEach(q, "id", p.SegmentIDs)
	optString(q, "start_time", p.StartTime)
	optString(q, "utc_offset", p.UTCOffset)
	optInt(q, "first", p.First)
	optString(q, "after", p.After)

	envelope, err := doJSON[scheduleEnvelope](ctx, c, "GET", "/schedule", q, nil)
	if err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// GetChannelICalendar gets a channel's stream schedule as an iCalendar
// document.
func (c *Client) GetChannelICalendar(ctx context.Context, broadcasterID string) ([]byte, error) {
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	return c.do(ctx, "GET", "/schedule/icalendar", q, nil)
}

// UpdateChannelStreamSchedule updates the settings of a channel's stream
// schedule, such as vacation mode.
func (c *Client) UpdateChannelStreamSchedule(ctx context.Context, broadcasterID string, vacationEnabled bool, vacationStart, vacationEnd, timezone string) error {
	if err := c.requireScope("channel:manage:schedule"); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	setBool(q, "is_vacation_enabled", vacationEnabled)
	optString(q, "vacation_start_time", vacationStart)
	optString(q, "vacation_end_time", vacationEnd)
	optString(q, "timezone", timezone)
	return c.doEmpty(ctx, "PATCH", "/schedule/settings", q, nil)
}

// ScheduleSegmentParams carries segment fields for create and update calls.
type ScheduleSegmentParams struct {
	StartTime   string `json:"start_time,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	IsRecurring *bool  `json:"is_recurring,omitempty"`
	Duration    string `json:"duration,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
	Title       string `json:"title,omitempty"`
	IsCanceled  *bool  `json:"is_canceled,omitempty"`
}

// CreateChannelStreamScheduleSegment creates a single or recurring
// scheduled broadcast in a channel's stream schedule.
func (c *Client) CreateChannelStreamScheduleSegment(ctx context.Context, broadcasterID string, segment *ScheduleSegmentParams) (*StreamSchedule, error) {
	if err := c.requireScope("channel:manage:schedule"); err != nil {
		return nil, err
	}
	if segment == nil || segment.StartTime == "" || segment.Timezone == "" {
		return nil, &RequestError{Message: "start_time and timezone are required body parameters"}
	}

	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	envelope, err := doJSON[scheduleEnvelope](ctx, c, "POST", "/schedule/segment", q, segment)
	if err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// UpdateChannelStreamScheduleSegment updates a scheduled broadcast in a
// channel's stream schedule.
func (c *Client) UpdateChannelStreamScheduleSegment(ctx context.Context, broadcasterID, segmentID string, segment *ScheduleSegmentParams) (*StreamSchedule, error) {
	if err := c.requireScope("channel:manage:schedule"); err != nil {
		return nil, err
	}
	if segment == nil {
		return nil, &RequestError{Message: "at least one segment field must be set"}
	}

	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("id", segmentID)
	envelope, err := doJSON[scheduleEnvelope](ctx, c, "PATCH", "/schedule/segment", q, segment)
	if err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// DeleteChannelStreamScheduleSegment deletes a scheduled broadcast from a
// channel's stream schedule.
func (c *Client) DeleteChannelStreamScheduleSegment(ctx context.Context, broadcasterID, segmentID string) error {
	if err := c.requireScope("channel:manage:schedule"); err != nil {
		return err
	}
	q := url.Values{}
	q.Set("broadcaster_id", broadcasterID)
	q.Set("id", segmentID)
	return c.doEmpty(ctx, "DELETE", "/schedule/segment", q, nil)
}
