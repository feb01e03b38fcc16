package twitcheroo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what an endpoint method sent over the wire.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// newEndpointClient builds a client whose server replies with the given
// status and body and records the last request.
func newEndpointClient(t *testing.T, status int, response string, scopes ...string) (*Client, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.Query()
		rec.Body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	creds := &fakeCreds{token: "tok"}
	if len(scopes) > 0 {
		creds.scopes = map[string]bool{}
		for _, s := range scopes {
			creds.scopes[s] = true
		}
	}
	client, err := New(creds, WithBaseURL(srv.URL), WithMaxRetries(1))
	require.NoError(t, err)
	return client, rec
}

func TestGetUsers(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":[{"id":"141981764","login":"twitchdev","display_name":"TwitchDev","broadcaster_type":"partner"}]}`)

	users, err := client.GetUsers(context.Background(), []string{"141981764"}, []string{"twitchdev"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/users", rec.Path)
	assert.Equal(t, []string{"141981764"}, rec.Query["id"])
	assert.Equal(t, []string{"twitchdev"}, rec.Query["login"])

	require.Len(t, users, 1)
	assert.Equal(t, "twitchdev", users[0].Login)
	assert.Equal(t, "partner", users[0].BroadcasterType)
}

func TestGetUsersFollows_RequiresAFilter(t *testing.T) {
	client, _ := newEndpointClient(t, http.StatusOK, `{}`)

	_, err := client.GetUsersFollows(context.Background(), "", "", 0, "")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestGetBitsLeaderboard(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":[{"user_id":"158010205","rank":1,"score":12543}],"date_range":{"started_at":"2018-02-05T08:00:00Z","ended_at":"2018-02-12T08:00:00Z"},"total":1}`,
		"bits:read")

	board, err := client.GetBitsLeaderboard(context.Background(), &BitsLeaderboardParams{Count: 2, Period: "week"})
	require.NoError(t, err)

	assert.Equal(t, "/bits/leaderboard", rec.Path)
	assert.Equal(t, "2", rec.Query.Get("count"))
	assert.Equal(t, "week", rec.Query.Get("period"))

	assert.Equal(t, 1, board.Total)
	require.Len(t, board.Data, 1)
	assert.Equal(t, 1, board.Data[0].Rank)
	assert.Equal(t, "2018-02-05T08:00:00Z", board.DateRange.StartedAt)
}

func TestGetBitsLeaderboard_ScopeError(t *testing.T) {
	client, _ := newEndpointClient(t, http.StatusOK, `{}`, "channel:read:polls")

	_, err := client.GetBitsLeaderboard(context.Background(), nil)
	var scopeErr *ScopeError
	require.ErrorAs(t, err, &scopeErr)
	assert.Equal(t, "bits:read", scopeErr.Scope)
}

func TestGetExtensionAnalytics_DateRangeMustPair(t *testing.T) {
	client, _ := newEndpointClient(t, http.StatusOK, `{"data":[]}`, "analytics:read:extensions")

	_, err := client.GetExtensionAnalytics(context.Background(), &ExtensionAnalyticsParams{StartedAt: "2026-01-01T00:00:00Z"})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)

	_, err = client.GetExtensionAnalytics(context.Background(), &ExtensionAnalyticsParams{
		StartedAt: "2026-01-01T00:00:00Z",
		EndedAt:   "2026-02-01T00:00:00Z",
	})
	require.NoError(t, err)
}

func TestModifyChannelInformation(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusNoContent, "", "channel:manage:broadcast")

	err := client.ModifyChannelInformation(context.Background(), "41245072", &ChannelUpdate{
		Title:  "speedrun sunday",
		GameID: "33214",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, rec.Method)
	assert.Equal(t, "/channels", rec.Path)
	assert.Equal(t, "41245072", rec.Query.Get("broadcaster_id"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body, &body))
	assert.Equal(t, "speedrun sunday", body["title"])
	assert.Equal(t, "33214", body["game_id"])
}

func TestStartCommercial(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":[{"length":60,"message":"","retry_after":480}]}`, "channel:edit:commercial")

	status, err := client.StartCommercial(context.Background(), "41245072", 60)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/channels/commercial", rec.Path)
	assert.JSONEq(t, `{"broadcaster_id":"41245072","length":60}`, string(rec.Body))

	require.Len(t, status, 1)
	assert.Equal(t, 480, status[0].RetryAfter)
}

func TestStartCommercial_Validation(t *testing.T) {
	client, _ := newEndpointClient(t, http.StatusOK, `{}`, "channel:edit:commercial")

	var reqErr *RequestError
	_, err := client.StartCommercial(context.Background(), "", 60)
	require.ErrorAs(t, err, &reqErr)
	_, err = client.StartCommercial(context.Background(), "41245072", 0)
	require.ErrorAs(t, err, &reqErr)
}

func TestCreateClip(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusAccepted,
		`{"data":[{"id":"FiveWordsForClipSlug","edit_url":"https://clips.twitch.tv/FiveWordsForClipSlug/edit"}]}`,
		"clips:edit")

	clips, err := client.CreateClip(context.Background(), "44322889", true)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/clips", rec.Path)
	assert.Equal(t, "44322889", rec.Query.Get("broadcaster_id"))
	assert.Equal(t, "true", rec.Query.Get("has_delay"))

	require.Len(t, clips, 1)
	assert.Equal(t, "FiveWordsForClipSlug", clips[0].ID)
}

func TestGetClips_RequiresOneFilter(t *testing.T) {
	client, _ := newEndpointClient(t, http.StatusOK, `{"data":[]}`)

	_, err := client.GetClips(context.Background(), &GetClipsParams{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)

	_, err = client.GetClips(context.Background(), &GetClipsParams{GameID: "33214"})
	require.NoError(t, err)
}

func TestCreateCustomReward_Validation(t *testing.T) {
	client, _ := newEndpointClient(t, http.StatusOK, `{"data":[]}`, "channel:manage:redemptions")

	var reqErr *RequestError
	_, err := client.CreateCustomReward(context.Background(), "274637212", &CustomRewardParams{Cost: 50000})
	require.ErrorAs(t, err, &reqErr)
	_, err = client.CreateCustomReward(context.Background(), "274637212", &CustomRewardParams{Title: "game analysis"})
	require.ErrorAs(t, err, &reqErr)

	_, err = client.CreateCustomReward(context.Background(), "274637212", &CustomRewardParams{Title: "game analysis", Cost: 50000})
	require.NoError(t, err)
}

func TestUpdateRedemptionStatus(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":[{"id":"17fa2df1-ad76-4804-bfa5-a40ef63efe63","status":"CANCELED"}]}`,
		"channel:manage:redemptions")

	redemptions, err := client.UpdateRedemptionStatus(context.Background(),
		"274637212", "92af127c-7326-4483-a52b-b0da0be61c01",
		[]string{"17fa2df1-ad76-4804-bfa5-a40ef63efe63"}, "CANCELED")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, rec.Method)
	assert.Equal(t, "/channel_points/custom_rewards/redemptions", rec.Path)
	assert.Equal(t, "274637212", rec.Query.Get("broadcaster_id"))
	assert.Equal(t, "92af127c-7326-4483-a52b-b0da0be61c01", rec.Query.Get("reward_id"))
	assert.JSONEq(t, `{"status":"CANCELED"}`, string(rec.Body))

	require.Len(t, redemptions, 1)
	assert.Equal(t, "CANCELED", redemptions[0].Status)
}

func TestCreatePoll_Validation(t *testing.T) {
	client, _ := newEndpointClient(t, http.StatusOK, `{"data":[]}`, "channel:manage:polls")

	choices := func(titles ...string) []struct {
		Title string `json:"title"`
	} {
		out := make([]struct {
			Title string `json:"title"`
		}, len(titles))
		for i, title := range titles {
			out[i].Title = title
		}
		return out
	}

	var reqErr *RequestError
	_, err := client.CreatePoll(context.Background(), &CreatePollParams{
		BroadcasterID: "141981764", Title: "next game?", Duration: 300,
		Choices: choices("heads"),
	})
	require.ErrorAs(t, err, &reqErr)

	_, err = client.CreatePoll(context.Background(), &CreatePollParams{
		BroadcasterID: "141981764", Title: "next game?", Duration: 300,
		Choices: choices("a", "b", "c", "d", "e", "f"),
	})
	require.ErrorAs(t, err, &reqErr)

	_, err = client.CreatePoll(context.Background(), &CreatePollParams{
		BroadcasterID: "141981764", Title: "next game?", Duration: 300,
		Choices: choices("heads", "tails"),
	})
	require.NoError(t, err)
}

func TestEndPoll_StatusMustBeTerminal(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK, `{"data":[]}`, "channel:manage:polls")

	_, err := client.EndPoll(context.Background(), "141981764", "ed961efd", "ACTIVE")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)

	_, err = client.EndPoll(context.Background(), "141981764", "ed961efd", "TERMINATED")
	require.NoError(t, err)
	assert.JSONEq(t, `{"broadcaster_id":"141981764","id":"ed961efd","status":"TERMINATED"}`, string(rec.Body))
}

func TestGetChannelStreamSchedule(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":{"segments":[{"id":"seg1","title":"TwitchDev Monthly Update","is_recurring":true}],"broadcaster_id":"141981764","broadcaster_name":"TwitchDev","vacation":null}}`)

	schedule, err := client.GetChannelStreamSchedule(context.Background(), &ScheduleParams{BroadcasterID: "141981764"})
	require.NoError(t, err)

	assert.Equal(t, "/schedule", rec.Path)
	assert.Equal(t, "141981764", rec.Query.Get("broadcaster_id"))

	assert.Equal(t, "TwitchDev", schedule.BroadcasterName)
	require.Len(t, schedule.Segments, 1)
	assert.True(t, schedule.Segments[0].IsRecurring)
	assert.Nil(t, schedule.Vacation)
}

func TestGetChannelICalendar_ReturnsRawBody(t *testing.T) {
	ical := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"
	client, rec := newEndpointClient(t, http.StatusOK, ical)

	body, err := client.GetChannelICalendar(context.Background(), "141981764")
	require.NoError(t, err)
	assert.Equal(t, "/schedule/icalendar", rec.Path)
	assert.Equal(t, ical, string(body))
}

func TestDeleteVideos(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK, `{"data":["1234","9876"]}`, "channel:manage:videos")

	deleted, err := client.DeleteVideos(context.Background(), "1234", "9876")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/videos", rec.Path)
	assert.Equal(t, []string{"1234", "9876"}, rec.Query["id"])
	assert.Equal(t, []string{"1234", "9876"}, deleted)
}

func TestDeleteVideos_RequiresIDs(t *testing.T) {
	client, _ := newEndpointClient(t, http.StatusOK, `{}`, "channel:manage:videos")

	_, err := client.DeleteVideos(context.Background())
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestBanUser(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":[{"broadcaster_id":"1234","moderator_id":"5678","user_id":"9876","end_time":null}]}`,
		"moderator:manage:banned_users")

	bans, err := client.BanUser(context.Background(), "1234", "5678", &BanUserParams{
		UserID: "9876",
		Reason: "no spamming",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/moderation/bans", rec.Path)
	assert.Equal(t, "1234", rec.Query.Get("broadcaster_id"))
	assert.Equal(t, "5678", rec.Query.Get("moderator_id"))

	var body struct {
		Data BanUserParams `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body, &body))
	assert.Equal(t, "9876", body.Data.UserID)
	assert.Equal(t, "no spamming", body.Data.Reason)

	require.Len(t, bans, 1)
	assert.Equal(t, "9876", bans[0].UserID)
}

func TestSearchChannels(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":[{"id":"41245072","display_name":"twitchmusic","is_live":true}]}`)

	results, err := client.SearchChannels(context.Background(), "music", true, 20, "")
	require.NoError(t, err)

	assert.Equal(t, "/search/channels", rec.Path)
	assert.Equal(t, "music", rec.Query.Get("query"))
	assert.Equal(t, "true", rec.Query.Get("live_only"))
	assert.Equal(t, "20", rec.Query.Get("first"))

	require.Len(t, results, 1)
	assert.True(t, results[0].IsLive)
}

func TestGetStreams(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":[{"id":"42170724654","user_login":"twitchdev","type":"live","viewer_count":3017}]}`)

	streams, err := client.GetStreams(context.Background(), &GetStreamsParams{
		UserLogins: []string{"twitchdev"},
		First:      5,
	})
	require.NoError(t, err)

	assert.Equal(t, "/streams", rec.Path)
	assert.Equal(t, []string{"twitchdev"}, rec.Query["user_login"])
	assert.Equal(t, "5", rec.Query.Get("first"))

	require.Len(t, streams, 1)
	assert.Equal(t, "live", streams[0].Type)
	assert.Equal(t, 3017, streams[0].ViewerCount)
}

func TestGetExtensionTransactions(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":[{"id":"74c52265-e214-48a6-91b9-23b6014e8041","extension_id":"1234","product_type":"BITS_IN_EXTENSION"}]}`)

	txns, err := client.GetExtensionTransactions(context.Background(), &ExtensionTransactionsParams{
		ExtensionID: "1234",
		IDs:         []string{"74c52265-e214-48a6-91b9-23b6014e8041"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/extensions/transactions", rec.Path)
	assert.Equal(t, "1234", rec.Query.Get("extension_id"))

	require.Len(t, txns, 1)
	assert.Equal(t, "BITS_IN_EXTENSION", txns[0].ProductType)
}

func TestGetExtensionTransactions_RequiresExtensionID(t *testing.T) {
	client, _ := newEndpointClient(t, http.StatusOK, `{}`)

	_, err := client.GetExtensionTransactions(context.Background(), &ExtensionTransactionsParams{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestUpdateChatSettings(t *testing.T) {
	client, rec := newEndpointClient(t, http.StatusOK,
		`{"data":[{"broadcaster_id":"1234","slow_mode":true,"slow_mode_wait_time":10}]}`,
		"moderator:manage:chat_settings")

	slowMode := true
	waitTime := 10
	settings, err := client.UpdateChatSettings(context.Background(), "1234", "5678", &ChatSettingsUpdate{
		SlowMode:         &slowMode,
		SlowModeWaitTime: &waitTime,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, rec.Method)
	assert.Equal(t, "/chat/settings", rec.Path)
	assert.JSONEq(t, `{"slow_mode":true,"slow_mode_wait_time":10}`, string(rec.Body))

	require.Len(t, settings, 1)
	assert.True(t, settings[0].SlowMode)
}
