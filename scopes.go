package twitcheroo

import "fmt"

// Helix permission scopes accepted at credential construction.
var supportedScopes = map[string]struct{}{
	"analytics:read:extensions":         {},
	"analytics:read:games":              {},
	"bits:read":                         {},
	"channel:edit:commercial":           {},
	"channel:manage:broadcast":          {},
	"channel:manage:extensions":         {},
	"channel:manage:polls":              {},
	"channel:manage:predictions":        {},
	"channel:manage:redemptions":        {},
	"channel:manage:schedule":           {},
	"channel:manage:videos":             {},
	"channel:moderate":                  {},
	"channel:read:editors":              {},
	"channel:read:goals":                {},
	"channel:read:hype_train":           {},
	"channel:read:polls":                {},
	"channel:read:predictions":          {},
	"channel:read:redemptions":          {},
	"channel:read:stream_key":           {},
	"channel:read:subscriptions":        {},
	"chat:edit":                         {},
	"chat:read":                         {},
	"clips:edit":                        {},
	"moderation:read":                   {},
	"moderator:manage:automod":          {},
	"moderator:manage:automod_settings": {},
	"moderator:manage:banned_users":     {},
	"moderator:manage:blocked_terms":    {},
	"moderator:manage:chat_settings":    {},
	"moderator:read:automod_settings":   {},
	"moderator:read:blocked_terms":      {},
	"moderator:read:chat_settings":      {},
	"user:edit":                         {},
	"user:edit:broadcast":               {},
	"user:edit:follows":                 {},
	"user:manage:blocked_users":         {},
	"user:read:blocked_users":           {},
	"user:read:broadcast":               {},
	"user:read:email":                   {},
	"user:read:follows":                 {},
	"user:read:subscriptions":           {},
	"whispers:edit":                     {},
	"whispers:read":                     {},
}

// Legacy APIv5 scopes still accepted by the token endpoint. Kept so older
// integrations keep working, but new code should use the Helix equivalents.
var legacyScopes = map[string]struct{}{
	"channel_check_subscription": {},
	"channel_commercial":         {},
	"channel_editor":             {},
	"channel_read":               {},
	"channel_stream":             {},
	"channel_subscriptions":      {},
	"collections_edit":           {},
	"communities_edit":           {},
	"communities_moderate":       {},
	"openid":                     {},
	"user_blocks_edit":           {},
	"user_blocks_read":           {},
	"user_follows_edit":          {},
	"user_read":                  {},
	"user_subscriptions":         {},
	"viewing_activity_read":      {},
}

func validateScopes(scopes []string) error {
	for _, scope := range scopes {
		if _, ok := supportedScopes[scope]; ok {
			continue
		}
		if _, ok := legacyScopes[scope]; ok {
			continue
		}
		return fmt.Errorf("scope <%s> not supported by twitch", scope)
	}
	return nil
}
