// Package twitcheroo is a client library for the Twitch Helix API.
//
// A Client is built from a credential provider and session options:
//
//	creds, err := twitcheroo.NewClientCredentials(clientID, clientSecret, "bits:read")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := twitcheroo.New(creds,
//		twitcheroo.WithMaxRetries(3),
//		twitcheroo.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	txns, err := client.GetExtensionTransactions(ctx, &twitcheroo.ExtensionTransactionsParams{
//		ExtensionID: "abcd1234",
//	})
//
// The credential provider obtains an app access token lazily on the first
// request, caches it, and refreshes it transparently when it expires or the
// platform rejects it. Concurrent callers share a single in-flight token
// request.
//
// Each API call runs with a per-attempt timeout. Transient failures
// (timeouts, 5xx responses, rate limiting) are retried with exponential
// backoff and jitter up to the configured retry count; other 4xx responses
// surface immediately as *APIError, *AuthError, or *RateLimitError.
//
// Pagination cursors ("after", "before", "first") pass through verbatim;
// the library does not iterate pages for you. EventSub subscriptions are
// not supported.
package twitcheroo
