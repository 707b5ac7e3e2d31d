// Package derpi is a client for the Derpibooru HTTP API.
//
// Create a [Client] with an API key and call one of the user lookups:
//
//	c, err := derpi.New(apiKey)
//	if err != nil {
//		return err
//	}
//
//	me, err := c.CurrentUser(ctx)
//	users, err := c.UsersByID(ctx, 1, 2, 3)
//
// Every call is a single GET. A non-2xx response surfaces as a
// [client.UnexpectedStatusError]; nothing is retried or cached.
//
// The HTTP transport is configured through [WithHTTPOptions], which accepts
// any [client.Option]:
//
//	c, err := derpi.New(apiKey,
//		derpi.WithServerAddress("https://trixiebooru.org/"),
//		derpi.WithHTTPOptions(
//			client.WithTimeout(10*time.Second),
//			client.WithUserAgent("mybot/1.0"),
//		),
//	)
package derpi
