// Package client provides the HTTP transport used by the derpi API client,
// built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//	)
//
// # Making Requests
//
// Construct a [URL] and [Request], then execute with [Client.Do]:
//
//	u := client.URL("https", "derpibooru.org", "/api/v2/users/show.json",
//		client.WithQueryString(querystring.New().AddInt("id", 1)),
//	)
//	req, err := client.Request(ctx, u, http.MethodGet)
//	err = c.Do(req, http.StatusOK, client.WithDestination(&result))
//
// Passing [StatusSuccess] as the expected code accepts any 2xx response.
//
// # GET Helper
//
// [Client.Get] joins a path and a [querystring.QueryString] onto a base
// address and decodes the JSON response:
//
//	base, _ := url.Parse("https://derpibooru.org/")
//	qs := querystring.New().AddInts("ids", 1, 2)
//	err = c.Get(ctx, base, "/api/v2/users/fetch_many.json", qs,
//		client.WithDestination(&users),
//	)
//
// The query is always introduced with "?", so an empty query produces a
// URL ending in a bare "?". Use [RequestURI] to build the same URL without
// sending it.
//
// # Tracing
//
// [WithTracer] opens a client span around every request and injects the
// trace context into the outgoing headers. [WithRequestID] stamps each
// request with an X-Request-Id header.
package client
