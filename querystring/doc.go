// Package querystring provides an ordered, duplicate-friendly representation
// of a URL query string.
//
// # Building
//
// Pairs keep the order they were added in, and the same key may appear more
// than once:
//
//	qs := querystring.New().
//		Add("key", apiKey).
//		AddInts("ids", 1, 2, 3).
//		AddFlag("nocache")
//
//	qs.Build() // key=...&ids%5B%5D=1&ids%5B%5D=2&ids%5B%5D=3&nocache
//
// Array values are stored as ordinary pairs whose key carries a "[]" suffix.
// [QueryString.Replace] and friends remove the old pairs and append the new
// ones at the end.
//
// # Parsing
//
// [Parse] accepts an optional leading "?" and never fails. A segment without
// "=" yields a pair with no value, which is distinct from an empty value:
//
//	qs := querystring.Parse("a=1&b&c=")
//	// ("a", "1"), ("b", <none>), ("c", "")
//
// A [QueryString] is not safe for concurrent mutation. Callers sharing one
// across goroutines must synchronize access themselves.
package querystring
