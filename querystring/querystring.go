package querystring

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// arraySuffix marks a key whose pairs together form one array parameter.
const arraySuffix = "[]"

// Pair is a single entry of a [QueryString]. HasValue distinguishes a bare
// key ("flag") from a key with an empty value ("flag=").
type Pair struct {
	Key      string
	Value    string
	HasValue bool
}

// KeyValue returns a Pair carrying value.
func KeyValue(key, value string) Pair {
	return Pair{Key: key, Value: value, HasValue: true}
}

// KeyOnly returns a Pair with no value.
func KeyOnly(key string) Pair {
	return Pair{Key: key}
}

// String renders the pair as a query segment.
func (p Pair) String() string {
	if !p.HasValue {
		return Escape(p.Key)
	}

	return Escape(p.Key) + "=" + Escape(p.Value)
}

// QueryString is an ordered list of key/value pairs. Duplicate keys are
// allowed and insertion order is kept through to [QueryString.Build].
//
// The zero value is an empty query ready to use. Mutating methods return
// the receiver so calls can be chained. A QueryString must not be mutated
// from more than one goroutine at a time.
type QueryString struct {
	pairs []Pair
}

// New returns an empty QueryString.
func New() *QueryString {
	return &QueryString{}
}

// Parse builds a QueryString from its wire form. A single leading "?" is
// ignored. Each "&"-separated segment is split on its first "=" only, and
// both halves are unescaped. Parse is permissive: an empty string yields a
// single pair with an empty key and no value.
func Parse(query string) *QueryString {
	query = strings.TrimPrefix(query, "?")

	segments := strings.Split(query, "&")
	qs := &QueryString{pairs: make([]Pair, 0, len(segments))}
	for _, segment := range segments {
		qs.pairs = append(qs.pairs, parseSegment(segment))
	}

	return qs
}

func parseSegment(segment string) Pair {
	key, value, found := strings.Cut(segment, "=")
	if !found {
		return KeyOnly(Unescape(key))
	}

	return KeyValue(Unescape(key), Unescape(value))
}

// Add appends key=value.
func (q *QueryString) Add(key, value string) *QueryString {
	q.pairs = append(q.pairs, KeyValue(key, value))
	return q
}

// AddInt appends key with the base-10 form of value.
func (q *QueryString) AddInt(key string, value int) *QueryString {
	return q.Add(key, strconv.Itoa(value))
}

// AddFlag appends key without a value.
func (q *QueryString) AddFlag(key string) *QueryString {
	q.pairs = append(q.pairs, KeyOnly(key))
	return q
}

// AddValues appends one pair per value, each keyed as key+"[]".
// Calling it with no values is a no-op.
func (q *QueryString) AddValues(key string, values ...string) *QueryString {
	arrayKey := key + arraySuffix
	for _, v := range values {
		q.Add(arrayKey, v)
	}
	return q
}

// AddInts is AddValues for integers.
func (q *QueryString) AddInts(key string, values ...int) *QueryString {
	arrayKey := key + arraySuffix
	for _, v := range values {
		q.AddInt(arrayKey, v)
	}
	return q
}

// Remove deletes every pair whose key is exactly key. Array pairs are
// only matched when key includes the "[]" suffix.
func (q *QueryString) Remove(key string) *QueryString {
	q.pairs = slices.DeleteFunc(q.pairs, func(p Pair) bool {
		return p.Key == key
	})
	return q
}

// Replace removes key and appends key=value at the end.
func (q *QueryString) Replace(key, value string) *QueryString {
	return q.Remove(key).Add(key, value)
}

// ReplaceInt removes key and appends it with the base-10 form of value.
func (q *QueryString) ReplaceInt(key string, value int) *QueryString {
	return q.Remove(key).AddInt(key, value)
}

// ReplaceFlag removes key and appends it without a value.
func (q *QueryString) ReplaceFlag(key string) *QueryString {
	return q.Remove(key).AddFlag(key)
}

// ReplaceValues removes the key+"[]" pairs and appends values in their place.
func (q *QueryString) ReplaceValues(key string, values ...string) *QueryString {
	return q.Remove(key+arraySuffix).AddValues(key, values...)
}

// ReplaceInts removes the key+"[]" pairs and appends values in their place.
func (q *QueryString) ReplaceInts(key string, values ...int) *QueryString {
	return q.Remove(key+arraySuffix).AddInts(key, values...)
}

// Len reports the number of pairs.
func (q *QueryString) Len() int {
	return len(q.pairs)
}

// Get returns the value of the first pair with the given key that has one.
func (q *QueryString) Get(key string) (string, bool) {
	for _, p := range q.pairs {
		if p.Key == key && p.HasValue {
			return p.Value, true
		}
	}
	return "", false
}

// Values returns every present value stored under key, in order.
func (q *QueryString) Values(key string) []string {
	var values []string
	for _, p := range q.pairs {
		if p.Key == key && p.HasValue {
			values = append(values, p.Value)
		}
	}
	return values
}

// Has reports whether any pair uses key, with or without a value.
func (q *QueryString) Has(key string) bool {
	return slices.ContainsFunc(q.pairs, func(p Pair) bool {
		return p.Key == key
	})
}

// Pairs returns a copy of the pairs in order.
func (q *QueryString) Pairs() []Pair {
	return slices.Clone(q.pairs)
}

// All iterates over a snapshot of the pairs taken when All is called,
// so mutating q during iteration does not affect what is yielded.
func (q *QueryString) All() iter.Seq2[int, Pair] {
	return slices.All(q.Pairs())
}

// Clone returns an independent copy of q.
func (q *QueryString) Clone() *QueryString {
	return &QueryString{pairs: q.Pairs()}
}

// Build renders the query in wire form, without a leading "?".
func (q *QueryString) Build() string {
	segments := make([]string, len(q.pairs))
	for i, p := range q.pairs {
		segments[i] = p.String()
	}

	return strings.Join(segments, "&")
}

// String is an alias for Build.
func (q *QueryString) String() string {
	return q.Build()
}
