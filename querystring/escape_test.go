package querystring

import "testing"

func TestEscape(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		exp  string
	}{
		{name: "empty", in: "", exp: ""},
		{name: "unreserved", in: "AZaz09-_.~", exp: "AZaz09-_.~"},
		{name: "space", in: "a b", exp: "a%20b"},
		{name: "plus", in: "a+b", exp: "a%2Bb"},
		{name: "reserved", in: "&=?/#", exp: "%26%3D%3F%2F%23"},
		{name: "sub-delims", in: "!*'()", exp: "%21%2A%27%28%29"},
		{name: "brackets", in: "ids[]", exp: "ids%5B%5D"},
		{name: "percent", in: "100%", exp: "100%25"},
		{name: "utf-8", in: "€", exp: "%E2%82%AC"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Escape(tc.in); got != tc.exp {
				t.Errorf("Escape(%q): exp %q, got %q", tc.in, tc.exp, got)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		exp  string
	}{
		{name: "plain", in: "abc", exp: "abc"},
		{name: "space", in: "a%20b", exp: "a b"},
		{name: "plus is literal", in: "a+b", exp: "a+b"},
		{name: "lowercase hex", in: "%e2%82%ac", exp: "€"},
		{name: "trailing percent", in: "100%", exp: "100%"},
		{name: "short escape", in: "a%4", exp: "a%4"},
		{name: "invalid hex kept", in: "%zz%41", exp: "%zzA"},
		{name: "equals", in: "1%3D2", exp: "1=2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Unescape(tc.in); got != tc.exp {
				t.Errorf("Unescape(%q): exp %q, got %q", tc.in, tc.exp, got)
			}
		})
	}
}

func TestEscapeUnescapeRoundTrip(t *testing.T) {
	inputs := []string{"", "a b", "a+b", "k=v&x", "100%", "ümlaut", "?leading", "[]", "%41"}

	for _, in := range inputs {
		if got := Unescape(Escape(in)); got != in {
			t.Errorf("round trip of %q: got %q", in, got)
		}
	}
}
