package utils

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{`noise {"a":{"b":2}} trailing`, `{"a":{"b":2}}`},
		{`no object here`, `no object here`},
		// braces inside string values must not close or open the object
		{`{"contract":"madde 5 } sonu","notes":[]}`, `{"contract":"madde 5 } sonu","notes":[]}`},
		{`x {"a":"{ inner { text"} y`, `{"a":"{ inner { text"}`},
		{`{"a":"escaped \" quote }"}`, `{"a":"escaped \" quote }"}`},
	}
	for _, c := range cases {
		if got := ExtractJSON(c.in); got != c.want {
			t.Errorf("ExtractJSON(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStripCodeFences(t *testing.T) {
	in := "```json\n{\"contract\":\"x\"}\n```"
	want := `{"contract":"x"}`
	if got := StripCodeFences(in); got != want {
		t.Errorf("StripCodeFences = %q, want %q", got, want)
	}

	if got := StripCodeFences(`{"a":1}`); got != `{"a":1}` {
		t.Errorf("unfenced input must pass through, got %q", got)
	}
}
