package sanitize

import "testing"

func TestString(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"trims", "  spaced out  ", "spaced out"},
		{"script block", "before<script>alert(1)</script>after", "beforeafter"},
		{"javascript scheme", "javascript:alert(1)", "alert(1)"},
		{"event handler", `<img src=x onerror=alert(1)>`, `<img src=x >`},
		{"spliced script", "<scr<script></script>ipt>x</script>", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := String(tc.input); got != tc.want {
				t.Fatalf("String(%q) = %q, want %q", tc.input, got, tc.want)
			}
			if again := String(String(tc.input)); again != String(tc.input) {
				t.Fatalf("String is not idempotent for %q", tc.input)
			}
		})
	}
}

func TestHTML(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"angle brackets", "<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{"bare ampersand", "fish & chips", "fish &amp; chips"},
		{"existing entity", "fish &amp; chips", "fish &amp; chips"},
		{"numeric entity", "&#39;quoted&#39;", "&#39;quoted&#39;"},
		{"quotes", `"double" and 'single'`, "&quot;double&quot; and &#39;single&#39;"},
		{"trailing ampersand", "AT&", "AT&amp;"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HTML(tc.input)
			if got != tc.want {
				t.Fatalf("HTML(%q) = %q, want %q", tc.input, got, tc.want)
			}
			if again := HTML(got); again != got {
				t.Fatalf("HTML is not idempotent: HTML(%q) = %q", got, again)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	if got, ok := Number("3.25"); !ok || got != 3.25 {
		t.Fatalf("Number(\"3.25\") = (%v, %v)", got, ok)
	}
	if _, ok := Number("not a number"); ok {
		t.Fatal("expected parse failure to report no value")
	}
	if _, ok := Number(nil); ok {
		t.Fatal("expected nil to report no value")
	}
}

func TestInteger(t *testing.T) {
	if got, ok := Integer(" 10 "); !ok || got != 10 {
		t.Fatalf("Integer(\" 10 \") = (%v, %v)", got, ok)
	}
	if _, ok := Integer("10.5"); ok {
		t.Fatal("expected fractional string to report no value")
	}
}

func TestURL(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"https", "https://example.com/path", "https://example.com/path", true},
		{"trims", "  https://example.com  ", "https://example.com", true},
		{"relative", "/just/a/path", "", false},
		{"no host", "https://", "", false},
		{"garbage", "://bad", "", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := URL(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("URL(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
			}
			if !ok {
				return
			}
			again, ok2 := URL(got)
			if !ok2 || again != got {
				t.Fatalf("URL is not idempotent: URL(%q) = (%q, %v)", got, again, ok2)
			}
		})
	}
}

func TestMarkup(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"keeps formatting", "<b>bold</b> and <em>italic</em>", "<b>bold</b> and <em>italic</em>"},
		{"drops script", "<script>alert(1)</script>fine", "fine"},
		{"drops handlers", `<b onclick="x()">click</b>`, "<b>click</b>"},
		{"empty", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Markup(tc.input)
			if got != tc.want {
				t.Fatalf("Markup(%q) = %q, want %q", tc.input, got, tc.want)
			}
			if again := Markup(got); again != got {
				t.Fatalf("Markup is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
