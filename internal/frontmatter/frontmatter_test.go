package frontmatter

import (
	"reflect"
	"testing"
)

func TestParse_MetadataAndBody(t *testing.T) {
	input := "---\nid: demo\ntitle: Demo Project\nyear: 2024\ntags: A, B\nfeatured: true\n---\nBody text.\n"
	meta, body := Parse(input)

	if got := meta.Text("id", ""); got != "demo" {
		t.Errorf("id = %q, want demo", got)
	}
	if got := meta.Text("title", ""); got != "Demo Project" {
		t.Errorf("title = %q, want Demo Project", got)
	}
	if got := meta.Int("year", 0); got != 2024 {
		t.Errorf("year = %d, want 2024", got)
	}
	if got := meta.Strings("tags"); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("tags = %v, want [A B]", got)
	}
	if !meta.Bool("featured", false) {
		t.Error("featured = false, want true")
	}
	if body != "Body text.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := "Just some text.\nMore text.\n"
	meta, body := Parse(input)
	if len(meta) != 0 {
		t.Errorf("meta = %v, want empty", meta)
	}
	if body != input {
		t.Errorf("body = %q, want input unchanged", body)
	}
}

func TestParse_UnterminatedBlock(t *testing.T) {
	input := "---\ntitle: Dangling\nno closing delimiter"
	meta, body := Parse(input)
	if len(meta) != 0 {
		t.Errorf("meta = %v, want empty", meta)
	}
	if body != input {
		t.Errorf("body = %q, want input unchanged", body)
	}
}

func TestParse_SkipsCommentsBlanksAndColonless(t *testing.T) {
	input := "---\n# a comment\n\nnot a metadata line\ntitle: Kept\n---\nbody"
	meta, body := Parse(input)
	if len(meta) != 1 {
		t.Fatalf("meta = %v, want single key", meta)
	}
	if got := meta.Text("title", ""); got != "Kept" {
		t.Errorf("title = %q", got)
	}
	if body != "body" {
		t.Errorf("body = %q", body)
	}
}

func TestParse_CRLF(t *testing.T) {
	input := "---\r\ntitle: Windows\r\n---\r\nbody\r\n"
	meta, body := Parse(input)
	if got := meta.Text("title", ""); got != "Windows" {
		t.Errorf("title = %q, want Windows", got)
	}
	if body != "body\r\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParse_EmptyFrontmatter(t *testing.T) {
	meta, body := Parse("---\n---\nhello")
	if len(meta) != 0 {
		t.Errorf("meta = %v, want empty", meta)
	}
	if body != "hello" {
		t.Errorf("body = %q, want hello", body)
	}
}

func TestCoerce_Ladder(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{"true", BoolValue(true)},
		{"false", BoolValue(false)},
		{"2025", NumberValue(2025)},
		{"3.14", NumberValue(3.14)},
		{"UI/UX, Web App", ListValue([]string{"UI/UX", "Web App"})},
		{"plain text", StringValue("plain text")},
		{"", StringValue("")},
		// "True" is not a boolean literal and not numeric.
		{"True", StringValue("True")},
	}
	for _, tt := range tests {
		got := Coerce(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Coerce(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestCoerce_NumberBeforeList(t *testing.T) {
	// A value that is both numeric-parseable and comma-free stays a number;
	// a comma-containing value is a list even if its parts look numeric.
	if v := Coerce("1, 2"); v.Kind() != KindList {
		t.Errorf("kind = %v, want list", v.Kind())
	}
	if v := Coerce("12"); v.Kind() != KindNumber {
		t.Errorf("kind = %v, want number", v.Kind())
	}
}

func TestMeta_AccessorFallbacks(t *testing.T) {
	m := Meta{
		"year":  StringValue("not a number"),
		"tags":  StringValue("solo"),
		"title": NumberValue(42),
	}
	if got := m.Int("year", 1999); got != 1999 {
		t.Errorf("Int = %d, want fallback 1999", got)
	}
	if got := m.Strings("tags"); got != nil {
		t.Errorf("Strings = %v, want nil for scalar value", got)
	}
	if got := m.Text("title", "fb"); got != "fb" {
		t.Errorf("Text = %q, want fallback", got)
	}
	if got := m.Bool("missing", true); !got {
		t.Error("Bool fallback not applied")
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	meta := Meta{
		"id":       StringValue("demo"),
		"year":     NumberValue(2024),
		"featured": BoolValue(true),
		"tags":     ListValue([]string{"UI/UX", "Web App"}),
	}
	body := "Some body.\n\nWith paragraphs.\n"

	gotMeta, gotBody := Parse(Format(meta, body))
	if !reflect.DeepEqual(gotMeta, meta) {
		t.Errorf("meta = %+v, want %+v", gotMeta, meta)
	}
	if gotBody != body {
		t.Errorf("body = %q, want %q", gotBody, body)
	}
}

func TestFormat_EmptyMeta(t *testing.T) {
	if got := Format(Meta{}, "just body"); got != "just body" {
		t.Errorf("Format = %q", got)
	}
}

func TestParse_Deterministic(t *testing.T) {
	input := "---\na: 1\nb: true\n---\nx"
	m1, b1 := Parse(input)
	m2, b2 := Parse(input)
	if !reflect.DeepEqual(m1, m2) || b1 != b2 {
		t.Error("repeated parses disagree")
	}
}
