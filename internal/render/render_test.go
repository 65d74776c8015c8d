package render

import (
	"strings"
	"testing"
)

func TestHTML_Basic(t *testing.T) {
	out, err := New().HTML("# Title\n\nSome *emphasis*.")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "<em>emphasis</em>") {
		t.Errorf("out = %q", out)
	}
}

func TestHTML_Autolink(t *testing.T) {
	out, err := New().HTML("see https://example.com for details")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(out, `<a href="https://example.com"`) {
		t.Errorf("out = %q, want autolinked URL", out)
	}
}

func TestHTML_Empty(t *testing.T) {
	out, err := New().HTML("")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Errorf("out = %q, want empty", out)
	}
}
