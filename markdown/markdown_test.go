package markdown_test

import (
	"strings"
	"testing"

	"github.com/njchilds90/cleanhtml"
	"github.com/njchilds90/cleanhtml/markdown"
)

func TestToSafeHTML_BasicFormatting(t *testing.T) {
	got, err := markdown.ToSafeHTML([]byte("# Title\n\nSome **bold** text."), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "<h1") {
		t.Errorf("expected heading in output: %s", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("expected strong in output: %s", got)
	}
}

func TestToSafeHTML_RawHTMLSanitized(t *testing.T) {
	src := []byte("hello\n\n<script>alert('xss')</script>\n")
	got, err := markdown.ToSafeHTML(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "script") {
		t.Errorf("raw HTML should be sanitized: %s", got)
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("markdown content should survive: %s", got)
	}
}

func TestToSafeHTML_JavascriptLinkStripped(t *testing.T) {
	src := []byte(`[click](javascript:alert(1))`)
	got, err := markdown.ToSafeHTML(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "javascript") {
		t.Errorf("javascript link should be stripped: %s", got)
	}
}

func TestToSafeHTML_CustomPolicy(t *testing.T) {
	src := []byte("a [link](https://example.com)")
	p := &cleanhtml.Policy{Tags: []string{"p"}, Attributes: []string{}}
	got, err := markdown.ToSafeHTML(src, p)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "<a") {
		t.Errorf("anchor should be removed under restrictive policy: %s", got)
	}
	if !strings.Contains(got, "<p>") {
		t.Errorf("paragraph should survive: %s", got)
	}
}
