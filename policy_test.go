package cleanhtml_test

import (
	"strings"
	"testing"

	"github.com/njchilds90/cleanhtml"
)

func TestConfig_ZeroValueMatchesDefault(t *testing.T) {
	def := cleanhtml.DefaultPolicy()
	got := (&cleanhtml.Config{}).Policy()
	if strings.Join(got.Tags, ",") != strings.Join(def.Tags, ",") {
		t.Errorf("zero Config tags differ from default")
	}
	if strings.Join(got.Attributes, ",") != strings.Join(def.Attributes, ",") {
		t.Errorf("zero Config attributes differ from default")
	}
	if strings.Join(got.Scriptable, ",") != strings.Join(def.Scriptable, ",") {
		t.Errorf("zero Config scriptable differ from default")
	}
}

func TestConfig_NilResolvesToDefault(t *testing.T) {
	var c *cleanhtml.Config
	p := c.Policy()
	if p == nil || len(p.Tags) == 0 {
		t.Fatal("nil Config should resolve to the default policy")
	}
}

func TestConfig_AdditionalSupplementsDefault(t *testing.T) {
	c := &cleanhtml.Config{AdditionalTags: []string{"video", "audio"}}
	p := c.Policy()
	set := map[string]bool{}
	for _, tag := range p.Tags {
		set[tag] = true
	}
	for _, tag := range []string{"p", "a", "video", "audio"} {
		if !set[tag] {
			t.Errorf("tag %q missing from supplemented policy", tag)
		}
	}
}

func TestConfig_ReplacementWinsOverAdditional(t *testing.T) {
	c := &cleanhtml.Config{
		ReplacementTags: []string{"b"},
		AdditionalTags:  []string{"video"},
	}
	p := c.Policy()
	if len(p.Tags) != 1 || p.Tags[0] != "b" {
		t.Errorf("replacement should fully supersede, got %v", p.Tags)
	}
}

func TestConfig_ListsResolveIndependently(t *testing.T) {
	c := &cleanhtml.Config{
		ReplacementTags:      []string{"b"},
		AdditionalAttributes: []string{"data-x"},
	}
	p := c.Policy()
	if len(p.Tags) != 1 {
		t.Errorf("tags should be replaced, got %v", p.Tags)
	}
	found := false
	for _, a := range p.Attributes {
		if a == "data-x" {
			found = true
		}
	}
	if !found {
		t.Errorf("attributes should be supplemented, got %v", p.Attributes)
	}
	if len(p.Scriptable) == 0 {
		t.Errorf("untouched scriptable list should keep its default")
	}
}

func TestConfig_PolicyDoesNotAliasInput(t *testing.T) {
	repl := []string{"b", "i"}
	c := &cleanhtml.Config{ReplacementTags: repl}
	p := c.Policy()
	p.Tags[0] = "script"
	if repl[0] != "b" {
		t.Errorf("Policy must copy caller slices, caller list was mutated")
	}
}

func TestConfig_EmptyReplacementDisablesSanitization(t *testing.T) {
	// An explicit empty replacement is the bypass switch, distinct
	// from a nil replacement which means "use the default".
	c := &cleanhtml.Config{ReplacementTags: []string{}}
	input := `<script>x()</script>`
	if got := cleanhtml.Sanitize(input, c.Policy()); got != input {
		t.Errorf("empty tag replacement should bypass, got %q", got)
	}
}
