package model

import (
	"strings"
	"testing"
)

func TestFlatten_SkipsIgnored(t *testing.T) {
	tree := mustBuild(t, webPage(), TreeOptions{})
	flat := tree.Flatten(false)
	if len(flat) != 9 {
		t.Fatalf("expected 9 flat elements, got %d", len(flat))
	}
	for _, f := range flat {
		if f.ID == 2 {
			t.Error("ignored group should be skipped")
		}
	}
	if all := tree.Flatten(true); len(all) != 10 || !all[1].Ignored {
		t.Errorf("withIgnored should include the ignored group")
	}
}

func TestFlatten_PathsAndLevels(t *testing.T) {
	tree := mustBuild(t, webPage(), TreeOptions{})
	flat := tree.Flatten(false)
	byID := make(map[int]FlatElement, len(flat))
	for _, f := range flat {
		byID[f.ID] = f
	}
	if got := byID[9].Path; got != "web > table > rowgroup > row > cell" {
		t.Errorf("cell path = %q", got)
	}
	if got := byID[5].Level; got != 2 {
		t.Errorf("heading level = %d, want 2", got)
	}
	if got := byID[6].Level; got != 1 {
		t.Errorf("table level = %d, want 1", got)
	}
	if got := strings.Join(byID[1].Traits, ","); got != "root-web-area" {
		t.Errorf("root traits = %q", got)
	}
}

func TestDescribe_Traits(t *testing.T) {
	tree := mustBuild(t, []Element{{Role: "group", Title: "w", Children: []Element{
		{Role: "lnk", Title: "Home", Visited: true, Focusable: true, Offscreen: true},
	}}}, TreeOptions{})
	got := strings.Join(mustNode(t, tree, 2).Describe().Traits, ",")
	if got != "focusable,visited,offscreen" {
		t.Errorf("traits = %q", got)
	}
}
