package axsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildArticle creates the document from the heading navigation scenario:
//
//	web
//	├── h1 "Intro"
//	├── txt "text"
//	├── h2 "Details"
//	├── txt "more"
//	└── h2 "End"
func buildArticle() *fakeTree {
	t := newFakeTree()
	root := t.add(nil, RoleWebArea, "root", TraitRootWebArea)
	h1 := t.add(root, RoleHeading, "Intro")
	h1.level = 1
	t.add(root, RoleStaticText, "text")
	h2 := t.add(root, RoleHeading, "Details")
	h2.level = 2
	t.add(root, RoleStaticText, "more")
	h3 := t.add(root, RoleHeading, "End")
	h3.level = 2
	return t
}

func TestMatch_HeadingScenario(t *testing.T) {
	tree := buildArticle()
	m := NewManager()

	got := m.FindMatchingObjects(Criteria{
		SearchKeys:   []SearchKey{KeyHeading},
		AnchorObject: tree.get("root"),
		StartObject:  tree.get("Intro"),
		Direction:    Next,
		ResultsLimit: 2,
	})
	assert.Equal(t, "Details,End", joined(got))

	got = m.FindMatchingObjects(Criteria{
		SearchKeys:   []SearchKey{KeyHeadingSameLevel},
		AnchorObject: tree.get("root"),
		StartObject:  tree.get("Details"),
		Direction:    Next,
		ResultsLimit: 10,
	})
	assert.Equal(t, "End", joined(got))
}

func TestMatch_HeadingLevels(t *testing.T) {
	tree := buildArticle()
	m := NewManager()
	root := tree.get("root")

	got := m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyHeadingLevel1}, AnchorObject: root, ResultsLimit: 10})
	assert.Equal(t, "Intro", joined(got))

	got = m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyHeadingLevel2}, AnchorObject: root, ResultsLimit: 10})
	assert.Equal(t, "Details,End", joined(got))

	got = m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyHeadingLevel6}, AnchorObject: root, ResultsLimit: 10})
	assert.Empty(t, got)
}

func TestMatch_EmptyKeys(t *testing.T) {
	tree := buildArticle()
	got := NewManager().FindMatchingObjects(Criteria{AnchorObject: tree.get("root"), ResultsLimit: 10})
	assert.Empty(t, got)
}

func TestMatch_NilAnchor(t *testing.T) {
	got := NewManager().FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyAnyType}, ResultsLimit: 10})
	assert.Empty(t, got)
}

func TestMatch_ReferentialKeysNeedStart(t *testing.T) {
	tree := buildArticle()
	m := NewManager()
	keys := []SearchKey{
		KeySameType, KeyDifferentType, KeyFontChange, KeyFontColorChange,
		KeyStyleChange, KeyHeadingSameLevel, KeyBlockquoteSameLevel, KeyTableSameLevel,
	}
	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			got := m.FindMatchingObjects(Criteria{
				SearchKeys:   []SearchKey{k},
				AnchorObject: tree.get("root"),
				ResultsLimit: 100,
			})
			assert.Empty(t, got)
		})
	}
}

func TestMatch_SameAndDifferentType(t *testing.T) {
	tree := buildArticle()
	m := NewManager()
	root := tree.get("root")

	got := m.FindMatchingObjects(Criteria{
		SearchKeys: []SearchKey{KeySameType}, AnchorObject: root,
		StartObject: tree.get("Intro"), ResultsLimit: 10,
	})
	assert.Equal(t, "Details,End", joined(got))

	got = m.FindMatchingObjects(Criteria{
		SearchKeys: []SearchKey{KeyDifferentType}, AnchorObject: root,
		StartObject: tree.get("Intro"), ResultsLimit: 10,
	})
	assert.Equal(t, "text,more", joined(got))
}

func TestMatch_FontChange(t *testing.T) {
	tree := buildArticle()
	for _, name := range []string{"Intro", "text", "Details", "more", "End"} {
		tree.get(name).font = "Helvetica"
		tree.get(name).color = "black"
	}
	tree.get("more").font = "Courier"
	tree.get("End").color = "red"
	m := NewManager()
	root := tree.get("root")
	start := tree.get("Intro")

	got := m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyFontChange}, AnchorObject: root, StartObject: start, ResultsLimit: 10})
	assert.Equal(t, "more", joined(got))

	got = m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyFontColorChange}, AnchorObject: root, StartObject: start, ResultsLimit: 10})
	assert.Equal(t, "End", joined(got))

	got = m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyStyleChange}, AnchorObject: root, StartObject: start, ResultsLimit: 10})
	assert.Equal(t, "more,End", joined(got))
}

func TestMatch_OrSemanticsKeepsTreeOrder(t *testing.T) {
	tree := buildArticle()
	got := NewManager().FindMatchingObjects(Criteria{
		SearchKeys:   []SearchKey{KeyStaticText, KeyHeading},
		AnchorObject: tree.get("root"),
		ResultsLimit: 10,
	})
	assert.Equal(t, "Intro,text,Details,more,End", joined(got))
}

func TestMatch_TextFilter(t *testing.T) {
	tree := buildArticle()
	tree.get("End").desc = "closing remarks"
	tree.get("Intro").value = "Welcome"
	m := NewManager()
	root := tree.get("root")

	tests := []struct {
		text string
		want string
	}{
		{"", "Intro,Details,End"},
		{"DET", "Details"},
		{"remarks", "End"},
		{"welc", "Intro"},
		{"nothing like this", ""},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := m.FindMatchingObjects(Criteria{
				SearchKeys:   []SearchKey{KeyHeading},
				AnchorObject: root,
				SearchText:   tt.text,
				ResultsLimit: 10,
			})
			assert.Equal(t, tt.want, joined(got))
		})
	}
}

func TestMatchesText(t *testing.T) {
	n := &fakeNode{title: "Save File", desc: "Writes to disk", value: "draft.txt"}
	assert.True(t, matchesText(n, ""))
	assert.True(t, matchesText(n, "save"))
	assert.True(t, matchesText(n, "DISK"))
	assert.True(t, matchesText(n, ".TXT"))
	assert.False(t, matchesText(n, "open"))
}

func TestMatch_VisibleOnly(t *testing.T) {
	tree := buildArticle()
	tree.get("Intro").traits[TraitOnScreen] = true
	tree.get("End").traits[TraitOnScreen] = true
	m := NewManager()

	c := Criteria{SearchKeys: []SearchKey{KeyHeading}, AnchorObject: tree.get("root"), ResultsLimit: 10}
	assert.Equal(t, "Intro,Details,End", joined(m.FindMatchingObjects(c)))

	c.VisibleOnly = true
	assert.Equal(t, "Intro,End", joined(m.FindMatchingObjects(c)))
}

// buildRadios creates four radio buttons: a and b share the name "color",
// c is named "size" and d has no name.
func buildRadios() *fakeTree {
	t := newFakeTree()
	root := t.add(nil, RoleWebArea, "root")
	for _, r := range []struct{ title, name string }{
		{"a", "color"}, {"b", "color"}, {"c", "size"}, {"d", ""},
	} {
		n := t.add(root, RoleRadio, r.title)
		n.name = r.name
	}
	return t
}

func TestMatch_RadioGroupAdhoc(t *testing.T) {
	tree := buildRadios()
	m := NewManager()
	root := tree.get("root")

	got := m.FindMatchingObjects(Criteria{
		SearchKeys: []SearchKey{KeyRadioGroup}, AnchorObject: root,
		StartObject: tree.get("a"), ResultsLimit: 10,
	})
	assert.Equal(t, "c,d", joined(got))

	got = m.FindMatchingObjects(Criteria{
		SearchKeys: []SearchKey{KeyRadioGroup}, AnchorObject: root, ResultsLimit: 10,
	})
	assert.Equal(t, "a,b,c,d", joined(got))
}

func TestInDifferentAdhocGroup(t *testing.T) {
	tree := buildRadios()
	a, b, c, d := tree.get("a"), tree.get("b"), tree.get("c"), tree.get("d")
	text := &fakeNode{role: RoleStaticText, traits: map[Trait]bool{TraitStaticText: true}}

	assert.False(t, inDifferentAdhocGroup(b, a), "same name")
	assert.True(t, inDifferentAdhocGroup(c, a), "different name")
	assert.True(t, inDifferentAdhocGroup(d, a), "unnamed vs named")
	assert.True(t, inDifferentAdhocGroup(a, d), "named vs unnamed")
	assert.True(t, inDifferentAdhocGroup(a, nil), "no reference")
	assert.True(t, inDifferentAdhocGroup(a, text), "reference is not a radio button")
	assert.False(t, inDifferentAdhocGroup(text, a), "not a radio button")
	assert.False(t, inDifferentAdhocGroup(a, a), "itself")
}

func TestMatch_ExplicitRadioGroup(t *testing.T) {
	tree := newFakeTree()
	root := tree.add(nil, RoleWebArea, "root")
	tree.add(root, RoleRadioGroup, "group", TraitRadioGroup)
	got := NewManager().FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyRadioGroup}, AnchorObject: root, ResultsLimit: 10})
	assert.Equal(t, "group", joined(got))
}

func TestMatch_LinkAncestors(t *testing.T) {
	tree := newFakeTree()
	root := tree.add(nil, RoleWebArea, "root")
	link := tree.add(root, RoleLink, "link")
	tree.add(link, RoleStaticText, "label")
	tree.add(root, RoleStaticText, "other")
	c := Criteria{SearchKeys: []SearchKey{KeyLink}, AnchorObject: root, ResultsLimit: 10}

	assert.Equal(t, "link", joined(NewManager().FindMatchingObjects(c)))
	assert.Equal(t, "link,label", joined(NewManager(WithLinkAncestors(true)).FindMatchingObjects(c)))
}

func TestMatch_TableKeys(t *testing.T) {
	tree := newFakeTree()
	root := tree.add(nil, RoleWebArea, "root")
	outer := tree.add(root, RoleTable, "outer")
	outer.tblLevel = 1
	row := tree.add(outer, RoleRow, "row")
	inner := tree.add(row, RoleTable, "inner")
	inner.tblLevel = 2
	layout := tree.add(root, RoleTable, "layout")
	layout.tblLevel = 1
	delete(layout.traits, TraitExposable)
	second := tree.add(root, RoleTable, "second")
	second.tblLevel = 1
	outer.rows = []*fakeNode{row}
	m := NewManager()

	got := m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyTable}, AnchorObject: root, ResultsLimit: 10})
	assert.Equal(t, "outer,inner,second", joined(got))

	got = m.FindMatchingObjects(Criteria{
		SearchKeys: []SearchKey{KeyTableSameLevel}, AnchorObject: root,
		StartObject: outer, ResultsLimit: 10,
	})
	assert.Equal(t, "second", joined(got))
}

func TestMatch_UnknownKeyFailsClosed(t *testing.T) {
	tree := buildArticle()
	got := NewManager().FindMatchingObjects(Criteria{
		SearchKeys:   []SearchKey{SearchKey(999)},
		AnchorObject: tree.get("root"),
		ResultsLimit: 10,
	})
	assert.Empty(t, got)
}

func TestMatch_Idempotent(t *testing.T) {
	tree := buildNestedTree()
	m := NewManager()
	c := anyType(tree.get("root"), tree.get("A2"), Previous, 4)
	first := m.FindMatchingObjects(c)
	second := m.FindMatchingObjects(c)
	assert.Equal(t, titles(first), titles(second))
}
