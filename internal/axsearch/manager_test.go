package axsearch

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSpelling creates three paragraphs; p1 and p3 contain misspellings.
func buildSpelling() *fakeTree {
	t := newFakeTree()
	root := t.add(nil, RoleWebArea, "root")
	p1 := t.add(root, RoleStaticText, "p1")
	t.add(root, RoleStaticText, "p2")
	p3 := t.add(root, RoleStaticText, "p3")
	p1.ranges = []TextMarkerRange{
		NewRange(p1.id, p1.order, 0, 4),
		NewRange(p1.id, p1.order, 10, 15),
		NewRange(p1.id, p1.order, 20, 26),
	}
	p3.ranges = []TextMarkerRange{
		NewRange(p3.id, p3.order, 3, 7),
		NewRange(p3.id, p3.order, 12, 18),
	}
	return t
}

func misspelling(anchor, start Node, dir Direction, from *TextMarkerRange) Criteria {
	return Criteria{
		SearchKeys:   []SearchKey{KeyMisspelledWord},
		AnchorObject: anchor,
		StartObject:  start,
		Direction:    dir,
		ResultsLimit: 1,
		StartRange:   from,
	}
}

func TestFindMatchingRange_WithinStartObject(t *testing.T) {
	tree := buildSpelling()
	p1 := tree.get("p1")
	m := NewManager()
	between := NewRange(p1.id, p1.order, 5, 6)

	got, ok := m.FindMatchingRange(misspelling(tree.get("root"), p1, Next, &between))
	require.True(t, ok)
	assert.Equal(t, p1.ranges[1], got)

	got, ok = m.FindMatchingRange(misspelling(tree.get("root"), p1, Previous, &between))
	require.True(t, ok)
	assert.Equal(t, p1.ranges[0], got)
}

func TestFindMatchingRange_FallsBackToNextObject(t *testing.T) {
	tree := buildSpelling()
	p1, p3 := tree.get("p1"), tree.get("p3")
	m := NewManager()
	afterLast := NewRange(p1.id, p1.order, 30, 31)

	got, ok := m.FindMatchingRange(misspelling(tree.get("root"), p1, Next, &afterLast))
	require.True(t, ok)
	assert.Equal(t, p3.ranges[0], got)
}

func TestFindMatchingRange_FallsBackToPreviousObject(t *testing.T) {
	tree := buildSpelling()
	p1, p3 := tree.get("p1"), tree.get("p3")
	m := NewManager()
	beforeFirst := NewRange(p3.id, p3.order, 0, 1)

	got, ok := m.FindMatchingRange(misspelling(tree.get("root"), p3, Previous, &beforeFirst))
	require.True(t, ok)
	assert.Equal(t, p1.ranges[2], got)
}

func TestFindMatchingRange_StartWithoutMisspellings(t *testing.T) {
	tree := buildSpelling()
	m := NewManager()

	got, ok := m.FindMatchingRange(misspelling(tree.get("root"), tree.get("p2"), Next, nil))
	require.True(t, ok)
	assert.Equal(t, tree.get("p3").ranges[0], got)

	got, ok = m.FindMatchingRange(misspelling(tree.get("root"), tree.get("p2"), Previous, nil))
	require.True(t, ok)
	assert.Equal(t, tree.get("p1").ranges[2], got)
}

func TestFindMatchingRange_NilStartRange(t *testing.T) {
	tree := buildSpelling()
	p1 := tree.get("p1")

	got, ok := NewManager().FindMatchingRange(misspelling(tree.get("root"), p1, Next, nil))
	require.True(t, ok)
	assert.Equal(t, p1.ranges[0], got)
}

func TestFindMatchingRange_NoAnchorStartSearchesEverything(t *testing.T) {
	tree := buildSpelling()

	got, ok := NewManager().FindMatchingRange(misspelling(tree.get("root"), nil, Next, nil))
	require.True(t, ok)
	assert.Equal(t, tree.get("p1").ranges[0], got)

	got, ok = NewManager().FindMatchingRange(misspelling(tree.get("root"), nil, Previous, nil))
	require.True(t, ok)
	assert.Equal(t, tree.get("p3").ranges[1], got)
}

func TestFindMatchingRange_NothingLeft(t *testing.T) {
	tree := buildSpelling()
	p3 := tree.get("p3")
	afterLast := NewRange(p3.id, p3.order, 40, 41)

	_, ok := NewManager().FindMatchingRange(misspelling(tree.get("root"), p3, Next, &afterLast))
	assert.False(t, ok)
}

func TestFindMatchingRange_EmptyRangesIgnored(t *testing.T) {
	tree := newFakeTree()
	root := tree.add(nil, RoleWebArea, "root")
	p := tree.add(root, RoleStaticText, "p")
	p.ranges = []TextMarkerRange{NewRange(p.id, p.order, 4, 4)}

	_, ok := NewManager().FindMatchingRange(misspelling(root, nil, Next, nil))
	assert.False(t, ok)
}

func TestFindMatchingRange_StartOutsideAnchor(t *testing.T) {
	tree := buildSpelling()
	// p3 has misspellings of its own but lies outside the p1 anchor.
	_, ok := NewManager().FindMatchingRange(misspelling(tree.get("p1"), tree.get("p3"), Next, nil))
	assert.False(t, ok)
}

func TestFindMatchingRange_InvalidCriteria(t *testing.T) {
	tree := buildSpelling()
	root := tree.get("root")
	invalid := []Criteria{
		{SearchKeys: []SearchKey{KeyHeading}, AnchorObject: root, ResultsLimit: 1},
		{SearchKeys: []SearchKey{KeyMisspelledWord, KeyHeading}, AnchorObject: root, ResultsLimit: 1},
		{SearchKeys: []SearchKey{KeyMisspelledWord}, AnchorObject: root, ResultsLimit: 2},
		{AnchorObject: root, ResultsLimit: 1},
	}

	var buf bytes.Buffer
	lenient := NewManager(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	strict := NewManager(WithStrictContracts(true))
	for _, c := range invalid {
		assert.False(t, c.ValidForRangeSearch())
		_, ok := lenient.FindMatchingRange(c)
		assert.False(t, ok)
		assert.Panics(t, func() { strict.FindMatchingRange(c) })
	}
	assert.Contains(t, buf.String(), "unsupported range search criteria")
}

func TestFindMatchingObjects_MisspelledWord(t *testing.T) {
	tree := buildSpelling()
	got := NewManager().FindMatchingObjects(Criteria{
		SearchKeys:   []SearchKey{KeyMisspelledWord},
		AnchorObject: tree.get("root"),
		ResultsLimit: 10,
	})
	assert.Equal(t, "p1,p3", joined(got))
}

func TestScanRanges(t *testing.T) {
	r := []TextMarkerRange{NewRange(1, 1, 0, 2), NewRange(1, 1, 5, 8), NewRange(1, 1, 10, 12)}
	mid := NewRange(1, 1, 3, 4)
	same := NewRange(1, 1, 5, 8)

	got, ok := scanRanges(r, &mid, true)
	require.True(t, ok)
	assert.Equal(t, r[1], got)

	got, ok = scanRanges(r, &same, true)
	require.True(t, ok)
	assert.Equal(t, r[2], got, "strictly greater")

	got, ok = scanRanges(r, &same, false)
	require.True(t, ok)
	assert.Equal(t, r[0], got, "strictly less")

	_, ok = scanRanges(nil, &mid, true)
	assert.False(t, ok)
}

// presortedRoot is a root web area that keeps its live regions pre-sorted.
type presortedRoot struct {
	*fakeNode
	live []Node
}

func (p presortedRoot) Presorted(key SearchKey) ([]Node, bool) {
	if key == KeyLiveRegion {
		return p.live, true
	}
	return nil, false
}

func TestFindMatchingObjects_PresortedIndex(t *testing.T) {
	tree := newFakeTree()
	root := tree.add(nil, RoleWebArea, "root", TraitRootWebArea)
	l1 := tree.add(root, RoleGroup, "l1", TraitLiveRegion)
	l2 := tree.add(root, RoleGroup, "l2", TraitLiveRegion)
	l3 := tree.add(root, RoleGroup, "l3", TraitLiveRegion)
	// The index deliberately disagrees with the tree so the test can tell
	// which path answered.
	anchor := presortedRoot{fakeNode: root, live: []Node{l3, l1, l2}}
	m := NewManager()

	got := m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyLiveRegion}, AnchorObject: anchor, ResultsLimit: 2})
	assert.Equal(t, "l3,l1", joined(got))

	// Any extra constraint, or walking backwards, falls back to the walk.
	got = m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyLiveRegion}, AnchorObject: anchor, Direction: Previous, ResultsLimit: 2})
	assert.Equal(t, "l3,l2", joined(got))

	got = m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyLiveRegion}, AnchorObject: anchor, ImmediateDescendantsOnly: true, ResultsLimit: 5})
	assert.Equal(t, "l1,l2,l3", joined(got))

	got = m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyLiveRegion}, AnchorObject: anchor, SearchText: "l", ResultsLimit: 5})
	assert.Equal(t, "l1,l2,l3", joined(got))

	got = m.FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyLiveRegion}, AnchorObject: anchor, StartObject: l1, ResultsLimit: 5})
	assert.Equal(t, "l2,l3", joined(got))
}

func TestFindMatchingObjects_PresortedNeedsRootWebArea(t *testing.T) {
	tree := newFakeTree()
	root := tree.add(nil, RoleGroup, "root")
	l1 := tree.add(root, RoleGroup, "l1", TraitLiveRegion)
	anchor := presortedRoot{fakeNode: root, live: []Node{}}

	got := NewManager().FindMatchingObjects(Criteria{SearchKeys: []SearchKey{KeyLiveRegion}, AnchorObject: anchor, ResultsLimit: 5})
	require.Len(t, got, 1)
	assert.Equal(t, l1.ID(), got[0].ID())
}
