package slideshow

import (
	"testing"

	"github.com/llehouerou/gesture/internal/photo"
)

func ids(items []photo.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDeck_AdvanceAndRewind(t *testing.T) {
	var d deck
	d.reset(testItems("x", "y", "z"))

	if !d.advance() {
		t.Fatal("advance() = false, want true")
	}
	if !d.advance() {
		t.Fatal("advance() = false, want true")
	}
	if got := ids(d.queueItems()); !equalIDs(got, []string{"z"}) {
		t.Errorf("queue = %v, want [z]", got)
	}
	if got := ids(d.historyItems()); !equalIDs(got, []string{"y", "x"}) {
		t.Errorf("history = %v, want [y x]", got)
	}

	if !d.rewind() {
		t.Fatal("rewind() = false, want true")
	}
	if got := ids(d.queueItems()); !equalIDs(got, []string{"y", "z"}) {
		t.Errorf("queue = %v, want [y z]", got)
	}
	if got := ids(d.historyItems()); !equalIDs(got, []string{"x"}) {
		t.Errorf("history = %v, want [x]", got)
	}
}

func TestDeck_Boundaries(t *testing.T) {
	var d deck

	if d.advance() {
		t.Error("advance() on empty queue = true")
	}
	if d.rewind() {
		t.Error("rewind() on empty history = true")
	}
	if d.current() != nil {
		t.Error("current() on empty queue should be nil")
	}
	if _, ok := d.peek(1); ok {
		t.Error("peek(1) on empty queue should fail")
	}
}

func TestDeck_ResetCopiesInput(t *testing.T) {
	items := testItems("a", "b")
	var d deck
	d.reset(items)

	items[0].ID = "mutated"

	if cur := d.current(); cur == nil || cur.ID != "a" {
		t.Errorf("current() = %v, want a", cur)
	}
}

func TestDeck_ResetClearsHistory(t *testing.T) {
	var d deck
	d.reset(testItems("a", "b"))
	d.advance()

	d.reset(testItems("c"))

	if d.historyLen() != 0 {
		t.Errorf("historyLen() = %d, want 0", d.historyLen())
	}
	if d.queueLen() != 1 {
		t.Errorf("queueLen() = %d, want 1", d.queueLen())
	}
}
