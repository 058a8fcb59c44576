package clipboard

import (
	"reflect"
	"testing"
)

func TestCapacityEvictsOldest(t *testing.T) {
	h := NewHistory(3, 3)
	for _, s := range []string{"a", "b", "c", "d"} {
		h.Insert(BucketCopy, s)
	}
	want := []string{"b", "c", "d"}
	if got := h.Texts(BucketCopy); !reflect.DeepEqual(got, want) {
		t.Errorf("copy bucket = %v, want %v", got, want)
	}
}

func TestInsertRemovesDuplicatesFromBothBuckets(t *testing.T) {
	h := NewHistory(5, 5)
	h.Insert(BucketCopy, "shared")
	h.Insert(BucketCut, "other")
	h.Insert(BucketCut, "shared")

	if got := h.Texts(BucketCopy); len(got) != 0 {
		t.Errorf("copy bucket still holds %v", got)
	}
	want := []string{"other", "shared"}
	if got := h.Texts(BucketCut); !reflect.DeepEqual(got, want) {
		t.Errorf("cut bucket = %v, want %v", got, want)
	}
}

func TestReinsertMovesToMostRecent(t *testing.T) {
	h := NewHistory(5, 5)
	h.Insert(BucketCopy, "a")
	h.Insert(BucketCopy, "b")
	h.Insert(BucketCopy, "a")

	want := []string{"b", "a"}
	if got := h.Texts(BucketCopy); !reflect.DeepEqual(got, want) {
		t.Errorf("copy bucket = %v, want %v", got, want)
	}
	if got := h.Merged(); got[0] != "a" {
		t.Errorf("most recent = %q, want %q", got[0], "a")
	}
}

func TestMergedOrdersAcrossBuckets(t *testing.T) {
	h := NewHistory(5, 5)
	h.Insert(BucketCopy, "first")
	h.Insert(BucketCut, "second")
	h.Insert(BucketCopy, "third")
	h.Insert(BucketCut, "fourth")

	want := []string{"fourth", "third", "second", "first"}
	if got := h.Merged(); !reflect.DeepEqual(got, want) {
		t.Errorf("merged = %v, want %v", got, want)
	}
}

func TestEmptyStringIgnored(t *testing.T) {
	h := NewHistory(3, 3)
	h.Insert(BucketCopy, "")
	if h.Len() != 0 {
		t.Errorf("len = %d after empty insert", h.Len())
	}
}

func TestClear(t *testing.T) {
	h := NewHistory(3, 3)
	h.Insert(BucketCopy, "a")
	h.Insert(BucketCut, "b")
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("len = %d after clear", h.Len())
	}
	if got := h.Merged(); len(got) != 0 {
		t.Errorf("merged = %v after clear", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	h := NewHistory(3, 3)
	h.Insert(BucketCopy, "a")
	h.Insert(BucketCut, "b")
	h.Insert(BucketCopy, "c")

	restored := NewHistory(3, 3)
	restored.restore(h.snapshot())

	if !reflect.DeepEqual(restored.Merged(), h.Merged()) {
		t.Errorf("restored = %v, want %v", restored.Merged(), h.Merged())
	}

	// Ordering survives further inserts: seq continues past the snapshot.
	restored.Insert(BucketCut, "d")
	if got := restored.Merged(); got[0] != "d" {
		t.Errorf("most recent after restore+insert = %q", got[0])
	}
}

func TestRestoreAppliesSmallerCapacity(t *testing.T) {
	h := NewHistory(5, 5)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		h.Insert(BucketCopy, s)
	}

	shrunk := NewHistory(2, 2)
	shrunk.restore(h.snapshot())
	want := []string{"d", "e"}
	if got := shrunk.Texts(BucketCopy); !reflect.DeepEqual(got, want) {
		t.Errorf("copy bucket = %v, want %v", got, want)
	}
}
