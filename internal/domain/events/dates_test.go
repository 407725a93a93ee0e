package events

import (
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"1. 1. 2025", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"15. 3. 2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"05. 09. 2023", time.Date(2023, 9, 5, 0, 0, 0, 0, time.UTC)},
		{"", fixedNow},
		{"2025-01-01", fixedNow},
		{"1. 1.", fixedNow},
		{"1.1.2025", fixedNow},
		{"x. 1. 2025", fixedNow},
		{"1. 13. 2025", fixedNow},
	}
	for _, tc := range cases {
		if got := ParseDate(tc.in, fixedNow); !got.Equal(tc.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSortByDate_Descending(t *testing.T) {
	in := []Event{
		{ID: "old", Date: "15. 3. 2024"},
		{ID: "new", Date: "1. 1. 2025"},
	}
	got := SortByDate(in, fixedNow)
	if ids(got) != "new,old" {
		t.Fatalf("unexpected order: %s", ids(got))
	}
	// no muta la entrada
	if in[0].ID != "old" {
		t.Fatalf("input mutated: %s", ids(in))
	}
}

func TestSortByDate_StableForEqualDates(t *testing.T) {
	in := []Event{
		{ID: "a", Date: "1. 6. 2025"},
		{ID: "b", Date: "2. 6. 2025"},
		{ID: "c", Date: "1. 6. 2025"},
		{ID: "d", Date: "1. 6. 2025"},
	}
	got := SortByDate(in, fixedNow)
	if ids(got) != "b,a,c,d" {
		t.Fatalf("unexpected order: %s", ids(got))
	}
}

func TestSortByDate_MalformedSortsAsNow(t *testing.T) {
	in := []Event{
		{ID: "past", Date: "1. 1. 2020"},
		{ID: "bad", Date: "TBA"},
		{ID: "future", Date: "1. 1. 2030"},
	}
	got := SortByDate(in, fixedNow)
	if ids(got) != "future,bad,past" {
		t.Fatalf("unexpected order: %s", ids(got))
	}
}

func TestSortByDate_IndependentOfInputOrder(t *testing.T) {
	a := []Event{
		{ID: "x", Date: "3. 2. 2025"},
		{ID: "y", Date: "10. 12. 2024"},
		{ID: "z", Date: "4. 2. 2025"},
	}
	b := []Event{a[1], a[2], a[0]}

	if ids(SortByDate(a, fixedNow)) != ids(SortByDate(b, fixedNow)) {
		t.Fatalf("order depends on input: %s vs %s", ids(SortByDate(a, fixedNow)), ids(SortByDate(b, fixedNow)))
	}
}

func TestSort_Empty(t *testing.T) {
	if got := Sort(nil); len(got) != 0 {
		t.Fatalf("expected empty, got %d", len(got))
	}
}

func ids(in []Event) string {
	s := ""
	for i, e := range in {
		if i > 0 {
			s += ","
		}
		s += e.ID
	}
	return s
}
