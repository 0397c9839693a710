package pagination

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var ellipsis = EllipsisMarker()

func pages(ps ...int) []Marker {
	out := make([]Marker, len(ps))
	for i, p := range ps {
		out[i] = PageMarker(p)
	}
	return out
}

func TestWindowScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		want    []Marker
	}{
		{name: "single page", current: 1, total: 1, want: pages(1)},
		{name: "exactly five", current: 3, total: 5, want: pages(1, 2, 3, 4, 5)},
		{name: "head", current: 1, total: 10, want: append(pages(1, 2, 3, 4), ellipsis, PageMarker(10))},
		{name: "head boundary", current: 3, total: 10, want: append(pages(1, 2, 3, 4), ellipsis, PageMarker(10))},
		{name: "tail", current: 10, total: 10, want: append([]Marker{PageMarker(1), ellipsis}, pages(7, 8, 9, 10)...)},
		{name: "tail boundary", current: 8, total: 10, want: append([]Marker{PageMarker(1), ellipsis}, pages(7, 8, 9, 10)...)},
		{name: "middle", current: 5, total: 10, want: []Marker{PageMarker(1), ellipsis, PageMarker(4), PageMarker(5), PageMarker(6), ellipsis, PageMarker(10)}},
		{name: "six pages middle collapses to tail", current: 4, total: 6, want: append([]Marker{PageMarker(1), ellipsis}, pages(3, 4, 5, 6)...)},
		{name: "out of range is not clamped", current: 0, total: 10, want: append(pages(1, 2, 3, 4), ellipsis, PageMarker(10))},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Window(tt.current, tt.total)); diff != "" {
				t.Fatalf("Window(%d, %d) mismatch (-want +got):\n%s", tt.current, tt.total, diff)
			}
		})
	}
}

func TestWindowSmallTotalsListEveryPage(t *testing.T) {
	t.Parallel()

	for total := 1; total <= MaxVisible; total++ {
		for current := 1; current <= total; current++ {
			got := Window(current, total)
			require.Len(t, got, total)
			for i, m := range got {
				require.False(t, m.Ellipsis)
				require.Equal(t, i+1, m.Page)
			}
		}
	}
}

func TestWindowMiddleRange(t *testing.T) {
	t.Parallel()

	for total := 8; total <= 60; total++ {
		for current := 4; current < total-2; current++ {
			want := []Marker{PageMarker(1), ellipsis, PageMarker(current - 1), PageMarker(current), PageMarker(current + 1), ellipsis, PageMarker(total)}
			if diff := cmp.Diff(want, Window(current, total)); diff != "" {
				t.Fatalf("Window(%d, %d) mismatch (-want +got):\n%s", current, total, diff)
			}
		}
	}
}

func TestWindowNeverExceedsSevenMarkers(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 200; total++ {
		for current := 1; current <= total; current++ {
			require.LessOrEqual(t, len(Window(current, total)), 7)
		}
	}
}

func TestWindowZeroPages(t *testing.T) {
	t.Parallel()

	require.Empty(t, Window(1, 0))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1 … 4 5 6 … 10", Format(Window(5, 10)))
	require.Equal(t, "1 2 3", Format(Window(2, 3)))
}
