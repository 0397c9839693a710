package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func recordPages(p *Pager) *[]int {
	var got []int
	p.OnPageChange(func(page int) { got = append(got, page) })
	return &got
}

func TestGoToHonorsOnlyValidRequests(t *testing.T) {
	t.Parallel()

	p := NewPager(3, 10)
	got := recordPages(p)

	require.False(t, p.GoTo(0))
	require.False(t, p.GoTo(11))
	require.False(t, p.GoTo(3), "current page is not a change")
	require.True(t, p.GoTo(7))
	require.True(t, p.GoTo(10))

	require.Equal(t, []int{7, 10}, *got)
	require.Equal(t, 3, p.Current(), "pager waits for the caller to feed the new page back")
}

func TestPreviousAndNext(t *testing.T) {
	t.Parallel()

	p := NewPager(1, 3)
	got := recordPages(p)

	require.True(t, p.PreviousDisabled())
	require.False(t, p.Previous())
	require.True(t, p.Next())

	p.SetState(3, 3)
	require.True(t, p.NextDisabled())
	require.False(t, p.Next())
	require.True(t, p.Previous())

	require.Equal(t, []int{2, 2}, *got)
}

func TestSinglePagePager(t *testing.T) {
	t.Parallel()

	p := NewPager(1, 1)
	got := recordPages(p)

	require.False(t, p.Previous())
	require.False(t, p.Next())
	require.False(t, p.GoTo(1))
	require.Empty(t, *got)
	require.Equal(t, []Marker{PageMarker(1)}, p.Pages())
}

func TestPagerFeedbackLoop(t *testing.T) {
	t.Parallel()

	p := NewPager(1, 20)
	p.OnPageChange(func(page int) { p.SetState(page, p.Total()) })

	for i := 0; i < 25; i++ {
		p.Next()
	}
	require.Equal(t, 20, p.Current())
	require.Equal(t, "1 … 17 18 19 20", Format(p.Pages()))
}

func TestPagerClassesAndTotalText(t *testing.T) {
	t.Parallel()

	p := NewPager(1, 9)
	require.Equal(t, "bio-pagination bio-pagination--medium", p.Classes())
	require.Empty(t, p.TotalText())

	p.WithSize(SizeSmall).WithTotalItems(85)
	require.Equal(t, "bio-pagination bio-pagination--small", p.Classes())
	require.Equal(t, "Total 85 items", p.TotalText())
}
