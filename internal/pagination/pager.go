package pagination

import (
	"fmt"
	"strings"
)

// Size is the visual size variant of the pagination control.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Pager holds the state a caller supplies on each render and emits page
// change notifications. It never moves to a page on its own: listeners are
// expected to feed the new page back through SetState.
type Pager struct {
	current    int
	total      int
	totalItems int
	size       Size
	listeners  []func(page int)
}

// NewPager creates a pager showing current out of total pages.
func NewPager(current, total int) *Pager {
	return &Pager{current: current, total: total, size: SizeMedium}
}

// WithSize sets the size variant.
func (p *Pager) WithSize(size Size) *Pager {
	p.size = size
	return p
}

// WithTotalItems sets the item count shown in the summary text.
func (p *Pager) WithTotalItems(n int) *Pager {
	p.totalItems = n
	return p
}

// OnPageChange subscribes fn to page change notifications.
func (p *Pager) OnPageChange(fn func(page int)) {
	if fn != nil {
		p.listeners = append(p.listeners, fn)
	}
}

// SetState replaces the current page and the page count.
func (p *Pager) SetState(current, total int) {
	p.current = current
	p.total = total
}

// Current returns the current page.
func (p *Pager) Current() int { return p.current }

// Total returns the page count.
func (p *Pager) Total() int { return p.total }

// Pages returns the visible markers for the current state.
func (p *Pager) Pages() []Marker {
	return Window(p.current, p.total)
}

// GoTo requests page. The request is honored only for an in-range page
// other than the current one. Returns whether a notification was emitted.
func (p *Pager) GoTo(page int) bool {
	if page < 1 || page > p.total || page == p.current {
		return false
	}
	p.emit(page)
	return true
}

// Previous requests the page before the current one.
func (p *Pager) Previous() bool {
	if p.PreviousDisabled() {
		return false
	}
	p.emit(p.current - 1)
	return true
}

// Next requests the page after the current one.
func (p *Pager) Next() bool {
	if p.NextDisabled() {
		return false
	}
	p.emit(p.current + 1)
	return true
}

// PreviousDisabled reports whether Previous would be ignored.
func (p *Pager) PreviousDisabled() bool {
	return p.current <= 1
}

// NextDisabled reports whether Next would be ignored.
func (p *Pager) NextDisabled() bool {
	return p.current >= p.total
}

// Classes returns the container class list.
func (p *Pager) Classes() string {
	size := p.size
	if size == "" {
		size = SizeMedium
	}
	return strings.Join([]string{"bio-pagination", "bio-pagination--" + string(size)}, " ")
}

// TotalText returns the summary shown next to the control, or "" when no
// item count was supplied.
func (p *Pager) TotalText() string {
	if p.totalItems <= 0 {
		return ""
	}
	return fmt.Sprintf("Total %d items", p.totalItems)
}

func (p *Pager) emit(page int) {
	for _, fn := range p.listeners {
		fn(page)
	}
}
