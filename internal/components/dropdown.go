package components

// Direction is where the dropdown menu opens relative to its trigger.
type Direction string

const (
	DirectionDown  Direction = "down"
	DirectionUp    Direction = "up"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// MenuArrow positions the menu arrow. ArrowNone lets the direction decide.
type MenuArrow string

const (
	ArrowNone         MenuArrow = "no arrow"
	ArrowTopLeft      MenuArrow = "top left"
	ArrowTopCenter    MenuArrow = "top center"
	ArrowTopRight     MenuArrow = "top right"
	ArrowBottomCenter MenuArrow = "bottom center"
	ArrowLeftCenter   MenuArrow = "left center"
	ArrowRightCenter  MenuArrow = "right center"
)

// MenuItem is one dropdown entry.
type MenuItem struct {
	Label    string
	Disabled bool
}

// DropdownOptions defines the configuration options for a dropdown
type DropdownOptions struct {
	Variant     ButtonVariant
	Size        Size
	SplitButton bool
	Direction   Direction
	Arrow       MenuArrow
	Dark        bool
}

// Dropdown combines a trigger button with a menu of items.
type Dropdown struct {
	label    string
	items    []MenuItem
	options  DropdownOptions
	open     bool
	onSelect []func(MenuItem)
}

// NewDropdown creates a closed dropdown.
func NewDropdown(label string, items []MenuItem, opts DropdownOptions) *Dropdown {
	if opts.Variant == "" {
		opts.Variant = ButtonVariantPrimary
	}
	opts.Size = sizeOrDefault(opts.Size)
	if opts.Direction == "" {
		opts.Direction = DirectionDown
	}
	if opts.Arrow == "" {
		opts.Arrow = ArrowNone
	}
	return &Dropdown{label: label, items: items, options: opts}
}

// Label returns the trigger text.
func (d *Dropdown) Label() string { return d.label }

// Items returns the menu entries.
func (d *Dropdown) Items() []MenuItem { return d.items }

// IsOpen reports whether the menu is shown.
func (d *Dropdown) IsOpen() bool { return d.open }

// Toggle opens a closed menu and closes an open one.
func (d *Dropdown) Toggle() { d.open = !d.open }

// Close hides the menu.
func (d *Dropdown) Close() { d.open = false }

// ClickOutside closes the menu when a click lands outside the dropdown.
func (d *Dropdown) ClickOutside() { d.Close() }

// OnSelect registers an item selection listener.
func (d *Dropdown) OnSelect(fn func(MenuItem)) {
	if fn != nil {
		d.onSelect = append(d.onSelect, fn)
	}
}

// Select notifies listeners and closes the menu. Disabled items and
// out-of-range indexes are ignored.
func (d *Dropdown) Select(index int) bool {
	if index < 0 || index >= len(d.items) || d.items[index].Disabled {
		return false
	}
	item := d.items[index]
	for _, fn := range d.onSelect {
		fn(item)
	}
	d.Close()
	return true
}

// MenuArrow returns the configured arrow, or the one facing the trigger when
// none is set.
func (d *Dropdown) MenuArrow() MenuArrow {
	if d.options.Arrow != ArrowNone {
		return d.options.Arrow
	}
	switch d.options.Direction {
	case DirectionUp:
		return ArrowBottomCenter
	case DirectionDown:
		return ArrowTopCenter
	case DirectionLeft:
		return ArrowRightCenter
	case DirectionRight:
		return ArrowLeftCenter
	default:
		return ArrowNone
	}
}

// ItemClasses returns the CSS class list for a menu entry.
func (d *Dropdown) ItemClasses(item MenuItem) string {
	return classList("bio-dropdown-menu-item", modifier("bio-dropdown-menu-item", "disabled", item.Disabled))
}
