package components

import "strings"

// ModalSize is the dialog width preset.
type ModalSize string

const (
	ModalSizeSmall      ModalSize = "small"
	ModalSizeDefault    ModalSize = "default"
	ModalSizeLarge      ModalSize = "large"
	ModalSizeExtraLarge ModalSize = "extra large"
)

// ModalType distinguishes a plain text body from custom content.
type ModalType string

const (
	ModalTypeText   ModalType = "text"
	ModalTypeCustom ModalType = "custom"
)

// Modal is a dialog overlay.
type Modal struct {
	Title     string
	Size      ModalSize
	Type      ModalType
	ShowClose bool

	open    bool
	onClose []func()
}

// NewModal returns a closed default-sized text modal.
func NewModal(title string) *Modal {
	return &Modal{Title: title, Size: ModalSizeDefault, Type: ModalTypeText, ShowClose: true}
}

// IsOpen reports whether the modal is shown.
func (m *Modal) IsOpen() bool { return m.open }

// Open shows the modal.
func (m *Modal) Open() { m.open = true }

// OnClose registers a close listener.
func (m *Modal) OnClose(fn func()) {
	if fn != nil {
		m.onClose = append(m.onClose, fn)
	}
}

// Close hides the modal and notifies listeners.
func (m *Modal) Close() {
	m.open = false
	for _, fn := range m.onClose {
		fn()
	}
}

// BackdropClick closes the modal only when the click landed on the backdrop
// itself rather than on the dialog.
func (m *Modal) BackdropClick(onBackdrop bool) {
	if onBackdrop {
		m.Close()
	}
}

// Classes returns the CSS class list for the modal element.
func (m *Modal) Classes() string {
	size := strings.Join(strings.Fields(string(m.Size)), "-")
	return classList(
		"bio-modal",
		"bio-modal--"+size,
		modifier("bio-modal", "custom", m.Type == ModalTypeCustom),
	)
}

// Width is the CSS width of the dialog.
func (m *Modal) Width() string {
	switch m.Size {
	case ModalSizeSmall:
		return "300px"
	case ModalSizeLarge:
		return "800px"
	case ModalSizeExtraLarge:
		return "1140px"
	default:
		return "500px"
	}
}

// NavbarScheme is the navbar colour scheme.
type NavbarScheme string

const (
	NavbarSchemeDefault NavbarScheme = "default"
	NavbarSchemeLight   NavbarScheme = "light"
	NavbarSchemeDark    NavbarScheme = "dark"
)

// Navbar is the top navigation bar. The expanded state is owned by the
// caller: Toggle only notifies and SetExpanded applies the result.
type Navbar struct {
	BrandText string
	Scheme    NavbarScheme

	expanded bool
	onToggle []func()
}

// NewNavbar returns a collapsed default-scheme navbar.
func NewNavbar(brand string) *Navbar {
	return &Navbar{BrandText: brand, Scheme: NavbarSchemeDefault}
}

// Expanded reports whether the collapsible section is open.
func (n *Navbar) Expanded() bool { return n.expanded }

// SetExpanded applies the expanded state.
func (n *Navbar) SetExpanded(expanded bool) { n.expanded = expanded }

// OnToggle registers a toggle listener.
func (n *Navbar) OnToggle(fn func()) {
	if fn != nil {
		n.onToggle = append(n.onToggle, fn)
	}
}

// Toggle notifies listeners that the toggler was pressed.
func (n *Navbar) Toggle() {
	for _, fn := range n.onToggle {
		fn()
	}
}

// Classes returns the CSS class list for the navbar element.
func (n *Navbar) Classes() string {
	return classList(
		"bio-navbar",
		"bio-navbar--"+string(n.Scheme),
		modifier("bio-navbar", "expanded", n.expanded),
	)
}
