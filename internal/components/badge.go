package components

// BadgeSize follows the heading scale the badge sits next to.
type BadgeSize string

const (
	BadgeSizeH6   BadgeSize = "H6"
	BadgeSizeH5   BadgeSize = "H5"
	BadgeSizeH4   BadgeSize = "H4"
	BadgeSizeH3   BadgeSize = "H3"
	BadgeSizeH2   BadgeSize = "H2"
	BadgeSizeH1   BadgeSize = "H1"
	BadgeSizeNone BadgeSize = "-"
)

// BadgeType is the badge shape.
type BadgeType string

const (
	BadgeTypeNormal BadgeType = "normal"
	BadgeTypePill   BadgeType = "pill"
	BadgeTypeDot    BadgeType = "dot"
)

// Color is the semantic colour palette shared by badges, spinners and
// progress bars.
type Color string

const (
	ColorDefault   Color = "default"
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorSuccess   Color = "success"
	ColorDanger    Color = "danger"
	ColorWarning   Color = "warning"
	ColorInfo      Color = "info"
	ColorLight     Color = "light"
	ColorDark      Color = "dark"
)

// Badge is a small status indicator component.
type Badge struct {
	Text  string
	Size  BadgeSize
	Color Color
	Type  BadgeType
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{Text: text, Size: BadgeSizeH6, Color: ColorPrimary, Type: BadgeTypeNormal}
}

// WithColor sets the badge colour.
func (b *Badge) WithColor(c Color) *Badge {
	b.Color = c
	return b
}

// WithType sets the badge shape.
func (b *Badge) WithType(t BadgeType) *Badge {
	b.Type = t
	return b
}

// WithSize sets the badge size.
func (b *Badge) WithSize(s BadgeSize) *Badge {
	b.Size = s
	return b
}

// ShowText is false for dot badges, which render no label.
func (b *Badge) ShowText() bool {
	return b.Type != BadgeTypeDot
}

// Classes returns the CSS class list for the badge element.
func (b *Badge) Classes() string {
	if b.Type == BadgeTypeDot {
		return classList("bio-badge", "bio-badge--dot", "bio-badge--"+string(b.Color))
	}
	return classList(
		"bio-badge",
		"bio-badge--"+string(b.Size),
		"bio-badge--"+string(b.Color),
		"bio-badge--"+string(b.Type),
	)
}
