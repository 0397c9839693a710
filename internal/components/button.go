package components

// ButtonVariant selects the button colour treatment.
type ButtonVariant string

const (
	ButtonVariantPrimary   ButtonVariant = "primary"
	ButtonVariantSecondary ButtonVariant = "secondary"
	ButtonVariantOutline   ButtonVariant = "outline"
	ButtonVariantText      ButtonVariant = "text"
	ButtonVariantDanger    ButtonVariant = "danger"
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Size     Size
	Disabled bool
	// Type is the HTML button type: button, submit or reset.
	Type  string
	Class string
}

// Button represents a clickable button component
type Button struct {
	label   string
	options ButtonOptions
	onClick []func()
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	if opts.Variant == "" {
		opts.Variant = ButtonVariantPrimary
	}
	opts.Size = sizeOrDefault(opts.Size)
	if opts.Type == "" {
		opts.Type = "button"
	}
	return &Button{label: label, options: opts}
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithSize sets the button size
func (b *Button) WithSize(size Size) *Button {
	b.options.Size = sizeOrDefault(size)
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithClass appends caller supplied classes.
func (b *Button) WithClass(class string) *Button {
	b.options.Class = class
	return b
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// Options returns a copy of the current options.
func (b *Button) Options() ButtonOptions { return b.options }

// OnClick registers a click listener.
func (b *Button) OnClick(fn func()) {
	if fn != nil {
		b.onClick = append(b.onClick, fn)
	}
}

// Click notifies listeners unless the button is disabled and reports whether
// the click was delivered.
func (b *Button) Click() bool {
	if b.options.Disabled {
		return false
	}
	for _, fn := range b.onClick {
		fn()
	}
	return true
}

// Classes returns the CSS class list for the button element.
func (b *Button) Classes() string {
	return classList(
		"bio-button",
		"bio-button--"+string(b.options.Variant),
		"bio-button--"+string(b.options.Size),
		modifier("bio-button", "disabled", b.options.Disabled),
		b.options.Class,
	)
}
