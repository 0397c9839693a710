package components

// AlertVariant selects the alert colour treatment.
type AlertVariant string

const (
	AlertVariantPrimary   AlertVariant = "primary"
	AlertVariantSecondary AlertVariant = "secondary"
	AlertVariantSuccess   AlertVariant = "success"
	AlertVariantDanger    AlertVariant = "danger"
	AlertVariantWarning   AlertVariant = "warning"
	AlertVariantInfo      AlertVariant = "info"
	AlertVariantLight     AlertVariant = "light"
	AlertVariantDark      AlertVariant = "dark"
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant        AlertVariant
	Heading        string
	AdditionalText string
	ShowIcon       bool
	Dismissible    bool
}

// Alert represents a message alert component
type Alert struct {
	message   string
	options   AlertOptions
	visible   bool
	onDismiss []func()
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	if opts.Variant == "" {
		opts.Variant = AlertVariantPrimary
	}
	return &Alert{message: message, options: opts, visible: true}
}

// WithVariant sets the alert variant
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.options.Variant = variant
	return a
}

// WithHeading sets the alert heading
func (a *Alert) WithHeading(heading string) *Alert {
	a.options.Heading = heading
	return a
}

// WithDismissible sets whether the alert can be dismissed
func (a *Alert) WithDismissible(dismissible bool) *Alert {
	a.options.Dismissible = dismissible
	return a
}

// Message returns the alert body.
func (a *Alert) Message() string { return a.message }

// Options returns a copy of the current options.
func (a *Alert) Options() AlertOptions { return a.options }

// Visible reports whether the alert is still shown.
func (a *Alert) Visible() bool { return a.visible }

// HasAdditionalContent reports whether a heading or additional text is set.
func (a *Alert) HasAdditionalContent() bool {
	return a.options.Heading != "" || a.options.AdditionalText != ""
}

// OnDismiss registers a dismiss listener.
func (a *Alert) OnDismiss(fn func()) {
	if fn != nil {
		a.onDismiss = append(a.onDismiss, fn)
	}
}

// Dismiss hides the alert and notifies listeners.
func (a *Alert) Dismiss() {
	a.visible = false
	for _, fn := range a.onDismiss {
		fn()
	}
}

// Classes returns the CSS class list for the alert element.
func (a *Alert) Classes() string {
	return classList(
		"bio-alert",
		"bio-alert--"+string(a.options.Variant),
		modifier("bio-alert", "dismissible", a.options.Dismissible),
	)
}
