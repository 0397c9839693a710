package components

// PasswordInputOptions defines the configuration options for a password input
type PasswordInputOptions struct {
	Size        Size
	Placeholder string
	Validation  Validation
	Visible     bool
	Disabled    bool
	Class       string
}

// PasswordInput is a password field with a visibility toggle.
type PasswordInput struct {
	field
	options      PasswordInputOptions
	visible      bool
	onVisibility []func(bool)
}

var _ ValueAccessor = (*PasswordInput)(nil)

// NewPasswordInput creates a password input with the given options.
func NewPasswordInput(opts PasswordInputOptions) *PasswordInput {
	opts.Size = sizeOrDefault(opts.Size)
	if opts.Placeholder == "" {
		opts.Placeholder = "example"
	}
	if opts.Validation == "" {
		opts.Validation = ValidationNormal
	}
	p := &PasswordInput{options: opts, visible: opts.Visible}
	p.disabled = opts.Disabled
	return p
}

// WithValidation sets the validation state.
func (p *PasswordInput) WithValidation(v Validation) *PasswordInput {
	p.options.Validation = v
	return p
}

// Validation returns the current validation state.
func (p *PasswordInput) Validation() Validation { return p.options.Validation }

// Visible reports whether the password is shown in clear text.
func (p *PasswordInput) Visible() bool { return p.visible }

// InputType is the HTML input type matching the visibility state.
func (p *PasswordInput) InputType() string {
	if p.visible {
		return "text"
	}
	return "password"
}

// OnVisibilityChange registers a listener for visibility toggles.
func (p *PasswordInput) OnVisibilityChange(fn func(visible bool)) {
	if fn != nil {
		p.onVisibility = append(p.onVisibility, fn)
	}
}

// ToggleVisibility flips visibility and notifies listeners. It does nothing
// while the input is disabled.
func (p *PasswordInput) ToggleVisibility() bool {
	if p.disabled {
		return false
	}
	p.visible = !p.visible
	for _, fn := range p.onVisibility {
		fn(p.visible)
	}
	return true
}

// Focus marks the input focused. Disabled inputs cannot take focus.
func (p *PasswordInput) Focus() {
	if !p.disabled {
		p.field.Focus()
	}
}

// WrapperClasses returns the CSS class list for the wrapper element.
func (p *PasswordInput) WrapperClasses() string {
	const block = "bio-password-input-wrapper"
	return classList(
		block,
		block+"--"+string(p.options.Size),
		modifier(block, "disabled", p.disabled),
		modifier(block, "focused", p.focused && !p.disabled),
		modifier(block, "filled", p.filled),
		p.options.Class,
	)
}

// InputClasses returns the CSS class list for the input element.
func (p *PasswordInput) InputClasses() string {
	const block = "bio-password-input"
	v := p.options.Validation
	return classList(
		block,
		block+"--"+string(p.options.Size),
		modifier(block, string(v), v != ValidationNormal),
		modifier(block, "disabled", p.disabled),
	)
}
