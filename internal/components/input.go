package components

// ValueAccessor connects a form control to a form model: the model writes
// values in, the control reports user edits and blur events out.
type ValueAccessor interface {
	WriteValue(value string)
	RegisterOnChange(fn func(value string))
	RegisterOnTouched(fn func())
	SetDisabledState(disabled bool)
}

// Validation is the visual validation state of an input.
type Validation string

const (
	ValidationNormal  Validation = "normal"
	ValidationValid   Validation = "valid"
	ValidationInvalid Validation = "invalid"
)

// field holds the value and interaction state shared by text controls.
type field struct {
	value    string
	filled   bool
	focused  bool
	disabled bool

	onChange      func(string)
	onTouched     func()
	valueChangeFn []func(string)
}

func (f *field) WriteValue(value string) {
	f.value = value
	f.filled = value != ""
}

func (f *field) RegisterOnChange(fn func(string)) { f.onChange = fn }

func (f *field) RegisterOnTouched(fn func()) { f.onTouched = fn }

func (f *field) SetDisabledState(disabled bool) {
	f.disabled = disabled
	if disabled {
		f.focused = false
	}
}

// Value returns the current value.
func (f *field) Value() string { return f.value }

// Filled reports whether the control holds a non-empty value.
func (f *field) Filled() bool { return f.filled }

// Focused reports whether the control has focus.
func (f *field) Focused() bool { return f.focused }

// Disabled reports whether the control is disabled.
func (f *field) Disabled() bool { return f.disabled }

// OnValueChange registers a listener for user edits.
func (f *field) OnValueChange(fn func(string)) {
	if fn != nil {
		f.valueChangeFn = append(f.valueChangeFn, fn)
	}
}

// SetValue applies a value typed by the user: the registered change
// callback and value listeners are notified.
func (f *field) SetValue(value string) {
	f.value = value
	f.filled = value != ""
	if f.onChange != nil {
		f.onChange(value)
	}
	for _, fn := range f.valueChangeFn {
		fn(value)
	}
}

// Focus marks the control focused.
func (f *field) Focus() { f.focused = true }

// Blur removes focus and reports the control as touched.
func (f *field) Blur() {
	f.focused = false
	if f.onTouched != nil {
		f.onTouched()
	}
}

// InputOptions defines the configuration options for an input
type InputOptions struct {
	Size        Size
	Validation  Validation
	Type        string
	Placeholder string
	Disabled    bool
	Prefix      bool
	Suffix      bool
	AddonBefore bool
	AddonAfter  bool
	Class       string
}

// Input is a text input with optional affixes and addons.
type Input struct {
	field
	options InputOptions
}

var _ ValueAccessor = (*Input)(nil)

// NewInput creates an input with the given options.
func NewInput(opts InputOptions) *Input {
	opts.Size = sizeOrDefault(opts.Size)
	if opts.Validation == "" {
		opts.Validation = ValidationNormal
	}
	if opts.Type == "" {
		opts.Type = "text"
	}
	in := &Input{options: opts}
	in.disabled = opts.Disabled
	return in
}

// WithValidation sets the validation state.
func (in *Input) WithValidation(v Validation) *Input {
	in.options.Validation = v
	return in
}

// Options returns a copy of the current options.
func (in *Input) Options() InputOptions { return in.options }

// Focus marks the input focused. Disabled inputs cannot take focus.
func (in *Input) Focus() {
	if !in.disabled {
		in.field.Focus()
	}
}

// WrapperClasses returns the CSS class list for the input wrapper.
func (in *Input) WrapperClasses() string {
	const block = "bio-input-wrapper"
	o := in.options
	return classList(
		block,
		block+"--"+string(o.Size),
		modifier(block, "disabled", in.disabled),
		modifier(block, "focused", in.focused && !in.disabled),
		modifier(block, string(o.Validation), o.Validation != ValidationNormal),
		modifier(block, "filled", in.filled),
		modifier(block, "prefix", o.Prefix),
		modifier(block, "suffix", o.Suffix),
		modifier(block, "addon-before", o.AddonBefore),
		modifier(block, "addon-after", o.AddonAfter),
		o.Class,
	)
}

// InputClasses returns the CSS class list for the input element.
func (in *Input) InputClasses() string {
	const block = "bio-input"
	o := in.options
	return classList(
		block,
		block+"--"+string(o.Size),
		modifier(block, "disabled", in.disabled),
		modifier(block, string(o.Validation), o.Validation != ValidationNormal),
	)
}
