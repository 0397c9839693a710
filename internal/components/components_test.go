package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestButtonClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		btn  *Button
		want string
	}{
		{"defaults", NewButton("Save", ButtonOptions{}), "bio-button bio-button--primary bio-button--md"},
		{"variant and size", NewButton("Go", ButtonOptions{Variant: ButtonVariantOutline, Size: SizeLarge}), "bio-button bio-button--outline bio-button--lg"},
		{"disabled with extra", NewButton("x", ButtonOptions{Disabled: true, Class: " wide "}), "bio-button bio-button--primary bio-button--md bio-button--disabled wide"},
		{"builder", NewButton("x", ButtonOptions{}).WithVariant(ButtonVariantDanger).WithSize(SizeSmall), "bio-button bio-button--danger bio-button--sm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.btn.Classes())
		})
	}
}

func TestButtonClickOnlyWhenEnabled(t *testing.T) {
	t.Parallel()

	clicks := 0
	btn := NewButton("Save", ButtonOptions{})
	btn.OnClick(func() { clicks++ })

	require.True(t, btn.Click())
	btn.WithDisabled(true)
	require.False(t, btn.Click())
	require.Equal(t, 1, clicks)
}

func TestInputClasses(t *testing.T) {
	t.Parallel()

	in := NewInput(InputOptions{Prefix: true, AddonAfter: true, Class: "search"})
	require.Equal(t, "bio-input-wrapper bio-input-wrapper--md bio-input-wrapper--prefix bio-input-wrapper--addon-after search", in.WrapperClasses())
	require.Equal(t, "bio-input bio-input--md", in.InputClasses())

	in.Focus()
	in.SetValue("abc")
	in.WithValidation(ValidationInvalid)
	require.Equal(t, "bio-input-wrapper bio-input-wrapper--md bio-input-wrapper--focused bio-input-wrapper--invalid bio-input-wrapper--filled bio-input-wrapper--prefix bio-input-wrapper--addon-after search", in.WrapperClasses())
	require.Equal(t, "bio-input bio-input--md bio-input--invalid", in.InputClasses())
}

func TestInputDisabledIsNeverFocused(t *testing.T) {
	t.Parallel()

	in := NewInput(InputOptions{Size: SizeSmall})
	in.Focus()
	in.SetDisabledState(true)
	require.False(t, in.Focused())
	require.Equal(t, "bio-input-wrapper bio-input-wrapper--sm bio-input-wrapper--disabled", in.WrapperClasses())
	require.Equal(t, "bio-input bio-input--sm bio-input--disabled", in.InputClasses())

	in.Focus()
	require.False(t, in.Focused())
}

func TestInputValueAccessor(t *testing.T) {
	t.Parallel()

	var accessor ValueAccessor = NewInput(InputOptions{})
	in := accessor.(*Input)

	var changes []string
	touched := 0
	accessor.RegisterOnChange(func(v string) { changes = append(changes, v) })
	accessor.RegisterOnTouched(func() { touched++ })

	accessor.WriteValue("model")
	require.Equal(t, "model", in.Value())
	require.True(t, in.Filled())
	require.Empty(t, changes, "model writes do not echo back")

	in.SetValue("")
	require.False(t, in.Filled())
	in.SetValue("typed")
	require.Equal(t, []string{"", "typed"}, changes)

	in.Focus()
	in.Blur()
	require.Equal(t, 1, touched)
	require.False(t, in.Focused())
}

func TestPasswordInput(t *testing.T) {
	t.Parallel()

	p := NewPasswordInput(PasswordInputOptions{})
	require.Equal(t, "password", p.InputType())

	var seen []bool
	p.OnVisibilityChange(func(v bool) { seen = append(seen, v) })

	require.True(t, p.ToggleVisibility())
	require.Equal(t, "text", p.InputType())

	p.SetDisabledState(true)
	require.False(t, p.ToggleVisibility())
	require.True(t, p.Visible())
	require.Equal(t, []bool{true}, seen)

	require.Equal(t, "bio-password-input-wrapper bio-password-input-wrapper--md bio-password-input-wrapper--disabled", p.WrapperClasses())
	require.Equal(t, "bio-password-input bio-password-input--md bio-password-input--disabled", p.InputClasses())

	p.SetDisabledState(false)
	p.WriteValue("secret")
	p.Focus()
	require.Equal(t, "bio-password-input-wrapper bio-password-input-wrapper--md bio-password-input-wrapper--focused bio-password-input-wrapper--filled", p.WrapperClasses())
}

func TestAlertDismiss(t *testing.T) {
	t.Parallel()

	a := NewAlert("Saved", AlertOptions{Variant: AlertVariantSuccess, Dismissible: true})
	require.Equal(t, "bio-alert bio-alert--success bio-alert--dismissible", a.Classes())
	require.False(t, a.HasAdditionalContent())

	dismissed := 0
	a.OnDismiss(func() { dismissed++ })
	a.Dismiss()
	require.False(t, a.Visible())
	require.Equal(t, 1, dismissed)

	require.Equal(t, "bio-alert bio-alert--primary", NewAlert("x", AlertOptions{}).Classes())
	require.True(t, NewAlert("x", AlertOptions{}).WithHeading("Heads up").HasAdditionalContent())
}

func TestBadgeClasses(t *testing.T) {
	t.Parallel()

	b := NewBadge("New")
	require.Equal(t, "bio-badge bio-badge--H6 bio-badge--primary bio-badge--normal", b.Classes())
	require.True(t, b.ShowText())

	b.WithColor(ColorDanger).WithType(BadgeTypePill).WithSize(BadgeSizeH2)
	require.Equal(t, "bio-badge bio-badge--H2 bio-badge--danger bio-badge--pill", b.Classes())

	b.WithType(BadgeTypeDot)
	require.Equal(t, "bio-badge bio-badge--dot bio-badge--danger", b.Classes())
	require.False(t, b.ShowText())
}

func TestSpinnerAndProgress(t *testing.T) {
	t.Parallel()

	require.Equal(t, "bio-spinner bio-spinner--border bio-spinner--dark", NewSpinner().Classes())
	require.Equal(t, "bio-spinner bio-spinner--growing bio-spinner--info", (&Spinner{Type: SpinnerTypeGrowing, Color: ColorInfo}).Classes())

	p := NewProgress(40)
	require.Equal(t, "bio-progress", p.Classes())
	require.Equal(t, []ProgressBar{{Value: 40, Color: ColorDefault}}, p.Bars())

	p.Striped = true
	p.Multiple = []ProgressBar{{Value: 30, Color: ColorSuccess}, {Value: 20, Color: ColorWarning}}
	require.True(t, p.IsMultiple())
	require.Len(t, p.Bars(), 2)
	require.Equal(t, "bio-progress bio-progress--striped", p.Classes())
	require.Equal(t, "bio-progress__bar bio-progress__bar--success bio-progress__bar--striped", p.BarClasses(ColorSuccess))
	require.Equal(t, "bio-progress__bar bio-progress__bar--default bio-progress__bar--striped", p.BarClasses(""))

	require.Equal(t, "0%", BarWidth(-5))
	require.Equal(t, "42.5%", BarWidth(42.5))
	require.Equal(t, "100%", BarWidth(250))
}

func TestModal(t *testing.T) {
	t.Parallel()

	m := NewModal("Confirm")
	require.Equal(t, "bio-modal bio-modal--default", m.Classes())
	require.Equal(t, "500px", m.Width())

	m.Size = ModalSizeExtraLarge
	m.Type = ModalTypeCustom
	require.Equal(t, "bio-modal bio-modal--extra-large bio-modal--custom", m.Classes())
	require.Equal(t, "1140px", m.Width())

	m.Size = ModalSizeSmall
	require.Equal(t, "300px", m.Width())
	m.Size = ModalSizeLarge
	require.Equal(t, "800px", m.Width())

	closed := 0
	m.OnClose(func() { closed++ })
	m.Open()
	m.BackdropClick(false)
	require.True(t, m.IsOpen())
	m.BackdropClick(true)
	require.False(t, m.IsOpen())
	require.Equal(t, 1, closed)
}

func TestNavbar(t *testing.T) {
	t.Parallel()

	n := NewNavbar("bio")
	n.Scheme = NavbarSchemeDark
	n.OnToggle(func() { n.SetExpanded(!n.Expanded()) })

	require.Equal(t, "bio-navbar bio-navbar--dark", n.Classes())
	n.Toggle()
	require.Equal(t, "bio-navbar bio-navbar--dark bio-navbar--expanded", n.Classes())
}

func TestDropdown(t *testing.T) {
	t.Parallel()

	items := []MenuItem{{Label: "Edit"}, {Label: "Delete", Disabled: true}}
	d := NewDropdown("Actions", items, DropdownOptions{})

	var selected []string
	d.OnSelect(func(item MenuItem) { selected = append(selected, item.Label) })

	d.Toggle()
	require.True(t, d.IsOpen())
	require.False(t, d.Select(1))
	require.False(t, d.Select(5))
	require.True(t, d.IsOpen())

	require.True(t, d.Select(0))
	require.False(t, d.IsOpen())
	require.Equal(t, []string{"Edit"}, selected)

	d.Toggle()
	d.ClickOutside()
	require.False(t, d.IsOpen())

	require.Equal(t, "bio-dropdown-menu-item bio-dropdown-menu-item--disabled", d.ItemClasses(items[1]))
}

func TestDropdownMenuArrow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		direction Direction
		arrow     MenuArrow
		want      MenuArrow
	}{
		{DirectionDown, "", ArrowTopCenter},
		{DirectionUp, "", ArrowBottomCenter},
		{DirectionLeft, "", ArrowRightCenter},
		{DirectionRight, "", ArrowLeftCenter},
		{DirectionUp, ArrowTopLeft, ArrowTopLeft},
	}

	for _, tt := range tests {
		d := NewDropdown("x", nil, DropdownOptions{Direction: tt.direction, Arrow: tt.arrow})
		require.Equal(t, tt.want, d.MenuArrow(), "direction %s arrow %q", tt.direction, tt.arrow)
	}
}
