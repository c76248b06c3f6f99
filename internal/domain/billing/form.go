package billing

// Form tracks billing input the way the checkout page sees it: values as
// typed, which fields were touched, and the validation result.
//
// The two callbacks notify the owning checkout session. onValidity fires on
// creation and on every change and blur; onValues fires on creation and on
// every change.
type Form struct {
	values     Values
	errors     Errors
	touched    map[Field]bool
	onValidity func(bool)
	onValues   func(Values)
}

// NewForm validates the empty form immediately so the owner starts with an
// invalid, known state.
func NewForm(onValidity func(bool), onValues func(Values)) *Form {
	f := &Form{
		touched:    map[Field]bool{},
		onValidity: onValidity,
		onValues:   onValues,
	}
	f.revalidate()
	f.notifyValues()
	return f
}

// Set changes one field and revalidates the whole form.
func (f *Form) Set(field Field, value string) error {
	if err := f.values.set(field, value); err != nil {
		return err
	}
	f.notifyValues()
	f.revalidate()
	return nil
}

// Blur marks field as touched so its error becomes visible.
func (f *Form) Blur(field Field) {
	f.touched[field] = true
	f.revalidate()
}

// Fill sets every field from v, in display order.
func (f *Form) Fill(v Values) {
	for _, field := range Fields {
		_ = f.Set(field, v.Get(field))
	}
}

// Submit touches every field and returns the values, or ErrInvalid.
func (f *Form) Submit() (Values, error) {
	for _, field := range Fields {
		f.touched[field] = true
	}
	f.revalidate()
	if !f.errors.Valid() {
		return Values{}, ErrInvalid
	}
	return f.values, nil
}

func (f *Form) Values() Values { return f.values }

func (f *Form) Valid() bool { return f.errors.Valid() }

// Errors returns all current errors, touched or not.
func (f *Form) Errors() Errors {
	out := make(Errors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// VisibleErrors returns errors of touched fields only.
func (f *Form) VisibleErrors() Errors {
	out := Errors{}
	for k, v := range f.errors {
		if f.touched[k] {
			out[k] = v
		}
	}
	return out
}

func (f *Form) revalidate() {
	f.errors = Validate(f.values)
	if f.onValidity != nil {
		f.onValidity(f.errors.Valid())
	}
}

func (f *Form) notifyValues() {
	if f.onValues != nil {
		f.onValues(f.values)
	}
}
