package validation

// Validator checks a single field value.
type Validator func(value string) Result

// FieldState is the per-input state of a form field.
type FieldState struct {
	Value   string
	Error   string
	Touched bool
}

// Form tracks a fixed, ordered set of fields and their validators.
// It is not safe for concurrent use.
type Form struct {
	order   []string
	initial map[string]string
	schema  map[string]Validator
	fields  map[string]FieldState
}

// FormField declares one field of a Form.
type FormField struct {
	Name      string
	Initial   string
	Validator Validator
}

// NewForm builds a form with the given fields in order. A nil Validator
// accepts any value.
func NewForm(fields ...FormField) *Form {
	f := &Form{
		initial: make(map[string]string, len(fields)),
		schema:  make(map[string]Validator, len(fields)),
	}
	for _, fd := range fields {
		f.order = append(f.order, fd.Name)
		f.initial[fd.Name] = fd.Initial
		v := fd.Validator
		if v == nil {
			v = func(string) Result { return ok }
		}
		f.schema[fd.Name] = v
	}
	f.Reset()
	return f
}

// SetValue stores value, marks the field touched and clears its error.
// Unknown fields are ignored.
func (f *Form) SetValue(name, value string) {
	if _, known := f.fields[name]; !known {
		return
	}
	f.fields[name] = FieldState{Value: value, Touched: true}
}

// ValidateField runs the field's validator and records the error.
func (f *Form) ValidateField(name string) bool {
	st, known := f.fields[name]
	if !known {
		return false
	}
	res := f.schema[name](st.Value)
	st.Error = res.Error
	f.fields[name] = st
	return res.IsValid
}

// ValidateAll validates every field, marks all of them touched and reports
// whether the whole form is valid.
func (f *Form) ValidateAll() bool {
	valid := true
	for _, name := range f.order {
		st := f.fields[name]
		res := f.schema[name](st.Value)
		st.Touched = true
		st.Error = res.Error
		f.fields[name] = st
		if !res.IsValid {
			valid = false
		}
	}
	return valid
}

// Field returns the state of a field.
func (f *Form) Field(name string) FieldState {
	return f.fields[name]
}

// FirstError returns the first field error in declaration order.
func (f *Form) FirstError() (field, msg string, found bool) {
	for _, name := range f.order {
		if e := f.fields[name].Error; e != "" {
			return name, e, true
		}
	}
	return "", "", false
}

// Values returns the current value of every field.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.order))
	for _, name := range f.order {
		out[name] = f.fields[name].Value
	}
	return out
}

// Reset restores initial values and clears errors and touched flags.
func (f *Form) Reset() {
	f.fields = make(map[string]FieldState, len(f.order))
	for _, name := range f.order {
		f.fields[name] = FieldState{Value: f.initial[name]}
	}
}

// LoginForm returns the email/password form used by the login screen.
func LoginForm() *Form {
	return NewForm(
		FormField{Name: FieldEmail, Validator: ValidateEmail},
		FormField{Name: FieldPassword, Validator: ValidatePassword},
	)
}

// SignupForm returns the name/email/password/confirm form. The confirm
// validator compares against the password value held by the form.
func SignupForm() *Form {
	f := NewForm(
		FormField{Name: FieldName, Validator: ValidateName},
		FormField{Name: FieldEmail, Validator: ValidateEmail},
		FormField{Name: FieldPassword, Validator: ValidatePassword},
		FormField{Name: FieldConfirmPassword},
	)
	f.schema[FieldConfirmPassword] = func(confirm string) Result {
		return ValidateConfirmPassword(f.fields[FieldPassword].Value, confirm)
	}
	return f
}
