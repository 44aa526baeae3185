// Package form holds validated form state and binds it to a request adapter
// for submission.
package form

// File is a file attached to a form field.
type File struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	Content     []byte `json:"content"`
}

// Field is a single form input. Rules use validator tag syntax, for example
// "required,email".
type Field struct {
	Name   string
	Value  any
	Rules  string
	Errors []string
	File   *File
}

// Form is a set of fields plus the submission state slots.
type Form struct {
	Fields  []*Field
	Loading bool
	Error   *string
	Success *string
}

// NewForm creates a form from fields.
func NewForm(fields ...*Field) *Form {
	return &Form{Fields: fields}
}

// Field returns the field with the given name, or nil.
func (f *Form) Field(name string) *Field {
	for _, field := range f.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// Set assigns a value to a field and clears its errors. It returns false if
// the field does not exist.
func (f *Form) Set(name string, value any) bool {
	field := f.Field(name)
	if field == nil {
		return false
	}
	if file, ok := value.(*File); ok {
		field.File = file
	} else {
		field.Value = value
	}
	field.Errors = nil
	return true
}

// Valid reports whether no field carries errors.
func (f *Form) Valid() bool {
	for _, field := range f.Fields {
		if len(field.Errors) > 0 {
			return false
		}
	}
	return true
}

// FieldErrors returns the errors of every field that has any.
func (f *Form) FieldErrors() map[string][]string {
	out := make(map[string][]string)
	for _, field := range f.Fields {
		if len(field.Errors) > 0 {
			out[field.Name] = append([]string(nil), field.Errors...)
		}
	}
	return out
}

// value returns what validation and extraction see for the field.
func (f *Field) value() any {
	if f.File != nil {
		return f.File
	}
	return f.Value
}
