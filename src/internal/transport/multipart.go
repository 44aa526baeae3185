package transport

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"
)

// MultipartFile is a file part of a multipart body.
type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

// Multipart is a multipart/form-data request body.
type Multipart struct {
	Fields map[string][]string
	Files  []MultipartFile
}

// NewMultipart creates an empty multipart body.
func NewMultipart() *Multipart {
	return &Multipart{Fields: make(map[string][]string)}
}

// Add appends a value for a form field.
func (m *Multipart) Add(name, value string) {
	if m.Fields == nil {
		m.Fields = make(map[string][]string)
	}
	m.Fields[name] = append(m.Fields[name], value)
}

// AddFile appends a file part.
func (m *Multipart) AddFile(file MultipartFile) {
	m.Files = append(m.Files, file)
}

// Get returns the first value of a field.
func (m *Multipart) Get(name string) string {
	if vals := m.Fields[name]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// encode writes the body and returns it with its content type. Fields are
// written in name order so the output is deterministic.
func (m *Multipart) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	names := make([]string, 0, len(m.Fields))
	for name := range m.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range m.Fields[name] {
			if err := w.WriteField(name, value); err != nil {
				return nil, "", err
			}
		}
	}

	for _, f := range m.Files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fileDisposition(f.Field, f.Filename))
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func fileDisposition(field, filename string) string {
	return fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(field), quoteEscaper.Replace(filename))
}
