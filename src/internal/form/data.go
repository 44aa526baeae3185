package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/casava/admin-console/src/internal/log"
	"github.com/casava/admin-console/src/internal/transport"
)

// ExtractFormData returns the submittable body of the form. With multipart
// set the result is a *transport.Multipart carrying file fields as file
// parts; otherwise it is a map from field name to value.
func ExtractFormData(form *Form, multipart bool) any {
	if multipart {
		body := transport.NewMultipart()
		for _, field := range form.Fields {
			addMultipart(body, field.Name, field.value())
		}
		return body
	}

	data := make(map[string]any, len(form.Fields))
	for _, field := range form.Fields {
		data[field.Name] = field.value()
	}
	return data
}

func addMultipart(body *transport.Multipart, name string, value any) {
	switch v := value.(type) {
	case nil:
	case *File:
		body.AddFile(transport.MultipartFile{
			Field:       name,
			Filename:    v.Name,
			ContentType: v.ContentType,
			Content:     v.Content,
		})
	case string:
		body.Add(name, v)
	case []string:
		for _, item := range v {
			body.Add(name+"[]", item)
		}
	case []any:
		for _, item := range v {
			addMultipart(body, name+"[]", item)
		}
	case bool:
		body.Add(name, strconv.FormatBool(v))
	case time.Time:
		body.Add(name, v.Format(time.RFC3339))
	default:
		body.Add(name, fmt.Sprint(v))
	}
}

// SetFieldErrors writes backend field errors onto the matching fields.
// Errors for unknown fields are dropped.
func SetFieldErrors(form *Form, errs map[string][]string) {
	for name, messages := range errs {
		field := form.Field(name)
		if field == nil {
			log.Debugf("Dropping errors for unknown field %s: %v", name, messages)
			continue
		}
		field.Errors = append([]string(nil), messages...)
	}
}

// wrap nests body under key. Multipart fields are renamed to key[name].
func wrap(body any, key string) any {
	if key == "" {
		return body
	}

	mp, ok := body.(*transport.Multipart)
	if !ok {
		return map[string]any{key: body}
	}

	out := transport.NewMultipart()
	for name, values := range mp.Fields {
		for _, v := range values {
			out.Add(nestedName(key, name), v)
		}
	}
	for _, f := range mp.Files {
		f.Field = nestedName(key, f.Field)
		out.AddFile(f)
	}
	return out
}

// nestedName turns "tags[]" under "customer" into "customer[tags][]".
func nestedName(key, name string) string {
	if base, ok := strings.CutSuffix(name, "[]"); ok {
		return key + "[" + base + "][]"
	}
	return key + "[" + name + "]"
}
