package transport

import (
	"io"
	"mime"
	"mime/multipart"
	"testing"
)

func TestMultipart_EncodeFileParts(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		filename string
	}{
		{"plain", "avatar", "a.png"},
		{"quoted filename", "avatar", `my "best" photo.png`},
		{"backslash in field", `doc\1`, "cv.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := NewMultipart()
			body.AddFile(MultipartFile{Field: tt.field, Filename: tt.filename, Content: []byte("bytes")})

			buf, contentType, err := body.encode()
			if err != nil {
				t.Fatalf("encode() error = %v", err)
			}

			_, params, err := mime.ParseMediaType(contentType)
			if err != nil {
				t.Fatalf("ParseMediaType(%q) error = %v", contentType, err)
			}

			part, err := multipart.NewReader(buf, params["boundary"]).NextPart()
			if err != nil {
				t.Fatalf("NextPart() error = %v", err)
			}
			if part.FormName() != tt.field {
				t.Errorf("FormName() = %q, want %q", part.FormName(), tt.field)
			}
			if part.FileName() != tt.filename {
				t.Errorf("FileName() = %q, want %q", part.FileName(), tt.filename)
			}
			if got := part.Header.Get("Content-Type"); got != "application/octet-stream" {
				t.Errorf("Content-Type = %q, want application/octet-stream", got)
			}
			content, _ := io.ReadAll(part)
			if string(content) != "bytes" {
				t.Errorf("content = %q, want bytes", content)
			}
		})
	}
}
