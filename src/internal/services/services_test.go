package services

import (
	"reflect"
	"testing"
)

func TestResolver_BaseURL(t *testing.T) {
	r := NewResolver(map[Name]string{
		Casava: "https://api.casava.test/v1/",
		Smedan: "https://smedan.casava.test",
	})

	tests := []struct {
		name    string
		service Name
		want    string
	}{
		{"casava", Casava, "https://api.casava.test/v1"},
		{"smedan", Smedan, "https://smedan.casava.test"},
		{"unset falls back to default", "", "https://api.casava.test/v1"},
		{"unknown falls back to default", "payments", "https://api.casava.test/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.BaseURL(tt.service); got != tt.want {
				t.Errorf("BaseURL(%q) = %q, want %q", tt.service, got, tt.want)
			}
		})
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		input   string
		want    Name
		wantErr bool
	}{
		{"casava", Casava, false},
		{" SMEDAN ", Smedan, false},
		{"", Default, false},
		{"unknown", "", true},
	}

	for _, tt := range tests {
		got, err := ParseName(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNames(t *testing.T) {
	want := []Name{Casava, Smedan}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
