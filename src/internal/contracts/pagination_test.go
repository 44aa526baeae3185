package contracts

import (
	"reflect"
	"testing"
)

// render turns links into ints with 0 for gaps.
func render(links []*int) []int {
	out := make([]int, len(links))
	for i, p := range links {
		if p != nil {
			out[i] = *p
		}
	}
	return out
}

func TestPaginationLinks(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		pages int
		want  []int
	}{
		{"no pages", 1, 0, []int{}},
		{"single page", 1, 1, []int{1}},
		{"few pages", 2, 4, []int{1, 2, 3, 4}},
		{"start", 1, 20, []int{1, 2, 3, 0, 20}},
		{"middle", 6, 20, []int{1, 0, 4, 5, 6, 7, 8, 0, 20}},
		{"near start without gap", 4, 20, []int{1, 2, 3, 4, 5, 6, 0, 20}},
		{"end", 20, 20, []int{1, 0, 18, 19, 20}},
		{"page out of range", 99, 5, []int{1, 0, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(PaginationLinks(DatatableMeta{Page: tt.page, Pages: tt.pages}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PaginationLinks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaginationButtons(t *testing.T) {
	buttons := PaginationButtons(DatatableMeta{Page: 1, Pages: 5})

	titles := make([]string, len(buttons))
	for i, b := range buttons {
		titles[i] = b.Title
	}
	want := []string{"Prev", "1", "2", "3", "...", "5", "Next"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("titles = %v, want %v", titles, want)
	}
	if !buttons[0].IsDisabled || buttons[len(buttons)-1].IsDisabled {
		t.Error("Expected Prev disabled and Next enabled on the first page")
	}
	if !buttons[1].IsActive {
		t.Error("Expected page 1 to be active")
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name                 string
		page, perPage, total int
		want                 PageMeta
	}{
		{
			name: "first page", page: 1, perPage: 10, total: 25,
			want: PageMeta{CurrentPage: 1, From: 1, To: 10, LastPage: 3, PerPage: 10, Total: 25, Path: "/customers"},
		},
		{
			name: "last partial page", page: 3, perPage: 10, total: 25,
			want: PageMeta{CurrentPage: 3, From: 21, To: 25, LastPage: 3, PerPage: 10, Total: 25, Path: "/customers"},
		},
		{
			name: "clamped page", page: 9, perPage: 10, total: 25,
			want: PageMeta{CurrentPage: 3, From: 21, To: 25, LastPage: 3, PerPage: 10, Total: 25, Path: "/customers"},
		},
		{
			name: "empty list", page: 1, perPage: 10, total: 0,
			want: PageMeta{CurrentPage: 1, LastPage: 1, PerPage: 10, Path: "/customers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageMeta("/customers", tt.page, tt.perPage, tt.total)
			if got != tt.want {
				t.Errorf("NewPageMeta() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}

	if got := Slice(list, NewPageMeta("", 2, 2, len(list))); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Errorf("Slice() = %v", got)
	}
	if got := Slice(list, NewPageMeta("", 1, 2, 0)); len(got) != 0 {
		t.Errorf("Expected empty slice, got %v", got)
	}
}

func TestDatatableMetaFromPage(t *testing.T) {
	got := DatatableMetaFromPage(PageMeta{CurrentPage: 2, LastPage: 4, PerPage: 15, Total: 50}, 15)
	want := DatatableMeta{Count: 15, Limit: 15, Page: 2, Pages: 4, Total: 50}
	if got != want {
		t.Errorf("DatatableMetaFromPage() = %+v, want %+v", got, want)
	}
}

func TestNewPageLinks(t *testing.T) {
	meta := NewPageMeta("/customer-data", 2, 10, 21)

	type link struct {
		url    string
		label  string
		active bool
	}
	var got []link
	for _, l := range NewPageLinks(meta) {
		u := ""
		if l.URL != nil {
			u = *l.URL
		}
		got = append(got, link{u, l.Label, l.Active})
	}

	want := []link{
		{"/customer-data?page=1", "&laquo; Previous", false},
		{"/customer-data?page=1", "1", false},
		{"/customer-data?page=2", "2", true},
		{"/customer-data?page=3", "3", false},
		{"/customer-data?page=3", "Next &raquo;", false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewPageLinks() = %v, want %v", got, want)
	}
}

func TestNewPageLinks_DisabledControlsAndGaps(t *testing.T) {
	links := NewPageLinks(NewPageMeta("/customer-data", 1, 1, 20))

	if links[0].URL != nil {
		t.Errorf("Expected previous to be disabled on the first page, got %q", *links[0].URL)
	}
	if last := links[len(links)-1]; last.URL == nil {
		t.Error("Expected next to be enabled on the first page")
	}

	var gaps int
	for _, l := range links {
		if l.Label == "..." {
			gaps++
			if l.URL != nil {
				t.Errorf("Expected gap without URL, got %q", *l.URL)
			}
		}
	}
	if gaps != 1 {
		t.Errorf("Expected one gap, got %d", gaps)
	}
}
