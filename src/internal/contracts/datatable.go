package contracts

// DatatableMeta is the pagination state of a datatable.
type DatatableMeta struct {
	Count int `json:"count"`
	Limit int `json:"limit"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

type DatatableSort struct {
	Column           string `json:"column,omitempty"`
	OrderByAscending bool   `json:"orderByAscending"`
}

type DatatableSearch struct {
	Key    string `json:"key"`
	Column string `json:"column,omitempty"`
}

// DatatableSearchColumn is a searchable column. Name is sent to the server,
// Title is displayed.
type DatatableSearchColumn struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

type FilterType string

const (
	FilterText   FilterType = "text"
	FilterNumber FilterType = "number"
	FilterSelect FilterType = "select"
)

type FilterOption struct {
	Value any    `json:"value,omitempty"`
	Title string `json:"title,omitempty"`
}

type DatatableFilter struct {
	Slug         string         `json:"slug"`
	Label        string         `json:"label"`
	Placeholder  string         `json:"placeholder,omitempty"`
	Type         FilterType     `json:"type,omitempty"`
	Options      []FilterOption `json:"options,omitempty"`
	DefaultValue any            `json:"defaultValue,omitempty"`
}

type DatatablePaginationLink struct {
	IsActive   bool   `json:"isActive,omitempty"`
	IsDisabled bool   `json:"isDisabled,omitempty"`
	Title      string `json:"title"`
}

// DataListItem is one row of a key/value summary list.
type DataListItem struct {
	Title       string  `json:"title"`
	Value       any     `json:"value,omitempty"`
	Type        string  `json:"type,omitempty"`
	Description string  `json:"description,omitempty"`
	Change      float64 `json:"change,omitempty"`
	Href        string  `json:"href,omitempty"`
	IsStatus    bool    `json:"isStatus,omitempty"`
}

type TabLink struct {
	Title string `json:"title"`
	Name  string `json:"name,omitempty"`
	Href  string `json:"href,omitempty"`
	Exact bool   `json:"exact,omitempty"`
}

type LinkProperties struct {
	Namespace string `json:"namespace,omitempty"`
	Title     string `json:"title"`
	To        string `json:"to,omitempty"`
}

// DatatableMetaFromPage converts a server page meta into datatable state.
func DatatableMetaFromPage(meta PageMeta, count int) DatatableMeta {
	return DatatableMeta{
		Count: count,
		Limit: meta.PerPage,
		Page:  meta.CurrentPage,
		Pages: meta.LastPage,
		Total: meta.Total,
	}
}
