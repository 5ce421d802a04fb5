package enums

// SortField enumerates the catalog sort keys accepted by the fabrics API.
type SortField string

const (
	SortFieldName      SortField = "name"
	SortFieldPrice     SortField = "price"
	SortFieldCreatedAt SortField = "created_at"
	SortFieldCategory  SortField = "category"
)

func (f SortField) Valid() bool {
	switch f {
	case SortFieldName, SortFieldPrice, SortFieldCreatedAt, SortFieldCategory:
		return true
	}
	return false
}

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}
