package pagination

// MsgInvalidParameters is the plain-text body returned for rejected
// pagination input.
const MsgInvalidParameters = "Invalid pagination parameters."

// Validator clamps requested page sizes against the configured maximum.
// Every paginated endpoint runs its query parameters through Validate
// before touching a repository.
type Validator struct {
	MaxPageSize int
}

// Validate rejects page or pageSize below 1 outright and silently clamps
// pageSize down to MaxPageSize. The returned size is 0 when invalid.
func (v Validator) Validate(page, pageSize int) (bool, int) {
	if page < 1 || pageSize < 1 {
		return false, 0
	}
	if pageSize > v.MaxPageSize {
		return true, v.MaxPageSize
	}
	return true, pageSize
}

// Page is the response envelope for every paginated listing.
type Page[T any] struct {
	Data       []T `json:"data"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

func NewPage[T any](data []T, pageNumber, pageSize, totalCount int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:       data,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}
