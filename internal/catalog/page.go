package catalog

// The upstream service has shipped paginated responses in two shapes: a
// nested page-info object next to content, and the same fields flattened
// onto the envelope (Spring style). Which one arrives depends on the backend
// version, so both are accepted and folded into one canonical page.

// pageFields are the page-info fields; pointers distinguish absent from zero
type pageFields struct {
	Number        *int   `json:"number"`
	Size          *int   `json:"size"`
	TotalElements *int64 `json:"totalElements"`
	TotalPages    *int   `json:"totalPages"`
	First         *bool  `json:"first"`
	Last          *bool  `json:"last"`
}

// Envelope is the as-received paginated response
type Envelope[T any] struct {
	Content []T `json:"content"`

	// Nested page-info object, when present.
	PageInfo *pageFields `json:"page"`

	// Flat Spring-style fields, when present.
	pageFields
}

// Page is the canonical, backend-version-independent page shape
type Page[T any] struct {
	Content          []T   `json:"content"`
	Empty            bool  `json:"empty"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Number           int   `json:"number"`
	NumberOfElements int   `json:"numberOfElements"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
}

// NormalizePage folds either envelope shape into the canonical page. Each
// page field prefers the nested object, then the flat field, then a default.
// NumberOfElements is always recomputed from content; the envelope's own
// claim is not trusted. Malformed envelopes normalize, they never fail.
func NormalizePage[T any](envelope Envelope[T]) Page[T] {
	content := envelope.Content
	if content == nil {
		content = []T{}
	}

	nested := envelope.PageInfo
	if nested == nil {
		nested = &pageFields{}
	}
	flat := envelope.pageFields

	return Page[T]{
		Content:          content,
		Empty:            len(content) == 0,
		First:            pickBool(nested.First, flat.First, true),
		Last:             pickBool(nested.Last, flat.Last, true),
		Number:           pickInt(nested.Number, flat.Number, 0),
		NumberOfElements: len(content),
		Size:             pickInt(nested.Size, flat.Size, len(content)),
		TotalElements:    pickInt64(nested.TotalElements, flat.TotalElements, 0),
		TotalPages:       pickInt(nested.TotalPages, flat.TotalPages, 0),
	}
}

// MapPage converts a page's content, keeping the page metadata
func MapPage[T, U any](page Page[T], convert func(T) U) Page[U] {
	content := make([]U, 0, len(page.Content))
	for _, item := range page.Content {
		content = append(content, convert(item))
	}
	return Page[U]{
		Content:          content,
		Empty:            page.Empty,
		First:            page.First,
		Last:             page.Last,
		Number:           page.Number,
		NumberOfElements: page.NumberOfElements,
		Size:             page.Size,
		TotalElements:    page.TotalElements,
		TotalPages:       page.TotalPages,
	}
}

func pickInt(nested, flat *int, def int) int {
	if nested != nil {
		return *nested
	}
	if flat != nil {
		return *flat
	}
	return def
}

func pickInt64(nested, flat *int64, def int64) int64 {
	if nested != nil {
		return *nested
	}
	if flat != nil {
		return *flat
	}
	return def
}

func pickBool(nested, flat *bool, def bool) bool {
	if nested != nil {
		return *nested
	}
	if flat != nil {
		return *flat
	}
	return def
}
