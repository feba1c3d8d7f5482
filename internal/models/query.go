package models

// QueryParams are the optional listing filters plus the page bound. Both
// filters are exact matches and combine with AND; a zero value matches
// everything. Cursor is the opaque continuation token from a prior page.
type QueryParams struct {
	UserID string
	Tag    string
	Limit  int64
	Cursor string
}

// QueryPage is one page of matching records. HasMore is true iff the store
// reported an unconsumed continuation position, and Cursor is set iff
// HasMore. Because the store applies the page bound to items scanned rather
// than items matched, a filtered page may hold fewer than Limit records even
// when more matches exist past the scanned segment.
type QueryPage struct {
	Images  []ImageRecord
	Count   int
	Cursor  string
	HasMore bool
}
