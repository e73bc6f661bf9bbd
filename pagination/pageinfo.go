package pagination

// PageInfo describes the position of a returned page. HasNext is a
// heuristic; StartCursor, EndCursor and Total are attached by the
// caller after executing the query, since this package never executes
// anything.
type PageInfo struct {
	HasNext     bool
	StartCursor string
	EndCursor   string
	Total       int64
}

// NewPageInfo derives HasNext from the returned row count: a page is
// assumed to have a successor when it came back full. A non-positive
// limit never reports a next page.
func NewPageInfo(returned, limit int) PageInfo {
	return PageInfo{HasNext: limit > 0 && returned >= limit}
}
