package types

// Filter carries the parsed list-query parameters from a controller down to
// the repositories. Filter keys are json field names; repositories map them
// to columns through an allow-list.
type Filter struct {
	Filter map[string]interface{}
	Sort   map[string]string
	Limit  int
	Offset int
}
