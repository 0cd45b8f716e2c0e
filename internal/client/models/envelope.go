package models

// The backend wraps every JSON payload in a success envelope:
// collections come back as {success, count, items} and single
// resources as {success, item}. Domain failures carry the text in
// either "message" or "error".

// ListResponse is the collection envelope.
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Items   []T  `json:"items"`
}

// ItemResponse is the single-resource envelope.
type ItemResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Item    T      `json:"item"`
}

// StatusResponse is the envelope for operations that return no resource,
// e.g. deletes and e-mail sends.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SearchResults groups cross-resource search hits by kind.
type SearchResults struct {
	Success bool   `json:"success"`
	Query   string `json:"query"`
	Results struct {
		Associations []Association `json:"associations"`
		Faculties    []Faculty     `json:"faculties"`
	} `json:"results"`
}
