package utils

// ResponseData is the JSON envelope for API error/management responses.
// Status drives the HTTP code but is not serialized.
type ResponseData struct {
	Status  int    `json:"-"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Results any    `json:"results,omitempty"`
}
