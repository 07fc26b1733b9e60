package model

// Question is the request body accepted by the assistant endpoint.
// Question must be a non-empty JSON string.
type Question struct {
	Question string `json:"question" validate:"required"`
}

// Answer is the assistant response body.
type Answer struct {
	Answer string `json:"answer"`
}
