package httputil

import "errors"

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)

// ErrInvalidID is returned when a resource ID in the path is not a positive integer.
var ErrInvalidID = errors.New("the specified resource ID is not valid, it must be a positive integer")

// ErrInvalidQueryString is returned when the query string cannot be parsed.
var ErrInvalidQueryString = errors.New("the query string contains unparseable data. Please check the values")
