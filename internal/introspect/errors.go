package introspect

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSchema indicates a response without data.__schema.
	ErrNoSchema = errors.New("response has no __schema")

	// ErrGraphQL indicates a response carrying GraphQL errors.
	ErrGraphQL = errors.New("graphql error")

	// ErrInvalidResponse indicates a body that is not an introspection
	// response.
	ErrInvalidResponse = errors.New("invalid introspection response")
)

// ResponseError carries the GraphQL errors returned in place of a schema.
type ResponseError struct {
	Errors []GraphQLError
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return fmt.Sprintf("graphql error: %s", strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrGraphQL.
func (e *ResponseError) Unwrap() error {
	return ErrGraphQL
}

// StatusError is a non-2xx HTTP answer from the endpoint.
type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("endpoint %s returned HTTP %d", e.Endpoint, e.StatusCode)
}
