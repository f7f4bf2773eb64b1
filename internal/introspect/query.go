// Package introspect fetches the raw type descriptors of a GraphQL schema,
// either by POSTing the introspection query to an endpoint or by reading a
// saved introspection response from disk.
package introspect

import (
	"github.com/leapstack-labs/gqlvis/pkg/schema"
)

// Query is the introspection query sent to endpoints. It resolves field
// types three wrapper levels deep.
const Query = `{
  __schema {
    types {
      name
      kind
      fields {
        name
        type {
          name
          kind
          ofType {
            name
            kind
            ofType {
              name
              kind
              ofType {
                name
                kind
              }
            }
          }
        }
      }
    }
  }
}`

// Request is the JSON body POSTed to the endpoint.
type Request struct {
	Query string `json:"query"`
}

// GraphQLError is one entry of a response's errors list.
type GraphQLError struct {
	Message string `json:"message"`
}

// Response is the introspection response envelope.
type Response struct {
	Data *struct {
		Schema *struct {
			Types []schema.Descriptor `json:"types"`
		} `json:"__schema"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// Types returns the raw descriptors of a decoded response.
func (r *Response) Types() ([]schema.Descriptor, error) {
	if len(r.Errors) > 0 && (r.Data == nil || r.Data.Schema == nil) {
		return nil, &ResponseError{Errors: r.Errors}
	}
	if r.Data == nil || r.Data.Schema == nil {
		return nil, ErrNoSchema
	}
	if r.Data.Schema.Types == nil {
		return []schema.Descriptor{}, nil
	}
	return r.Data.Schema.Types, nil
}
