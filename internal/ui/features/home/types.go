// Package home provides the main page: the endpoint form and the two panes.
package home

// EndpointSignals is the endpoint form state sent by the frontend.
type EndpointSignals struct {
	URL string `json:"url"`
}
