// Package handlers implements the localflipper HTTP API: health probes,
// listing evaluation, saved searches, search runs and deals.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
