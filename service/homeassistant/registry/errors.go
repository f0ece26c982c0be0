package haregistry

import "fmt"

// APIError is returned when Home Assistant answers with a non-success status
type APIError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("home assistant api error on %s: %d %s", e.Endpoint, e.StatusCode, e.Status)
}
