package stylist

import "fmt"

// APIError describes a failed exchange with the stylist backend. Status 0
// means no response was received at all (transport failure); any other value
// is the HTTP status the server answered with.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.IsTransport() {
		return fmt.Sprintf("stylist backend unreachable: %s", e.Message)
	}
	return fmt.Sprintf("stylist backend error (status %d): %s", e.Status, e.Message)
}

// IsTransport reports whether the failure happened before any response
// arrived, as opposed to the server answering with an error status.
func (e *APIError) IsTransport() bool {
	return e.Status == 0
}
