package llm

import "fmt"

// RemoteCallError is returned when the API answers with a non-success status.
// Body is the raw response body.
type RemoteCallError struct {
	StatusCode int
	Body       string
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("HTTPError %d:\n%s", e.StatusCode, e.Body)
}
