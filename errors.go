package efa

import (
	"fmt"
	"net/http"
)

// ConnectionError reports a server answer with a status other than 200 OK
type ConnectionError struct {
	StatusCode int
	URL        string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to fetch data from efa: HTTP %d (%s) from %s",
		e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}
