package merrors

import (
	"fmt"
	"strings"
)

// maxBodyLen limits how much of a response body ends up in an error message
const maxBodyLen = 200

// HTTPError is returned when a remote endpoint responds with a non 2xx status
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	str := fmt.Sprintf("%s for url: %s", status, e.URL)

	body := strings.TrimSpace(e.Body)
	if body == "" {
		return str
	}
	if len(body) > maxBodyLen {
		body = body[:maxBodyLen] + " …"
	}
	return str + " (" + body + ")"
}

// DecodeError is returned when downloaded image bytes can not be decoded
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("could not decode image: %s", e.Err)
	}
	return fmt.Sprintf("could not decode image from %s: %s", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError is a problem with user input. It is always raised before
// any network call happens.
type ValidationError struct {
	Field   string
	Message string
	// Missing is set when the field was empty
	Missing bool
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IOError wraps a failed local file operation (credential file, output files)
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s %s: %s", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
