package results

import "fmt"

// TransportError reports a results page that could not be retrieved or did
// not parse into the expected structure. The scanner treats it as fatal for
// the whole scan.
type TransportError struct {
	// URL is the page that failed, when known.
	URL string
	// Reason describes what went wrong in one line.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *TransportError) Error() string {
	msg := e.Reason
	if e.URL != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.URL)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportErr(url, reason string, cause error) *TransportError {
	return &TransportError{URL: url, Reason: reason, Err: cause}
}
