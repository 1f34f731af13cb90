package harness

// NetworkError means that no usable response was received: the connection failed, the request
// timed out, or the response could not be read.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e NetworkError) Error() string {
	return "Request failed: " + e.Err.Error()
}

func (e NetworkError) Unwrap() error {
	return e.Err
}
