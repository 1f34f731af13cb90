package shopapi

import (
	"fmt"

	"github.com/nirvanashop/shop-contract-tests/framework/helpers"
)

// maxBodyInMessage limits how much of a response body is quoted in an error message.
const maxBodyInMessage = 500

// MalformedBodyError means that a response had the expected status but its body did not have
// the expected shape.
type MalformedBodyError struct {
	Reason string
	Body   []byte
}

func (e MalformedBodyError) Error() string {
	return fmt.Sprintf("Invalid response format: %s: %s", e.Reason, helpers.DescribeBody(e.Body, maxBodyInMessage))
}
