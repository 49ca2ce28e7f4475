package icontrol

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/f5m/internal/domain"
)

// ErrNotFound marks a 404 from the management API. Operations translate it
// into the domain sentinel that fits the object they looked up.
var ErrNotFound = errors.New("object not found")

// nodeReferencedCode is the TMOS message id for "node address is referenced by a member of pool".
const nodeReferencedCode = "01070110"

type faultBody struct {
	Code       int      `json:"code"`
	Message    string   `json:"message"`
	ErrorStack []string `json:"errorStack"`
}

// APIError is a non-2xx answer from the appliance, carrying its message verbatim.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("appliance returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("appliance returned status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// classifyFault is the only place that interprets appliance faults. Structured
// status and message ids win; message substrings are the fallback.
func classifyFault(statusCode int, fault faultBody) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Code: fault.Code, Message: strings.TrimSpace(fault.Message)}

	switch {
	case statusCode == http.StatusUnauthorized || fault.Code == http.StatusUnauthorized:
		apiErr.kind = domain.ErrAuthentication
	case strings.HasPrefix(apiErr.Message, nodeReferencedCode) || strings.Contains(apiErr.Message, "is referenced by"):
		apiErr.kind = domain.ErrNodeReferenced
	case statusCode == http.StatusNotFound || fault.Code == http.StatusNotFound || strings.Contains(apiErr.Message, "was not found"):
		apiErr.kind = ErrNotFound
	}

	return apiErr
}

func decodeFault(resp *http.Response) *APIError {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return classifyFault(resp.StatusCode, faultBody{})
	}

	var fault faultBody
	if err := json.Unmarshal(data, &fault); err != nil {
		fault = faultBody{Message: strings.TrimSpace(string(data))}
	}

	return classifyFault(resp.StatusCode, fault)
}
