package icontrol

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/f5m/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFault(t *testing.T) {
	tests := []struct {
		name   string
		status int
		fault  faultBody
		want   error
	}{
		{
			name:   "404 status",
			status: http.StatusNotFound,
			fault:  faultBody{Code: 404, Message: "01020036:3: The requested Pool (/Common/x) was not found."},
			want:   ErrNotFound,
		},
		{
			name:   "not found message under another status",
			status: http.StatusBadRequest,
			fault:  faultBody{Message: "The requested Pool Member (/Common/p /Common/10.0.0.5 80) was not found."},
			want:   ErrNotFound,
		},
		{
			name:   "node referenced by message id",
			status: http.StatusBadRequest,
			fault:  faultBody{Code: 400, Message: "01070110:3: Node address '/Common/10.0.0.5' is referenced by a member of pool '/Common/pool-B'."},
			want:   domain.ErrNodeReferenced,
		},
		{
			name:   "node referenced by substring",
			status: http.StatusBadRequest,
			fault:  faultBody{Message: "Node address /Common/10.0.0.5 is referenced by a member of pool /Common/b"},
			want:   domain.ErrNodeReferenced,
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			fault:  faultBody{Code: 401, Message: "Authentication failed."},
			want:   domain.ErrAuthentication,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyFault(tt.status, tt.fault)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.fault.Message)
		})
	}
}

func TestClassifyFaultLeavesUnknownFaultsUnclassified(t *testing.T) {
	err := classifyFault(http.StatusBadRequest, faultBody{Code: 400, Message: "01070734:3: Configuration error: invalid address"})

	assert.Nil(t, errors.Unwrap(err))
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrNodeReferenced)
	assert.Equal(t, "appliance returned status 400: 01070734:3: Configuration error: invalid address", err.Error())
}

func TestDecodeFaultFallsBackToRawBody(t *testing.T) {
	recorder := httptest.NewRecorder()
	recorder.WriteHeader(http.StatusBadGateway)
	_, _ = recorder.WriteString("upstream unavailable\n")

	err := decodeFault(recorder.Result())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	assert.Equal(t, "upstream unavailable", err.Message)
}
