package respond

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := map[error]int{
		storage.ErrUnauthorized:        http.StatusForbidden,
		storage.ErrNotFound:            http.StatusNotFound,
		storage.ErrInvalidArgument:     http.StatusBadRequest,
		storage.ErrInsufficientStock:   http.StatusConflict,
		storage.ErrInsufficientPayment: http.StatusPaymentRequired,
		storage.ErrPaused:              http.StatusServiceUnavailable,
		storage.ErrTerminated:          http.StatusGone,
		storage.ErrTransferFailed:      http.StatusBadGateway,
		assert.AnError:                 http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, Status(fmt.Errorf("wrapped: %w", err)), err.Error())
	}
}
