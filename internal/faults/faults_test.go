package faults

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFault_Error(t *testing.T) {
	f := InsufficientFunds("transaction_amount", "insufficient funds")
	assert.Equal(t, "insufficient_funds: insufficient funds (field transaction_amount)", f.Error())

	f = ConflictRetryable("concurrent balance update")
	assert.Equal(t, "conflict_retryable: concurrent balance update", f.Error())
}

func TestFault_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("create transaction: %w", NotFound("account", "account not found"))

	var f *Fault
	assert.True(t, errors.As(wrapped, &f))
	assert.Equal(t, CodeNotFound, f.Code)
	assert.Equal(t, "account", f.Field)
}

func TestFault_IsMatchesByCode(t *testing.T) {
	err := InvalidArgument("transaction_amount", "must be positive")

	assert.True(t, errors.Is(err, &Fault{Code: CodeInvalidArgument}))
	assert.False(t, errors.Is(err, &Fault{Code: CodeNotFound}))
}
