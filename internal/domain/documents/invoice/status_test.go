package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fakturo/internal/core/types"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusIssued, true},
		{StatusDraft, StatusCancelled, true},
		{StatusDraft, StatusPaid, false},
		{StatusIssued, StatusPaid, true},
		{StatusIssued, StatusCancelled, true},
		{StatusIssued, StatusDraft, false},
		{StatusPaid, StatusDraft, false},
		{StatusPaid, StatusIssued, false},
		{StatusPaid, StatusCancelled, false},
		{StatusCancelled, StatusDraft, false},
		{StatusCancelled, StatusIssued, false},
		{StatusCancelled, StatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusIssued.IsTerminal())
	assert.True(t, StatusPaid.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestStatusMutable(t *testing.T) {
	assert.True(t, StatusDraft.Mutable())
	assert.True(t, StatusIssued.Mutable())
	assert.False(t, StatusPaid.Mutable())
	assert.False(t, StatusCancelled.Mutable())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("issued")
	assert.NoError(t, err)
	assert.Equal(t, StatusIssued, status)

	_, err = ParseStatus("archived")
	assert.Error(t, err)
}

func TestRecalculateTotals(t *testing.T) {
	inv := &Invoice{
		Items: []Item{
			{Quantity: 2, UnitPrice: types.MustMoney("10.50")},
			{Quantity: 3, UnitPrice: types.MustMoney("4.00")},
		},
	}
	inv.RecalculateTotals()

	assert.Equal(t, 1, inv.Items[0].LineNo)
	assert.Equal(t, 2, inv.Items[1].LineNo)
	assert.True(t, inv.Items[0].Total.Equal(types.MustMoney("21.00")))
	assert.True(t, inv.Items[1].Total.Equal(types.MustMoney("12.00")))
	assert.True(t, inv.Total.Equal(types.MustMoney("33.00")))
}
