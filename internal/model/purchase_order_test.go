package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurchaseOrderStatusValid(t *testing.T) {
	assert.True(t, POStatusPending.Valid())
	assert.True(t, POStatusApproved.Valid())
	assert.True(t, POStatusDelivered.Valid())
	assert.True(t, POStatusCancelled.Valid())
	assert.False(t, PurchaseOrderStatus("shipped").Valid())
	assert.False(t, PurchaseOrderStatus("").Valid())
}

func TestPurchaseOrderTransitions(t *testing.T) {
	cases := []struct {
		from, to PurchaseOrderStatus
		ok       bool
	}{
		{POStatusPending, POStatusApproved, true},
		{POStatusPending, POStatusDelivered, false},
		{POStatusPending, POStatusCancelled, true},
		{POStatusApproved, POStatusDelivered, true},
		{POStatusApproved, POStatusCancelled, true},
		{POStatusApproved, POStatusPending, false},
		{POStatusDelivered, POStatusDelivered, false},
		{POStatusDelivered, POStatusCancelled, false},
		{POStatusCancelled, POStatusPending, false},
		{POStatusCancelled, POStatusApproved, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
