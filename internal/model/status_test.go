package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusInfo_Total(t *testing.T) {
	statuses := []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	}
	for _, status := range statuses {
		info := status.Info()
		assert.NotEmpty(t, info.Label, "label for %s", status)
		assert.NotEmpty(t, info.Color, "color for %s", status)
		assert.NotEmpty(t, info.Icon, "icon for %s", status)
	}
}

func TestOrderStatusInfo_Labels(t *testing.T) {
	assert.Equal(t, "Order Received", OrderStatusPending.Info().Label)
	assert.Equal(t, "Processing", OrderStatusProcessing.Info().Label)
	assert.Equal(t, "Shipped", OrderStatusShipped.Info().Label)
	assert.Equal(t, "Delivered", OrderStatusDelivered.Info().Label)
	assert.Equal(t, "Cancelled", OrderStatusCancelled.Info().Label)
}

func TestOrderStatusInfo_UnknownFallsBackToPending(t *testing.T) {
	assert.Equal(t, OrderStatusPending.Info(), OrderStatus("garbage").Info())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusShipped.Valid())
	assert.False(t, OrderStatus("garbage").Valid())
	assert.False(t, OrderStatus("").Valid())
}
