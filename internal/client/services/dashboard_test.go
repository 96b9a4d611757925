package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_OrderActions(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	svc := NewDashboardService(client)

	require.NoError(t, svc.CancelOrder(ctx, 4))
	assert.Equal(t, 1, client.cancelCalls)

	info, err := svc.TrackOrder(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "shipped", info.Status)

	require.NoError(t, svc.ConfirmDelivery(ctx, 4))
	assert.Equal(t, 1, client.confirmCalls)

	require.NoError(t, svc.RateOrder(ctx, 4, 5))
	assert.Equal(t, 1, client.rateCalls)
	assert.Equal(t, 5, client.lastRating)
}

func TestDashboardService_OrderActions_RejectNonPositiveID(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	svc := NewDashboardService(client)

	var verr *ValidationError
	require.ErrorAs(t, svc.CancelOrder(ctx, 0), &verr)
	_, err := svc.TrackOrder(ctx, -1)
	require.ErrorAs(t, err, &verr)
	require.ErrorAs(t, svc.ConfirmDelivery(ctx, 0), &verr)
	require.ErrorAs(t, svc.RateOrder(ctx, 0, 5), &verr)

	assert.Zero(t, client.cancelCalls)
	assert.Zero(t, client.confirmCalls)
	assert.Zero(t, client.rateCalls)
}

func TestDashboardService_RateOrder_BoundsRating(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	svc := NewDashboardService(client)

	var verr *ValidationError
	require.ErrorAs(t, svc.RateOrder(ctx, 4, 0), &verr)
	require.ErrorAs(t, svc.RateOrder(ctx, 4, 6), &verr)
	assert.Zero(t, client.rateCalls)
}
