package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func TestReconcile_MergesByOrderNumber(t *testing.T) {
	local := []models.OrderRecord{
		{OrderNumber: "DL-1", Date: day(1), TotalAmount: 1000, PaymentMethod: "card"},
		{OrderNumber: "DL-2", Date: day(2), TotalAmount: 2000},
	}
	remoteOrders := []models.OrderRecord{
		{OrderNumber: "DL-1", Date: day(1), TotalAmount: 1000, TrackingNumber: "T1", Status: models.OrderStatusShipped},
	}

	merged := Reconcile(local, remoteOrders)
	require.Len(t, merged, 2)

	// date desc
	assert.Equal(t, "DL-2", merged[0].OrderNumber)
	assert.Equal(t, "DL-1", merged[1].OrderNumber)

	// remote fields win, local fills the gaps
	assert.Equal(t, "T1", merged[1].TrackingNumber)
	assert.Equal(t, models.OrderStatusShipped, merged[1].Status)
	assert.Equal(t, "card", merged[1].PaymentMethod)
}

func TestReconcile_RemoteCopyWinsFieldwise(t *testing.T) {
	local := []models.OrderRecord{
		{OrderNumber: "DL-1", Date: day(1), Status: models.OrderStatusDelivered, Carrier: "local courier"},
	}
	remoteOrders := []models.OrderRecord{
		{OrderNumber: "DL-1", Date: day(1), Status: models.OrderStatusShipped},
	}

	merged := Reconcile(local, remoteOrders)
	require.Len(t, merged, 1)

	// the remote copy set a status, so the local one is discarded;
	// the carrier only the local copy knew survives
	assert.Equal(t, models.OrderStatusShipped, merged[0].Status)
	assert.Equal(t, "local courier", merged[0].Carrier)
}

func TestReconcile_NoOrderDropped(t *testing.T) {
	local := []models.OrderRecord{
		{OrderNumber: "DL-1", Date: day(1)},
		{OrderNumber: "DL-3", Date: day(3)},
	}
	remoteOrders := []models.OrderRecord{
		{OrderNumber: "DL-2", Date: day(2)},
	}

	merged := Reconcile(local, remoteOrders)
	require.Len(t, merged, 3)

	numbers := make(map[string]bool)
	for _, o := range merged {
		numbers[o.OrderNumber] = true
	}
	assert.True(t, numbers["DL-1"] && numbers["DL-2"] && numbers["DL-3"])
}

func TestReconcile_Idempotent(t *testing.T) {
	local := []models.OrderRecord{
		{OrderNumber: "DL-1", Date: day(1), PaymentMethod: "card"},
		{OrderNumber: "DL-2", Date: day(2)},
	}
	remoteOrders := []models.OrderRecord{
		{OrderNumber: "DL-1", Date: day(1), TrackingNumber: "T1"},
	}

	once := Reconcile(local, remoteOrders)
	twice := Reconcile(once, remoteOrders)

	assert.Equal(t, once, twice)
}

func TestReconcile_SortTieBreaksOnOrderNumber(t *testing.T) {
	same := day(5)
	merged := Reconcile(
		[]models.OrderRecord{{OrderNumber: "DL-A", Date: same}},
		[]models.OrderRecord{{OrderNumber: "DL-B", Date: same}},
	)
	require.Len(t, merged, 2)
	assert.Equal(t, "DL-B", merged[0].OrderNumber)
	assert.Equal(t, "DL-A", merged[1].OrderNumber)
}

func TestLocalOnly(t *testing.T) {
	local := []models.OrderRecord{
		{OrderNumber: "DL-1"},
		{OrderNumber: "DL-2"},
	}
	remoteOrders := []models.OrderRecord{
		{OrderNumber: "DL-1"},
	}

	only := LocalOnly(local, remoteOrders)
	require.Len(t, only, 1)
	assert.Equal(t, "DL-2", only[0].OrderNumber)

	assert.Empty(t, LocalOnly(nil, remoteOrders))
	assert.Empty(t, LocalOnly(local, local))
}

func TestFetchRemote_SkipsMalformedDocuments(t *testing.T) {
	ds := newFakeDocStore()
	ds.seed(t, remote.CollectionOrders, "DL-1", &models.OrderRecord{OrderNumber: "DL-1", AccountID: "id-1"})
	ds.seedRaw(remote.CollectionOrders, "DL-bad", []byte(`{"orderNumber": 42, "accountId": "id-1"}`))

	r := NewOrderReconciler(ds, testLogger())

	orders, err := r.FetchRemote(context.Background(), "id-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "DL-1", orders[0].OrderNumber)
}

func TestPushLocalOnly(t *testing.T) {
	ctx := context.Background()
	ds := newFakeDocStore()
	r := NewOrderReconciler(ds, testLogger())

	pushed := r.PushLocalOnly(ctx, "canon-1", []models.OrderRecord{
		{OrderNumber: "DL-1", AccountID: "local-x"},
		{OrderNumber: "DL-2"},
	})
	assert.Equal(t, 2, pushed)

	// pushed orders carry the canonical account id
	var stored models.OrderRecord
	found, err := ds.Get(ctx, remote.CollectionOrders, "DL-1", &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "canon-1", stored.AccountID)
}

func TestPushLocalOnly_FailuresDoNotAbortBatch(t *testing.T) {
	ds := newFakeDocStore()
	ds.PutErr = errors.New("store down")
	r := NewOrderReconciler(ds, testLogger())

	pushed := r.PushLocalOnly(context.Background(), "canon-1", []models.OrderRecord{
		{OrderNumber: "DL-1"},
		{OrderNumber: "DL-2"},
	})
	assert.Equal(t, 0, pushed)
	assert.Equal(t, 2, ds.PutCalls)
}
