package services

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/client/remote"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// OrderReconciler merges the order history found in the local cache with
// the one in the remote document store into a single deduplicated set,
// and pushes purely-local orders upward.
type OrderReconciler struct {
	docstore remote.DocumentStore
	logger   logging.Logger
}

func NewOrderReconciler(docstore remote.DocumentStore, logger logging.Logger) *OrderReconciler {
	return &OrderReconciler{
		docstore: docstore,
		logger:   logger.With("module", "reconciler"),
	}
}

// Reconcile merges two order collections keyed by order number. The
// remote copy of an order wins field by field; local values fill only
// fields the remote copy leaves unset. Orders present in a single
// collection pass through unchanged. The result is sorted by date
// descending (order number descending as a deterministic tie-break).
// Reconcile is a pure function and idempotent.
func Reconcile(local, remote []models.OrderRecord) []models.OrderRecord {
	byNumber := make(map[string]*models.OrderRecord, len(remote))
	merged := make([]models.OrderRecord, 0, len(remote)+len(local))

	for _, o := range remote {
		merged = append(merged, o)
		byNumber[o.OrderNumber] = &merged[len(merged)-1]
	}

	for _, o := range local {
		if existing, ok := byNumber[o.OrderNumber]; ok {
			existing.FillMissingFrom(o)
			continue
		}
		merged = append(merged, o)
		byNumber[o.OrderNumber] = &merged[len(merged)-1]
	}

	sort.Slice(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.After(merged[j].Date)
		}
		return merged[i].OrderNumber > merged[j].OrderNumber
	})

	return merged
}

// LocalOnly returns the orders present in local but absent from remote,
// by order number.
func LocalOnly(local, remote []models.OrderRecord) []models.OrderRecord {
	seen := make(map[string]struct{}, len(remote))
	for _, o := range remote {
		seen[o.OrderNumber] = struct{}{}
	}

	var out []models.OrderRecord
	for _, o := range local {
		if _, ok := seen[o.OrderNumber]; !ok {
			out = append(out, o)
		}
	}
	return out
}

// FetchRemote loads the account's orders from the document store.
func (r *OrderReconciler) FetchRemote(ctx context.Context, accountID string) ([]models.OrderRecord, error) {
	docs, err := r.docstore.Query(ctx, remote.CollectionOrders, "accountId", accountID)
	if err != nil {
		return nil, err
	}

	orders := make([]models.OrderRecord, 0, len(docs))
	for _, doc := range docs {
		var o models.OrderRecord
		if err := json.Unmarshal(doc, &o); err != nil {
			r.logger.Warn(ctx, "skipping malformed order document", "error", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// PushLocalOnly writes each purely-local order to the document store.
// Failures are logged per order and do not abort the batch; an order
// that fails to push stays local and is retried on the next
// reconciliation. Returns the number of orders pushed.
func (r *OrderReconciler) PushLocalOnly(ctx context.Context, accountID string, localOnly []models.OrderRecord) int {
	pushed := 0
	for _, o := range localOnly {
		o.AccountID = accountID
		if err := r.docstore.Put(ctx, remote.CollectionOrders, o.OrderNumber, &o); err != nil {
			r.logger.Warn(ctx, "failed to push local order",
				"order_number", o.OrderNumber, "error", err)
			continue
		}
		pushed++
	}
	return pushed
}
