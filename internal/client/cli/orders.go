package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
)

func (a *App) ListOrders(ctx context.Context) {
	session := a.controller.Current()
	if !session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	if len(session.Orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet")
		return
	}

	for _, o := range session.Orders {
		fmt.Fprintf(a.out, "%s  %s  %8.2f  %s", o.OrderNumber,
			o.Date.Format("2006-01-02"), float64(o.TotalAmount)/100, o.Status)
		if o.TrackingNumber != "" {
			fmt.Fprintf(a.out, "  tracking: %s (%s)", o.TrackingNumber, o.Carrier)
		}
		fmt.Fprintln(a.out)
	}
}

// Checkout builds a one-item order draft and hands it to the session
// controller. Payment and shipping math live outside the engine.
func (a *App) Checkout(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	product, err := getSimpleText(a.reader, "Product name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	size, err := getSimpleText(a.reader, "Size", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	qtyStr, err := getSimpleText(a.reader, "Quantity", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty <= 0 {
		fmt.Fprintln(a.out, "Quantity must be a positive number")
		return
	}
	priceStr, err := getSimpleText(a.reader, "Unit price (minor units)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil || price < 0 {
		fmt.Fprintln(a.out, "Price must be a non-negative number")
		return
	}
	payment, err := getSimpleText(a.reader, "Payment method", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	draft := models.OrderRecord{
		Items: []models.OrderItem{
			{ProductName: product, Size: size, Quantity: qty, UnitPrice: price},
		},
		TotalAmount:   price * int64(qty),
		PaymentMethod: payment,
	}

	order, result := a.controller.AppendOrder(ctx, draft)
	if !result.Success {
		fmt.Fprintf(a.out, "Checkout failed: %s\n", result.Message)
		return
	}

	fmt.Fprintf(a.out, "Order placed: %s\n", order.OrderNumber)
}

func (a *App) ListCoupons(ctx context.Context) {
	session := a.controller.Current()
	if !session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}

	coupons, err := a.cache.Coupons(ctx, session.Account.ID)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(coupons) == 0 {
		fmt.Fprintln(a.out, "No coupons")
		return
	}

	for _, c := range coupons {
		state := "valid"
		if c.Redeemed {
			state = "redeemed"
		}
		fmt.Fprintf(a.out, "%s  %d%%  %s  until %s  [%s]\n",
			c.Code, c.Percent, c.Description, c.Expires.Format("2006-01-02"), state)
	}
}
