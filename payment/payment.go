// Package payment wraps the payment gateway client. The gateway's own
// logic is a black box to the rest of the app: handlers only see
// payment intents, refunds and invoices.
package payment

import (
	"fmt"
	"math"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"confreg-webapp/pricing"
)

var snapClient snap.Client
var coreClient coreapi.Client

// Init must be called at bootstrap, before any gateway operation.
func Init(serverKey string, useProduction bool) {
	env := midtrans.Sandbox
	if useProduction {
		env = midtrans.Production
	}
	snapClient.New(serverKey, env)
	coreClient.New(serverKey, env)
}

type Customer struct {
	FirstName string
	LastName  string
	Email     string
}

// Intent is a created payment the attendee can complete through the
// gateway's hosted page.
type Intent struct {
	OrderId     string `json:"order_id"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// CreatePaymentIntent registers a pending transaction with the gateway
// for the resolved charge. Zero-amount charges must be filtered out by
// the caller, the gateway rejects them.
func CreatePaymentIntent(orderId string, charge pricing.ChargeAmount, description string, customer Customer) (Intent, error) {
	if charge.Amount <= 0 {
		return Intent{}, fmt.Errorf("cannot create payment intent for non-positive amount %v", charge.Amount)
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: grossAmount(charge.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.FirstName,
			LName: customer.LastName,
			Email: customer.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderId,
				Price: grossAmount(charge.Amount),
				Qty:   1,
				Name:  truncate(description, 50),
			},
		},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return Intent{}, fmt.Errorf("payment gateway rejected transaction: %v", err.GetMessage())
	}

	return Intent{OrderId: orderId, Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

// Refund refunds a settled transaction, fully when amount is zero.
func Refund(orderId string, amount float64, reason string) error {
	req := &coreapi.RefundReq{Reason: reason}
	if amount > 0 {
		req.Amount = grossAmount(amount)
	}

	_, err := coreClient.RefundTransaction(orderId, req)
	if err != nil {
		return fmt.Errorf("payment gateway rejected refund for order %v: %v", orderId, err.GetMessage())
	}
	return nil
}

// CreateInvoice creates a longer-lived hosted payment page for offline
// style invoicing (bank transfer deadlines measured in days, not the
// default session length).
func CreateInvoice(orderId string, charge pricing.ChargeAmount, description string, customer Customer, dueInDays int64) (Intent, error) {
	if charge.Amount <= 0 {
		return Intent{}, fmt.Errorf("cannot create invoice for non-positive amount %v", charge.Amount)
	}
	if dueInDays <= 0 {
		dueInDays = 14
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: grossAmount(charge.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.FirstName,
			LName: customer.LastName,
			Email: customer.Email,
		},
		Expiry: &snap.ExpiryDetails{
			Unit:     "day",
			Duration: dueInDays,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    orderId,
				Price: grossAmount(charge.Amount),
				Qty:   1,
				Name:  truncate(description, 50),
			},
		},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return Intent{}, fmt.Errorf("payment gateway rejected invoice: %v", err.GetMessage())
	}

	return Intent{OrderId: orderId, Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

func grossAmount(amount float64) int64 {
	return int64(math.Round(amount))
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
