package services

import (
	"math"

	"almaceramica-backend/models"
)

type Reconciliation struct {
	TotalPaid      float64 `json:"totalPaid"`
	PendingBalance float64 `json:"pendingBalance"`
	IsPaid         bool    `json:"isPaid"`
}

// Reconcile computes a booking's payment position from its price and
// payment entries. Pure: callers persist the IsPaid snapshot after every
// payment add or delete so the stored flag never drifts from the sum.
func Reconcile(price float64, payments []models.PaymentDetail) Reconciliation {
	var total float64
	for _, p := range payments {
		if math.IsNaN(p.Amount) {
			continue
		}
		total += p.Amount
	}

	// A zero or missing price is a free booking: paid, nothing pending.
	if price <= 0 {
		return Reconciliation{TotalPaid: total, PendingBalance: 0, IsPaid: true}
	}

	pending := price - total
	if pending < 0 {
		pending = 0
	}

	return Reconciliation{
		TotalPaid:      total,
		PendingBalance: pending,
		IsPaid:         total >= price,
	}
}
