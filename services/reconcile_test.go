package services

import (
	"math"
	"testing"

	"almaceramica-backend/models"
)

func TestReconcilePartialPayment(t *testing.T) {
	payments := []models.PaymentDetail{
		{Amount: 60, Method: models.PaymentCash},
	}

	rec := Reconcile(100, payments)

	if rec.IsPaid {
		t.Errorf("Reconcile(100, [60]).IsPaid = true, want false")
	}
	if rec.TotalPaid != 60 {
		t.Errorf("Reconcile(100, [60]).TotalPaid = %v, want 60", rec.TotalPaid)
	}
	if rec.PendingBalance != 40 {
		t.Errorf("Reconcile(100, [60]).PendingBalance = %v, want 40", rec.PendingBalance)
	}
}

func TestReconcileFullPayment(t *testing.T) {
	payments := []models.PaymentDetail{
		{Amount: 60, Method: models.PaymentCash},
		{Amount: 40, Method: models.PaymentCard},
	}

	rec := Reconcile(100, payments)

	if !rec.IsPaid {
		t.Errorf("Reconcile(100, [60,40]).IsPaid = false, want true")
	}
	if rec.PendingBalance != 0 {
		t.Errorf("Reconcile(100, [60,40]).PendingBalance = %v, want 0", rec.PendingBalance)
	}
}

func TestReconcileOverpayment(t *testing.T) {
	payments := []models.PaymentDetail{
		{Amount: 150, Method: models.PaymentTransfer},
	}

	rec := Reconcile(100, payments)

	if !rec.IsPaid {
		t.Errorf("Reconcile(100, [150]).IsPaid = false, want true")
	}
	if rec.PendingBalance != 0 {
		t.Errorf("Reconcile(100, [150]).PendingBalance = %v, want 0", rec.PendingBalance)
	}
	if rec.TotalPaid != 150 {
		t.Errorf("Reconcile(100, [150]).TotalPaid = %v, want 150", rec.TotalPaid)
	}
}

func TestReconcileZeroPrice(t *testing.T) {
	rec := Reconcile(0, nil)

	if !rec.IsPaid {
		t.Errorf("Reconcile(0, nil).IsPaid = false, want true")
	}
	if rec.PendingBalance != 0 {
		t.Errorf("Reconcile(0, nil).PendingBalance = %v, want 0", rec.PendingBalance)
	}
}

func TestReconcileNaNAmountTreatedAsZero(t *testing.T) {
	payments := []models.PaymentDetail{
		{Amount: math.NaN(), Method: models.PaymentCash},
		{Amount: 30, Method: models.PaymentCash},
	}

	rec := Reconcile(100, payments)

	if rec.TotalPaid != 30 {
		t.Errorf("Reconcile with NaN payment: TotalPaid = %v, want 30", rec.TotalPaid)
	}
	if rec.PendingBalance != 70 {
		t.Errorf("Reconcile with NaN payment: PendingBalance = %v, want 70", rec.PendingBalance)
	}
}

func TestReconcileExactNoEpsilon(t *testing.T) {
	rec := Reconcile(100, []models.PaymentDetail{{Amount: 99.99}})
	if rec.IsPaid {
		t.Errorf("Reconcile(100, [99.99]).IsPaid = true, want false")
	}

	rec = Reconcile(100, []models.PaymentDetail{{Amount: 100}})
	if !rec.IsPaid {
		t.Errorf("Reconcile(100, [100]).IsPaid = false, want true")
	}
}

func TestReconcileIdempotent(t *testing.T) {
	payments := []models.PaymentDetail{
		{Amount: 25.5, Method: models.PaymentGiftcard, GiftcardID: "GC-1"},
		{Amount: 10, Method: models.PaymentCash},
	}

	first := Reconcile(80, payments)
	second := Reconcile(80, payments)

	if first != second {
		t.Errorf("Reconcile not idempotent: first = %+v, second = %+v", first, second)
	}
}

func TestReconcilePendingNeverNegative(t *testing.T) {
	cases := []struct {
		price    float64
		payments []float64
	}{
		{0, nil},
		{50, []float64{100}},
		{100, []float64{40, 80}},
		{-10, []float64{5}},
	}

	for _, tc := range cases {
		payments := make([]models.PaymentDetail, len(tc.payments))
		for i, a := range tc.payments {
			payments[i] = models.PaymentDetail{Amount: a}
		}
		rec := Reconcile(tc.price, payments)
		if rec.PendingBalance < 0 {
			t.Errorf("Reconcile(%v, %v).PendingBalance = %v, want >= 0", tc.price, tc.payments, rec.PendingBalance)
		}
	}
}
