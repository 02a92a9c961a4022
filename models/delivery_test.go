package models

import (
	"testing"
	"time"
)

func TestDeliveryEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

	cases := []struct {
		name      string
		status    DeliveryStatus
		scheduled time.Time
		want      DeliveryStatus
	}{
		{"pending future", DeliveryPending, now.AddDate(0, 0, 3), DeliveryPending},
		{"pending today", DeliveryPending, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), DeliveryPending},
		{"pending past", DeliveryPending, now.AddDate(0, 0, -1), DeliveryOverdue},
		{"ready past", DeliveryReady, now.AddDate(0, 0, -5), DeliveryReady},
		{"completed past", DeliveryCompleted, now.AddDate(0, 0, -5), DeliveryCompleted},
	}

	for _, tc := range cases {
		d := Delivery{Status: tc.status, ScheduledDate: tc.scheduled}
		if got := d.EffectiveStatus(now); got != tc.want {
			t.Errorf("%s: EffectiveStatus = %v, want %v", tc.name, got, tc.want)
		}
	}
}
