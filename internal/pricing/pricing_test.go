package pricing

import (
	"testing"
	"time"
)

func TestCurrentPriceSchedule(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		original float64
		days     int
		want     float64
	}{
		{"day zero", 100, 0, 100},
		{"day one", 100, 1, 90},
		{"day five", 100, 5, 50},
		{"floor reached", 100, 8, 20},
		{"floor held", 100, 20, 20},
		{"floor held far out", 100, 365, 20},
		{"cents rounded", 19.99, 1, 17.99},
		{"zero price", 0, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := createdAt.Add(time.Duration(tc.days) * 24 * time.Hour)
			got := CurrentPrice(tc.original, createdAt, now)
			if got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestCurrentPriceBounds(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for days := 0; days <= 400; days++ {
		now := createdAt.Add(time.Duration(days) * 24 * time.Hour)
		got := CurrentPrice(79.5, createdAt, now)
		if got < 0 {
			t.Fatalf("day %d: negative price %v", days, got)
		}
		if got > 79.5 {
			t.Fatalf("day %d: price %v above original", days, got)
		}
	}
}

func TestCurrentPriceMonotonic(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	prev := CurrentPrice(250, createdAt, createdAt)
	for days := 1; days <= 60; days++ {
		now := createdAt.Add(time.Duration(days) * 24 * time.Hour)
		got := CurrentPrice(250, createdAt, now)
		if got > prev {
			t.Fatalf("day %d: price %v rose above previous %v", days, got, prev)
		}
		prev = got
	}
}

func TestCurrentPriceIdempotent(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	now := createdAt.Add(73 * time.Hour)
	first := CurrentPrice(42, createdAt, now)
	second := CurrentPrice(42, createdAt, now)
	if first != second {
		t.Fatalf("same inputs produced %v then %v", first, second)
	}
}

func TestDayCount(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", createdAt, 0},
		{"under a day", createdAt.Add(23 * time.Hour), 0},
		{"one day", createdAt.Add(24 * time.Hour), 1},
		{"partial second day", createdAt.Add(47 * time.Hour), 1},
		{"clock skew", createdAt.Add(-2 * time.Hour), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DayCount(createdAt, tc.now); got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}

func TestDaysToSell(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		soldAt time.Time
		want   int
	}{
		{"same day three hours later", createdAt.Add(3 * time.Hour), 1},
		{"exactly one day", createdAt.Add(24 * time.Hour), 1},
		{"just over one day", createdAt.Add(25 * time.Hour), 2},
		{"a week", createdAt.Add(7 * 24 * time.Hour), 7},
		{"sold at listing instant", createdAt, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysToSell(createdAt, tc.soldAt); got != tc.want {
				t.Fatalf("expected %d got %d", tc.want, got)
			}
		})
	}
}
