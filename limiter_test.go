package interiorgen

import (
	"testing"
	"time"
)

func TestLoginLimiterAllowsUnderMax(t *testing.T) {
	l := NewLoginLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("attempt %d blocked, want allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("attempt over max was allowed")
	}
}

func TestLoginLimiterPerIP(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	if !l.Allow("10.0.0.1") {
		t.Fatal("first ip blocked")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("second ip blocked by first ip's attempts")
	}
}

func TestLoginLimiterCheckDoesNotRecord(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	for i := 0; i < 5; i++ {
		if !l.Check("10.0.0.1") {
			t.Fatal("Check alone consumed the budget")
		}
	}
	l.Record("10.0.0.1")
	if l.Check("10.0.0.1") {
		t.Error("Check passed after budget was spent")
	}
}

func TestLoginLimiterWindowExpiry(t *testing.T) {
	l := NewLoginLimiter(1, 10*time.Millisecond)
	l.Record("10.0.0.1")
	if l.Check("10.0.0.1") {
		t.Fatal("Check passed inside the window")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Check("10.0.0.1") {
		t.Error("attempt still counted after the window passed")
	}
}
