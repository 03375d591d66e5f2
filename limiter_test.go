package sitecore

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToMax(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("attempt beyond max should be denied")
	}
}

func TestRateLimiterTracksIPsSeparately(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)

	if !l.Allow("1.1.1.1") {
		t.Fatal("first IP should be allowed")
	}
	if !l.Allow("2.2.2.2") {
		t.Error("a different IP should have its own budget")
	}
	if l.Allow("1.1.1.1") {
		t.Error("first IP should now be denied")
	}
}

func TestRateLimiterCheckDoesNotRecord(t *testing.T) {
	l := NewRateLimiter(1, time.Minute)

	for i := 0; i < 5; i++ {
		if !l.Check("9.9.9.9") {
			t.Fatal("Check alone should never consume the budget")
		}
	}
	l.Record("9.9.9.9")
	if l.Check("9.9.9.9") {
		t.Error("budget should be exhausted after Record")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	l := NewRateLimiter(1, 10*time.Millisecond)

	if !l.Allow("5.5.5.5") {
		t.Fatal("first attempt should be allowed")
	}
	if l.Allow("5.5.5.5") {
		t.Fatal("second attempt inside the window should be denied")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Allow("5.5.5.5") {
		t.Error("attempt after the window should be allowed again")
	}
}
