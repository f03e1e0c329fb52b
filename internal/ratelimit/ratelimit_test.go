package ratelimit

import (
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(time.Second, 3)

	// First 3 requests should succeed
	for i := 0; i < 3; i++ {
		if !limiter.Allow("test-key") {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 4th request should be blocked
	if limiter.Allow("test-key") {
		t.Error("4th request should be blocked")
	}

	// Wait for window to expire
	time.Sleep(1100 * time.Millisecond)

	// Should be allowed again
	if !limiter.Allow("test-key") {
		t.Error("Request after window expiry should be allowed")
	}
}

func TestLimiter_GetRemaining(t *testing.T) {
	limiter := NewLimiter(time.Second, 5)

	if remaining := limiter.GetRemaining("test-key"); remaining != 5 {
		t.Errorf("Expected 5 remaining, got %d", remaining)
	}

	limiter.Allow("test-key")
	limiter.Allow("test-key")

	if remaining := limiter.GetRemaining("test-key"); remaining != 3 {
		t.Errorf("Expected 3 remaining, got %d", remaining)
	}
}

func TestServiceLimiter_CheckLogin(t *testing.T) {
	limiter := NewCustomServiceLimiter(2, 5, 10)

	// First 2 attempts from same IP should succeed
	if err := limiter.CheckLogin("192.168.1.1"); err != nil {
		t.Errorf("First attempt should succeed: %v", err)
	}
	if err := limiter.CheckLogin("192.168.1.1"); err != nil {
		t.Errorf("Second attempt should succeed: %v", err)
	}

	// 3rd attempt from same IP should fail
	if err := limiter.CheckLogin("192.168.1.1"); err == nil {
		t.Error("3rd attempt from same IP should be blocked")
	}

	// Attempt from different IP should succeed
	if err := limiter.CheckLogin("192.168.1.2"); err != nil {
		t.Errorf("Attempt from different IP should succeed: %v", err)
	}
}

func TestServiceLimiter_CheckRunReport(t *testing.T) {
	limiter := NewCustomServiceLimiter(5, 5, 3)

	// First 3 runs should succeed
	for i := 0; i < 3; i++ {
		if err := limiter.CheckRunReport("user-1"); err != nil {
			t.Errorf("Run %d should succeed: %v", i+1, err)
		}
	}

	// 4th run should fail
	if err := limiter.CheckRunReport("user-1"); err == nil {
		t.Error("4th run should be blocked")
	}

	// Another user is unaffected
	if err := limiter.CheckRunReport("user-2"); err != nil {
		t.Errorf("Run for another user should succeed: %v", err)
	}

	if remaining := limiter.GetRunRemaining("user-1"); remaining != 0 {
		t.Errorf("Expected 0 remaining, got %d", remaining)
	}
}

func TestLimiter_Cleanup(t *testing.T) {
	limiter := NewLimiter(100*time.Millisecond, 5)

	// Create some entries
	limiter.Allow("key1")
	limiter.Allow("key2")
	limiter.Allow("key3")

	// Wait for expiration + cleanup cycle (cleanup runs every minute, so we test expiration instead)
	time.Sleep(150 * time.Millisecond)

	// After expiration, new requests should be allowed (proving cleanup works)
	if !limiter.Allow("key1") {
		t.Error("Request should be allowed after expiration")
	}
	if !limiter.Allow("key2") {
		t.Error("Request should be allowed after expiration")
	}
	if !limiter.Allow("key3") {
		t.Error("Request should be allowed after expiration")
	}
}
