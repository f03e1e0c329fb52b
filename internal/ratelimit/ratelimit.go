package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Limiter implements a simple in-memory sliding window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key, c := range l.counters {
			if now.After(c.expiresAt) {
				delete(l.counters, key)
			}
		}
		l.mu.Unlock()
	}
}

// ServiceLimiter groups the limiters the API server needs: credential
// endpoints keyed by client IP and report runs keyed by user id.
type ServiceLimiter struct {
	limiters map[string]*Limiter
	mu       sync.RWMutex
}

// NewServiceLimiter creates a limiter set with default limits
func NewServiceLimiter() *ServiceLimiter {
	return &ServiceLimiter{
		limiters: map[string]*Limiter{
			"ip_login":    NewLimiter(time.Minute, 10),  // 10 login attempts per IP per minute
			"ip_register": NewLimiter(time.Hour, 20),    // 20 registrations per IP per hour
			"user_run":    NewLimiter(time.Minute, 120), // 120 report runs per user per minute
		},
	}
}

// NewCustomServiceLimiter creates a limiter set with custom limits
func NewCustomServiceLimiter(loginLimit, registerLimit, runLimit int) *ServiceLimiter {
	return &ServiceLimiter{
		limiters: map[string]*Limiter{
			"ip_login":    NewLimiter(time.Minute, loginLimit),
			"ip_register": NewLimiter(time.Hour, registerLimit),
			"user_run":    NewLimiter(time.Minute, runLimit),
		},
	}
}

// CheckLogin verifies if a login attempt is allowed from the given IP
func (m *ServiceLimiter) CheckLogin(ip string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.limiters["ip_login"].Allow(ip) {
		return fmt.Errorf("too many login attempts, please try again later")
	}

	return nil
}

// CheckRegister verifies if a registration is allowed from the given IP
func (m *ServiceLimiter) CheckRegister(ip string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.limiters["ip_register"].Allow(ip) {
		return fmt.Errorf("too many registrations from this IP address, please try again later")
	}

	return nil
}

// CheckRunReport verifies if the user may run another report
func (m *ServiceLimiter) CheckRunReport(userID string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.limiters["user_run"].Allow(userID) {
		return fmt.Errorf("too many report runs, please slow down")
	}

	return nil
}

// GetRunRemaining returns remaining report runs for the user
func (m *ServiceLimiter) GetRunRemaining(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.limiters["user_run"].GetRemaining(userID)
}
