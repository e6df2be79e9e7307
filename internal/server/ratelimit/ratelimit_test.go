package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second

	// Should allow 10 requests immediately (burst)
	for i := 0; i < 10; i++ {
		if !bucket.allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// 11th request should be denied (no tokens left)
	if bucket.allow() {
		t.Error("Expected 11th request to be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 1 token per second

	for i := 0; i < 10; i++ {
		bucket.allow()
	}

	// Wait for 1 token to refill
	time.Sleep(1100 * time.Millisecond)

	if !bucket.allow() {
		t.Error("Expected request to be allowed after refill")
	}
	if bucket.allow() {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestLimiter_PerClientIsolation(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Hour,
	})
	defer limiter.Stop()

	for i := 0; i < 2; i++ {
		if allowed, _ := limiter.Allow("client-a", "/extract", "POST"); !allowed {
			t.Errorf("Expected client-a request %d to be allowed", i+1)
		}
	}
	if allowed, _ := limiter.Allow("client-a", "/extract", "POST"); allowed {
		t.Error("Expected client-a to be rate limited")
	}

	// A different client has its own bucket.
	if allowed, _ := limiter.Allow("client-b", "/extract", "POST"); !allowed {
		t.Error("Expected client-b to be unaffected by client-a's bucket")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("client", "/match", "POST"); !allowed {
			t.Error("Expected all requests to be allowed when disabled")
		}
	}
}

func TestLimiter_DeniedCarriesRetryAfter(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/match", Method: "POST", Limit: 1, Window: time.Minute, Burst: 1},
		},
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	limiter.Allow("client", "/match", "POST")
	allowed, info := limiter.Allow("client", "/match", "POST")

	if allowed {
		t.Fatal("Expected second request to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected RetryAfter to be positive on denial")
	}
	if info.Limit != 1 {
		t.Errorf("Expected Limit 1, got %d", info.Limit)
	}
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			clientID := fmt.Sprintf("client-%d", n%5)
			for j := 0; j < 50; j++ {
				limiter.Allow(clientID, "/extract", "POST")
			}
		}(i)
	}
	wg.Wait()
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected a config for /health")
	}
	if config.Limit != 0 {
		t.Errorf("Expected unlimited health endpoint, got limit %d", config.Limit)
	}
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	config := MatchEndpoint("/candidates/3f6c2a/resume", "POST", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected prefix match for candidate resume upload")
	}
	if config.Path != "/candidates/" {
		t.Errorf("Expected /candidates/ prefix config, got %q", config.Path)
	}
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	if config := MatchEndpoint("/nowhere", "GET", DefaultEndpointConfigs()); config != nil {
		t.Errorf("Expected no match, got %+v", config)
	}
}
