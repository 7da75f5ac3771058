package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestAllowEnforcesLimitPerIP(t *testing.T) {
	rl := &rateLimiter{
		requests: make(map[string]*clientRequest),
		limit:    3,
		window:   time.Minute,
	}

	for i := 0; i < 3; i++ {
		allowed, _ := rl.allow("10.0.0.1")
		if !allowed {
			t.Fatalf("request %d blocked, want allowed", i+1)
		}
	}

	allowed, retryAfter := rl.allow("10.0.0.1")
	if allowed {
		t.Fatal("request over the limit was allowed")
	}
	if retryAfter <= 0 {
		t.Errorf("retryAfter = %v, want > 0", retryAfter)
	}

	// A different IP has its own window.
	if allowed, _ := rl.allow("10.0.0.2"); !allowed {
		t.Fatal("different IP blocked by another client's window")
	}
}

func TestAllowResetsAfterWindow(t *testing.T) {
	rl := &rateLimiter{
		requests: make(map[string]*clientRequest),
		limit:    1,
		window:   10 * time.Millisecond,
	}

	rl.allow("10.0.0.3")
	if allowed, _ := rl.allow("10.0.0.3"); allowed {
		t.Fatal("second request inside the window was allowed")
	}

	time.Sleep(20 * time.Millisecond)
	if allowed, _ := rl.allow("10.0.0.3"); !allowed {
		t.Fatal("request after the window expired was blocked")
	}
}

func TestRateLimiterDoesNotSerializeRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const handlerDelay = 150 * time.Millisecond

	router := gin.New()
	router.Use(RateLimiter())
	router.GET("/slow", func(c *gin.Context) {
		time.Sleep(handlerDelay)
		c.Status(http.StatusOK)
	})

	start := time.Now()
	var wg sync.WaitGroup
	for _, addr := range []string{"198.51.100.1:1234", "198.51.100.2:1234"} {
		wg.Add(1)
		go func(remoteAddr string) {
			defer wg.Done()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/slow", nil)
			req.RemoteAddr = remoteAddr
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", w.Code)
			}
		}(addr)
	}
	wg.Wait()

	// Two clients sleeping 150ms each must overlap; back-to-back
	// execution would take 300ms.
	if elapsed := time.Since(start); elapsed > 2*handlerDelay-20*time.Millisecond {
		t.Errorf("two requests from different IPs took %v, want them to run concurrently", elapsed)
	}
}
