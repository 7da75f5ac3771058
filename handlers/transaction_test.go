package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gilang657/track-my-money/models"
)

func filterContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/v1/transactions?"+query, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.Request = req
	return c
}

func TestParseTransactionFilter(t *testing.T) {
	t.Run("empty query means no filtering", func(t *testing.T) {
		f, err := parseTransactionFilter(filterContext(t, ""))
		if err != nil {
			t.Fatal(err)
		}
		if f.From != nil || f.To != nil || f.Type != "" || f.Category != "" {
			t.Errorf("expected zero filter, got %+v", f)
		}
	})

	t.Run("valid range and dimensions", func(t *testing.T) {
		f, err := parseTransactionFilter(filterContext(t, "from=2025-03-01&to=2025-03-31&type=expense&category=Food"))
		if err != nil {
			t.Fatal(err)
		}
		if f.From == nil || f.To == nil {
			t.Fatal("expected both bounds set")
		}
		if f.From.Format("2006-01-02") != "2025-03-01" || f.To.Format("2006-01-02") != "2025-03-31" {
			t.Errorf("bounds = %v..%v", f.From, f.To)
		}
		if f.Type != "expense" || f.Category != "Food" {
			t.Errorf("dimensions = %q/%q", f.Type, f.Category)
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		if _, err := parseTransactionFilter(filterContext(t, "from=03/01/2025")); err == nil {
			t.Error("expected error for malformed from date")
		}
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		if _, err := parseTransactionFilter(filterContext(t, "from=2025-04-01&to=2025-03-01")); err == nil {
			t.Error("expected error when from is after to")
		}
	})
}

func bindCreateRequest(t *testing.T, body string) (models.CreateTransactionRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req models.CreateTransactionRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestCreateTransactionRequestBinding(t *testing.T) {
	t.Run("zero amount is valid", func(t *testing.T) {
		req, err := bindCreateRequest(t, `{"amount": 0, "type": "expense", "category": "Food", "date": "2025-03-01"}`)
		if err != nil {
			t.Fatalf("zero amount rejected: %v", err)
		}
		if !req.Amount.IsZero() {
			t.Errorf("amount = %s, want 0", req.Amount)
		}
	})

	t.Run("missing type is rejected", func(t *testing.T) {
		if _, err := bindCreateRequest(t, `{"amount": 12.50, "category": "Food", "date": "2025-03-01"}`); err == nil {
			t.Error("expected error for missing type")
		}
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		if _, err := bindCreateRequest(t, `{"amount": 12.50, "type": "transfer", "category": "Food", "date": "2025-03-01"}`); err == nil {
			t.Error("expected error for type outside income/expense")
		}
	})
}
