package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncBonusCheck(t *testing.T) {
	before := testutil.ToFloat64(bonusChecks.WithLabelValues("success"))
	IncBonusCheck("success")
	IncBonusCheck("success")
	after := testutil.ToFloat64(bonusChecks.WithLabelValues("success"))

	if after-before != 2 {
		t.Errorf("expected counter to grow by 2, grew by %v", after-before)
	}
}

func TestIncUserAdded(t *testing.T) {
	before := testutil.ToFloat64(usersAdded.WithLabelValues("false"))
	IncUserAdded(false)
	after := testutil.ToFloat64(usersAdded.WithLabelValues("false"))

	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, grew by %v", after-before)
	}
}

func TestHandlerExposesCollectors(t *testing.T) {
	MustRegister()
	MustRegister() // second call is a no-op

	IncBonusCheck("invalid_code")
	ObserveRequest("POST", "/check-bonus", 200, 3*time.Millisecond)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{"bonus_checks_total", "http_request_latency_ms"} {
		if !strings.Contains(body, name) {
			t.Errorf("expected %s in metrics output", name)
		}
	}
}
