package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"securitybot/config"
	"securitybot/pkg/logger"
	"securitybot/service"
	"securitybot/storage/mock"
)

func newTestRouter() http.Handler {
	cfg := config.Config{Timezone: "UTC"}
	stg := mock.New(nil, logger.NewNop())
	svc := service.New(stg, logger.NewNop(), service.Options{})
	return NewRouter(&cfg, svc, logger.NewNop())
}

func get(t *testing.T, h http.Handler, target string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v (body %q)", target, err, rec.Body.String())
		}
	}
	return rec.Code
}

func TestPing(t *testing.T) {
	var body map[string]string
	if code := get(t, newTestRouter(), "/ping", &body); code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("ping = %d %v", code, body)
	}
}

func TestServices(t *testing.T) {
	h := newTestRouter()

	var list []struct {
		ID string `json:"id"`
	}
	if code := get(t, h, "/api/services?category="+url.QueryEscape("Inmobiliaria"), &list); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(list) != 1 || list[0].ID != "3" {
		t.Fatalf("unexpected list %+v", list)
	}

	var none []any
	if code := get(t, h, "/api/services?q=zzz", &none); code != http.StatusOK || none == nil || len(none) != 0 {
		t.Fatalf("empty search must be an empty array, got %d %v", code, none)
	}

	var bad map[string]string
	if code := get(t, h, "/api/services?category=Bogus", &bad); code != http.StatusBadRequest || bad["error"] != service.ErrUnknownServiceType.Error() {
		t.Fatalf("unknown category = %d %v", code, bad)
	}
	var all []any
	if code := get(t, h, "/api/services?category=Todas", &all); code != http.StatusOK || len(all) != 5 {
		t.Fatalf("Todas = %d, %d services", code, len(all))
	}

	var svc struct {
		Name string `json:"name"`
	}
	if code := get(t, h, "/api/services/2", &svc); code != http.StatusOK || svc.Name != "Guardaespaldas Personal" {
		t.Fatalf("service 2 = %d %+v", code, svc)
	}

	var errBody map[string]string
	if code := get(t, h, "/api/services/99", &errBody); code != http.StatusNotFound || errBody["error"] != service.ErrServiceNotFound.Error() {
		t.Fatalf("unknown service = %d %v", code, errBody)
	}

	var form []struct {
		Key string `json:"key"`
	}
	get(t, h, "/api/services/1/form", &form)
	if len(form) != 3 || form[1].Key != "patente" {
		t.Fatalf("unexpected form %+v", form)
	}
}

func TestIncidents(t *testing.T) {
	h := newTestRouter()

	type view struct {
		ID         string   `json:"id"`
		DistanceKM *float64 `json:"distance_km"`
	}
	var sorted []view
	if code := get(t, h, "/api/incidents?category=All&lat=-33.4372&lng=-70.6341", &sorted); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	var ids []string
	for _, v := range sorted {
		ids = append(ids, v.ID)
		if v.DistanceKM == nil {
			t.Fatal("distance must be present when an origin is given")
		}
	}
	if diff := cmp.Diff([]string{"1", "3", "2"}, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	var plain []view
	get(t, h, "/api/incidents", &plain)
	if len(plain) != 3 || plain[0].ID != "1" || plain[0].DistanceKM != nil {
		t.Fatalf("unexpected unsorted list %+v", plain)
	}

	tests := []string{
		"/api/incidents?lat=-33.4",
		"/api/incidents?lat=abc&lng=1",
		"/api/incidents?lat=100&lng=1",
		"/api/incidents?category=Fuego",
	}
	for _, target := range tests {
		if code := get(t, h, target, nil); code != http.StatusBadRequest {
			t.Errorf("%s = %d, want 400", target, code)
		}
	}
}

func TestVehicles(t *testing.T) {
	h := newTestRouter()

	var v struct {
		Plate  string `json:"plate"`
		Status string `json:"status"`
	}
	if code := get(t, h, "/api/vehicles/"+url.PathEscape("ijkl 56"), &v); code != http.StatusOK || v.Plate != "IJKL56" {
		t.Fatalf("vehicle = %d %+v", code, v)
	}

	var errBody map[string]string
	if code := get(t, h, "/api/vehicles/zzzz99", &errBody); code != http.StatusNotFound || errBody["plate"] != "ZZZZ99" {
		t.Fatalf("unknown plate = %d %v", code, errBody)
	}
}

func TestPayments(t *testing.T) {
	var body struct {
		TotalPending int64 `json:"total_pending"`
		Payments     []struct {
			ID          string `json:"id"`
			ServiceName string `json:"service_name"`
		} `json:"payments"`
	}
	h := newTestRouter()
	if code := get(t, h, "/api/payments?filter=Pagados", &body); code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if body.TotalPending != 45990 || len(body.Payments) != 2 || body.Payments[0].ServiceName != "Seguridad Vehicular" {
		t.Fatalf("unexpected payments %+v", body)
	}

	var errBody map[string]string
	if code := get(t, h, "/api/payments?filter=Bogus", &errBody); code != http.StatusBadRequest || errBody["error"] != service.ErrUnknownFilter.Error() {
		t.Fatalf("unknown filter = %d %v", code, errBody)
	}
}

func TestGreeting(t *testing.T) {
	h := newTestRouter()

	var body map[string]string
	if code := get(t, h, "/api/greeting?name=Ana&hour=12", &body); code != http.StatusOK || body["greeting"] != "Good afternoon, Ana" {
		t.Fatalf("greeting = %d %v", code, body)
	}
	get(t, h, "/api/greeting?name=Ana&hour=08", &body)
	if body["greeting"] != "Good morning, Ana" {
		t.Fatalf("unexpected greeting %v", body)
	}
	for _, target := range []string{"/api/greeting?hour=24", "/api/greeting?hour=x"} {
		if code := get(t, h, target, nil); code != http.StatusBadRequest {
			t.Errorf("%s = %d, want 400", target, code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/services", nil))
	if rec.Code != http.StatusNoContent || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("preflight = %d %v", rec.Code, rec.Header())
	}
}
