package bot

import (
	"strings"
	"testing"

	"securitybot/pkg/geo"
	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/service"
	"securitybot/storage/mock"
)

func containsAll(t *testing.T, text string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(text, p) {
			t.Errorf("expected %q in:\n%s", p, text)
		}
	}
}

func TestRenderSlide(t *testing.T) {
	containsAll(t, renderSlide(0), "Security at your fingertips", "1/3")
	containsAll(t, renderSlide(2), "Immediate response", "3/3")
}

func TestRenderHome(t *testing.T) {
	stg := mock.New(nil, logger.NewNop())
	svc := service.New(stg, logger.NewNop(), service.Options{})

	text := renderHome(service.Greeting("Sebastián", 9), svc.Catalog().ActiveServices("1"), svc.Catalog().Featured())
	containsAll(t, text, "Good morning, Sebastián 👋", "Seguridad Vehicular", "🟢 Activo", "🟡 Pendiente", "Featured")

	empty := renderHome("Good evening, Ana", nil, nil)
	containsAll(t, empty, "no active services")
	if strings.Contains(empty, "Featured") {
		t.Fatal("featured section must be hidden when empty")
	}
}

func TestRenderServiceList(t *testing.T) {
	price := int64(29990)
	list := []models.Service{{ID: "1", Name: "Seguridad <Vehicular>", Price: &price, Description: "x"}}

	text := renderServiceList(list, models.ServiceCategoryAutomotive, "seg")
	containsAll(t, text, "Automotriz", `"seg"`, "$29.990", "Seguridad &lt;Vehicular&gt;")

	containsAll(t, renderServiceList(nil, models.ServiceCategoryAll, ""), "No services match")
	if strings.Contains(renderServiceList(nil, models.ServiceCategoryAll, ""), "Todas") {
		t.Fatal("the wildcard category must not be labelled")
	}
}

func TestRenderServiceDetailWithoutPrice(t *testing.T) {
	text := renderServiceDetail(models.Service{Name: "Escolta", Category: models.ServiceCategoryCitizen, Benefits: []string{"Rutas seguras"}})
	containsAll(t, text, "Price on request", "Benefits", "✔️ Rutas seguras")
}

func TestRenderIncidents(t *testing.T) {
	stg := mock.New(nil, logger.NewNop())
	origin := &geo.Point{Lat: -33.4372, Lng: -70.6341}
	list := service.FilterAndSort(stg.Incident().GetAll(), models.IncidentCategoryAll, origin)

	text := renderIncidents(list, models.IncidentCategoryAll, origin)
	containsAll(t, text, "0.0 km", "1.5 km", "2.6 km", "Plaza Italia")
	if strings.Index(text, "1.5 km") > strings.Index(text, "2.6 km") {
		t.Fatal("incidents must be listed nearest first")
	}

	unsorted := renderIncidents(list, models.IncidentCategoryTraffic, nil)
	containsAll(t, unsorted, "Tránsito")
	if strings.Contains(unsorted, " km") {
		t.Fatal("distances must be hidden without an origin")
	}
	containsAll(t, renderIncidents(nil, models.IncidentCategoryOther, nil), "No incidents")
}

func TestRenderReport(t *testing.T) {
	text := renderReport(service.ReportInput{
		Category:    models.IncidentCategorySecurity,
		Description: " Robo ",
		Anonymous:   true,
		Photos:      []string{"a", "b"},
	})
	containsAll(t, text, "Seguridad", "Description: Robo\n", "(default)", "Photos: 2", "anonymously")
}

func TestRenderPayments(t *testing.T) {
	stg := mock.New(nil, logger.NewNop())
	payments := service.New(stg, logger.NewNop(), service.Options{}).Payment()

	text := renderPayments(payments.List(models.PaymentFilterAll, ""), models.PaymentFilterAll, payments.TotalPending())
	containsAll(t, text, "Total pending: <b>$45.990</b>", "Vigilancia Domiciliaria", "COMP-2024-001", "20/01/24")
	containsAll(t, renderPayments(nil, models.PaymentFilterRejected, 0), "No payments found", "$0")
}

func TestRenderVehicle(t *testing.T) {
	stg := mock.New(nil, logger.NewNop())
	v, err := stg.Vehicle().GetByPlate("EFGH34")
	if err != nil {
		t.Fatal(err)
	}
	containsAll(t, renderVehicle(*v), "EFGH34", "🔴 Robado", "Honda", "María Rodríguez", "History")
}

func TestRenderProfile(t *testing.T) {
	u := models.User{Name: "Sebastián González", NationalID: "12.345.678-9", Email: "sebastian@example.com"}
	text := renderProfile(u, service.ProfileStats{Requests: 3, Incidents: 2, Payments: 3})
	containsAll(t, text, "Sebastián González", "12.345.678-9", "Requests: 3 · Incidents: 2 · Payments: 3")
}

func TestRenderEscapesLabels(t *testing.T) {
	texts := []string{
		renderIncidents(nil, models.IncidentCategory("<b>bad"), nil),
		renderServiceList(nil, models.ServiceCategory("<b>bad"), ""),
		renderPayments(nil, models.PaymentFilter("<b>bad"), 0),
		renderReport(service.ReportInput{Category: models.IncidentCategory("<b>bad")}),
	}
	for _, text := range texts {
		if strings.Contains(text, "<b>bad") {
			t.Errorf("label not escaped: %q", text)
		}
		containsAll(t, text, "&lt;b&gt;bad")
	}
}
