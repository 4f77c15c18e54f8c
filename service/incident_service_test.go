package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"securitybot/pkg/geo"
	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/storage/mock"
)

func ids(list []models.Incident) []string {
	out := make([]string, 0, len(list))
	for _, i := range list {
		out = append(out, i.ID)
	}
	return out
}

func testIncidents() []models.Incident {
	return mock.New(nil, logger.NewNop()).Incident().GetAll()
}

func TestFilterAndSortAllByDistance(t *testing.T) {
	origin := &geo.Point{Lat: -33.4372, Lng: -70.6341}
	got := FilterAndSort(testIncidents(), models.IncidentCategoryAll, origin)

	if diff := cmp.Diff([]string{"1", "3", "2"}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(got); i++ {
		if Distance(*origin, got[i-1]) > Distance(*origin, got[i]) {
			t.Fatalf("distance decreases at %d", i)
		}
	}
}

func TestFilterAndSortCategory(t *testing.T) {
	origin := &geo.Point{Lat: -33.4489, Lng: -70.6693}
	got := FilterAndSort(testIncidents(), models.IncidentCategoryTraffic, origin)
	if len(got) != 1 || got[0].Category != "Tránsito" {
		t.Fatalf("expected only Tránsito incidents, got %v", ids(got))
	}

	if got := FilterAndSort(testIncidents(), models.IncidentCategoryOther, origin); len(got) != 0 {
		t.Fatalf("expected none, got %v", ids(got))
	}
}

func TestFilterAndSortWithoutOriginKeepsOrder(t *testing.T) {
	got := FilterAndSort(testIncidents(), "", nil)
	if diff := cmp.Diff([]string{"1", "2", "3"}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterAndSortTiesKeepOrder(t *testing.T) {
	in := []models.Incident{
		{ID: "a", Category: models.IncidentCategorySecurity, Lat: 1, Lng: 1},
		{ID: "b", Category: models.IncidentCategorySecurity, Lat: 1, Lng: 1},
		{ID: "c", Category: models.IncidentCategorySecurity, Lat: 0, Lng: 0},
		{ID: "d", Category: models.IncidentCategorySecurity, Lat: 1, Lng: 1},
	}
	got := FilterAndSort(in, models.IncidentCategoryAll, &geo.Point{})
	if diff := cmp.Diff([]string{"c", "a", "b", "d"}, ids(got)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateReport(t *testing.T) {
	if err := ValidateReport(ReportInput{Category: models.IncidentCategorySecurity, Description: "  "}); !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
	if err := ValidateReport(ReportInput{Category: "Fuego", Description: "x"}); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if err := ValidateReport(ReportInput{Category: models.IncidentCategoryAll, Description: "x"}); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("the wildcard is not a reportable category, got %v", err)
	}
}

func TestSubmitReport(t *testing.T) {
	ctx := context.Background()
	incidents := newTestManager(nil).Incident()
	reporter := &models.User{ID: "1"}

	inc, err := incidents.Submit(ctx, reporter, ReportInput{
		Category:    models.IncidentCategoryTraffic,
		Description: " Semáforo apagado ",
		Location:    &geo.Point{Lat: -33.45, Lng: -70.66},
		Photos:      []string{"photo-1"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if inc.Description != "Semáforo apagado" || inc.UserID == nil || *inc.UserID != "1" {
		t.Fatalf("unexpected incident %+v", inc)
	}
	if inc.Status != models.IncidentReported || !inc.Date.Equal(fixedNow) || inc.Lat != -33.45 {
		t.Fatalf("unexpected incident %+v", inc)
	}

	anon, err := incidents.Submit(ctx, reporter, ReportInput{
		Category:    models.IncidentCategorySecurity,
		Description: "Robo",
		Anonymous:   true,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if anon.UserID != nil || !anon.Anonymous {
		t.Fatalf("anonymous report carries a user: %+v", anon)
	}
	if anon.Lat != DefaultReportLocation.Lat || anon.Lng != DefaultReportLocation.Lng {
		t.Fatalf("expected default location, got %v,%v", anon.Lat, anon.Lng)
	}

	if n := len(incidents.List(models.IncidentCategoryAll, nil)); n != 3 {
		t.Fatalf("submitted reports must not be stored, have %d", n)
	}
}

func TestSubmitReportCancelled(t *testing.T) {
	incidents := NewIncidentService(mock.New(nil, logger.NewNop()), logger.NewNop(), time.Hour, time.Now)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := incidents.Submit(ctx, nil, ReportInput{Category: models.IncidentCategoryOther, Description: "x"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
