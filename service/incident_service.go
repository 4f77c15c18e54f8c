package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"securitybot/pkg/geo"
	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/storage"
)

// DefaultReportLocation is used when the reporter does not share a location.
var DefaultReportLocation = geo.Point{Lat: -33.4489, Lng: -70.6693}

type ReportInput struct {
	Category    models.IncidentCategory
	Description string
	// Location is the device position; nil when it was not shared.
	Location  *geo.Point
	Anonymous bool
	Photos    []string
}

type IncidentService interface {
	List(category models.IncidentCategory, origin *geo.Point) []models.Incident
	Submit(ctx context.Context, reporter *models.User, in ReportInput) (*models.Incident, error)
}

type incidentService struct {
	stg   storage.IIncidentStorage
	log   logger.ILogger
	delay time.Duration
	now   func() time.Time
}

func NewIncidentService(stg storage.IStorage, log logger.ILogger, delay time.Duration, now func() time.Time) IncidentService {
	return &incidentService{
		stg:   stg.Incident(),
		log:   log,
		delay: delay,
		now:   now,
	}
}

// FilterAndSort keeps incidents whose category equals category (All or the
// empty string keep everything) and orders them by ascending distance from
// origin. Ties, and a nil origin, keep the input order.
func FilterAndSort(incidents []models.Incident, category models.IncidentCategory, origin *geo.Point) []models.Incident {
	out := make([]models.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if category == "" || category == models.IncidentCategoryAll || inc.Category == category {
			out = append(out, inc)
		}
	}
	if origin == nil {
		return out
	}

	type ranked struct {
		inc  models.Incident
		dist float64
	}
	rs := make([]ranked, len(out))
	for i, inc := range out {
		rs[i] = ranked{inc: inc, dist: Distance(*origin, inc)}
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].dist < rs[j].dist
	})
	for i := range rs {
		out[i] = rs[i].inc
	}
	return out
}

func Distance(origin geo.Point, inc models.Incident) float64 {
	return geo.DistanceKM(origin, geo.Point{Lat: inc.Lat, Lng: inc.Lng})
}

func ValidateReport(in ReportInput) error {
	if !models.IsCategory(in.Category) {
		return invalid(ErrUnknownCategory, "category")
	}
	if strings.TrimSpace(in.Description) == "" {
		return invalid(ErrEmptyDescription, "description")
	}
	return nil
}

func (s *incidentService) List(category models.IncidentCategory, origin *geo.Point) []models.Incident {
	return FilterAndSort(s.stg.GetAll(), category, origin)
}

// Submit validates and "sends" a report. The returned record is never stored.
func (s *incidentService) Submit(ctx context.Context, reporter *models.User, in ReportInput) (*models.Incident, error) {
	if err := ValidateReport(in); err != nil {
		return nil, err
	}

	loc := DefaultReportLocation
	if in.Location != nil {
		loc = *in.Location
	}

	inc := &models.Incident{
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
		Lat:         loc.Lat,
		Lng:         loc.Lng,
		Anonymous:   in.Anonymous,
		Photos:      append([]string(nil), in.Photos...),
		Status:      models.IncidentReported,
		Date:        s.now(),
	}
	if !in.Anonymous && reporter != nil {
		id := reporter.ID
		inc.UserID = &id
	}

	if err := Simulate(ctx, s.delay); err != nil {
		s.log.Info("incident report abandoned", logger.Error(err))
		return nil, err
	}

	s.log.Info("incident report accepted",
		logger.String("category", string(inc.Category)),
		logger.Bool("anonymous", inc.Anonymous),
		logger.Int("photos", len(inc.Photos)),
		logger.Float64("lat", inc.Lat),
		logger.Float64("lng", inc.Lng),
	)
	return inc, nil
}
