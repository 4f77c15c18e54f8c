package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"securitybot/config"
	"securitybot/pkg/geo"
	"securitybot/pkg/logger"
	"securitybot/pkg/models"
	"securitybot/service"
)

type handler struct {
	svc service.IServiceManager
	cfg *config.Config
	log logger.ILogger
}

type incidentView struct {
	models.Incident
	DistanceKM *float64 `json:"distance_km,omitempty"`
}

type paymentsResponse struct {
	TotalPending int64                `json:"total_pending"`
	Payments     []models.PaymentView `json:"payments"`
}

// NewRouter exposes the read-only catalog, map and payment views as JSON.
func NewRouter(cfg *config.Config, svc service.IServiceManager, log logger.ILogger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	h := &handler{svc: svc, cfg: cfg, log: log}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/services", h.listServices)
		api.GET("/services/:id", h.getService)
		api.GET("/services/:id/form", h.getServiceForm)
		api.GET("/incidents", h.listIncidents)
		api.GET("/vehicles/:plate", h.getVehicle)
		api.GET("/payments", h.listPayments)
		api.GET("/greeting", h.greeting)
	}
	return r
}

// Run serves the router on cfg.AppPort until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, svc service.IServiceManager, log logger.ILogger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           NewRouter(cfg, svc, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP API listening", logger.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func notFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func (h *handler) listServices(c *gin.Context) {
	category := models.ServiceCategory(c.Query("category"))
	if category != "" && category != models.ServiceCategoryAll && !models.IsServiceCategory(category) {
		badRequest(c, service.ErrUnknownServiceType.Error())
		return
	}
	list := h.svc.Catalog().List(category, c.Query("q"))
	if list == nil {
		list = []models.Service{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *handler) getService(c *gin.Context) {
	svc := h.svc.Catalog().Get(c.Param("id"))
	if svc == nil {
		notFound(c, service.ErrServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *handler) getServiceForm(c *gin.Context) {
	svc := h.svc.Catalog().Get(c.Param("id"))
	if svc == nil {
		notFound(c, service.ErrServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, h.svc.Catalog().FormFields(svc.Category))
}

// parseOrigin reads lat/lng. Both or neither must be given.
func parseOrigin(c *gin.Context) (*geo.Point, bool) {
	lat, lng := c.Query("lat"), c.Query("lng")
	if lat == "" && lng == "" {
		return nil, true
	}
	la, err1 := cast.ToFloat64E(lat)
	ln, err2 := cast.ToFloat64E(lng)
	if lat == "" || lng == "" || err1 != nil || err2 != nil {
		return nil, false
	}
	if la < -90 || la > 90 || ln < -180 || ln > 180 {
		return nil, false
	}
	return &geo.Point{Lat: la, Lng: ln}, true
}

func (h *handler) listIncidents(c *gin.Context) {
	category := models.IncidentCategory(c.Query("category"))
	if category != "" && category != models.IncidentCategoryAll && !models.IsCategory(category) {
		badRequest(c, service.ErrUnknownCategory.Error())
		return
	}
	origin, ok := parseOrigin(c)
	if !ok {
		badRequest(c, "lat and lng must both be valid coordinates")
		return
	}

	list := h.svc.Incident().List(category, origin)
	out := make([]incidentView, 0, len(list))
	for _, inc := range list {
		v := incidentView{Incident: inc}
		if origin != nil {
			d := service.Distance(*origin, inc)
			v.DistanceKM = &d
		}
		out = append(out, v)
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) getVehicle(c *gin.Context) {
	plate := c.Param("plate")
	if strings.TrimSpace(plate) == "" {
		badRequest(c, service.ErrEmptyPlate.Error())
		return
	}
	v := h.svc.Vehicle().FindByPlate(plate)
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found", "plate": service.NormalizePlate(plate)})
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *handler) listPayments(c *gin.Context) {
	filter := models.PaymentFilter(c.DefaultQuery("filter", string(models.PaymentFilterAll)))
	if !models.IsPaymentFilter(filter) {
		badRequest(c, service.ErrUnknownFilter.Error())
		return
	}
	list := h.svc.Payment().List(filter, c.Query("q"))
	if list == nil {
		list = []models.PaymentView{}
	}
	c.JSON(http.StatusOK, paymentsResponse{
		TotalPending: h.svc.Payment().TotalPending(),
		Payments:     list,
	})
}

func (h *handler) greeting(c *gin.Context) {
	hour := time.Now().In(h.cfg.Location()).Hour()
	if raw := c.Query("hour"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > 23 {
			badRequest(c, "hour must be between 0 and 23")
			return
		}
		hour = v
	}
	c.JSON(http.StatusOK, gin.H{"greeting": service.Greeting(c.Query("name"), hour)})
}
