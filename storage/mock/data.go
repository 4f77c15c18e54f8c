package mock

import (
	"time"

	"securitybot/pkg/models"
)

// DefaultEmail and DefaultPassword are the only credentials the mock login accepts.
const (
	DefaultEmail    = "sebastian@example.com"
	DefaultPassword = "password"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

var defaultUser = models.User{
	ID:         "1",
	Name:       "Sebastián González",
	NationalID: "12.345.678-9",
	Email:      DefaultEmail,
	Phone:      "+56912345678",
	AvatarURL:  ptr("https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg"),
}

var services = []models.Service{
	{
		ID:          "1",
		Name:        "Seguridad Vehicular",
		Category:    models.ServiceCategoryAutomotive,
		Description: "Protección completa para tu vehículo 24/7",
		Icon:        "car",
		Price:       ptr(int64(29990)),
		Benefits:    []string{"Monitoreo GPS", "Alarma antirrobo", "Asistencia 24/7", "Seguro incluido"},
	},
	{
		ID:          "2",
		Name:        "Guardaespaldas Personal",
		Category:    models.ServiceCategoryPersonal,
		Description: "Protección personal profesional",
		Icon:        "shield-check",
		Price:       ptr(int64(89990)),
		Benefits:    []string{"Personal capacitado", "Disponibilidad 24/7", "Discreción total", "Reportes semanales"},
	},
	{
		ID:          "3",
		Name:        "Vigilancia Domiciliaria",
		Category:    models.ServiceCategoryRealEstate,
		Description: "Seguridad para tu hogar",
		Icon:        "home",
		Price:       ptr(int64(45990)),
		Benefits:    []string{"Cámaras HD", "Monitoreo remoto", "Alertas inmediatas", "App móvil"},
	},
	{
		ID:          "4",
		Name:        "Escolta Ciudadana",
		Category:    models.ServiceCategoryCitizen,
		Description: "Acompañamiento en espacios públicos",
		Icon:        "users",
		Price:       ptr(int64(19990)),
		Benefits:    []string{"Personal uniformado", "Rutas seguras", "Comunicación constante", "Tarifas por hora"},
	},
	{
		ID:          "5",
		Name:        "Seguridad Empresarial",
		Category:    models.ServiceCategoryCorporate,
		Description: "Soluciones integrales para empresas",
		Icon:        "building",
		Price:       ptr(int64(199990)),
		Benefits:    []string{"Control de accesos", "Vigilancia perimetral", "Personal especializado", "Reportes ejecutivos"},
	},
}

var requests = []models.ServiceRequest{
	{
		ID:        "1",
		UserID:    "1",
		ServiceID: "1",
		Payload:   map[string]string{"vehiculo": "Toyota Corolla 2020", "patente": "ABCD12"},
		Status:    models.RequestActive,
		CreatedAt: date(2024, time.January, 15),
		UpdatedAt: date(2024, time.January, 15),
	},
	{
		ID:        "2",
		UserID:    "1",
		ServiceID: "3",
		Payload:   map[string]string{"direccion": "Los Aromos 123, Las Condes"},
		Status:    models.RequestPending,
		CreatedAt: date(2024, time.January, 20),
		UpdatedAt: date(2024, time.January, 20),
	},
	{
		ID:        "3",
		UserID:    "1",
		ServiceID: "2",
		Payload:   map[string]string{"horario": "Lunes a Viernes 8:00-17:00"},
		Status:    models.RequestCompleted,
		CreatedAt: date(2024, time.January, 10),
		UpdatedAt: date(2024, time.January, 18),
	},
}

var payments = []models.Payment{
	{
		ID:        "1",
		UserID:    "1",
		ServiceID: ptr("1"),
		RequestID: ptr("1"),
		Amount:    29990,
		Method:    models.PaymentCard,
		Status:    models.PaymentPaid,
		Date:      date(2024, time.January, 15),
		Receipt:   ptr("COMP-2024-001"),
	},
	{
		ID:        "2",
		UserID:    "1",
		ServiceID: ptr("3"),
		Amount:    45990,
		Method:    models.PaymentTransfer,
		Status:    models.PaymentPending,
		Date:      date(2024, time.January, 20),
	},
	{
		ID:        "3",
		UserID:    "1",
		ServiceID: ptr("2"),
		RequestID: ptr("3"),
		Amount:    89990,
		Method:    models.PaymentCard,
		Status:    models.PaymentPaid,
		Date:      date(2024, time.January, 10),
		Receipt:   ptr("COMP-2024-002"),
	},
}

var incidents = []models.Incident{
	{
		ID:          "1",
		UserID:      ptr("1"),
		Category:    models.IncidentCategorySecurity,
		Description: "Robo a peatón en Plaza Italia",
		Lat:         -33.4372,
		Lng:         -70.6341,
		Anonymous:   false,
		Status:      models.IncidentReported,
		Date:        date(2024, time.January, 22),
	},
	{
		ID:          "2",
		Category:    models.IncidentCategoryTraffic,
		Description: "Choque múltiple en Autopista Central",
		Lat:         -33.4569,
		Lng:         -70.6483,
		Anonymous:   true,
		Status:      models.IncidentUnderReview,
		Date:        date(2024, time.January, 21),
	},
	{
		ID:          "3",
		UserID:      ptr("1"),
		Category:    models.IncidentCategoryEmergency,
		Description: "Incendio en edificio comercial",
		Lat:         -33.4378,
		Lng:         -70.6504,
		Anonymous:   false,
		Status:      models.IncidentResolved,
		Date:        date(2024, time.January, 20),
	},
}

var vehicles = []models.Vehicle{
	{
		Plate: "ABCD12",
		Make:  "Toyota",
		Model: "Corolla",
		Year:  2020,
		Color: "Blanco",
		Type:  "Automóvil",
		Owner: models.Owner{Name: "Sebastián González", NationalID: "12.345.678-9"},

		Status:           models.LegalValid,
		LastVerification: date(2024, time.January, 15),
		ActiveServices:   []string{"Seguridad Vehicular"},
		History: []models.VehicleEvent{
			{Date: date(2024, time.January, 15), Event: "Servicio activado", Description: "Se activó el servicio de Seguridad Vehicular"},
			{Date: date(2024, time.January, 10), Event: "Verificación técnica", Description: "Revisión técnica aprobada"},
		},
	},
	{
		Plate: "EFGH34",
		Make:  "Honda",
		Model: "Civic",
		Year:  2019,
		Color: "Gris",
		Type:  "Automóvil",
		Owner: models.Owner{Name: "María Rodríguez", NationalID: "98.765.432-1"},

		Status:           models.LegalStolen,
		LastVerification: date(2024, time.January, 20),
		ActiveServices:   []string{},
		History: []models.VehicleEvent{
			{Date: date(2024, time.January, 20), Event: "Reporte de robo", Description: "Vehículo reportado como robado"},
			{Date: date(2024, time.January, 18), Event: "Servicio cancelado", Description: "Servicio de seguridad cancelado"},
		},
	},
	{
		Plate: "IJKL56",
		Make:  "Ford",
		Model: "Ranger",
		Year:  2021,
		Color: "Azul",
		Type:  "Camioneta",
		Owner: models.Owner{Name: "Carlos Pérez", NationalID: "11.222.333-4"},

		Status:           models.LegalValid,
		LastVerification: date(2024, time.January, 22),
		ActiveServices:   []string{"Seguridad Vehicular", "Rastreo GPS"},
		History: []models.VehicleEvent{
			{Date: date(2024, time.January, 22), Event: "Servicio renovado", Description: "Servicio de seguridad renovado por 6 meses"},
			{Date: date(2024, time.January, 15), Event: "Mantenimiento", Description: "Mantenimiento preventivo realizado"},
		},
	},
	{
		Plate: "MNOP78",
		Make:  "Yamaha",
		Model: "FZ-16",
		Year:  2022,
		Color: "Rojo",
		Type:  "Moto",
		Owner: models.Owner{Name: "Ana Silva", NationalID: "55.666.777-8"},

		Status:           models.LegalInProcess,
		LastVerification: date(2024, time.January, 21),
		ActiveServices:   []string{},
		History: []models.VehicleEvent{
			{Date: date(2024, time.January, 21), Event: "Verificación en proceso", Description: "Verificación de documentos en proceso"},
			{Date: date(2024, time.January, 20), Event: "Solicitud recibida", Description: "Solicitud de servicio recibida"},
		},
	},
}
