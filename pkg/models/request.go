package models

import "time"

type RequestStatus string

const (
	RequestPending   RequestStatus = "Pendiente"
	RequestActive    RequestStatus = "Activo"
	RequestCompleted RequestStatus = "Finalizado"
	RequestCancelled RequestStatus = "Cancelado"
)

type ServiceRequest struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	ServiceID string            `json:"service_id"`
	Payload   map[string]string `json:"payload"`
	Status    RequestStatus     `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ActiveService is a request joined with the service it refers to.
type ActiveService struct {
	Request ServiceRequest `json:"request"`
	Service Service        `json:"service"`
}
