package models

import "time"

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "Tarjeta"
	PaymentTransfer PaymentMethod = "Transferencia"
	PaymentCash     PaymentMethod = "Efectivo"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pendiente"
	PaymentPaid     PaymentStatus = "Pagado"
	PaymentRejected PaymentStatus = "Rechazado"
)

// PaymentFilter is one of the payment list tabs.
type PaymentFilter string

const (
	PaymentFilterAll      PaymentFilter = "Todos"
	PaymentFilterPending  PaymentFilter = "Pendientes"
	PaymentFilterPaid     PaymentFilter = "Pagados"
	PaymentFilterRejected PaymentFilter = "Rechazados"
)

var PaymentFilters = []PaymentFilter{
	PaymentFilterAll,
	PaymentFilterPending,
	PaymentFilterPaid,
	PaymentFilterRejected,
}

type Payment struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	ServiceID *string       `json:"service_id,omitempty"`
	RequestID *string       `json:"request_id,omitempty"`
	Amount    int64         `json:"amount"`
	Method    PaymentMethod `json:"method"`
	Status    PaymentStatus `json:"status"`
	Date      time.Time     `json:"date"`
	Receipt   *string       `json:"receipt,omitempty"`
}

// PaymentView is a payment with the display name of its service.
type PaymentView struct {
	Payment
	ServiceName string `json:"service_name"`
}

func IsPaymentFilter(f PaymentFilter) bool {
	for _, v := range PaymentFilters {
		if v == f {
			return true
		}
	}
	return false
}
