package mock

import (
	"securitybot/pkg/models"
	"securitybot/storage"
)

type paymentRepo struct {
	list []models.Payment
	byID map[string]int
}

func newPaymentRepo(list []models.Payment) *paymentRepo {
	r := &paymentRepo{list: list, byID: make(map[string]int, len(list))}
	for i, p := range list {
		r.byID[p.ID] = i
	}
	return r
}

func (r *paymentRepo) GetAll() []models.Payment {
	return cloneAll(r.list, clonePayment)
}

func (r *paymentRepo) GetByID(id string) (*models.Payment, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	p := clonePayment(r.list[i])
	return &p, nil
}
