package mock

import (
	"securitybot/pkg/models"
	"securitybot/storage"
)

type vehicleRepo struct {
	list    []models.Vehicle
	byPlate map[string]int
}

func newVehicleRepo(list []models.Vehicle) *vehicleRepo {
	r := &vehicleRepo{list: list, byPlate: make(map[string]int, len(list))}
	for i, v := range list {
		// first entry wins, same as a linear scan
		if _, dup := r.byPlate[v.Plate]; dup {
			continue
		}
		r.byPlate[v.Plate] = i
	}
	return r
}

func (r *vehicleRepo) GetAll() []models.Vehicle {
	return cloneAll(r.list, cloneVehicle)
}

func (r *vehicleRepo) GetByPlate(plate string) (*models.Vehicle, error) {
	i, ok := r.byPlate[plate]
	if !ok {
		return nil, storage.ErrNotFound
	}
	v := cloneVehicle(r.list[i])
	return &v, nil
}
