package mock

import (
	"strings"

	"securitybot/pkg/models"
	"securitybot/storage"
)

type userRepo struct {
	def models.User
}

func newUserRepo(def models.User) *userRepo {
	return &userRepo{def: def}
}

func (r *userRepo) Default() models.User {
	u := r.def
	if u.AvatarURL != nil {
		u.AvatarURL = ptr(*u.AvatarURL)
	}
	return u
}

func (r *userRepo) GetByEmail(email string) (*models.User, error) {
	if !strings.EqualFold(email, r.def.Email) {
		return nil, storage.ErrNotFound
	}
	u := r.Default()
	return &u, nil
}
