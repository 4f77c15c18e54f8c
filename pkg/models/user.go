package models

type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	NationalID string  `json:"national_id"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

// FirstName returns the first word of Name.
func (u User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}
