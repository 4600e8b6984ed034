package models

import "strconv"

// NotProvided is shown in place of an optional profile field the user left
// empty.
const NotProvided = "Not Provided"

// Registration is the body of POST /api/users/register/.
type Registration struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	MobileNumber string `json:"mobile_no" validate:"mobile"`
	Password     string `json:"password" validate:"strongpassword"`
}

// RegisteredUser is the created-user payload. The backend may echo more
// fields; only these are read.
type RegisteredUser struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_no"`
}

// UserProfile is returned by GET /api/users/profile/.
type UserProfile struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	MobileNumber string  `json:"mobile_no"`
	City         *string `json:"city,omitempty"`
	Age          *int    `json:"age,omitempty"`
}

// CityOrDefault returns the city or NotProvided.
func (p UserProfile) CityOrDefault() string {
	if p.City == nil || *p.City == "" {
		return NotProvided
	}
	return *p.City
}

// AgeOrDefault returns the age or NotProvided. Zero counts as absent.
func (p UserProfile) AgeOrDefault() string {
	if p.Age == nil || *p.Age == 0 {
		return NotProvided
	}
	return strconv.Itoa(*p.Age)
}
