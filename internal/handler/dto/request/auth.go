package request

import (
	"vehicle-rental/internal/domain/auth"
	"vehicle-rental/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
}

func (r *RegisterRequest) ToDomain() (auth.Credentials, user.FullName, error) {
	credentials, err := auth.NewCredentials(r.Email, r.Password)
	if err != nil {
		return auth.Credentials{}, user.FullName{}, err
	}

	name, err := user.NewFullName(r.FirstName, r.LastName)
	if err != nil {
		return auth.Credentials{}, user.FullName{}, err
	}

	return credentials, name, nil
}
