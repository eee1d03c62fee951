package auth

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginRequest and RegisterRequest only check that fields are filled in.
// There is no credential check: any non-empty email and password log in.
type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type RegisterRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func ValidateLogin(req LoginRequest) error {
	return validate.Struct(req)
}

func ValidateRegister(req RegisterRequest) error {
	return validate.Struct(req)
}
