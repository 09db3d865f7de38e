package payload

import (
	"regexp"

	"fastauth/internal/core"

	"github.com/jellydator/validation"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

var isEmail = validation.Match(emailRegex)

// bcrypt only hashes the first 72 bytes and rejects longer input.
const maxPasswordBytes = 72

var passwordLength = validation.Length(0, maxPasswordBytes)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *RegisterRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Email, validation.Required, isEmail),
		validation.Field(&p.Password, validation.Required, passwordLength),
	)
}

func (p RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *LoginRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Email, validation.Required),
		validation.Field(&p.Password, validation.Required),
	)
}

func (p LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Email:    p.Email,
		Password: p.Password,
	}
}

// UpdateRequest edits an account. Password is optional.
type UpdateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

func (p *UpdateRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Email, validation.Required, isEmail),
		validation.Field(&p.Password, passwordLength),
	)
}

func (p UpdateRequest) ToMessage() core.UpdateMessage {
	return core.UpdateMessage{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
	}
}

type RecoverRequest struct {
	Email string `json:"email"`
}

func (p *RecoverRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Email, validation.Required, isEmail),
	)
}

type ResetRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (p *ResetRequest) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Token, validation.Required),
		validation.Field(&p.Password, validation.Required, passwordLength),
	)
}

func (p ResetRequest) ToMessage() core.ResetMessage {
	return core.ResetMessage{
		Token:    p.Token,
		Password: p.Password,
	}
}
