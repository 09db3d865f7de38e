package core

type RegisterMessage struct {
	Name     string
	Email    string
	Password string
}

type LoginMessage struct {
	Email    string
	Password string
}

// UpdateMessage is an account edit. An empty Password keeps the current one.
type UpdateMessage struct {
	Name     string
	Email    string
	Password string
}

type ResetMessage struct {
	Token    string
	Password string
}

// PublicUser is the part of a user that may leave the service.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
