package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`   // error detail (if any)
}

type LoginResponse struct {
	Message         string `json:"message"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
