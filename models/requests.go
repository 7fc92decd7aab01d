package models

// RegisterRequest is the payload of POST /register.
// PasswordConfirmation must equal Password for the request to validate.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest is the payload of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HabitCreateRequest is the payload of POST /habits.
type HabitCreateRequest struct {
	Name      string    `json:"name"`
	Frequency Frequency `json:"frequency"`
}

// HabitUpdateRequest is the payload of PUT/PATCH /habits/{id}.
// Absent fields are left unchanged.
type HabitUpdateRequest struct {
	Name      *string    `json:"name,omitempty"`
	Frequency *Frequency `json:"frequency,omitempty"`
}

// AuthData is the success payload of register and login responses: the user
// together with the freshly issued plaintext bearer token.
type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
