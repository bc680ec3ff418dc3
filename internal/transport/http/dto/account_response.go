package dto

// -------- Identity --------

type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	ID      int64  `json:"id"`
	Token   string `json:"token"`
}

// -------- Directory --------

// UserView keeps the capitalized ID key the directory listing has
// always exposed; consumers depend on it.
type UserView struct {
	ID    int64  `json:"ID"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// -------- Me --------

// MeResponse echoes the token claims; no store round-trip.
type MeResponse struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}
