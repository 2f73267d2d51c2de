package dto

type AuthResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"is_admin"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type EmailExportResponse struct {
	Sent bool   `json:"sent"`
	HTML string `json:"html"`
}
