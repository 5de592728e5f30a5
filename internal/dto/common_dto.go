package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Users     int    `json:"users"`
	Projects  int    `json:"projects"`
	Tasks     int    `json:"tasks"`
	Comments  int    `json:"comments"`
}
