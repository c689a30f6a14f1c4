package dto

type ErrorResponse struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UploadResultDTO struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

type HealthDTO struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
