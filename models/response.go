package models

// APIResponse standard response envelope
type APIResponse struct {
	Status  string      `json:"status"` // success, error
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PaginatedResponse envelope for table views
type PaginatedResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    interface{} `json:"meta"`
}

// SuccessResponse builds a success envelope
func SuccessResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// PageResponse builds a paginated success envelope
func PageResponse(message string, data interface{}, meta interface{}) PaginatedResponse {
	return PaginatedResponse{
		Status:  "success",
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

// ErrorResponse builds an error envelope
func ErrorResponse(message string, err error) APIResponse {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	return APIResponse{
		Status:  "error",
		Message: message,
		Error:   errMsg,
	}
}
