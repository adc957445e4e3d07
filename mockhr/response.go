package mockhr

type ErrorResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Message: message,
	}
}

// SuccessResponse is the {"data": ...} envelope. Only some endpoints use it;
// the rest answer with bare payloads, which is exactly the inconsistency the
// client's normalization layer exists for.
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}
