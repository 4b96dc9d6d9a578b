package dto

// ValidationError is a client-side pre-flight rejection: the request never
// left this process.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

type UploadImageResponse struct {
	ImageId string `json:"image_id"`
	URL     string `json:"url"`
}
