package scan

// ErrorCode classifies the terminal failures of one scan attempt.  All are
// recoverable: the scanner surfaces them as an error display state and
// settles back to idle.
type ErrorCode string

const (
	ErrInvalidImage       ErrorCode = "INVALID_IMAGE"
	ErrRecognitionFailure ErrorCode = "RECOGNITION_FAILURE"
	ErrNoInformationFound ErrorCode = "NO_INFORMATION_FOUND"
	ErrNoSearchResults    ErrorCode = "NO_SEARCH_RESULTS"
)

// User-facing messages for the terminal states.
const (
	msgInvalidImage  = "No readable image data"
	msgRecognition   = "Text recognition failed"
	msgNoInformation = "Could not find book information in the image"
	msgNoResults     = "No books found"
)

// Error is a coded scan failure.  Cause carries the collaborator error when
// one exists.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
