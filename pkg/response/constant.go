package response

const (
	MessageSuccess = "Success"

	DefaultErrorCode        = 1
	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"
)
