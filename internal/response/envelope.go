// Package response defines the envelope every password operation answers
// with, shared by the server transports and the client.
package response

// Status codes.
const (
	CodeSuccess    = "SUCCESS"
	CodeNotSuccess = "NOT_SUCCESS"
	CodeError      = "ERROR"
)

// Messages.
const (
	MsgValidationFailed   = "VALIDATION_FAILED"
	MsgUserNotExisted     = "USER_NOT_EXISTED"
	MsgEmailNotAttached   = "EMAIL_NOT_ATTACHED"
	MsgForgotSuccess      = "FORGOT_SUCCESS"
	MsgRequestSuccessful  = "REQUEST_SUCCESSFUL"
	MsgInvalidOldPassword = "INVALID_OLD_PASSWORD"
	MsgInvalidCredentials = "INVALID_CREDENTIALS"
	MsgUnauthenticated    = "UNAUTHENTICATED"
	MsgOperationFailed    = "OPERATION_FAILED"
	MsgNotificationFailed = "NOTIFICATION_FAILED"
)

// Envelope is the (code, message, result, errors) tuple.
//
// To decode Result into a concrete type, set Result to a pointer of that
// type before unmarshaling.
type Envelope struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Result  any                 `json:"result"`
	Errors  map[string][]string `json:"errors"`
}

func Success(message string, result any) *Envelope {
	return &Envelope{Code: CodeSuccess, Message: message, Result: result}
}

func NotSuccess(message string, errs map[string][]string) *Envelope {
	return &Envelope{Code: CodeNotSuccess, Message: message, Errors: errs}
}

func Error(message string) *Envelope {
	return &Envelope{Code: CodeError, Message: message}
}

func (e *Envelope) OK() bool {
	return e != nil && e.Code == CodeSuccess
}
