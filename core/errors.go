package core

import "fmt"

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

type ErrorBadRequest struct {
	Message string
}

func (e ErrorBadRequest) Error() string {
	return e.Message
}

func NewErrorBadRequest(message string) ErrorBadRequest {
	return ErrorBadRequest{Message: message}
}

type ErrorNotImplemented struct {
	Type string
}

func (e ErrorNotImplemented) Error() string {
	return fmt.Sprintf("activity type %s is not implemented", e.Type)
}

func NewErrorNotImplemented(activityType string) ErrorNotImplemented {
	return ErrorNotImplemented{Type: activityType}
}

type ErrorGone struct {
}

func (e ErrorGone) Error() string {
	return "Gone"
}

func NewErrorGone() ErrorGone {
	return ErrorGone{}
}
