package get_session_state

import (
	"context"

	getSessionState "github.com/m04kA/GymSpace-BookingService/internal/usecase/get_session_state"
)

type GetSessionStateUseCase interface {
	Execute(ctx context.Context, req *getSessionState.Request) (*getSessionState.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
