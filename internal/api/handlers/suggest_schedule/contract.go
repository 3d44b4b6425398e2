package suggest_schedule

import (
	"context"

	suggestSchedule "github.com/m04kA/SMC-FleetBookingService/internal/usecase/suggest_schedule"
)

type SuggestScheduleUseCase interface {
	Execute(ctx context.Context, req *suggestSchedule.Request) (*suggestSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
