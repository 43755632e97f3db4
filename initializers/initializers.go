package initializers

import (
	"context"

	"hr-bot-backend/config"
	"hr-bot-backend/fiberlog"
	"hr-bot-backend/lib/archive"
	summaryexport "hr-bot-backend/lib/export/summary"
	xlsexport "hr-bot-backend/lib/export/xls"
	"hr-bot-backend/lib/interview"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	archive.NewHandler()
	summaryexport.NewHandler()
	xlsexport.NewHandler()
	interview.NewHandler()
}
