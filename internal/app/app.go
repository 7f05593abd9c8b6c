package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"github.com/tailyapp/taily-api/internal/config"
	"github.com/tailyapp/taily-api/internal/repo/mongodb"
	"github.com/tailyapp/taily-api/internal/server"
	"github.com/tailyapp/taily-api/internal/usecase"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,

			mongodb.NewUserRepository,
			mongodb.NewPetRepository,

			usecase.NewUserUsecase,
			usecase.NewPetUsecase,

			server.NewPetController,
			server.NewUserController,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
