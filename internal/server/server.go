package server

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/carousell/ct-go/pkg/logger"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/tailyapp/taily-api/internal/config"
	pkgmdw "github.com/tailyapp/taily-api/internal/server/middleware"
	"go.uber.org/fx"
)

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	pets PetController,
	users UserController,
) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(logger.MustNamed("http"), !conf.IsProduction())

	logConfig := pkgmdw.LogRequestConfig{
		Logger: logger.MustNamed("http"),
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/health" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(pkgmdw.CORS(regexp.MustCompile(conf.Server.CORSOrigin)))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))

	e.GET("/", welcome)
	e.GET("/health", health)
	registerRoutes(e, pets, users)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow(ctx, "starting HTTP server", "addr", conf.Server.Addr())
				if err := e.Start(conf.Server.Addr()); !errors.Is(err, http.ErrServerClosed) {
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func registerRoutes(e *echo.Echo, pets PetController, users UserController) {
	api := e.Group("/api")

	p := api.Group("/pets")
	p.GET("", pets.ListPets)
	p.GET("/user/:userId", pets.ListPets)
	p.GET("/:id", pets.GetPet)
	p.POST("", pets.CreatePet)
	p.PUT("/:id", pets.UpdatePet)
	p.DELETE("/:id", pets.DeletePet)

	p.POST("/:id/passport/schedules", pets.AddSchedule)
	p.PUT("/:id/passport/schedules/:scheduleId", pets.UpdateSchedule)
	p.DELETE("/:id/passport/schedules/:scheduleId", pets.DeleteSchedule)

	p.POST("/:id/petCare", pets.AddCareRecord)
	p.PUT("/:id/petCare/:careId", pets.UpdateCareRecord)
	p.DELETE("/:id/petCare/:careId", pets.DeleteCareRecord)

	p.POST("/:id/medicalRecords", pets.AddMedicalRecord)
	p.PUT("/:id/medicalRecords/:recordId", pets.UpdateMedicalRecord)
	p.DELETE("/:id/medicalRecords/:recordId", pets.DeleteMedicalRecord)

	p.POST("/:id/petIds", pets.AddPetIDRecord)
	p.PUT("/:id/petIds/:petIdRecordId", pets.UpdatePetIDRecord)
	p.DELETE("/:id/petIds/:petIdRecordId", pets.DeletePetIDRecord)

	u := api.Group("/users")
	u.GET("", users.ListUsers)
	u.GET("/email/:email", users.GetUserByEmail)
	u.GET("/:id", users.GetUser)
	u.POST("", users.CreateUser)
	u.PUT("/:id", users.UpdateUser)
	u.DELETE("/:id", users.DeleteUser)
	u.PATCH("/:id/role", users.UpdateUserRole)
}

func welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to the Taily API")
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "taily-api",
	})
}
