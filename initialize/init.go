package initialize

import (
	"fmt"
	"net/http"

	"ebook-share/app/controllers"
	"ebook-share/app/db"
	jwtutil "ebook-share/app/jwt"
	"ebook-share/app/middleware"
	"ebook-share/app/models"
	"ebook-share/app/repo"
	"ebook-share/app/services"
	"ebook-share/config"
	"ebook-share/router"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Logger zerolog.Logger
	Router http.Handler
	Users  *services.UserService
	Books  *services.EbookService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := NewLogger()

	gdb, err := db.Connect(db.Config{Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, DSN: cfg.DB.DSN})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Ebook{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	app, err := BuildWithDB(cfg, gdb, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Admin.Password != "" {
		if err := app.Users.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			logger.Warn().Err(err).Msg("admin seed failed")
		}
	}
	return app, nil
}

// BuildWithDB wires the application graph on an existing database handle.
// Tests use it with an in-memory database.
func BuildWithDB(cfg *config.Config, gdb *gorm.DB, logger zerolog.Logger) (*App, error) {
	userRepo := repo.NewUserRepository(gdb)
	bookRepo := repo.NewEbookRepository(gdb)
	userSvc := services.NewUserService(userRepo, bookRepo)
	bookSvc := services.NewEbookService(bookRepo, userRepo)

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, signer)
	userCtrl := controllers.NewUserController(userSvc)
	bookCtrl := controllers.NewEbookController(bookSvc)
	mw := &middleware.Auth{Signer: signer}

	h := router.NewRouter(httpCtrl, authCtrl, userCtrl, bookCtrl, mw)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)

	return &App{Cfg: cfg, DB: gdb, Logger: logger, Router: h, Users: userSvc, Books: bookSvc}, nil
}
