package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fastauth/internal/config"
	"fastauth/internal/core"
	"fastauth/internal/db"
	"fastauth/internal/http/handler"
	"fastauth/internal/http/handler/middleware"
	"fastauth/internal/http/payload"
	"fastauth/internal/http/server"
	"fastauth/internal/mailer"
	"fastauth/internal/repository"
	"fastauth/pkg/jwt"
	"fastauth/pkg/log"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %s\n", err)
		return err
	}

	logger := log.NewZapLogger("fastauth", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	dbConn, err := db.NewGormDB(config.DSN(), db.Options{
		MaxOpenConns:    config.DBMaxOpenConns,
		MaxIdleConns:    config.DBMaxIdleConns,
		ConnMaxLifetime: config.DBConnMaxLife,
	})
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	if err := dbConn.Migrate(context.Background()); err != nil {
		logger.Errorw("failed to migrate database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewUserRepository(dbConn)

	// mailer
	var mail core.Mailer
	if config.SendGridAPIKey != "" {
		mail = mailer.NewSendGridMailer(config.SendGridAPIKey, config.MailFromEmail, config.MailFromName)
	} else {
		logger.Infow("SENDGRID_API_KEY not set, reset links will only be logged")
		mail = mailer.NewLogMailer(logger)
	}

	// auth
	auth := core.NewAuth(
		logger,
		repo,
		jwtService,
		mail,
		core.Options{
			TokenExpiration: config.JWTExpiration,
			ResetExpiration: config.ResetTokenExpiration,
			BcryptCost:      config.BcryptCost,
			ResetURL:        config.ResetURL,
		})

	// handler
	authHlr := handler.NewAuthHandler(
		logger,
		payload.DecodeValidator{},
		auth)

	// register routes
	mux := http.NewServeMux()
	authHlr.Routes(mux)

	// middleware
	hdlr := middleware.Recoverer(mux)
	hdlr = middleware.NewCORSMiddleware(config.CORSAllowedOrigin).CORS(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
