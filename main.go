package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourism/internal/auth"
	intconfig "tourism/internal/config"
	intdb "tourism/internal/db"
	router "tourism/internal/http"
	"tourism/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log, err := intconfig.NewLogger(env)
	if err != nil {
		logrus.WithError(err).Fatal("invalid logger configuration")
	}
	utils.SetEventLogger(log)

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	defer db.Close()

	store := intdb.NewStore(db)
	if err := prepareSchema(store, env.SeedDefaults, log); err != nil {
		log.WithError(err).Fatal("schema setup failed")
	}

	r := router.NewRouter(router.Deps{
		Env:    env,
		Logger: log,
		Store:  store,
		Tokens: auth.NewTokenManager(env.JWTSecret, env.JWTExpirationHours),
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", env.AppAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown failed")
		return
	}

	log.Info("server stopped")
}

// prepareSchema creates missing tables and, when enabled, the default rows,
// all in one transaction.
func prepareSchema(store *intdb.Store, seed bool, log *logrus.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return store.WithTx(ctx, func(q intdb.Querier) error {
		if err := intdb.Migrate(ctx, q); err != nil {
			return err
		}
		if !seed {
			return nil
		}
		n, err := intdb.Seed(ctx, q)
		if err != nil {
			return err
		}
		log.WithField("inserted", n).Info("default rows seeded")
		return nil
	})
}
