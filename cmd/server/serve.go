package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/blues/adagency/internal/cache"
	"github.com/blues/adagency/internal/database"
	"github.com/blues/adagency/internal/logger"
	"github.com/blues/adagency/internal/logic"
	"github.com/blues/adagency/internal/notify"
	"github.com/blues/adagency/internal/router"
	"github.com/blues/adagency/internal/scheduler"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the scheduler",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Init(cfg.Database)
	if err != nil {
		return err
	}

	feedCache, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if c, ok := feedCache.(io.Closer); ok {
		defer c.Close()
	}

	publisher, err := notify.NewPublisher(cfg.RabbitMQ)
	if err != nil {
		return err
	}
	dispatcher, err := notify.NewDispatcher(publisher, cfg.RabbitMQ.PoolSize)
	if err != nil {
		publisher.Close()
		return err
	}

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	defer func() {
		if err := dispatcher.Close(shutdownTimeout); err != nil {
			logger.Warn("Failed to close publisher: %v", err)
		}
	}()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.Setup(db, feedCache, dispatcher, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var tasks *scheduler.Manager
	if cfg.Scheduler.DigestInterval > 0 {
		job := scheduler.NewLeadDigestJob(
			logic.NewLeadLogic(db, dispatcher),
			dispatcher,
			time.Duration(cfg.Scheduler.DigestInterval)*time.Second,
			time.Duration(cfg.Scheduler.StaleAfter)*time.Minute,
		)
		if tasks, err = scheduler.NewManager(job); err != nil {
			return err
		}
		if err := tasks.RegisterJobs(); err != nil {
			return err
		}
		tasks.Start()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		if tasks != nil {
			if err := tasks.Stop(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
