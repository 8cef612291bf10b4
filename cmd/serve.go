// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-access/internal/config"
	"github.com/canonical/tenant-access/internal/identity"
	"github.com/canonical/tenant-access/internal/logging"
	"github.com/canonical/tenant-access/internal/monitoring"
	"github.com/canonical/tenant-access/internal/tracing"
	"github.com/canonical/tenant-access/pkg/authentication"
	"github.com/canonical/tenant-access/pkg/grants"
	"github.com/canonical/tenant-access/pkg/groups"
	"github.com/canonical/tenant-access/pkg/notifications"
	"github.com/canonical/tenant-access/pkg/sweeper"
	"github.com/canonical/tenant-access/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		panic(err)
	}

	c, err := bootstrap(specs)
	if err != nil {
		return err
	}
	defer c.Close()

	logger := c.logger
	tracer := c.tracer
	monitor := c.monitor

	permissionsService := c.permissions()
	scheduler := notifications.NewScheduler(c.storage, tracer, monitor, logger)

	services := web.Services{
		Permissions: permissionsService,
		Groups:      groups.NewService(c.storage, c.db, permissionsService, tracer, monitor, logger),
		Grants:      grants.NewService(c.storage, c.db, scheduler, permissionsService, tracer, monitor, logger),
		Tenants:     c.tenants(permissionsService),
	}

	authn, err := authenticationMiddleware(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	var jobs *sweeper.Scheduler
	if specs.SchedulerEnabled {
		jobs, err = sweeper.NewScheduler(
			c.sweeper(permissionsService),
			c.dispatcher(),
			specs.SweepSchedule,
			specs.NotifySchedule,
			tracer,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %v", err)
		}
		jobs.Start()
		logger.Infof("Scheduler started, sweep %q, notifications %q", specs.SweepSchedule, specs.NotifySchedule)
	}

	router := web.NewRouter(
		services,
		c.db,
		authn,
		specs.CORSAllowedOrigins,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			sig <- os.Interrupt
		}
	}()

	<-sig

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	if jobs != nil {
		if err := jobs.Stop(ctx); err != nil {
			logger.Errorf("scheduler did not stop cleanly: %v", err)
		}
	}

	return serverError
}

// authenticationMiddleware picks how the caller identity is established: a header set by an
// identity aware proxy, a verified JWT bearer token, or nothing at all in development.
func authenticationMiddleware(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (func(http.Handler) http.Handler, error) {
	if specs.AuthenticationTrustedHeader != "" {
		logger.Infof("Trusting identity header %s", specs.AuthenticationTrustedHeader)
		return identity.NewMiddleware(specs.AuthenticationTrustedHeader, tracer, monitor, logger).HTTPMiddleware, nil
	}

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		v, err := authentication.NewJWTAuthenticator(
			context.Background(),
			authentication.Config{
				Issuer:        specs.AuthenticationIssuer,
				JwksURL:       specs.AuthenticationJwksURL,
				Audience:      specs.AuthenticationAudience,
				UserClaim:     specs.AuthenticationUserClaim,
				RequiredScope: specs.AuthenticationRequiredScope,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create authenticator: %v", err)
		}
		verifier = v
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Authentication is disabled")
	}

	return authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(), nil
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
