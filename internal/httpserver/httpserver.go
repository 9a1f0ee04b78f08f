package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Run starts the HTTP server and all background services, then blocks until ctx is cancelled.
//  1. Map HTTP handlers and routes
//  2. Start the hub, the relay subscriber and the jobs
//  3. Serve HTTP
//  4. Shut down in reverse order
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(ctx); err != nil {
		return fmt.Errorf("map handlers: %w", err)
	}

	if err := srv.start(ctx); err != nil {
		return err
	}

	srv.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler: srv.gin,
	}
	serveErr := make(chan error, 1)
	go func() {
		if err := srv.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	srv.logger.Infof(ctx, "internal.httpserver.Run: listening on %s", srv.server.Addr)

	var runErr error
	select {
	case <-ctx.Done():
		srv.logger.Info(ctx, "internal.httpserver.Run: shutdown requested")
	case err := <-serveErr:
		runErr = err
		srv.logger.Errorf(ctx, "internal.httpserver.Run: serve: %v", err)
	}

	srv.shutdown()
	return runErr
}

// start launches the hub, the relay subscriber and the jobs.
// When one of them fails, whatever already started is stopped before returning.
func (srv *HTTPServer) start(ctx context.Context) error {
	go srv.streamUC.Run()
	srv.logger.Info(ctx, "internal.httpserver.start: stream hub started")

	if srv.wsSubscriber != nil {
		if err := srv.wsSubscriber.Start(); err != nil {
			srv.shutdown()
			return fmt.Errorf("start relay subscriber: %w", err)
		}
	}

	for _, j := range srv.jobs {
		if err := j.Start(); err != nil {
			srv.shutdown()
			return fmt.Errorf("start job: %w", err)
		}
	}

	if srv.discord != nil {
		go srv.announce(ctx, "Service started",
			fmt.Sprintf("%s %s is running (%s)", serviceName, serviceVersion, srv.environment))
	}
	return nil
}

// announce posts an informational notice to the ops channel. Failures are only logged.
func (srv *HTTPServer) announce(ctx context.Context, title, description string) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), announceTimeout)
	defer cancel()
	if err := srv.discord.SendInfo(nctx, title, description); err != nil {
		srv.logger.Warnf(ctx, "internal.httpserver.announce: %v", err)
	}
}

// shutdown stops jobs first so no tick publishes into a closing hub.
func (srv *HTTPServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	for _, j := range srv.jobs {
		if err := j.Shutdown(ctx); err != nil {
			srv.logger.Errorf(ctx, "internal.httpserver.shutdown: job: %v", err)
		}
	}
	if srv.wsSubscriber != nil {
		if err := srv.wsSubscriber.Shutdown(ctx); err != nil {
			srv.logger.Errorf(ctx, "internal.httpserver.shutdown: relay subscriber: %v", err)
		}
	}
	if err := srv.streamUC.Shutdown(ctx); err != nil {
		srv.logger.Errorf(ctx, "internal.httpserver.shutdown: stream hub: %v", err)
	}
	if srv.server != nil {
		if err := srv.server.Shutdown(ctx); err != nil {
			srv.logger.Errorf(ctx, "internal.httpserver.shutdown: http server: %v", err)
		}
	}
	srv.logger.Info(ctx, "internal.httpserver.shutdown: stopped")
}
