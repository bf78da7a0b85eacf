package http_server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

type Config struct {
	Port            int
	Timeout         time.Duration
	ShutdownTimeout time.Duration
}

func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	if config.Timeout > 0 {
		handler = http.TimeoutHandler(handler, config.Timeout, "request timed out")
	}
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           handler,
		ReadHeaderTimeout: config.Timeout,
		ReadTimeout:       config.Timeout,
		WriteTimeout:      config.Timeout + time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
