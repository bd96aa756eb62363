package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/log15"
	"github.com/gin-gonic/gin"
)

const shutdownGrace = 5 * time.Second

// Server runs the gin engine behind an http.Server so the daemon can
// drain in-flight requests on shutdown.
type Server struct {
	srv    *http.Server
	log    log15.Logger
	sysErr chan<- error
}

func NewServer(engine *gin.Engine, port int, logger log15.Logger, sysErr chan<- error) *Server {
	return &Server{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: engine,
		},
		log:    logger,
		sysErr: sysErr,
	}
}

func (s *Server) Name() string {
	return "api"
}

// Start serves in the background, listen failures land on sysErr.
func (s *Server) Start() error {
	go func() {
		s.log.Info("serving api", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.sysErr <- err
		}
	}()
	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Warn("api shutdown failed", "err", err)
	}
}
