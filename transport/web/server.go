// Package web is the point-and-click driver: a locally served page renders
// the grid and every click travels over a websocket to a per-connection
// game session. The opponent is the bot or a second person at the same
// screen; nothing leaves the machine.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"github.com/whizdome/tic-tac-toe/internal/board"
)

type Server struct {
	logger  *slog.Logger
	botMark board.Mark

	engine   *gin.Engine
	upgrader websocket.Upgrader
	validate *validator.Validate
}

func New(logger *slog.Logger, botMark board.Mark) *Server {
	gin.SetMode(gin.ReleaseMode)

	server := &Server{
		logger:  logger.With("component", "web"),
		botMark: botMark,
		engine:  gin.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The page is served from this process on localhost.
				return true
			},
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	server.engine.Use(gin.Recovery())
	server.engine.GET("/", server.handleIndex)
	server.engine.GET("/ws", server.handleWebSocket)
	server.engine.GET("/ping", server.handlePing)

	return server
}

// Engine exposes the router for tests.
func (that *Server) Engine() http.Handler {
	return that.engine
}

// Start serves the page until the context is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	that.logger.Info("web driver started", "port", port)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

func (that *Server) handlePing(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
