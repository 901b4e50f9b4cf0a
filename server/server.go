package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	json "github.com/json-iterator/go"
	"github.com/nanotower/c4-todo-serverless/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	ConfigPath = "/config.json"
	HealthPath = "/healthz"

	shutdownTimeout = 5 * time.Second
)

// New returns an app that serves cfg to the browser client. cfg is never
// modified, so handlers read it without locking.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "todo-config",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          handleError,
	})

	app.Use(logRequests)

	app.Get(ConfigPath, func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-cache")
		return c.JSON(cfg)
	})

	app.Get(HealthPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app
}

// Listen serves app on addr until ctx is cancelled. A context that is already
// done returns before anything is bound.
func Listen(ctx context.Context, app *fiber.App, addr string) error {
	if ctx.Err() != nil {
		return nil
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("[SERVER] - Failed binding %s: %w", addr, err)
	}

	var errs = make(chan error, 1)
	go func() {
		errs <- app.Listener(ln)
	}()
	log.Infof("[SERVER] - Listening on %s", ln.Addr())

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info("[SERVER] - Shutting down")
	var shutdownErr = app.ShutdownWithTimeout(shutdownTimeout)
	_ = ln.Close()

	select {
	case err := <-errs:
		if err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
		return shutdownErr
	case <-time.After(shutdownTimeout):
		return fmt.Errorf("[SERVER] - Listener on %s did not stop within %s", addr, shutdownTimeout)
	}
}

func handleError(c *fiber.Ctx, err error) error {
	var code = fiber.StatusInternalServerError
	var message = "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	} else {
		log.Errorf("[SERVER] - Failed handling %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Error{
		Code:    code,
		Message: message,
	})
}

func logRequests(c *fiber.Ctx) error {
	var start = time.Now()
	var err = c.Next()
	log.WithFields(log.Fields{
		"method":   c.Method(),
		"path":     c.Path(),
		"duration": time.Since(start),
		"error":    err,
	}).Debug("[SERVER] - Request")
	return err
}
