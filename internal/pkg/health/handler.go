package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// CheckFunc pings one dependency. A nil return means ready.
type CheckFunc func(ctx context.Context) error

const checkTimeout = 2 * time.Second

// BuildInfo describes the running binary, served on /ping.
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler serves build information for the deployed binary.
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if version := os.Getenv("VERSION"); version != "" {
		info.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}

	return func(c echo.Context) error {
		info.ServerTime = time.Now().UTC()
		return c.JSON(http.StatusOK, info)
	}
}

// NewReadyHandler runs every dependency check and reports 503 with the
// failing dependencies named. The kiosk cannot take a payment without
// its store and bus, so readiness is all-or-nothing.
func NewReadyHandler(checks map[string]CheckFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
		defer cancel()

		status := make(map[string]string, len(checks))
		ready := true
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status[name] = err.Error()
				ready = false
				continue
			}
			status[name] = "ok"
		}

		code := http.StatusOK
		if !ready {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, map[string]interface{}{
			"ready":        ready,
			"dependencies": status,
		})
	}
}

// RegisterHealthEndpoints wires the liveness, readiness and build-info
// endpoints. Liveness never touches dependencies; readiness pings all
// of them.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checks map[string]CheckFunc) {
	e.GET("/ping", NewPingHandler(serviceName))

	live := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", live)
	e.GET("/healthz", live)

	e.GET("/ready", NewReadyHandler(checks))
}
