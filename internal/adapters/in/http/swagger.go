package http

import (
	"net/http"
	"sync"

	"workorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the embedded OpenAPI document to swag.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// RegisterSwagger publishes the API document under swag's default instance
// and mounts the UI at /swagger/* and the raw document at /openapi.yaml.
func RegisterSwagger(e *echo.Echo) error {
	spec, err := servers.GetSwagger()
	if err != nil {
		return err
	}

	data, err := spec.MarshalJSON()
	if err != nil {
		return err
	}

	registerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", servers.RawSpec())
	})
	return nil
}

// NewEcho builds the echo instance with health check, API routes and swagger.
func NewEcho(server *Server) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlers(e, server)

	if err := RegisterSwagger(e); err != nil {
		return nil, err
	}
	return e, nil
}
