package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.yaml openapi.yaml

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	specOnce sync.Once
	spec     *openapi3.T
	specErr  error
)

// GetSwagger returns the OpenAPI document embedded in this package.
func GetSwagger() (*openapi3.T, error) {
	specOnce.Do(func() {
		spec, specErr = openapi3.NewLoader().LoadFromData(rawSpec)
		if specErr != nil {
			specErr = fmt.Errorf("error loading Swagger: %w", specErr)
		}
	})
	return spec, specErr
}

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}
