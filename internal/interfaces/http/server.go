package http

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/crm-api/docs"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/pkg/config"
	"github.com/jhoicas/crm-api/pkg/logger"
	jsoniter "github.com/json-iterator/go"
	"github.com/swaggo/swag"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewApp crea la aplicación Fiber con el codec JSON y los middlewares comunes.
// Las rutas se registran aparte con Router.
func NewApp(appName string, cfg config.HTTPConfig, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	app.Use(RequestID())
	app.Use(RequestLogger(log.Named("access")))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	// Swagger UI: http://localhost:<port>/docs. Por defecto sirve la
	// especificación embebida; SwaggerFile permite reemplazarla desde disco.
	app.Use(swagger.New(swaggerConfig(cfg, log)))
	return app
}

func swaggerConfig(cfg config.HTTPConfig, log *logger.Logger) swagger.Config {
	sc := swagger.Config{
		BasePath: "/",
		FilePath: "swagger.json",
		Path:     "docs",
		Title:    "CRM API",
	}
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			sc.FilePath = cfg.SwaggerFile
			return sc
		}
		log.Warn().Str("file", cfg.SwaggerFile).Msg("swagger: archivo no encontrado, se usa la especificación embebida")
	}
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		log.Warn().Err(err).Msg("swagger: especificación embebida no registrada")
	}
	sc.FileContent = []byte(doc)
	return sc
}

// errorHandler responde en JSON los errores que no pasan por writeError
// (rutas inexistentes, método no permitido, pánicos recuperados).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "error interno del servidor"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	body := dto.ErrorResponse{Code: "INTERNAL", Message: msg}
	switch code {
	case fiber.StatusNotFound:
		body.Code = "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		body.Code = "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		body.Code = "BAD_REQUEST"
	}
	return c.Status(code).JSON(body)
}
