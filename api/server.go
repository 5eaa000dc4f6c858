package api

import (
	"time"

	"github.com/CristiGvl/picoSysMon/internal/battery"
	"github.com/CristiGvl/picoSysMon/internal/cpu"
	"github.com/CristiGvl/picoSysMon/internal/memory"
	"github.com/CristiGvl/picoSysMon/internal/metrics"
	"github.com/CristiGvl/picoSysMon/internal/monitor"
	"github.com/CristiGvl/picoSysMon/internal/network"
	"github.com/CristiGvl/picoSysMon/internal/platform"
	"github.com/CristiGvl/picoSysMon/internal/storage"
	"github.com/CristiGvl/picoSysMon/internal/system"
	"github.com/CristiGvl/picoSysMon/internal/temps"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Deps are the readers the API serves from. Metrics may be nil to disable /metrics.
type Deps struct {
	Poller        *monitor.Poller
	CPUReader     cpu.Reader
	TempsReader   temps.Reader
	MemoryReader  memory.Reader
	StorageReader storage.Reader
	NetworkReader network.Reader
	BatteryReader *battery.Reader
	SystemReader  *system.Reader
	Metrics       *metrics.Metrics
}

// Server represents the API server
type Server struct {
	app *fiber.App
	Deps
}

// NewServer creates a new API server
func NewServer(deps Deps) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "picoSysMon",
		AppName:               "picoSysMon v1.0",
		DisableStartupMessage: true,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400,
	}))

	server := &Server{app: app, Deps: deps}
	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Hardware sampler endpoints
	api.Get("/hardware", s.getHardware)
	api.Get("/cpu/cores", s.getCores)
	api.Get("/cpu/frequency", s.getFrequency)
	api.Get("/thermal", s.getThermal)

	// Device information endpoints
	api.Get("/cpu", s.getCPU)
	api.Get("/memory", s.getMemory)
	api.Get("/storage", s.getStorage)
	api.Get("/battery", s.getBattery)
	api.Get("/network", s.getNetwork)
	api.Get("/system", s.getSystem)
	api.Get("/sensors", s.getSensors)

	// Health check
	api.Get("/health", s.healthCheck)

	if s.Metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.Metrics.Handler()))
	}
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	resp := fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"timestamp": time.Now().Unix(),
	}
	if _, takenAt, ok := s.Poller.Latest(); ok {
		resp["last_sample"] = takenAt.Unix()
	}
	return c.JSON(resp)
}
