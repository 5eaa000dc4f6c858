package api

import (
	"context"
	"time"

	"github.com/CristiGvl/picoSysMon/internal/errors"
	"github.com/CristiGvl/picoSysMon/internal/hardware"
	"github.com/CristiGvl/picoSysMon/internal/logger"
	"github.com/gofiber/fiber/v2"
)

const requestTimeout = 10 * time.Second

// hardwareResponse is the latest polled snapshot with its age
type hardwareResponse struct {
	hardware.Snapshot
	TakenAt time.Time `json:"taken_at"`
}

// latest returns the poller's snapshot, polling once if none exists yet
func (s *Server) latest() hardwareResponse {
	snap, takenAt, ok := s.Poller.Latest()
	if !ok {
		snap, takenAt = s.Poller.Poll()
	}
	return hardwareResponse{Snapshot: snap, TakenAt: takenAt}
}

// Hardware snapshot endpoint
func (s *Server) getHardware(c *fiber.Ctx) error {
	return c.JSON(s.latest())
}

// Per-core frequency endpoint
func (s *Server) getCores(c *fiber.Ctx) error {
	return c.JSON(s.latest().Cores)
}

// Thermal zones endpoint
func (s *Server) getThermal(c *fiber.Ctx) error {
	return c.JSON(s.latest().Thermal)
}

// Current frequency endpoint; read fresh, it's two file reads at most
func (s *Server) getFrequency(c *fiber.Ctx) error {
	khz := s.CPUReader.CurrentFrequency()
	return c.JSON(fiber.Map{
		"frequency_khz": khz,
		"frequency_mhz": khz / 1000,
	})
}

// CPU endpoint
func (s *Server) getCPU(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	info, err := s.CPUReader.GetInfo(ctx)
	if err != nil {
		return collectError(c, "cpu", err)
	}

	return c.JSON(info)
}

// Memory endpoint
func (s *Server) getMemory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	info, err := s.MemoryReader.GetInfo(ctx)
	if err != nil {
		return collectError(c, "memory", err)
	}

	return c.JSON(info)
}

// Storage endpoint
func (s *Server) getStorage(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	info, err := s.StorageReader.GetInfo(ctx)
	if err != nil {
		return collectError(c, "storage", err)
	}

	return c.JSON(info)
}

// Battery endpoint
func (s *Server) getBattery(c *fiber.Ctx) error {
	return c.JSON(s.BatteryReader.GetInfo())
}

// Network endpoint
func (s *Server) getNetwork(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	info, err := s.NetworkReader.GetInfo(ctx)
	if err != nil {
		return collectError(c, "network", err)
	}

	return c.JSON(info)
}

// System endpoint
func (s *Server) getSystem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	info, err := s.SystemReader.GetInfo(ctx)
	if err != nil {
		return collectError(c, "system", err)
	}

	return c.JSON(info)
}

// hwmon sensors endpoint
func (s *Server) getSensors(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
	defer cancel()

	info, err := s.TempsReader.GetInfo(ctx)
	if err != nil {
		return collectError(c, "sensors", err)
	}

	return c.JSON(info)
}

func collectError(c *fiber.Ctx, component string, err error) error {
	appErr := errors.New().Wrap(errors.ErrCollectFailed, err).WithMessage("failed to collect " + component)
	logger.ErrorWithCode(appErr).Str("component", component).Msg("request failed")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": appErr.Error(),
		"code":  appErr.Code(),
	})
}
