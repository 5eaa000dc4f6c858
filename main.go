package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/CristiGvl/picoSysMon/api"
	"github.com/CristiGvl/picoSysMon/internal/battery"
	"github.com/CristiGvl/picoSysMon/internal/config"
	"github.com/CristiGvl/picoSysMon/internal/cpu"
	"github.com/CristiGvl/picoSysMon/internal/errors"
	"github.com/CristiGvl/picoSysMon/internal/hardware"
	"github.com/CristiGvl/picoSysMon/internal/logger"
	"github.com/CristiGvl/picoSysMon/internal/memory"
	"github.com/CristiGvl/picoSysMon/internal/metrics"
	"github.com/CristiGvl/picoSysMon/internal/monitor"
	"github.com/CristiGvl/picoSysMon/internal/network"
	"github.com/CristiGvl/picoSysMon/internal/platform"
	"github.com/CristiGvl/picoSysMon/internal/render"
	"github.com/CristiGvl/picoSysMon/internal/storage"
	"github.com/CristiGvl/picoSysMon/internal/sysfs"
	"github.com/CristiGvl/picoSysMon/internal/system"
	"github.com/CristiGvl/picoSysMon/internal/temps"
	"github.com/spf13/pflag"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "configuration error [%s]: %v\n", errors.CodeOf(err), err)
		os.Exit(2)
	}

	logger.Init(cfg.LogLevel, logger.IsService())

	if err := platform.ValidateSupport(); err != nil {
		logger.Fatal().Err(err).Str("code", string(errors.CodeOf(err))).Msg("Platform validation failed")
	}

	sysfsRoot := sysfs.NewFs(cfg.SysfsRoot)
	rootfs := sysfs.NewFs(cfg.RootFS)
	sampler := hardware.NewSysfsSampler(sysfsRoot)
	batteryReader := battery.NewReader(sysfsRoot)

	if cfg.Once {
		fmt.Print(render.Hardware(sampler.Sample()))
		fmt.Println(render.Battery(batteryReader.GetInfo()))
		return
	}

	var observers []monitor.Observer
	var m *metrics.Metrics
	if cfg.Metrics {
		m = metrics.New()
		observers = append(observers, m)
	}
	poller := monitor.New(sampler, cfg.Interval, observers...)

	server := api.NewServer(api.Deps{
		Poller:        poller,
		CPUReader:     cpu.NewReader(sysfsRoot, rootfs),
		TempsReader:   temps.NewReader(sysfsRoot),
		MemoryReader:  memory.NewReader(),
		StorageReader: storage.NewReader(cfg.StoragePath),
		NetworkReader: network.NewReader(),
		BatteryReader: batteryReader,
		SystemReader:  system.NewReader(rootfs),
		Metrics:       m,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go poller.Run(ctx)

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			logger.ErrorWithCode(errors.New().Wrap(errors.ErrShutdown, err)).Msg("Error during shutdown")
		}
	}()

	logger.Info().Str("address", cfg.Address()).Msg("Starting picoSysMon server")
	if err := server.Start(cfg.Address()); err != nil {
		logger.FatalWithCode(errors.New().Wrap(errors.ErrServerStart, err)).Msg("Server stopped")
	}
}
