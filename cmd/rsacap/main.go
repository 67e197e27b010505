// rsacap probes and captures from a Tektronix RSA306B-class spectrum
// analyzer, or its built-in simulator when no hardware is attached.
package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/rjboer/GoRSA/internal/capture"
	"github.com/rjboer/GoRSA/internal/config"
	"github.com/rjboer/GoRSA/internal/telemetry"
	"github.com/rjboer/GoRSA/rsa"
)

type cli struct {
	Config  string `help:"Path to HCL configuration file." type:"path" optional:""`
	Sim     bool   `help:"Force the simulated device." default:"false"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Probe   probeCmd   `cmd:"" help:"Search for devices and print their identity."`
	Capture captureCmd `cmd:"" help:"Run a streaming IQ capture to a file."`
}

type appContext struct {
	cfg    config.Config
	logger *log.Logger
	ctx    context.Context
}

type probeCmd struct{}

func (p *probeCmd) Run(app *appContext) error {
	dev, err := openDevice(app)
	if err != nil {
		return err
	}

	found, err := dev.Search()
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return fmt.Errorf("no devices found")
	}
	for _, f := range found {
		app.logger.Info("found device", "id", f.ID, "type", f.Type, "serial", f.Serial)
	}

	if err := dev.Connect(app.ctx, found[0].ID); err != nil {
		return err
	}
	defer dev.Disconnect()

	info := dev.Info()
	min, max, err := dev.FreqRange()
	if err != nil {
		return err
	}
	gnss, err := dev.GNSSInstalled()
	if err != nil {
		return err
	}
	app.logger.Info("device",
		"nomenclature", info.Nomenclature,
		"serial", info.Serial,
		"api", info.API,
		"firmware", info.Firmware,
		"fpga", info.FPGA,
		"hardware", info.Hardware,
		"min_freq_hz", min,
		"max_freq_hz", max,
		"gnss", gnss,
	)
	return nil
}

type captureCmd struct {
	Frequency      float64 `help:"Center frequency in Hz." placeholder:"HZ"`
	ReferenceLevel float64 `help:"Reference level in dBm." placeholder:"DBM"`
	SampleRate     float64 `help:"IQ sample rate in Hz." placeholder:"HZ"`
	Samples        int     `help:"Number of samples to capture."`
	Skip           int     `help:"Leading samples to discard."`
	Output         string  `help:"Output file for interleaved float32 IQ." type:"path"`
}

func (c *captureCmd) Run(app *appContext) error {
	cfg := app.cfg.Capture
	if c.Frequency != 0 {
		cfg.Frequency = c.Frequency
	}
	if c.ReferenceLevel != 0 {
		cfg.ReferenceLevel = c.ReferenceLevel
	}
	if c.SampleRate != 0 {
		cfg.SampleRate = c.SampleRate
	}
	if c.Samples != 0 {
		cfg.Samples = c.Samples
	}
	if c.Skip != 0 {
		cfg.Skip = c.Skip
	}
	if c.Output != "" {
		cfg.Output = c.Output
	}

	dev, err := openDevice(app)
	if err != nil {
		return err
	}
	found, err := dev.Search()
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return fmt.Errorf("no devices found")
	}
	if err := dev.Connect(app.ctx, found[0].ID); err != nil {
		return err
	}
	defer dev.Disconnect()

	if app.cfg.Device.ExternalReference {
		if err := dev.Set("external_reference", true); err != nil {
			return err
		}
	}
	if src := app.cfg.Device.FreqRefSource; src != "" {
		if err := dev.Set("frequency_reference_source", src); err != nil {
			return err
		}
	}

	hub := telemetry.NewHub(0)
	cpt := capture.New(dev)
	cpt.Log = app.logger
	cpt.Reporter = telemetry.MultiReporter{hub, telemetry.NewStdoutReporter(app.logger)}
	cpt.Attempts = app.cfg.Capture.Attempts
	cpt.SetFrequency(cfg.Frequency)
	cpt.SetReferenceLevel(cfg.ReferenceLevel)
	if err := cpt.SetSampleRate(cfg.SampleRate); err != nil {
		return err
	}

	m, err := cpt.Acquire(app.ctx, cfg.Samples, cfg.Skip)
	if err != nil {
		return err
	}
	if m.Overload {
		app.logger.Warn("input overrange during capture")
	}

	if err := writeIQ(cfg.Output, m.Data); err != nil {
		return err
	}
	app.logger.Info("capture written",
		"file", cfg.Output,
		"samples", len(m.Data),
		"frequency_hz", m.Frequency,
		"sample_rate", m.SampleRate,
		"gain_db", m.GainDB,
		"captured_at", m.CaptureTime,
	)
	return nil
}

// writeIQ stores samples as interleaved little-endian float32 pairs, the
// same layout the device writes to its own data files.
func writeIQ(path string, data []complex64) error {
	buf := make([]byte, 8*len(data))
	for k, s := range data {
		binary.LittleEndian.PutUint32(buf[8*k:], math.Float32bits(real(s)))
		binary.LittleEndian.PutUint32(buf[8*k+4:], math.Float32bits(imag(s)))
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write capture file: %w", err)
	}
	return nil
}

func openDevice(app *appContext) (*rsa.Device, error) {
	var nat rsa.Native
	if app.cfg.Device.Simulated {
		app.logger.Debug("using simulated device")
		nat = rsa.NewSim()
	} else {
		usb, err := rsa.NewUSB()
		if err != nil {
			return nil, err
		}
		nat = usb
	}
	return rsa.New(nat, rsa.WithLogger(app.logger)), nil
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("rsacap"),
		kong.Description("RSA306B IQ capture tool"),
		kong.UsageOnError(),
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg, err := config.Load(args.Config)
	if err != nil {
		logger.Fatal("configuration", "err", err)
	}
	if args.Sim {
		cfg.Device.Simulated = true
	}

	switch {
	case args.Verbose:
		logger.SetLevel(log.DebugLevel)
	default:
		if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
			logger.SetLevel(lvl)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = kctx.Run(&appContext{cfg: cfg, logger: logger, ctx: ctx})
	kctx.FatalIfErrorf(err)
}
