package rsa

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/charmbracelet/log"
)

// State is the device lifecycle state. Owned by Device; acquisition
// protocols query it but never mutate it directly.
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateRunning:
		return "running"
	}
	return "unknown"
}

// FoundDevice is one search result.
type FoundDevice struct {
	ID     int
	Serial string
	Type   string
}

// Device is the typed command layer over a Native handle. All methods are
// blocking and serialized by an internal mutex; the underlying hardware
// cannot process concurrent command streams.
type Device struct {
	nat Native
	log *log.Logger

	mu    sync.Mutex
	state State

	// cached at connect time
	minFreq, maxFreq float64
	info             VersionInfo

	alignDelay   time.Duration
	alignRetries uint64
}

// Option configures a Device at construction.
type Option func(*Device)

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Device) { d.log = l }
}

// WithAlignRetry overrides the alignment retry schedule.
func WithAlignRetry(delay time.Duration, retries uint64) Option {
	return func(d *Device) {
		d.alignDelay = delay
		d.alignRetries = retries
	}
}

// New wraps a Native handle in a Device in the Disconnected state.
func New(nat Native, opts ...Option) *Device {
	d := &Device{
		nat:          nat,
		log:          log.Default(),
		state:        StateDisconnected,
		alignDelay:   5 * time.Second,
		alignRetries: 3,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// State reports the current lifecycle state.
func (d *Device) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Info returns the version strings cached at connect time.
func (d *Device) Info() VersionInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.info
}

// Search lists attached devices. Legal in any state.
func (d *Device) Search() ([]FoundDevice, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids, serials, types, st := d.nat.Search()
	if err := st.Err("DEVICE_Search"); err != nil {
		return nil, err
	}
	found := make([]FoundDevice, len(ids))
	for i, id := range ids {
		found[i] = FoundDevice{ID: id, Serial: serials[i], Type: types[i]}
	}
	return found, nil
}

// Connect opens the device with the given search id, caches its frequency
// constraints and version strings, and runs the alignment check. A failed
// alignment aborts the connect and leaves the device disconnected.
func (d *Device) Connect(ctx context.Context, id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != StateDisconnected {
		return &ConnectError{DeviceID: id, Reason: "already connected"}
	}
	if id < 0 {
		return &ConnectError{DeviceID: id, Reason: "invalid device id"}
	}
	if st := d.nat.Connect(id); st != StatusNoError {
		return &ConnectError{DeviceID: id, Reason: "device did not answer", Err: st.Err("DEVICE_Connect")}
	}
	d.state = StateConnected

	if err := d.cacheDeviceInfo(); err != nil {
		d.teardown()
		return &ConnectError{DeviceID: id, Reason: "device query failed", Err: err}
	}
	if err := d.alignLocked(ctx); err != nil {
		d.teardown()
		return err
	}
	d.log.Info("connected", "device", d.info.Nomenclature, "serial", d.info.Serial)
	return nil
}

func (d *Device) cacheDeviceInfo() error {
	min, st := d.nat.GetMinCenterFreq()
	if err := st.Err("CONFIG_GetMinCenterFreq"); err != nil {
		return err
	}
	max, st := d.nat.GetMaxCenterFreq()
	if err := st.Err("CONFIG_GetMaxCenterFreq"); err != nil {
		return err
	}
	info, st := d.nat.GetVersionInfo()
	if err := st.Err("DEVICE_GetInfo"); err != nil {
		return err
	}
	d.minFreq, d.maxFreq = min, max
	d.info = info
	return nil
}

// alignLocked runs the alignment sub-procedure. A device that has not
// warmed up is skipped, not failed; it will self-align later. Transient
// alignment failures are retried on a fixed delay.
func (d *Device) alignLocked(ctx context.Context) error {
	warm, st := d.nat.GetWarmupStatus()
	if err := st.Err("ALIGN_GetWarmupStatus"); err != nil {
		return err
	}
	if !warm {
		d.log.Debug("device not warmed up, skipping alignment")
		return nil
	}
	needed, st := d.nat.GetAlignmentNeeded()
	if err := st.Err("ALIGN_GetAlignmentNeeded"); err != nil {
		return err
	}
	if !needed {
		return nil
	}

	attempts := 0
	op := func() error {
		attempts++
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		if err := d.nat.RunAlignment().Err("ALIGN_RunAlignment"); err != nil {
			d.log.Warn("alignment failed", "attempt", attempts, "err", err)
			return err
		}
		return nil
	}
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(d.alignDelay), d.alignRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		var de *DeviceError
		if errors.As(err, &de) {
			return &ExhaustedError{Op: "alignment", Attempts: attempts, Last: err}
		}
		return err
	}
	d.log.Debug("alignment complete", "attempts", attempts)
	return nil
}

func (d *Device) teardown() {
	if st := d.nat.Stop(); st != StatusNoError {
		d.log.Debug("stop during teardown", "status", st)
	}
	if st := d.nat.Disconnect(); st != StatusNoError {
		d.log.Debug("disconnect during teardown", "status", st)
	}
	d.state = StateDisconnected
}

// Disconnect returns the device to the Disconnected state, stopping any
// acquisition in progress. Always succeeds.
func (d *Device) Disconnect() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateDisconnected {
		return
	}
	d.teardown()
	d.log.Info("disconnected")
}

// Run starts the device. Idempotent when already running.
func (d *Device) Run() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.runLocked()
}

func (d *Device) runLocked() error {
	if d.state == StateDisconnected {
		return StatusErrorNotConnected.Err("DEVICE_Run")
	}
	if d.state == StateRunning {
		return nil
	}
	if err := d.nat.Run().Err("DEVICE_Run"); err != nil {
		return err
	}
	d.state = StateRunning
	return nil
}

// Stop halts acquisition, returning to Connected. Idempotent when already
// stopped.
func (d *Device) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopLocked()
}

func (d *Device) stopLocked() error {
	if d.state == StateDisconnected {
		return StatusErrorNotConnected.Err("DEVICE_Stop")
	}
	if d.state == StateConnected {
		return nil
	}
	if err := d.nat.Stop().Err("DEVICE_Stop"); err != nil {
		return err
	}
	d.state = StateConnected
	return nil
}

// requireConnected gates every command except Search and Connect. Failing
// fast here keeps an unconnected handle from ever reaching a native call.
func (d *Device) requireConnected(op string) error {
	if d.state == StateDisconnected {
		return StatusErrorNotConnected.Err(op)
	}
	return nil
}

// OverTemperature reports whether the device is above its thermal limit.
func (d *Device) OverTemperature() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("DEVICE_GetOverTemperatureStatus"); err != nil {
		return false, err
	}
	hot, st := d.nat.GetOverTemperatureStatus()
	return hot, st.Err("DEVICE_GetOverTemperatureStatus")
}

// EventStatus queries a latched device event and its timestamp.
func (d *Device) EventStatus(event EventType) (bool, uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("DEVICE_GetEventStatus"); err != nil {
		return false, 0, err
	}
	occurred, ts, st := d.nat.GetEventStatus(event)
	return occurred, ts, st.Err("DEVICE_GetEventStatus")
}

// GNSSInstalled reports whether the device carries a GNSS receiver.
func (d *Device) GNSSInstalled() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("GNSS_GetHwInstalled"); err != nil {
		return false, err
	}
	installed, st := d.nat.GNSSHardwareInstalled()
	return installed, st.Err("GNSS_GetHwInstalled")
}

// Preset restores the default acquisition configuration.
func (d *Device) Preset() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_Preset"); err != nil {
		return err
	}
	return d.nat.Preset().Err("CONFIG_Preset")
}
