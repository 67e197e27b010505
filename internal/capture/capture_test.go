package capture

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/rjboer/GoRSA/internal/calibration"
	"github.com/rjboer/GoRSA/internal/telemetry"
	"github.com/rjboer/GoRSA/rsa"
)

// fixedCal returns the same calibration values for every lookup.
type fixedCal struct {
	values calibration.Values
}

func (f fixedCal) Lookup(sampleRate, frequency, referenceLevel float64) calibration.Values {
	return f.values
}

func newTestCapturer(t *testing.T) (*Capturer, *rsa.Sim) {
	t.Helper()
	sim := rsa.NewSim()
	dev := rsa.New(sim, rsa.WithLogger(log.New(io.Discard)))
	if err := dev.Connect(context.Background(), 0); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(dev.Disconnect)

	c := New(dev)
	c.Log = log.New(io.Discard)
	c.SetFrequency(1e9)
	// 30 dBm makes the uncalibrated gain formula come out to 0 dB, so
	// samples pass through unscaled unless a calibration source says
	// otherwise.
	c.SetReferenceLevel(30)
	if err := c.SetSampleRate(14e6); err != nil {
		t.Fatalf("SetSampleRate: %v", err)
	}
	return c, sim
}

func TestSetSampleRateMembership(t *testing.T) {
	c, _ := newTestCapturer(t)

	for sr, bw := range sampleRateToBandwidth {
		if err := c.SetSampleRate(sr); err != nil {
			t.Errorf("SetSampleRate(%g): %v", sr, err)
		}
		if c.bandwidth != bw {
			t.Errorf("bandwidth for %g = %g, want %g", sr, c.bandwidth, bw)
		}
	}

	var se *rsa.SetError
	if err := c.SetSampleRate(1e6); !errors.As(err, &se) {
		t.Fatalf("SetSampleRate(1e6) = %v, want SetError", err)
	}
	if len(se.Allowed) != len(sampleRateToBandwidth) {
		t.Errorf("allowed set has %d entries, want %d", len(se.Allowed), len(sampleRateToBandwidth))
	}
}

func TestAcquireReturnsExactlyN(t *testing.T) {
	c, _ := newTestCapturer(t)

	// 14000 samples at 14 MS/s is exactly one millisecond.
	m, err := c.Acquire(context.Background(), 14000, 0)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(m.Data) != 14000 {
		t.Errorf("returned %d samples, want 14000", len(m.Data))
	}
	if m.Frequency != 1e9 || m.SampleRate != 14e6 || m.ReferenceLevel != 30 {
		t.Errorf("measurement context = %+v", m)
	}
	if m.CaptureTime.IsZero() {
		t.Error("capture time not set")
	}
	// Phase-zero tone start, gain 0 dB.
	if got := real(m.Data[0]); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("first sample = %v, want 0.5", got)
	}
}

func TestAcquireSkipsLeadingSamples(t *testing.T) {
	c, _ := newTestCapturer(t)

	const n, skip = 13000, 1000
	m, err := c.Acquire(context.Background(), n, skip)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(m.Data) != n {
		t.Fatalf("returned %d samples, want %d", len(m.Data), n)
	}
	// The simulated tone starts at phase zero, so sample skip carries
	// phase 2*pi*f0*skip/sr.
	phase := 2 * math.Pi * 1e6 * float64(skip) / 14e6
	wantI := 0.5 * math.Cos(phase)
	if got := float64(real(m.Data[0])); math.Abs(got-wantI) > 1e-4 {
		t.Errorf("first kept sample I = %v, want %v", got, wantI)
	}
}

func TestAcquireSubMillisecondRequest(t *testing.T) {
	c, _ := newTestCapturer(t)

	// 1000 samples at 14 MS/s is well under a millisecond; the capture
	// stretches to 1 ms and truncates the surplus leading samples.
	m, err := c.Acquire(context.Background(), 1000, 0)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if len(m.Data) != 1000 {
		t.Errorf("returned %d samples, want 1000", len(m.Data))
	}
}

func TestAcquireRetriesShortCapturesThenSucceeds(t *testing.T) {
	c, sim := newTestCapturer(t)
	hub := telemetry.NewHub(0)
	c.Reporter = hub
	c.Attempts = 5
	sim.ShortRuns = 2 // two captures come back one sample short

	m, err := c.Acquire(context.Background(), 14000, 0)
	if err != nil {
		t.Fatalf("Acquire with 2 short captures: %v", err)
	}
	if len(m.Data) != 14000 {
		t.Errorf("returned %d samples, want 14000", len(m.Data))
	}

	var attempts, retries int
	for _, ev := range hub.History() {
		switch ev.Kind {
		case telemetry.KindAttempt:
			attempts++
		case telemetry.KindRetry:
			retries++
		}
	}
	if attempts != 3 || retries != 2 {
		t.Errorf("attempts = %d, retries = %d, want 3 and 2", attempts, retries)
	}
}

func TestAcquireExhaustsRetries(t *testing.T) {
	c, sim := newTestCapturer(t)
	c.Attempts = 3
	sim.ShortRuns = 10 // every capture deviates

	_, err := c.Acquire(context.Background(), 14000, 0)
	var ee *rsa.ExhaustedError
	if !errors.As(err, &ee) {
		t.Fatalf("Acquire = %v, want ExhaustedError", err)
	}
	if ee.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", ee.Attempts)
	}
}

func TestAcquireDegradedDataIsNotRetried(t *testing.T) {
	c, sim := newTestCapturer(t)
	hub := telemetry.NewHub(0)
	c.Reporter = hub
	sim.StickyBits = 1 << 16 // input overrange

	_, err := c.Acquire(context.Background(), 14000, 0)
	var de *rsa.DegradedError
	if !errors.As(err, &de) {
		t.Fatalf("Acquire = %v, want DegradedError", err)
	}
	if de.Cause != rsa.CauseInputOverrange {
		t.Errorf("cause = %v, want input overrange", de.Cause)
	}

	var attempts int
	for _, ev := range hub.History() {
		if ev.Kind == telemetry.KindAttempt {
			attempts++
		}
	}
	if attempts != 1 {
		t.Errorf("degraded capture was attempted %d times, want 1", attempts)
	}
}

func TestAcquireValidation(t *testing.T) {
	c, _ := newTestCapturer(t)

	var re *rsa.RangeError
	if _, err := c.Acquire(context.Background(), 0, 0); !errors.As(err, &re) {
		t.Errorf("Acquire(0 samples) = %v, want RangeError", err)
	}
	if _, err := c.Acquire(context.Background(), 100, -1); !errors.As(err, &re) {
		t.Errorf("Acquire(negative skip) = %v, want RangeError", err)
	}

	unset := New(rsa.New(rsa.NewSim(), rsa.WithLogger(log.New(io.Discard))))
	var nc *rsa.NotConfiguredError
	if _, err := unset.Acquire(context.Background(), 100, 0); !errors.As(err, &nc) {
		t.Errorf("Acquire without sample rate = %v, want NotConfiguredError", err)
	}
}

func TestCalibratedGainIsAuthoritative(t *testing.T) {
	c, _ := newTestCapturer(t)
	values := calibration.Unknown()
	values.SensorGain = 20 // linear 10
	c.Cal = fixedCal{values: values}

	m, err := c.Acquire(context.Background(), 14000, 0)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if m.GainDB != 20 {
		t.Errorf("gain = %v dB, want the calibrated 20", m.GainDB)
	}
	if got := real(m.Data[0]); math.Abs(float64(got)-0.05) > 1e-6 {
		t.Errorf("first sample = %v, want 0.05 after dividing by linear gain 10", got)
	}
	if m.Calibration["ntia-sensor:gain_sensor"] != 20 {
		t.Errorf("annotation gain = %v, want 20", m.Calibration["ntia-sensor:gain_sensor"])
	}
}

func TestUncalibratedGainFallback(t *testing.T) {
	c, _ := newTestCapturer(t)
	c.SetReferenceLevel(10)

	m, err := c.Acquire(context.Background(), 14000, 0)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	want := (30.0 - 10.0) * (14e6 / 1e6) * (1e9 / 1e9) // 280 dB
	if m.GainDB != want {
		t.Errorf("fallback gain = %v dB, want %v", m.GainDB, want)
	}
	// ENBW defaulted to the sample rate in the annotation.
	if m.Calibration["ntia-sensor:enbw_sensor"] != 14e6 {
		t.Errorf("annotation enbw = %v, want 14e6", m.Calibration["ntia-sensor:enbw_sensor"])
	}
}
