// Package capture turns the device streaming protocol into sized,
// gain-corrected measurements: it converts a requested sample count into a
// stream duration, reconciles the returned count against the request with
// bounded full-capture retries, and assembles the calibrated result.
package capture

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/charmbracelet/log"

	"github.com/rjboer/GoRSA/internal/calibration"
	"github.com/rjboer/GoRSA/internal/telemetry"
	"github.com/rjboer/GoRSA/rsa"
)

// Allowed RSA306B IQ sample rates (Hz) and the acquisition bandwidth each
// one requires.
var sampleRateToBandwidth = map[float64]float64{
	56e6:      40e6,
	28e6:      20e6,
	14e6:      10e6,
	7e6:       5e6,
	3.5e6:     2.5e6,
	1.75e6:    1.25e6,
	875e3:     625e3,
	437.5e3:   312.5e3,
	218.75e3:  156.25e3,
	109.375e3: 78125,
	54687.5:   39062.5,
	27343.75:  19531.25,
	13671.875: 9765.625,
}

// DefaultAttempts is the total capture attempts per acquisition.
const DefaultAttempts = 5

// Measurement is one completed acquisition. Immutable after construction.
type Measurement struct {
	Data           []complex64
	Overload       bool
	Frequency      float64
	ReferenceLevel float64
	SampleRate     float64
	CaptureTime    time.Time
	GainDB         float64
	Calibration    map[string]float64
}

// Capturer drives streaming acquisitions against one device.
type Capturer struct {
	Dev      *rsa.Device
	Cal      calibration.Source
	Log      *log.Logger
	Reporter telemetry.Reporter

	// Attempts is the total capture attempts before giving up; zero
	// selects DefaultAttempts.
	Attempts int

	frequency  float64
	refLevel   float64
	sampleRate float64
	bandwidth  float64
}

// New builds a Capturer with the default calibration source and logger.
func New(dev *rsa.Device) *Capturer {
	return &Capturer{
		Dev: dev,
		Cal: calibration.NoSource{},
		Log: log.Default(),
	}
}

// SetFrequency records the center frequency for subsequent acquisitions.
func (c *Capturer) SetFrequency(hz float64) { c.frequency = hz }

// SetReferenceLevel records the reference level for subsequent acquisitions.
func (c *Capturer) SetReferenceLevel(dbm float64) { c.refLevel = dbm }

// SetSampleRate selects one of the device's allowed IQ sample rates and the
// bandwidth it implies. Any other rate is rejected with the allowed set.
func (c *Capturer) SetSampleRate(sr float64) error {
	bw, ok := sampleRateToBandwidth[sr]
	if !ok {
		return &rsa.SetError{
			Param:   "sample rate",
			Value:   fmt.Sprintf("%g", sr),
			Allowed: allowedRates(),
		}
	}
	c.sampleRate = sr
	c.bandwidth = bw
	return nil
}

// SampleRate reports the selected sample rate, zero when unset.
func (c *Capturer) SampleRate() float64 { return c.sampleRate }

func allowedRates() []string {
	rates := make([]float64, 0, len(sampleRateToBandwidth))
	for sr := range sampleRateToBandwidth {
		rates = append(rates, sr)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(rates)))
	out := make([]string, len(rates))
	for i, sr := range rates {
		out[i] = fmt.Sprintf("%g", sr)
	}
	return out
}

// countMismatch is the retryable failure: the stream returned a different
// number of raw samples than the duration should have produced.
type countMismatch struct {
	want, got int
}

func (e *countMismatch) Error() string {
	return fmt.Sprintf("capture returned %d samples, wanted %d", e.got, e.want)
}

// Acquire captures exactly n samples, skipping the first skip samples of
// the stream. The whole capture is retried when the raw count disagrees
// with the request; validation failures and degraded-data detections are
// not retried. The returned measurement carries the timestamp of the
// successful attempt only.
func (c *Capturer) Acquire(ctx context.Context, n, skip int) (*Measurement, error) {
	if n < 1 {
		return nil, &rsa.RangeError{Param: "sample count", Value: float64(n), Min: 1, Max: math.MaxInt32}
	}
	if skip < 0 {
		return nil, &rsa.RangeError{Param: "skip count", Value: float64(skip), Min: 0, Max: math.MaxInt32}
	}
	if c.sampleRate == 0 {
		return nil, &rsa.NotConfiguredError{Setting: "sample rate"}
	}

	nsamps := n + skip
	durationMsec := int(1000 * float64(nsamps) / c.sampleRate)
	extraSkip := 0
	if durationMsec == 0 {
		// Sub-millisecond request: capture a full millisecond and
		// truncate the surplus leading samples.
		durationMsec = 1
		extraSkip = int(c.sampleRate/1000) - nsamps
		if extraSkip < 0 {
			extraSkip = 0
		}
	}

	attempts := 0
	maxAttempts := c.Attempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultAttempts
	}

	var data []complex64
	var captureTime time.Time

	op := func() error {
		attempts++
		captureTime = time.Now().UTC()
		c.report(telemetry.Event{Kind: telemetry.KindAttempt, Attempt: attempts,
			Frequency: c.frequency, SampleRate: c.sampleRate})

		raw, err := c.Dev.StreamTempfile(ctx, c.frequency, c.refLevel, c.bandwidth, durationMsec)
		if err != nil {
			var deg *rsa.DegradedError
			if errors.As(err, &deg) {
				c.report(telemetry.Event{Kind: telemetry.KindDegraded, Attempt: attempts, Detail: deg.Error()})
			}
			return backoff.Permanent(err)
		}
		if extraSkip > 0 {
			if len(raw) <= extraSkip {
				raw = nil
			} else {
				raw = raw[extraSkip:]
			}
		}
		if len(raw) != nsamps {
			c.report(telemetry.Event{Kind: telemetry.KindRetry, Attempt: attempts,
				Samples: len(raw), Detail: fmt.Sprintf("wanted %d", nsamps)})
			c.Log.Warn("sample count mismatch", "attempt", attempts, "got", len(raw), "want", nsamps)
			return &countMismatch{want: nsamps, got: len(raw)}
		}
		data = raw[skip:]
		return nil
	}

	b := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(maxAttempts-1))
	if err := backoff.Retry(op, b); err != nil {
		var cm *countMismatch
		if errors.As(err, &cm) {
			err = &rsa.ExhaustedError{Op: "streaming capture", Attempts: attempts, Last: err}
		}
		c.report(telemetry.Event{Kind: telemetry.KindFailed, Attempt: attempts, Detail: err.Error()})
		return nil, err
	}

	gainDB, annotation := c.resolveGain()
	linear := float32(math.Pow(10, gainDB/20))
	scaled := make([]complex64, len(data))
	for k, s := range data {
		scaled[k] = complex(real(s)/linear, imag(s)/linear)
	}

	overload, _, err := c.Dev.EventStatus(rsa.EventOverrange)
	if err != nil {
		c.Log.Debug("overrange query failed", "err", err)
	}

	c.report(telemetry.Event{Kind: telemetry.KindCompleted, Attempt: attempts,
		Samples: len(scaled), Frequency: c.frequency, SampleRate: c.sampleRate})

	return &Measurement{
		Data:           scaled,
		Overload:       overload,
		Frequency:      c.frequency,
		ReferenceLevel: c.refLevel,
		SampleRate:     c.sampleRate,
		CaptureTime:    captureTime,
		GainDB:         gainDB,
		Calibration:    annotation,
	}, nil
}

// resolveGain prefers the calibrated sensor gain; without one it falls back
// to the documented uncalibrated approximation from reference level, sample
// rate, and frequency.
func (c *Capturer) resolveGain() (float64, map[string]float64) {
	raw := calibration.Unknown()
	if c.Cal != nil {
		raw = c.Cal.Lookup(c.sampleRate, c.frequency, c.refLevel)
	}
	resolved := calibration.Resolve(raw, c.sampleRate)
	gainDB := (30 - c.refLevel) * (c.sampleRate / 1e6) * (c.frequency / 1e9)
	if !math.IsNaN(raw.SensorGain) {
		gainDB = raw.SensorGain
	}
	return gainDB, calibration.Annotation(resolved)
}

func (c *Capturer) report(ev telemetry.Event) {
	if c.Reporter != nil {
		c.Reporter.Report(ev)
	}
}
