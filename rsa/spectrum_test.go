package rsa

import (
	"context"
	"errors"
	"testing"
)

func TestSpectrumSettingsValidatedAgainstLimits(t *testing.T) {
	dev := connectedSim(t)

	lim, err := dev.SpectrumLimits()
	if err != nil {
		t.Fatalf("SpectrumLimits: %v", err)
	}

	good := SpectrumSettings{
		Span:         20e6,
		RBW:          100e3,
		TraceLength:  lim.MinTraceLength,
		Window:       WindowHann,
		VerticalUnit: UnitDBm,
	}
	if err := dev.SetSpectrumSettings(good); err != nil {
		t.Fatalf("SetSpectrumSettings: %v", err)
	}

	var re *RangeError
	bad := good
	bad.Span = lim.MaxSpan * 2
	if err := dev.SetSpectrumSettings(bad); !errors.As(err, &re) {
		t.Errorf("oversized span = %v, want RangeError", err)
	}
	bad = good
	bad.TraceLength = lim.MaxTraceLength + 1
	if err := dev.SetSpectrumSettings(bad); !errors.As(err, &re) {
		t.Errorf("oversized trace length = %v, want RangeError", err)
	}
}

func TestAcquireSpectrumTrace(t *testing.T) {
	dev := connectedSim(t)

	if err := dev.SpectrumEnable(true); err != nil {
		t.Fatalf("SpectrumEnable: %v", err)
	}
	trace, err := dev.AcquireSpectrumTrace(context.Background(), Trace1, 100)
	if err != nil {
		t.Fatalf("AcquireSpectrumTrace: %v", err)
	}
	s, err := dev.SpectrumSettings()
	if err != nil {
		t.Fatalf("SpectrumSettings: %v", err)
	}
	if len(trace) != s.TraceLength {
		t.Errorf("trace length = %d, want %d", len(trace), s.TraceLength)
	}
}

func TestSpectrumActualValuesTrackCenterFreq(t *testing.T) {
	dev := connectedSim(t)

	if err := dev.SetCenterFreq(2e9); err != nil {
		t.Fatalf("SetCenterFreq: %v", err)
	}
	s, err := dev.SpectrumSettings()
	if err != nil {
		t.Fatalf("SpectrumSettings: %v", err)
	}
	if s.ActualStartFreq != 2e9-s.Span/2 || s.ActualStopFreq != 2e9+s.Span/2 {
		t.Errorf("actual span (%g, %g) not centered on 2 GHz", s.ActualStartFreq, s.ActualStopFreq)
	}
}
