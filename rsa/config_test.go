package rsa

import (
	"errors"
	"testing"
)

func TestReferenceLevelScenarios(t *testing.T) {
	dev := connectedSim(t)

	if err := dev.Set("reference_level", 17); err != nil {
		t.Fatalf("Set(reference_level, 17): %v", err)
	}
	got, err := dev.ReferenceLevel()
	if err != nil {
		t.Fatalf("ReferenceLevel: %v", err)
	}
	if got != 17.0 {
		t.Errorf("reference level = %v, want 17.0", got)
	}

	var re *RangeError
	if err := dev.Set("reference_level", 31); !errors.As(err, &re) {
		t.Fatalf("Set(reference_level, 31) = %v, want RangeError", err)
	}
	if re.Min != -130 || re.Max != 30 {
		t.Errorf("range bound = (%v, %v), want (-130, 30)", re.Min, re.Max)
	}

	var te *ArgTypeError
	if err := dev.Set("reference_level", "abc"); !errors.As(err, &te) {
		t.Fatalf(`Set(reference_level, "abc") = %v, want ArgTypeError`, err)
	}
}

func TestReferenceLevelBoundaries(t *testing.T) {
	dev := connectedSim(t)

	for _, dbm := range []float64{-130, 30} {
		if err := dev.SetReferenceLevel(dbm); err != nil {
			t.Errorf("SetReferenceLevel(%v) on the boundary: %v", dbm, err)
		}
	}
	var re *RangeError
	for _, dbm := range []float64{-130.001, 30.001} {
		if err := dev.SetReferenceLevel(dbm); !errors.As(err, &re) {
			t.Errorf("SetReferenceLevel(%v) = %v, want RangeError", dbm, err)
		}
	}
}

func TestCenterFreqValidatedAgainstDeviceBounds(t *testing.T) {
	dev := connectedSim(t)

	if err := dev.SetCenterFreq(1.5e9); err != nil {
		t.Fatalf("SetCenterFreq: %v", err)
	}
	got, err := dev.CenterFreq()
	if err != nil {
		t.Fatalf("CenterFreq: %v", err)
	}
	if got != 1.5e9 {
		t.Errorf("center freq = %v, want 1.5e9", got)
	}

	var re *RangeError
	if err := dev.SetCenterFreq(simMaxFreq + 1); !errors.As(err, &re) {
		t.Errorf("SetCenterFreq above max = %v, want RangeError", err)
	}
	if err := dev.SetCenterFreq(simMinFreq - 1); !errors.As(err, &re) {
		t.Errorf("SetCenterFreq below min = %v, want RangeError", err)
	}
}

func TestGNSSFreqRefSourceRejected(t *testing.T) {
	dev := connectedSim(t)

	err := dev.SetFreqRefSource(FreqRefGNSS)
	var de *DeviceError
	if !errors.As(err, &de) {
		t.Fatalf("SetFreqRefSource(GNSS) = %v, want DeviceError", err)
	}
	if de.Status != StatusErrorNotSupported {
		t.Errorf("status = %v, want errorNotSupported", de.Status)
	}
	// Distinct from an invalid enum failure.
	var ee *EnumError
	if errors.As(err, &ee) {
		t.Error("GNSS rejection must not be an enum error")
	}
}

func TestAudioModeSentinelBecomesNotConfigured(t *testing.T) {
	dev := connectedSim(t)

	_, err := dev.AudioModeSetting()
	var nc *NotConfiguredError
	if !errors.As(err, &nc) {
		t.Fatalf("AudioModeSetting before set = %v, want NotConfiguredError", err)
	}

	if err := dev.SetAudioMode(AudioFM75kHz); err != nil {
		t.Fatalf("SetAudioMode: %v", err)
	}
	m, err := dev.AudioModeSetting()
	if err != nil {
		t.Fatalf("AudioModeSetting after set: %v", err)
	}
	if m != AudioFM75kHz {
		t.Errorf("audio mode = %v, want FM_75KHZ", m)
	}
}

func TestSetRejectsUnknownParameter(t *testing.T) {
	dev := connectedSim(t)
	var se *SetError
	if err := dev.Set("no_such_parameter", 1); !errors.As(err, &se) {
		t.Fatalf("Set(no_such_parameter) = %v, want SetError", err)
	}
}

func TestSetCoercesTypesPerParameter(t *testing.T) {
	dev := connectedSim(t)

	cases := []struct {
		name  string
		value any
		ok    bool
	}{
		{"center_frequency", 1.5e9, true},
		{"center_frequency", 1500000000, true}, // ints accepted for reals
		{"center_frequency", "1.5e9", false},
		{"external_reference", true, true},
		{"external_reference", 1, false},
		{"frequency_reference_source", "EXTREF", true},
		{"frequency_reference_source", 1, false},
		{"iq_record_length", 1024, true},
		{"iq_record_length", 1024.5, false},
		{"trigger_mode", "triggered", true},
		{"trigger_mode", "armed", false},
	}
	for _, tc := range cases {
		err := dev.Set(tc.name, tc.value)
		if tc.ok && err != nil {
			t.Errorf("Set(%s, %v): %v", tc.name, tc.value, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("Set(%s, %v) should fail", tc.name, tc.value)
		}
	}
}
