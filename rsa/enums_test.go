package rsa

import "testing"

func TestEnumRoundTrips(t *testing.T) {
	cases := []struct {
		enum   string
		tokens []string
		parse  func(string) (int, error)
		render func(int) string
	}{
		{
			"EventType", eventTypeNames,
			func(s string) (int, error) { v, err := ParseEventType(s); return int(v), err },
			func(i int) string { return EventType(i).String() },
		},
		{
			"FreqRefSource", freqRefNames,
			func(s string) (int, error) { v, err := ParseFreqRefSource(s); return int(v), err },
			func(i int) string { return FreqRefSource(i).String() },
		},
		{
			"OutputDest", outputDestNames,
			func(s string) (int, error) { v, err := ParseOutputDest(s); return int(v), err },
			func(i int) string { return OutputDest(i).String() },
		},
		{
			"OutputDtype", outputDtypeNames,
			func(s string) (int, error) { v, err := ParseOutputDtype(s); return int(v), err },
			func(i int) string { return OutputDtype(i).String() },
		},
		{
			"RefTimeSource", refTimeNames,
			func(s string) (int, error) { v, err := ParseRefTimeSource(s); return int(v), err },
			func(i int) string { return RefTimeSource(i).String() },
		},
		{
			"TriggerMode", triggerModeNames,
			func(s string) (int, error) { v, err := ParseTriggerMode(s); return int(v), err },
			func(i int) string { return TriggerMode(i).String() },
		},
		{
			"TriggerSource", triggerSourceNames,
			func(s string) (int, error) { v, err := ParseTriggerSource(s); return int(v), err },
			func(i int) string { return TriggerSource(i).String() },
		},
		{
			"SpectrumWindow", spectrumWindowNames,
			func(s string) (int, error) { v, err := ParseSpectrumWindow(s); return int(v), err },
			func(i int) string { return SpectrumWindow(i).String() },
		},
		{
			"SpectrumVerticalUnit", spectrumUnitNames,
			func(s string) (int, error) { v, err := ParseSpectrumVerticalUnit(s); return int(v), err },
			func(i int) string { return SpectrumVerticalUnit(i).String() },
		},
		{
			"SpectrumDetector", spectrumDetectorNames,
			func(s string) (int, error) { v, err := ParseSpectrumDetector(s); return int(v), err },
			func(i int) string { return SpectrumDetector(i).String() },
		},
		{
			"SpectrumTrace", spectrumTraceNames,
			func(s string) (int, error) { v, err := ParseSpectrumTrace(s); return int(v), err },
			func(i int) string { return SpectrumTrace(i).String() },
		},
		{
			"AudioMode", audioModeNames,
			func(s string) (int, error) { v, err := ParseAudioMode(s); return int(v), err },
			func(i int) string { return AudioMode(i).String() },
		},
	}

	for _, tc := range cases {
		for ord, token := range tc.tokens {
			got, err := tc.parse(token)
			if err != nil {
				t.Fatalf("%s: parse %q: %v", tc.enum, token, err)
			}
			if got != ord {
				t.Errorf("%s: parse %q = ordinal %d, want %d", tc.enum, token, got, ord)
			}
			if back := tc.render(got); back != token {
				t.Errorf("%s: ordinal %d renders %q, want %q", tc.enum, got, back, token)
			}
		}
		if _, err := tc.parse("no-such-token"); err == nil {
			t.Errorf("%s: parsing an unknown token should fail", tc.enum)
		}
	}
}

func TestTriggerTransitionOrdinalsStartAtOne(t *testing.T) {
	for i, token := range triggerTransitionNames {
		v, err := ParseTriggerTransition(token)
		if err != nil {
			t.Fatalf("parse %q: %v", token, err)
		}
		if int(v) != i+1 {
			t.Errorf("ParseTriggerTransition(%q) = %d, want %d", token, v, i+1)
		}
		if v.String() != token {
			t.Errorf("TriggerTransition(%d).String() = %q, want %q", v, v.String(), token)
		}
	}
}

func TestDeviceEnumSetGetRoundTrip(t *testing.T) {
	dev := connectedSim(t)

	for _, src := range []FreqRefSource{FreqRefInternal, FreqRefExternal, FreqRefUser} {
		if err := dev.SetFreqRefSource(src); err != nil {
			t.Fatalf("SetFreqRefSource(%v): %v", src, err)
		}
		got, err := dev.FreqRefSource()
		if err != nil {
			t.Fatalf("FreqRefSource: %v", err)
		}
		if got != src {
			t.Errorf("FreqRefSource round-trip: got %v, want %v", got, src)
		}
	}

	for _, m := range []TriggerMode{TriggerFreeRun, TriggerTriggered} {
		if err := dev.SetTriggerMode(m); err != nil {
			t.Fatalf("SetTriggerMode(%v): %v", m, err)
		}
		got, err := dev.TriggerMode()
		if err != nil {
			t.Fatalf("TriggerMode: %v", err)
		}
		if got != m {
			t.Errorf("TriggerMode round-trip: got %v, want %v", got, m)
		}
	}

	for _, tr := range []TriggerTransition{TransitionLH, TransitionHL, TransitionEither} {
		if err := dev.SetTriggerTransition(tr); err != nil {
			t.Fatalf("SetTriggerTransition(%v): %v", tr, err)
		}
		got, err := dev.TriggerTransition()
		if err != nil {
			t.Fatalf("TriggerTransition: %v", err)
		}
		if got != tr {
			t.Errorf("TriggerTransition round-trip: got %v, want %v", got, tr)
		}
	}
}
