package rsa

import (
	"context"
	"errors"
	"testing"
)

func TestDeinterleaveEven(t *testing.T) {
	flat := []float32{0, 1, 2, 3, 4, 5, 6, 7}
	i, q := Deinterleave(flat)
	if len(i) != 4 || len(q) != 4 {
		t.Fatalf("lengths = %d, %d, want 4, 4", len(i), len(q))
	}
	for k := range i {
		if i[k] != flat[2*k] {
			t.Errorf("I[%d] = %v, want %v", k, i[k], flat[2*k])
		}
		if q[k] != flat[2*k+1] {
			t.Errorf("Q[%d] = %v, want %v", k, q[k], flat[2*k+1])
		}
	}
}

func TestDeinterleaveOdd(t *testing.T) {
	// 2m+1 elements: the trailing element lands on the end of Q as-is.
	flat := []float32{0, 1, 2, 3, 4, 5, 6}
	i, q := Deinterleave(flat)
	if len(i) != 3 {
		t.Fatalf("len(I) = %d, want 3", len(i))
	}
	if len(q) != 4 {
		t.Fatalf("len(Q) = %d, want 4", len(q))
	}
	for k := 0; k < 3; k++ {
		if i[k] != flat[2*k] {
			t.Errorf("I[%d] = %v, want %v", k, i[k], flat[2*k])
		}
		if q[k] != flat[2*k+1] {
			t.Errorf("Q[%d] = %v, want %v", k, q[k], flat[2*k+1])
		}
	}
	if q[3] != 6 {
		t.Errorf("Q tail = %v, want the final buffer element 6", q[3])
	}
}

func TestDeinterleaveEmpty(t *testing.T) {
	i, q := Deinterleave(nil)
	if len(i) != 0 || len(q) != 0 {
		t.Errorf("empty input gave lengths %d, %d", len(i), len(q))
	}
}

func TestParseAcqStatusPriority(t *testing.T) {
	cases := []struct {
		name string
		bits uint32
		want DegradedCause
	}{
		{"overrange alone", acqStatusInputOverrange, CauseInputOverrange},
		{"output overflow alone", acqStatusOutputBufferOverflow, CauseOutputBufferOverflow},
		{"overrange beats output overflow", acqStatusInputOverrange | acqStatusOutputBufferOverflow, CauseInputOverrange},
		{"input pressure beats output pressure", acqStatusInputBufferPressure | acqStatusOutputBufferPressure, CauseInputBufferPressure},
		{"input overflow beats output overflow", acqStatusInputBufferOverflow | acqStatusOutputBufferOverflow, CauseInputBufferOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ParseAcqStatus(tc.bits)
			var de *DegradedError
			if !errors.As(err, &de) {
				t.Fatalf("ParseAcqStatus(%#x) = %v, want DegradedError", tc.bits, err)
			}
			if de.Cause != tc.want {
				t.Errorf("cause = %v, want %v", de.Cause, tc.want)
			}
		})
	}

	if err := ParseAcqStatus(0); err != nil {
		t.Errorf("ParseAcqStatus(0) = %v, want nil", err)
	}
}

func TestStreamOutputCombination(t *testing.T) {
	dev := connectedSim(t)

	var ce *ComboError
	if err := dev.SetStreamOutput(DestFileTIQ, DtypeSingle); !errors.As(err, &ce) {
		t.Fatalf("FILE_TIQ with SINGLE = %v, want ComboError", err)
	}
	if err := dev.SetStreamOutput(DestFileTIQ, DtypeSingleScaleInt32); !errors.As(err, &ce) {
		t.Fatalf("FILE_TIQ with SINGLE_SCALE_INT32 = %v, want ComboError", err)
	}
	if err := dev.SetStreamOutput(DestFileTIQ, DtypeInt16); err != nil {
		t.Fatalf("FILE_TIQ with INT16: %v", err)
	}
	if err := dev.SetStreamOutput(DestFileSIQSplit, DtypeSingle); err != nil {
		t.Fatalf("FILE_SIQ_SPLIT with SINGLE: %v", err)
	}
}

func TestStreamTempfileRoundTrip(t *testing.T) {
	dev, sim := connectedSimPair(t)

	const durationMsec = 2
	data, err := dev.StreamTempfile(context.Background(), 1e9, -20, 1.25e6, durationMsec)
	if err != nil {
		t.Fatalf("StreamTempfile: %v", err)
	}
	// 1.25 MHz bandwidth streams at 1.75 MS/s: 3500 samples in 2 ms.
	want := int(1.75e6 * durationMsec / 1000)
	if len(data) != want {
		t.Errorf("sample count = %d, want %d", len(data), want)
	}
	// First tone sample has phase zero.
	if real(data[0]) != float32(sim.Amplitude) || imag(data[0]) != 0 {
		t.Errorf("first sample = %v, want (%v+0i)", data[0], sim.Amplitude)
	}
	if dev.State() != StateConnected {
		t.Errorf("device state after capture = %v, want connected", dev.State())
	}
}

func TestStreamTempfileSurfacesDegradedData(t *testing.T) {
	dev, sim := connectedSimPair(t)
	sim.StickyBits = acqStatusInputOverrange | acqStatusOutputBufferOverflow

	_, err := dev.StreamTempfile(context.Background(), 1e9, -20, 1.25e6, 1)
	var de *DegradedError
	if !errors.As(err, &de) {
		t.Fatalf("StreamTempfile with sticky bits = %v, want DegradedError", err)
	}
	if de.Cause != CauseInputOverrange {
		t.Errorf("cause = %v, want input overrange (most severe)", de.Cause)
	}
}

func TestStreamTempfileRejectsInvalidRequests(t *testing.T) {
	dev := connectedSim(t)

	var re *RangeError
	if _, err := dev.StreamTempfile(context.Background(), 7e9, -20, 1.25e6, 1); !errors.As(err, &re) {
		t.Errorf("out-of-range frequency = %v, want RangeError", err)
	}
	if _, err := dev.StreamTempfile(context.Background(), 1e9, 40, 1.25e6, 1); !errors.As(err, &re) {
		t.Errorf("out-of-range reference level = %v, want RangeError", err)
	}
	if _, err := dev.StreamTempfile(context.Background(), 1e9, -20, 1.25e6, 0); !errors.As(err, &re) {
		t.Errorf("zero duration = %v, want RangeError", err)
	}
}
