package rsa

import (
	"context"
	"errors"
	"testing"
)

// acquireSpy counts acquisition initiations to prove validation happens
// before any native acquisition call.
type acquireSpy struct {
	*Sim
	acquireCalls int
}

func (s *acquireSpy) AcquireIQData() Status {
	s.acquireCalls++
	return s.Sim.AcquireIQData()
}

func TestRecordLengthValidatedBeforeAcquisition(t *testing.T) {
	spy := &acquireSpy{Sim: NewSim()}
	dev := New(spy, WithLogger(quietLogger()))
	if err := dev.Connect(context.Background(), 0); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer dev.Disconnect()

	max, err := dev.MaxIQRecordLength()
	if err != nil {
		t.Fatalf("MaxIQRecordLength: %v", err)
	}

	_, acqErr := dev.AcquireIQBlock(context.Background(), max+1, 100)
	var re *RangeError
	if !errors.As(acqErr, &re) {
		t.Fatalf("AcquireIQBlock(max+1) = %v, want RangeError", acqErr)
	}
	if spy.acquireCalls != 0 {
		t.Errorf("acquisition initiated %d times despite invalid record length", spy.acquireCalls)
	}
}

func TestAcquireIQBlockReturnsRequestedLength(t *testing.T) {
	dev := connectedSim(t)

	const recLen = 2048
	data, err := dev.AcquireIQBlock(context.Background(), recLen, 100)
	if err != nil {
		t.Fatalf("AcquireIQBlock: %v", err)
	}
	if len(data) != recLen {
		t.Errorf("block length = %d, want %d", len(data), recLen)
	}
}

func TestAcquireIQBlockPollsUntilReady(t *testing.T) {
	dev, sim := connectedSimPair(t)
	sim.ReadyAfterPolls = 3

	data, err := dev.AcquireIQBlock(context.Background(), 512, 10)
	if err != nil {
		t.Fatalf("AcquireIQBlock with delayed readiness: %v", err)
	}
	if len(data) != 512 {
		t.Errorf("block length = %d, want 512", len(data))
	}
}

func TestAcquireIQBlockHonorsContext(t *testing.T) {
	dev, sim := connectedSimPair(t)
	sim.ReadyAfterPolls = 1 << 30 // never ready

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dev.AcquireIQBlock(ctx, 512, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("AcquireIQBlock with cancelled ctx = %v, want context.Canceled", err)
	}
}

func TestAcquireIQBlockDeinterleavedMatchesInterleaved(t *testing.T) {
	dev := connectedSim(t)

	const recLen = 256
	flat, err := dev.AcquireIQBlockInterleaved(context.Background(), recLen, 100)
	if err != nil {
		t.Fatalf("interleaved: %v", err)
	}
	if len(flat) != 2*recLen {
		t.Fatalf("interleaved length = %d, want %d", len(flat), 2*recLen)
	}
	i, q, err := dev.AcquireIQBlockDeinterleaved(context.Background(), recLen, 100)
	if err != nil {
		t.Fatalf("deinterleaved: %v", err)
	}
	if len(i) != recLen || len(q) != recLen {
		t.Fatalf("deinterleaved lengths = %d, %d, want %d", len(i), len(q), recLen)
	}
	// The simulated tone is deterministic, so both captures agree.
	for k := 0; k < recLen; k++ {
		if flat[2*k] != i[k] || flat[2*k+1] != q[k] {
			t.Fatalf("sample %d: interleaved (%v, %v) != deinterleaved (%v, %v)",
				k, flat[2*k], flat[2*k+1], i[k], q[k])
		}
	}
}

func TestSetIQBandwidthAdjustsMaxRecordLength(t *testing.T) {
	dev := connectedSim(t)

	if err := dev.SetIQBandwidth(40e6); err != nil {
		t.Fatalf("SetIQBandwidth(40e6): %v", err)
	}
	wideMax, err := dev.MaxIQRecordLength()
	if err != nil {
		t.Fatalf("MaxIQRecordLength: %v", err)
	}

	if err := dev.SetIQBandwidth(1.25e6); err != nil {
		t.Fatalf("SetIQBandwidth(1.25e6): %v", err)
	}
	narrowMax, err := dev.MaxIQRecordLength()
	if err != nil {
		t.Fatalf("MaxIQRecordLength: %v", err)
	}
	if narrowMax >= wideMax {
		t.Errorf("narrow-bandwidth max %d should be below wide-bandwidth max %d", narrowMax, wideMax)
	}

	sr, err := dev.IQSampleRate()
	if err != nil {
		t.Fatalf("IQSampleRate: %v", err)
	}
	if sr != 1.75e6 {
		t.Errorf("sample rate at 1.25 MHz bandwidth = %v, want 1.75e6", sr)
	}
}
