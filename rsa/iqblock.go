package rsa

import "context"

// IQBandwidth reports the IQ block acquisition bandwidth in Hz.
func (d *Device) IQBandwidth() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQBLK_GetIQBandwidth"); err != nil {
		return 0, err
	}
	bw, st := d.nat.GetIQBandwidth()
	return bw, st.Err("IQBLK_GetIQBandwidth")
}

// SetIQBandwidth sets the IQ block acquisition bandwidth, validated against
// the device-reported bandwidth range. Changing the bandwidth changes the
// effective sample rate and the maximum record length.
func (d *Device) SetIQBandwidth(hz float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQBLK_SetIQBandwidth"); err != nil {
		return err
	}
	min, st := d.nat.GetMinIQBandwidth()
	if err := st.Err("IQBLK_GetMinIQBandwidth"); err != nil {
		return err
	}
	max, st := d.nat.GetMaxIQBandwidth()
	if err := st.Err("IQBLK_GetMaxIQBandwidth"); err != nil {
		return err
	}
	if hz < min || hz > max {
		return &RangeError{Param: "IQ bandwidth", Value: hz, Min: min, Max: max}
	}
	return d.nat.SetIQBandwidth(hz).Err("IQBLK_SetIQBandwidth")
}

// IQRecordLength reports the configured block record length in samples.
func (d *Device) IQRecordLength() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQBLK_GetIQRecordLength"); err != nil {
		return 0, err
	}
	n, st := d.nat.GetIQRecordLength()
	return n, st.Err("IQBLK_GetIQRecordLength")
}

// SetIQRecordLength sets the block record length, validated against the
// bandwidth-dependent maximum the device currently reports.
func (d *Device) SetIQRecordLength(n int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQBLK_SetIQRecordLength"); err != nil {
		return err
	}
	if err := d.checkRecordLengthLocked(n); err != nil {
		return err
	}
	return d.nat.SetIQRecordLength(n).Err("IQBLK_SetIQRecordLength")
}

func (d *Device) checkRecordLengthLocked(n int) error {
	max, st := d.nat.GetMaxIQRecordLength()
	if err := st.Err("IQBLK_GetMaxIQRecordLength"); err != nil {
		return err
	}
	if n < 1 || n > max {
		return &RangeError{Param: "IQ record length", Value: float64(n), Min: 1, Max: float64(max)}
	}
	return nil
}

// MaxIQRecordLength reports the current bandwidth-dependent record length
// limit.
func (d *Device) MaxIQRecordLength() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQBLK_GetMaxIQRecordLength"); err != nil {
		return 0, err
	}
	n, st := d.nat.GetMaxIQRecordLength()
	return n, st.Err("IQBLK_GetMaxIQRecordLength")
}

// IQSampleRate reports the effective IQ sample rate for the configured
// bandwidth.
func (d *Device) IQSampleRate() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQBLK_GetIQSampleRate"); err != nil {
		return 0, err
	}
	sr, st := d.nat.GetIQSampleRate()
	return sr, st.Err("IQBLK_GetIQSampleRate")
}

// AcquireIQBlock captures one block of recordLength complex samples. The
// record length is validated against the device maximum before any
// acquisition call is issued. The data-ready poll uses pollTimeoutMsec per
// native wait and is bounded overall by ctx.
func (d *Device) AcquireIQBlock(ctx context.Context, recordLength, pollTimeoutMsec int) ([]complex64, error) {
	i, q, err := d.AcquireIQBlockDeinterleaved(ctx, recordLength, pollTimeoutMsec)
	if err != nil {
		return nil, err
	}
	out := make([]complex64, len(i))
	for k := range i {
		out[k] = complex(i[k], q[k])
	}
	return out, nil
}

// AcquireIQBlockDeinterleaved captures one block and returns the I and Q
// sequences separately.
func (d *Device) AcquireIQBlockDeinterleaved(ctx context.Context, recordLength, pollTimeoutMsec int) ([]float32, []float32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.acquireBlockLocked(ctx, recordLength, pollTimeoutMsec); err != nil {
		return nil, nil, err
	}
	i, q, st := d.nat.GetIQDataDeinterleaved(recordLength)
	if err := st.Err("IQBLK_GetIQDataDeinterleaved"); err != nil {
		return nil, nil, err
	}
	return i, q, nil
}

// AcquireIQBlockInterleaved captures one block and returns the raw
// alternating I,Q sequence of 2*recordLength values.
func (d *Device) AcquireIQBlockInterleaved(ctx context.Context, recordLength, pollTimeoutMsec int) ([]float32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.acquireBlockLocked(ctx, recordLength, pollTimeoutMsec); err != nil {
		return nil, err
	}
	flat, st := d.nat.GetIQData(recordLength)
	if err := st.Err("IQBLK_GetIQData"); err != nil {
		return nil, err
	}
	return flat, nil
}

func (d *Device) acquireBlockLocked(ctx context.Context, recordLength, pollTimeoutMsec int) error {
	if err := d.requireConnected("IQBLK_AcquireIQData"); err != nil {
		return err
	}
	if err := d.checkRecordLengthLocked(recordLength); err != nil {
		return err
	}
	if err := d.nat.SetIQRecordLength(recordLength).Err("IQBLK_SetIQRecordLength"); err != nil {
		return err
	}
	if err := d.runLocked(); err != nil {
		return err
	}
	if err := d.nat.AcquireIQData().Err("IQBLK_AcquireIQData"); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ready, st := d.nat.WaitForIQDataReady(pollTimeoutMsec)
		if err := st.Err("IQBLK_WaitForIQDataReady"); err != nil {
			return err
		}
		if ready {
			return nil
		}
	}
}
