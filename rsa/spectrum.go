package rsa

import "context"

// SpectrumEnable switches the spectrum measurement on or off. Enabling it
// takes the device out of IQ acquisition mode.
func (d *Device) SpectrumEnable(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("SPECTRUM_SetEnable"); err != nil {
		return err
	}
	return d.nat.SpectrumSetEnable(on).Err("SPECTRUM_SetEnable")
}

// SpectrumEnabled reports whether the spectrum measurement is active.
func (d *Device) SpectrumEnabled() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("SPECTRUM_GetEnable"); err != nil {
		return false, err
	}
	on, st := d.nat.SpectrumGetEnable()
	return on, st.Err("SPECTRUM_GetEnable")
}

// SpectrumDefault restores default spectrum settings.
func (d *Device) SpectrumDefault() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("SPECTRUM_SetDefault"); err != nil {
		return err
	}
	return d.nat.SpectrumSetDefault().Err("SPECTRUM_SetDefault")
}

// SpectrumSettings reports the active spectrum configuration, including the
// device-computed actual values.
func (d *Device) SpectrumSettings() (SpectrumSettings, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("SPECTRUM_GetSettings"); err != nil {
		return SpectrumSettings{}, err
	}
	s, st := d.nat.SpectrumGetSettings()
	return s, st.Err("SPECTRUM_GetSettings")
}

// SetSpectrumSettings applies a spectrum configuration, validated against
// the device-reported limits first.
func (d *Device) SetSpectrumSettings(s SpectrumSettings) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("SPECTRUM_SetSettings"); err != nil {
		return err
	}
	lim, st := d.nat.SpectrumGetLimits()
	if err := st.Err("SPECTRUM_GetLimits"); err != nil {
		return err
	}
	if s.Span < lim.MinSpan || s.Span > lim.MaxSpan {
		return &RangeError{Param: "spectrum span", Value: s.Span, Min: lim.MinSpan, Max: lim.MaxSpan}
	}
	if s.RBW < lim.MinRBW || s.RBW > lim.MaxRBW {
		return &RangeError{Param: "spectrum RBW", Value: s.RBW, Min: lim.MinRBW, Max: lim.MaxRBW}
	}
	if s.TraceLength < lim.MinTraceLength || s.TraceLength > lim.MaxTraceLength {
		return &RangeError{Param: "spectrum trace length", Value: float64(s.TraceLength),
			Min: float64(lim.MinTraceLength), Max: float64(lim.MaxTraceLength)}
	}
	if s.Window < WindowKaiser || s.Window > WindowHann {
		return &EnumError{Enum: "SpectrumWindow", Token: s.Window.String()}
	}
	if s.VerticalUnit < UnitDBm || s.VerticalUnit > UnitDBmV {
		return &EnumError{Enum: "SpectrumVerticalUnit", Token: s.VerticalUnit.String()}
	}
	return d.nat.SpectrumSetSettings(s).Err("SPECTRUM_SetSettings")
}

// SpectrumLimits reports the device capability bounds for spectrum
// settings.
func (d *Device) SpectrumLimits() (SpectrumLimits, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("SPECTRUM_GetLimits"); err != nil {
		return SpectrumLimits{}, err
	}
	lim, st := d.nat.SpectrumGetLimits()
	return lim, st.Err("SPECTRUM_GetLimits")
}

// SetSpectrumTraceType configures one trace slot.
func (d *Device) SetSpectrumTraceType(trace SpectrumTrace, enable bool, det SpectrumDetector) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("SPECTRUM_SetTraceType"); err != nil {
		return err
	}
	if trace < Trace1 || trace > Trace3 {
		return &EnumError{Enum: "SpectrumTrace", Token: trace.String()}
	}
	if det < DetectorPosPeak || det > DetectorSample {
		return &EnumError{Enum: "SpectrumDetector", Token: det.String()}
	}
	return d.nat.SpectrumSetTraceType(trace, enable, det).Err("SPECTRUM_SetTraceType")
}

// AcquireSpectrumTrace runs one spectrum sweep and returns the requested
// trace. The ready poll is bounded by ctx.
func (d *Device) AcquireSpectrumTrace(ctx context.Context, trace SpectrumTrace, pollTimeoutMsec int) ([]float32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("SPECTRUM_AcquireTrace"); err != nil {
		return nil, err
	}
	if trace < Trace1 || trace > Trace3 {
		return nil, &EnumError{Enum: "SpectrumTrace", Token: trace.String()}
	}
	s, st := d.nat.SpectrumGetSettings()
	if err := st.Err("SPECTRUM_GetSettings"); err != nil {
		return nil, err
	}
	if err := d.runLocked(); err != nil {
		return nil, err
	}
	if err := d.nat.SpectrumAcquireTrace().Err("SPECTRUM_AcquireTrace"); err != nil {
		return nil, err
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ready, st := d.nat.SpectrumWaitForTraceReady(pollTimeoutMsec)
		if err := st.Err("SPECTRUM_WaitForTraceReady"); err != nil {
			return nil, err
		}
		if ready {
			break
		}
	}
	data, st := d.nat.SpectrumGetTrace(trace, s.TraceLength)
	return data, st.Err("SPECTRUM_GetTrace")
}
