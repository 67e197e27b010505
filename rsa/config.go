package rsa

// Reference level bounds in dBm, fixed across the RSA300/500/600 family.
const (
	MinReferenceLevel = -130.0
	MaxReferenceLevel = 30.0
)

// CenterFreq reports the tuned center frequency in Hz.
func (d *Device) CenterFreq() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_GetCenterFreq"); err != nil {
		return 0, err
	}
	cf, st := d.nat.GetCenterFreq()
	return cf, st.Err("CONFIG_GetCenterFreq")
}

// SetCenterFreq tunes the center frequency, validated against the bounds
// the device reported at connect time.
func (d *Device) SetCenterFreq(hz float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_SetCenterFreq"); err != nil {
		return err
	}
	if hz < d.minFreq || hz > d.maxFreq {
		return &RangeError{Param: "center frequency", Value: hz, Min: d.minFreq, Max: d.maxFreq}
	}
	return d.nat.SetCenterFreq(hz).Err("CONFIG_SetCenterFreq")
}

// FreqRange reports the device's tunable frequency range in Hz.
func (d *Device) FreqRange() (min, max float64, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_GetMinCenterFreq"); err != nil {
		return 0, 0, err
	}
	return d.minFreq, d.maxFreq, nil
}

// ReferenceLevel reports the reference level in dBm.
func (d *Device) ReferenceLevel() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_GetReferenceLevel"); err != nil {
		return 0, err
	}
	rl, st := d.nat.GetReferenceLevel()
	return rl, st.Err("CONFIG_GetReferenceLevel")
}

// SetReferenceLevel sets the expected maximum input power in dBm.
func (d *Device) SetReferenceLevel(dbm float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_SetReferenceLevel"); err != nil {
		return err
	}
	if dbm < MinReferenceLevel || dbm > MaxReferenceLevel {
		return &RangeError{Param: "reference level", Value: dbm, Min: MinReferenceLevel, Max: MaxReferenceLevel}
	}
	return d.nat.SetReferenceLevel(dbm).Err("CONFIG_SetReferenceLevel")
}

// ExternalRefEnabled reports whether the external 10 MHz reference input is
// selected.
func (d *Device) ExternalRefEnabled() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_GetExternalRefEnable"); err != nil {
		return false, err
	}
	on, st := d.nat.GetExternalRefEnable()
	return on, st.Err("CONFIG_GetExternalRefEnable")
}

// SetExternalRefEnable selects or deselects the external reference input.
func (d *Device) SetExternalRefEnable(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_SetExternalRefEnable"); err != nil {
		return err
	}
	return d.nat.SetExternalRefEnable(on).Err("CONFIG_SetExternalRefEnable")
}

// ExternalRefFrequency reports the detected external reference frequency.
// Fails when the external reference is not enabled.
func (d *Device) ExternalRefFrequency() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_GetExternalRefFrequency"); err != nil {
		return 0, err
	}
	hz, st := d.nat.GetExternalRefFrequency()
	return hz, st.Err("CONFIG_GetExternalRefFrequency")
}

// FreqRefSource reports the active frequency reference source.
func (d *Device) FreqRefSource() (FreqRefSource, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_GetFrequencyReferenceSource"); err != nil {
		return 0, err
	}
	src, st := d.nat.GetFreqRefSource()
	return src, st.Err("CONFIG_GetFrequencyReferenceSource")
}

// SetFreqRefSource selects the frequency reference source. GNSS is a valid
// token for the API family but the RSA306B has no GNSS receiver, so it is
// rejected here before the native call, as a device failure rather than an
// enum failure.
func (d *Device) SetFreqRefSource(src FreqRefSource) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("CONFIG_SetFrequencyReferenceSource"); err != nil {
		return err
	}
	if src == FreqRefGNSS {
		return StatusErrorNotSupported.Err("CONFIG_SetFrequencyReferenceSource")
	}
	if src < FreqRefInternal || src > FreqRefUser {
		return &EnumError{Enum: "FreqRefSource", Token: src.String()}
	}
	return d.nat.SetFreqRefSource(src).Err("CONFIG_SetFrequencyReferenceSource")
}
