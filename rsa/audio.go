package rsa

// AudioModeSetting reports the configured demodulation mode. The device
// answers with a sentinel outside the mode set when the mode has never been
// set; that sentinel surfaces as NotConfiguredError, not as a bogus enum
// value.
func (d *Device) AudioModeSetting() (AudioMode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("AUDIO_GetMode"); err != nil {
		return 0, err
	}
	raw, st := d.nat.GetAudioMode()
	if err := st.Err("AUDIO_GetMode"); err != nil {
		return 0, err
	}
	if raw < int(AudioFM8kHz) || raw > int(AudioNone) {
		return 0, &NotConfiguredError{Setting: "audio demodulation mode"}
	}
	return AudioMode(raw), nil
}

// SetAudioMode selects the demodulation mode.
func (d *Device) SetAudioMode(m AudioMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("AUDIO_SetMode"); err != nil {
		return err
	}
	if m < AudioFM8kHz || m > AudioNone {
		return &EnumError{Enum: "AudioMode", Token: m.String()}
	}
	return d.nat.SetAudioMode(m).Err("AUDIO_SetMode")
}

// AudioStart begins audio demodulation output.
func (d *Device) AudioStart() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("AUDIO_Start"); err != nil {
		return err
	}
	return d.nat.AudioStart().Err("AUDIO_Start")
}

// AudioStop ends audio demodulation output.
func (d *Device) AudioStop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("AUDIO_Stop"); err != nil {
		return err
	}
	return d.nat.AudioStop().Err("AUDIO_Stop")
}

// AudioData retrieves up to n demodulated 16-bit audio samples.
func (d *Device) AudioData(n int) ([]int16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("AUDIO_GetData"); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, &RangeError{Param: "audio sample count", Value: float64(n), Min: 1, Max: float64(int(^uint(0) >> 1))}
	}
	data, st := d.nat.GetAudioData(n)
	return data, st.Err("AUDIO_GetData")
}
