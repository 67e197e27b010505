package rsa

// Trigger position bounds, percent of the record before the trigger point.
const (
	minTriggerPosition = 1.0
	maxTriggerPosition = 99.0
)

// TriggerMode reports free-run or triggered operation.
func (d *Device) TriggerMode() (TriggerMode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_GetTriggerMode"); err != nil {
		return 0, err
	}
	m, st := d.nat.GetTriggerMode()
	return m, st.Err("TRIG_GetTriggerMode")
}

// SetTriggerMode selects free-run or triggered operation.
func (d *Device) SetTriggerMode(m TriggerMode) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_SetTriggerMode"); err != nil {
		return err
	}
	if m != TriggerFreeRun && m != TriggerTriggered {
		return &EnumError{Enum: "TriggerMode", Token: m.String()}
	}
	return d.nat.SetTriggerMode(m).Err("TRIG_SetTriggerMode")
}

// TriggerSource reports the trigger input selection.
func (d *Device) TriggerSource() (TriggerSource, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_GetTriggerSource"); err != nil {
		return 0, err
	}
	s, st := d.nat.GetTriggerSource()
	return s, st.Err("TRIG_GetTriggerSource")
}

// SetTriggerSource selects the trigger input.
func (d *Device) SetTriggerSource(s TriggerSource) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_SetTriggerSource"); err != nil {
		return err
	}
	if s != TriggerExternal && s != TriggerIFPowerLevel {
		return &EnumError{Enum: "TriggerSource", Token: s.String()}
	}
	return d.nat.SetTriggerSource(s).Err("TRIG_SetTriggerSource")
}

// TriggerTransition reports the trigger edge selection.
func (d *Device) TriggerTransition() (TriggerTransition, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_GetTriggerTransition"); err != nil {
		return 0, err
	}
	t, st := d.nat.GetTriggerTransition()
	return t, st.Err("TRIG_GetTriggerTransition")
}

// SetTriggerTransition selects the trigger edge.
func (d *Device) SetTriggerTransition(t TriggerTransition) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_SetTriggerTransition"); err != nil {
		return err
	}
	if t < TransitionLH || t > TransitionEither {
		return &EnumError{Enum: "TriggerTransition", Token: t.String()}
	}
	return d.nat.SetTriggerTransition(t).Err("TRIG_SetTriggerTransition")
}

// IFPowerTriggerLevel reports the IF power trigger threshold in dBm.
func (d *Device) IFPowerTriggerLevel() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_GetIFPowerTriggerLevel"); err != nil {
		return 0, err
	}
	lvl, st := d.nat.GetIFPowerTriggerLevel()
	return lvl, st.Err("TRIG_GetIFPowerTriggerLevel")
}

// SetIFPowerTriggerLevel sets the IF power trigger threshold in dBm, bound
// to the reference level range.
func (d *Device) SetIFPowerTriggerLevel(dbm float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_SetIFPowerTriggerLevel"); err != nil {
		return err
	}
	if dbm < MinReferenceLevel || dbm > MaxReferenceLevel {
		return &RangeError{Param: "IF power trigger level", Value: dbm, Min: MinReferenceLevel, Max: MaxReferenceLevel}
	}
	return d.nat.SetIFPowerTriggerLevel(dbm).Err("TRIG_SetIFPowerTriggerLevel")
}

// TriggerPositionPercent reports the pre-trigger portion of the record.
func (d *Device) TriggerPositionPercent() (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_GetTriggerPositionPercent"); err != nil {
		return 0, err
	}
	pct, st := d.nat.GetTriggerPositionPercent()
	return pct, st.Err("TRIG_GetTriggerPositionPercent")
}

// SetTriggerPositionPercent sets the pre-trigger portion of the record.
func (d *Device) SetTriggerPositionPercent(pct float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_SetTriggerPositionPercent"); err != nil {
		return err
	}
	if pct < minTriggerPosition || pct > maxTriggerPosition {
		return &RangeError{Param: "trigger position", Value: pct, Min: minTriggerPosition, Max: maxTriggerPosition}
	}
	return d.nat.SetTriggerPositionPercent(pct).Err("TRIG_SetTriggerPositionPercent")
}

// ForceTrigger fires a software trigger event.
func (d *Device) ForceTrigger() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("TRIG_ForceTrigger"); err != nil {
		return err
	}
	return d.nat.ForceTrigger().Err("TRIG_ForceTrigger")
}
