package rsa

import "time"

// ReferenceTime is a device reference time fix: a wall-clock instant and
// the device sample timestamp it corresponds to.
type ReferenceTime struct {
	Seconds     uint64
	Nanoseconds uint64
	Timestamp   uint64
}

// Time converts the fix to a time.Time.
func (r ReferenceTime) Time() time.Time {
	return time.Unix(int64(r.Seconds), int64(r.Nanoseconds)).UTC()
}

// RefTime reports the current device reference time fix.
func (d *Device) RefTime() (ReferenceTime, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("REFTIME_GetReferenceTime"); err != nil {
		return ReferenceTime{}, err
	}
	sec, nsec, ts, st := d.nat.GetReferenceTime()
	return ReferenceTime{Seconds: sec, Nanoseconds: nsec, Timestamp: ts},
		st.Err("REFTIME_GetReferenceTime")
}

// SetRefTime pins the device reference time to the given fix.
func (d *Device) SetRefTime(r ReferenceTime) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("REFTIME_SetReferenceTime"); err != nil {
		return err
	}
	return d.nat.SetReferenceTime(r.Seconds, r.Nanoseconds, r.Timestamp).
		Err("REFTIME_SetReferenceTime")
}

// RefTimeSource reports what the device reference time is locked to.
func (d *Device) RefTimeSource() (RefTimeSource, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("REFTIME_GetReferenceTimeSource"); err != nil {
		return 0, err
	}
	src, st := d.nat.GetReferenceTimeSource()
	return src, st.Err("REFTIME_GetReferenceTimeSource")
}

// TimestampRate reports the device timestamp counter rate in counts per
// second.
func (d *Device) TimestampRate() (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("REFTIME_GetTimestampRate"); err != nil {
		return 0, err
	}
	rate, st := d.nat.GetTimestampRate()
	return rate, st.Err("REFTIME_GetTimestampRate")
}

// TimeFromTimestamp converts a sample timestamp to wall-clock time.
func (d *Device) TimeFromTimestamp(ts uint64) (time.Time, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("REFTIME_GetTimeFromTimestamp"); err != nil {
		return time.Time{}, err
	}
	sec, nsec, st := d.nat.TimeFromTimestamp(ts)
	if err := st.Err("REFTIME_GetTimeFromTimestamp"); err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(sec), int64(nsec)).UTC(), nil
}

// TimestampFromTime converts a wall-clock time to a sample timestamp.
func (d *Device) TimestampFromTime(t time.Time) (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("REFTIME_GetTimestampFromTime"); err != nil {
		return 0, err
	}
	ts, st := d.nat.TimestampFromTime(uint64(t.Unix()), uint64(t.Nanosecond()))
	return ts, st.Err("REFTIME_GetTimestampFromTime")
}
