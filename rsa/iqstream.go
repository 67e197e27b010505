package rsa

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
)

// Sticky acquisition-status bits reported by the device after a stream run.
// Once set during a run interval they stay set until explicitly cleared.
const (
	acqStatusInputOverrange       uint32 = 1 << 16
	acqStatusInputBufferPressure  uint32 = 1 << 18
	acqStatusInputBufferOverflow  uint32 = 1 << 19
	acqStatusOutputBufferPressure uint32 = 1 << 20
	acqStatusOutputBufferOverflow uint32 = 1 << 21
)

// streamPollInterval is the fixed wait between write-completion checks.
const streamPollInterval = 100 * time.Millisecond

// suffixNone disables the auto-generated filename suffix.
const suffixNone = -2

// ParseAcqStatus translates sticky acquisition-status bits into a
// DegradedError for the most severe condition present, checked in severity
// order. Zero bits mean a clean capture and a nil return.
func ParseAcqStatus(bits uint32) error {
	if bits == 0 {
		return nil
	}
	for _, c := range []struct {
		mask  uint32
		cause DegradedCause
	}{
		{acqStatusInputOverrange, CauseInputOverrange},
		{acqStatusInputBufferPressure, CauseInputBufferPressure},
		{acqStatusInputBufferOverflow, CauseInputBufferOverflow},
		{acqStatusOutputBufferPressure, CauseOutputBufferPressure},
		{acqStatusOutputBufferOverflow, CauseOutputBufferOverflow},
	} {
		if bits&c.mask != 0 {
			return &DegradedError{Cause: c.cause, Bits: bits}
		}
	}
	// Unnamed bits still mean the capture cannot be trusted.
	return &DegradedError{Cause: CauseOutputBufferOverflow, Bits: bits}
}

// StreamAcqParameters reports the coerced streaming bandwidth and the
// resulting sample rate.
func (d *Device) StreamAcqParameters() (bw, sampleRate float64, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQSTREAM_GetAcqParameters"); err != nil {
		return 0, 0, err
	}
	bw, sampleRate, st := d.nat.StreamGetAcqParameters()
	return bw, sampleRate, st.Err("IQSTREAM_GetAcqParameters")
}

// SetStreamAcqBandwidth sets the streaming acquisition bandwidth, validated
// against the device-reported streaming bandwidth range.
func (d *Device) SetStreamAcqBandwidth(hz float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQSTREAM_SetAcqBandwidth"); err != nil {
		return err
	}
	return d.setStreamBandwidthLocked(hz)
}

func (d *Device) setStreamBandwidthLocked(hz float64) error {
	min, st := d.nat.StreamGetMinAcqBandwidth()
	if err := st.Err("IQSTREAM_GetMinAcqBandwidth"); err != nil {
		return err
	}
	max, st := d.nat.StreamGetMaxAcqBandwidth()
	if err := st.Err("IQSTREAM_GetMaxAcqBandwidth"); err != nil {
		return err
	}
	if hz < min || hz > max {
		return &RangeError{Param: "stream bandwidth", Value: hz, Min: min, Max: max}
	}
	return d.nat.StreamSetAcqBandwidth(hz).Err("IQSTREAM_SetAcqBandwidth")
}

// SetStreamOutput selects the stream destination and stored datatype. TIQ
// files only hold compressed integer formats, so FILE_TIQ combined with a
// floating-point datatype is rejected before the native call.
func (d *Device) SetStreamOutput(dest OutputDest, dtype OutputDtype) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQSTREAM_SetOutputConfiguration"); err != nil {
		return err
	}
	return d.setStreamOutputLocked(dest, dtype)
}

func (d *Device) setStreamOutputLocked(dest OutputDest, dtype OutputDtype) error {
	if dest < DestClient || dest > DestFileSIQSplit {
		return &EnumError{Enum: "OutputDest", Token: dest.String()}
	}
	if dtype < DtypeSingle || dtype > DtypeSingleScaleInt32 {
		return &EnumError{Enum: "OutputDtype", Token: dtype.String()}
	}
	if dest == DestFileTIQ && (dtype == DtypeSingle || dtype == DtypeSingleScaleInt32) {
		return &ComboError{A: dest.String(), B: dtype.String(),
			Reason: "TIQ files require an integer datatype"}
	}
	return d.nat.StreamSetOutputConfiguration(dest, dtype).Err("IQSTREAM_SetOutputConfiguration")
}

// StreamTempfile runs one complete file-mediated streaming capture: tune,
// stream single-precision samples to a temporary split file pair for
// durationMsec milliseconds, read the data file back, and return the
// deinterleaved complex samples. The temporary directory is removed on
// every exit path. The completion poll runs at a fixed interval and is
// bounded by ctx.
func (d *Device) StreamTempfile(ctx context.Context, cfHz, refLevelDbm, bwHz float64, durationMsec int) ([]complex64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.requireConnected("IQSTREAM_Start"); err != nil {
		return nil, err
	}
	if durationMsec < 1 {
		return nil, &RangeError{Param: "stream duration", Value: float64(durationMsec), Min: 1, Max: math.MaxInt32}
	}

	if err := d.stopLocked(); err != nil {
		return nil, err
	}
	if cfHz < d.minFreq || cfHz > d.maxFreq {
		return nil, &RangeError{Param: "center frequency", Value: cfHz, Min: d.minFreq, Max: d.maxFreq}
	}
	if err := d.nat.SetCenterFreq(cfHz).Err("CONFIG_SetCenterFreq"); err != nil {
		return nil, err
	}
	if refLevelDbm < MinReferenceLevel || refLevelDbm > MaxReferenceLevel {
		return nil, &RangeError{Param: "reference level", Value: refLevelDbm, Min: MinReferenceLevel, Max: MaxReferenceLevel}
	}
	if err := d.nat.SetReferenceLevel(refLevelDbm).Err("CONFIG_SetReferenceLevel"); err != nil {
		return nil, err
	}
	if err := d.setStreamBandwidthLocked(bwHz); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "iqstream")
	if err != nil {
		return nil, fmt.Errorf("create stream tempdir: %w", err)
	}
	defer os.RemoveAll(dir)
	base := filepath.Join(dir, "capture")

	if err := d.setStreamOutputLocked(DestFileSIQSplit, DtypeSingle); err != nil {
		return nil, err
	}
	if err := d.nat.StreamSetDiskFilenameBase(base).Err("IQSTREAM_SetDiskFilenameBase"); err != nil {
		return nil, err
	}
	if err := d.nat.StreamSetDiskFilenameSuffix(suffixNone).Err("IQSTREAM_SetDiskFilenameSuffix"); err != nil {
		return nil, err
	}
	if err := d.nat.StreamSetDiskFileLength(durationMsec).Err("IQSTREAM_SetDiskFileLength"); err != nil {
		return nil, err
	}
	if err := d.nat.StreamClearAcqStatus().Err("IQSTREAM_ClearAcqStatus"); err != nil {
		return nil, err
	}

	if err := d.runLocked(); err != nil {
		return nil, err
	}
	if err := d.nat.StreamStart().Err("IQSTREAM_Start"); err != nil {
		return nil, err
	}
	pollErr := d.pollWriteComplete(ctx)
	if err := d.nat.StreamStop().Err("IQSTREAM_Stop"); err != nil && pollErr == nil {
		pollErr = err
	}
	if err := d.stopLocked(); err != nil && pollErr == nil {
		pollErr = err
	}
	if pollErr != nil {
		return nil, pollErr
	}

	info, st := d.nat.StreamGetDiskFileInfo()
	if err := st.Err("IQSTREAM_GetDiskFileInfo"); err != nil {
		return nil, err
	}
	if err := ParseAcqStatus(info.AcqStatus); err != nil {
		return nil, err
	}

	flat, err := readSIQD(base + ".siqd")
	if err != nil {
		return nil, err
	}
	i, q := Deinterleave(flat)
	n := len(i)
	if len(q) < n {
		n = len(q)
	}
	out := make([]complex64, n)
	for k := 0; k < n; k++ {
		out[k] = complex(i[k], q[k])
	}
	d.log.Debug("stream capture complete", "samples", len(out), "duration_ms", durationMsec)
	return out, nil
}

func (d *Device) pollWriteComplete(ctx context.Context) error {
	for {
		complete, _, st := d.nat.StreamGetDiskFileWriteStatus()
		if err := st.Err("IQSTREAM_GetDiskFileWriteStatus"); err != nil {
			return err
		}
		if complete {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(streamPollInterval):
		}
	}
}

// readSIQD reads a raw .siqd data file: a flat little-endian sequence of
// single-precision values, interleaved I,Q.
func readSIQD(path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stream data file: %w", err)
	}
	n := len(raw) / 4
	out := make([]float32, n)
	for k := 0; k < n; k++ {
		bits := binary.LittleEndian.Uint32(raw[4*k:])
		out[k] = math.Float32frombits(bits)
	}
	return out, nil
}

// Deinterleave splits a flat alternating I,Q,I,Q sequence into separate I
// and Q sequences. For an even-length input both halves have equal length.
// For an odd-length input the trailing element is taken as-is onto the end
// of Q, and the last even-indexed value is excluded from I, so Q comes out
// one longer than I.
func Deinterleave(flat []float32) (i, q []float32) {
	m := len(flat) / 2
	i = make([]float32, m)
	for k := 0; k < m; k++ {
		i[k] = flat[2*k]
	}
	if len(flat)%2 == 0 {
		q = make([]float32, m)
		for k := 0; k < m; k++ {
			q[k] = flat[2*k+1]
		}
		return i, q
	}
	q = make([]float32, m+1)
	for k := 0; k < m; k++ {
		q[k] = flat[2*k+1]
	}
	q[m] = flat[len(flat)-1]
	return i, q
}
