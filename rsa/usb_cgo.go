//go:build tekrsa

package rsa

/*
#cgo LDFLAGS: -lRSA_API -lcyusb_shared
#include <stdlib.h>
#include <stdbool.h>
#include <stdint.h>
#include "RSA_API.h"
*/
import "C"

import (
	"unsafe"
)

const usbMaxDevices = 10

// usbNative is the cgo binding to the Tektronix RSA_API shared library.
// The library holds process-wide state, so only one usbNative should exist
// per process; the Device layer serializes all calls through it.
type usbNative struct{}

// NewUSB returns the hardware-backed Native over the vendor USB driver.
func NewUSB() (Native, error) {
	return &usbNative{}, nil
}

func goStr(buf []C.char) string {
	return C.GoString(&buf[0])
}

// Connection

func (u *usbNative) Search() ([]int, []string, []string, Status) {
	var n C.int
	ids := make([]C.int, usbMaxDevices)
	var serials [usbMaxDevices][C.DEVSRCH_SERIAL_MAX_STRLEN]C.char
	var types [usbMaxDevices][C.DEVSRCH_TYPE_MAX_STRLEN]C.char
	st := Status(C.DEVICE_Search(&n, &ids[0],
		(*[C.DEVSRCH_SERIAL_MAX_STRLEN]C.char)(&serials[0]),
		(*[C.DEVSRCH_TYPE_MAX_STRLEN]C.char)(&types[0])))
	if st != StatusNoError {
		return nil, nil, nil, st
	}
	outIDs := make([]int, int(n))
	outSerials := make([]string, int(n))
	outTypes := make([]string, int(n))
	for i := 0; i < int(n); i++ {
		outIDs[i] = int(ids[i])
		outSerials[i] = goStr(serials[i][:])
		outTypes[i] = goStr(types[i][:])
	}
	return outIDs, outSerials, outTypes, st
}

func (u *usbNative) Connect(id int) Status { return Status(C.DEVICE_Connect(C.int(id))) }
func (u *usbNative) Disconnect() Status    { return Status(C.DEVICE_Disconnect()) }
func (u *usbNative) Run() Status           { return Status(C.DEVICE_Run()) }
func (u *usbNative) Stop() Status          { return Status(C.DEVICE_Stop()) }

func (u *usbNative) GetEnable() (bool, Status) {
	var v C.bool
	st := Status(C.DEVICE_GetEnable(&v))
	return bool(v), st
}

func (u *usbNative) GetNomenclature() (string, Status) {
	buf := make([]C.char, C.DEVINFO_MAX_STRLEN)
	st := Status(C.DEVICE_GetNomenclature(&buf[0]))
	return goStr(buf), st
}

func (u *usbNative) GetSerialNumber() (string, Status) {
	buf := make([]C.char, C.DEVINFO_MAX_STRLEN)
	st := Status(C.DEVICE_GetSerialNumber(&buf[0]))
	return goStr(buf), st
}

func (u *usbNative) GetVersionInfo() (VersionInfo, Status) {
	var info VersionInfo
	buf := make([]C.char, C.DEVINFO_MAX_STRLEN)
	if st := Status(C.DEVICE_GetNomenclature(&buf[0])); st != StatusNoError {
		return info, st
	}
	info.Nomenclature = goStr(buf)
	if st := Status(C.DEVICE_GetSerialNumber(&buf[0])); st != StatusNoError {
		return info, st
	}
	info.Serial = goStr(buf)
	if st := Status(C.DEVICE_GetAPIVersion(&buf[0])); st != StatusNoError {
		return info, st
	}
	info.API = goStr(buf)
	if st := Status(C.DEVICE_GetFWVersion(&buf[0])); st != StatusNoError {
		return info, st
	}
	info.Firmware = goStr(buf)
	if st := Status(C.DEVICE_GetFPGAVersion(&buf[0])); st != StatusNoError {
		return info, st
	}
	info.FPGA = goStr(buf)
	st := Status(C.DEVICE_GetHWVersion(&buf[0]))
	info.Hardware = goStr(buf)
	return info, st
}

func (u *usbNative) GetOverTemperatureStatus() (bool, Status) {
	var v C.bool
	st := Status(C.DEVICE_GetOverTemperatureStatus(&v))
	return bool(v), st
}

func (u *usbNative) GetEventStatus(event EventType) (bool, uint64, Status) {
	var occurred C.bool
	var ts C.uint64_t
	st := Status(C.DEVICE_GetEventStatus(C.int(event), &occurred, &ts))
	return bool(occurred), uint64(ts), st
}

func (u *usbNative) GNSSHardwareInstalled() (bool, Status) {
	var v C.bool
	st := Status(C.GNSS_GetHwInstalled(&v))
	return bool(v), st
}

func (u *usbNative) Preset() Status { return Status(C.CONFIG_Preset()) }

// Alignment

func (u *usbNative) GetWarmupStatus() (bool, Status) {
	var v C.bool
	st := Status(C.ALIGN_GetWarmupStatus(&v))
	return bool(v), st
}

func (u *usbNative) GetAlignmentNeeded() (bool, Status) {
	var v C.bool
	st := Status(C.ALIGN_GetAlignmentNeeded(&v))
	return bool(v), st
}

func (u *usbNative) RunAlignment() Status { return Status(C.ALIGN_RunAlignment()) }

// Frequency / level

func (u *usbNative) GetCenterFreq() (float64, Status) {
	var v C.double
	st := Status(C.CONFIG_GetCenterFreq(&v))
	return float64(v), st
}

func (u *usbNative) SetCenterFreq(hz float64) Status {
	return Status(C.CONFIG_SetCenterFreq(C.double(hz)))
}

func (u *usbNative) GetMinCenterFreq() (float64, Status) {
	var v C.double
	st := Status(C.CONFIG_GetMinCenterFreq(&v))
	return float64(v), st
}

func (u *usbNative) GetMaxCenterFreq() (float64, Status) {
	var v C.double
	st := Status(C.CONFIG_GetMaxCenterFreq(&v))
	return float64(v), st
}

func (u *usbNative) GetReferenceLevel() (float64, Status) {
	var v C.double
	st := Status(C.CONFIG_GetReferenceLevel(&v))
	return float64(v), st
}

func (u *usbNative) SetReferenceLevel(dbm float64) Status {
	return Status(C.CONFIG_SetReferenceLevel(C.double(dbm)))
}

func (u *usbNative) GetExternalRefEnable() (bool, Status) {
	var v C.bool
	st := Status(C.CONFIG_GetExternalRefEnable(&v))
	return bool(v), st
}

func (u *usbNative) SetExternalRefEnable(on bool) Status {
	return Status(C.CONFIG_SetExternalRefEnable(C.bool(on)))
}

func (u *usbNative) GetExternalRefFrequency() (float64, Status) {
	var v C.double
	st := Status(C.CONFIG_GetExternalRefFrequency(&v))
	return float64(v), st
}

func (u *usbNative) GetFreqRefSource() (FreqRefSource, Status) {
	var v C.int
	st := Status(C.CONFIG_GetFrequencyReferenceSource(&v))
	return FreqRefSource(v), st
}

func (u *usbNative) SetFreqRefSource(src FreqRefSource) Status {
	return Status(C.CONFIG_SetFrequencyReferenceSource(C.int(src)))
}

// IQ block

func (u *usbNative) GetIQBandwidth() (float64, Status) {
	var v C.double
	st := Status(C.IQBLK_GetIQBandwidth(&v))
	return float64(v), st
}

func (u *usbNative) SetIQBandwidth(hz float64) Status {
	return Status(C.IQBLK_SetIQBandwidth(C.double(hz)))
}

func (u *usbNative) GetMinIQBandwidth() (float64, Status) {
	var v C.double
	st := Status(C.IQBLK_GetMinIQBandwidth(&v))
	return float64(v), st
}

func (u *usbNative) GetMaxIQBandwidth() (float64, Status) {
	var v C.double
	st := Status(C.IQBLK_GetMaxIQBandwidth(&v))
	return float64(v), st
}

func (u *usbNative) GetIQRecordLength() (int, Status) {
	var v C.int
	st := Status(C.IQBLK_GetIQRecordLength(&v))
	return int(v), st
}

func (u *usbNative) SetIQRecordLength(n int) Status {
	return Status(C.IQBLK_SetIQRecordLength(C.int(n)))
}

func (u *usbNative) GetMaxIQRecordLength() (int, Status) {
	var v C.int
	st := Status(C.IQBLK_GetMaxIQRecordLength(&v))
	return int(v), st
}

func (u *usbNative) GetIQSampleRate() (float64, Status) {
	var v C.double
	st := Status(C.IQBLK_GetIQSampleRate(&v))
	return float64(v), st
}

func (u *usbNative) AcquireIQData() Status { return Status(C.IQBLK_AcquireIQData()) }

func (u *usbNative) WaitForIQDataReady(timeoutMsec int) (bool, Status) {
	var ready C.bool
	st := Status(C.IQBLK_WaitForIQDataReady(C.int(timeoutMsec), &ready))
	return bool(ready), st
}

func (u *usbNative) GetIQData(n int) ([]float32, Status) {
	buf := make([]C.float, 2*n)
	var got C.int
	st := Status(C.IQBLK_GetIQData(&buf[0], &got, C.int(n)))
	if st != StatusNoError {
		return nil, st
	}
	out := make([]float32, 2*int(got))
	for i := range out {
		out[i] = float32(buf[i])
	}
	return out, st
}

func (u *usbNative) GetIQDataDeinterleaved(n int) ([]float32, []float32, Status) {
	ibuf := make([]C.float, n)
	qbuf := make([]C.float, n)
	var got C.int
	st := Status(C.IQBLK_GetIQDataDeinterleaved(&ibuf[0], &qbuf[0], &got, C.int(n)))
	if st != StatusNoError {
		return nil, nil, st
	}
	iout := make([]float32, int(got))
	qout := make([]float32, int(got))
	for k := 0; k < int(got); k++ {
		iout[k] = float32(ibuf[k])
		qout[k] = float32(qbuf[k])
	}
	return iout, qout, st
}

// IQ streaming

func (u *usbNative) StreamGetMinAcqBandwidth() (float64, Status) {
	var v C.double
	st := Status(C.IQSTREAM_GetMinAcqBandwidth(&v))
	return float64(v), st
}

func (u *usbNative) StreamGetMaxAcqBandwidth() (float64, Status) {
	var v C.double
	st := Status(C.IQSTREAM_GetMaxAcqBandwidth(&v))
	return float64(v), st
}

func (u *usbNative) StreamSetAcqBandwidth(hz float64) Status {
	return Status(C.IQSTREAM_SetAcqBandwidth(C.double(hz)))
}

func (u *usbNative) StreamGetAcqParameters() (float64, float64, Status) {
	var bw, sr C.double
	st := Status(C.IQSTREAM_GetAcqParameters(&bw, &sr))
	return float64(bw), float64(sr), st
}

func (u *usbNative) StreamSetOutputConfiguration(dest OutputDest, dtype OutputDtype) Status {
	return Status(C.IQSTREAM_SetOutputConfiguration(C.IQSTRMDEST(dest), C.IQSTRMDTYPE(dtype)))
}

func (u *usbNative) StreamSetDiskFilenameBase(base string) Status {
	cs := C.CString(base)
	defer C.free(unsafe.Pointer(cs))
	return Status(C.IQSTREAM_SetDiskFilenameBase(cs))
}

func (u *usbNative) StreamSetDiskFilenameSuffix(suffix int) Status {
	return Status(C.IQSTREAM_SetDiskFilenameSuffix(C.int(suffix)))
}

func (u *usbNative) StreamSetDiskFileLength(msec int) Status {
	return Status(C.IQSTREAM_SetDiskFileLength(C.int(msec)))
}

func (u *usbNative) StreamClearAcqStatus() Status { return Status(C.IQSTREAM_ClearAcqStatus()) }
func (u *usbNative) StreamStart() Status          { return Status(C.IQSTREAM_Start()) }
func (u *usbNative) StreamStop() Status           { return Status(C.IQSTREAM_Stop()) }

func (u *usbNative) StreamGetDiskFileWriteStatus() (bool, bool, Status) {
	var complete, writing C.bool
	st := Status(C.IQSTREAM_GetDiskFileWriteStatus(&complete, &writing))
	return bool(complete), bool(writing), st
}

func (u *usbNative) StreamGetDiskFileInfo() (StreamFileInfo, Status) {
	var raw C.IQSTRMFILEINFO
	st := Status(C.IQSTREAM_GetDiskFileInfo(&raw))
	info := StreamFileInfo{
		NumberSamples:      uint64(raw.numberSamples),
		Sample0Timestamp:   uint64(raw.sample0Timestamp),
		TriggerSampleIndex: uint64(raw.triggerSampleIndex),
		TriggerTimestamp:   uint64(raw.triggerTimestamp),
		AcqStatus:          uint32(raw.acqStatus),
	}
	return info, st
}

// Trigger

func (u *usbNative) GetTriggerMode() (TriggerMode, Status) {
	var v C.TriggerMode
	st := Status(C.TRIG_GetTriggerMode(&v))
	return TriggerMode(v), st
}

func (u *usbNative) SetTriggerMode(m TriggerMode) Status {
	return Status(C.TRIG_SetTriggerMode(C.TriggerMode(m)))
}

func (u *usbNative) GetTriggerSource() (TriggerSource, Status) {
	var v C.TriggerSource
	st := Status(C.TRIG_GetTriggerSource(&v))
	return TriggerSource(v), st
}

func (u *usbNative) SetTriggerSource(s TriggerSource) Status {
	return Status(C.TRIG_SetTriggerSource(C.TriggerSource(s)))
}

func (u *usbNative) GetTriggerTransition() (TriggerTransition, Status) {
	var v C.TriggerTransition
	st := Status(C.TRIG_GetTriggerTransition(&v))
	return TriggerTransition(v), st
}

func (u *usbNative) SetTriggerTransition(t TriggerTransition) Status {
	return Status(C.TRIG_SetTriggerTransition(C.TriggerTransition(t)))
}

func (u *usbNative) GetIFPowerTriggerLevel() (float64, Status) {
	var v C.double
	st := Status(C.TRIG_GetIFPowerTriggerLevel(&v))
	return float64(v), st
}

func (u *usbNative) SetIFPowerTriggerLevel(dbm float64) Status {
	return Status(C.TRIG_SetIFPowerTriggerLevel(C.double(dbm)))
}

func (u *usbNative) GetTriggerPositionPercent() (float64, Status) {
	var v C.double
	st := Status(C.TRIG_GetTriggerPositionPercent(&v))
	return float64(v), st
}

func (u *usbNative) SetTriggerPositionPercent(pct float64) Status {
	return Status(C.TRIG_SetTriggerPositionPercent(C.double(pct)))
}

func (u *usbNative) ForceTrigger() Status { return Status(C.TRIG_ForceTrigger()) }

// Reference time

func (u *usbNative) GetReferenceTime() (uint64, uint64, uint64, Status) {
	var sec C.time_t
	var nsec, ts C.uint64_t
	st := Status(C.REFTIME_GetReferenceTime(&sec, &nsec, &ts))
	return uint64(sec), uint64(nsec), uint64(ts), st
}

func (u *usbNative) SetReferenceTime(sec, nsec, timestamp uint64) Status {
	return Status(C.REFTIME_SetReferenceTime(C.time_t(sec), C.uint64_t(nsec), C.uint64_t(timestamp)))
}

func (u *usbNative) GetReferenceTimeSource() (RefTimeSource, Status) {
	var v C.REFTIME_SRC
	st := Status(C.REFTIME_GetReferenceTimeSource(&v))
	return RefTimeSource(v), st
}

func (u *usbNative) GetTimestampRate() (uint64, Status) {
	var v C.uint64_t
	st := Status(C.REFTIME_GetTimestampRate(&v))
	return uint64(v), st
}

func (u *usbNative) TimeFromTimestamp(timestamp uint64) (uint64, uint64, Status) {
	var sec C.time_t
	var nsec C.uint64_t
	st := Status(C.REFTIME_GetTimeFromTimestamp(C.uint64_t(timestamp), &sec, &nsec))
	return uint64(sec), uint64(nsec), st
}

func (u *usbNative) TimestampFromTime(sec, nsec uint64) (uint64, Status) {
	var ts C.uint64_t
	st := Status(C.REFTIME_GetTimestampFromTime(C.time_t(sec), C.uint64_t(nsec), &ts))
	return uint64(ts), st
}

// Audio

func (u *usbNative) GetAudioMode() (int, Status) {
	var v C.AudioDemodMode
	st := Status(C.AUDIO_GetMode(&v))
	return int(v), st
}

func (u *usbNative) SetAudioMode(m AudioMode) Status {
	return Status(C.AUDIO_SetMode(C.AudioDemodMode(m)))
}

func (u *usbNative) AudioStart() Status { return Status(C.AUDIO_Start()) }
func (u *usbNative) AudioStop() Status  { return Status(C.AUDIO_Stop()) }

func (u *usbNative) GetAudioData(n int) ([]int16, Status) {
	buf := make([]C.int16_t, n)
	var got C.uint16_t
	st := Status(C.AUDIO_GetData(&buf[0], C.uint16_t(n), &got))
	if st != StatusNoError {
		return nil, st
	}
	out := make([]int16, int(got))
	for k := range out {
		out[k] = int16(buf[k])
	}
	return out, st
}

// Spectrum

func (u *usbNative) SpectrumSetEnable(on bool) Status {
	return Status(C.SPECTRUM_SetEnable(C.bool(on)))
}

func (u *usbNative) SpectrumGetEnable() (bool, Status) {
	var v C.bool
	st := Status(C.SPECTRUM_GetEnable(&v))
	return bool(v), st
}

func (u *usbNative) SpectrumSetDefault() Status { return Status(C.SPECTRUM_SetDefault()) }

func (u *usbNative) SpectrumGetSettings() (SpectrumSettings, Status) {
	var raw C.Spectrum_Settings
	st := Status(C.SPECTRUM_GetSettings(&raw))
	return SpectrumSettings{
		Span:               float64(raw.span),
		RBW:                float64(raw.rbw),
		EnableVBW:          bool(raw.enableVBW),
		VBW:                float64(raw.vbw),
		TraceLength:        int(raw.traceLength),
		Window:             SpectrumWindow(raw.window),
		VerticalUnit:       SpectrumVerticalUnit(raw.verticalUnit),
		ActualStartFreq:    float64(raw.actualStartFreq),
		ActualStopFreq:     float64(raw.actualStopFreq),
		ActualFreqStepSize: float64(raw.actualFreqStepSize),
		ActualRBW:          float64(raw.actualRBW),
		ActualVBW:          float64(raw.actualVBW),
		ActualNumIQSamples: int(raw.actualNumIQSamples),
	}, st
}

func (u *usbNative) SpectrumSetSettings(s SpectrumSettings) Status {
	raw := C.Spectrum_Settings{
		span:         C.double(s.Span),
		rbw:          C.double(s.RBW),
		enableVBW:    C.bool(s.EnableVBW),
		vbw:          C.double(s.VBW),
		traceLength:  C.int(s.TraceLength),
		window:       C.SpectrumWindows(s.Window),
		verticalUnit: C.SpectrumVerticalUnits(s.VerticalUnit),
	}
	return Status(C.SPECTRUM_SetSettings(raw))
}

func (u *usbNative) SpectrumGetLimits() (SpectrumLimits, Status) {
	var raw C.Spectrum_Limits
	st := Status(C.SPECTRUM_GetLimits(&raw))
	return SpectrumLimits{
		MaxSpan:        float64(raw.maxSpan),
		MinSpan:        float64(raw.minSpan),
		MaxRBW:         float64(raw.maxRBW),
		MinRBW:         float64(raw.minRBW),
		MaxVBW:         float64(raw.maxVBW),
		MinVBW:         float64(raw.minVBW),
		MaxTraceLength: int(raw.maxTraceLength),
		MinTraceLength: int(raw.minTraceLength),
	}, st
}

func (u *usbNative) SpectrumSetTraceType(trace SpectrumTrace, enable bool, det SpectrumDetector) Status {
	return Status(C.SPECTRUM_SetTraceType(C.SpectrumTraces(trace), C.bool(enable), C.SpectrumDetectors(det)))
}

func (u *usbNative) SpectrumAcquireTrace() Status { return Status(C.SPECTRUM_AcquireTrace()) }

func (u *usbNative) SpectrumWaitForTraceReady(timeoutMsec int) (bool, Status) {
	var ready C.bool
	st := Status(C.SPECTRUM_WaitForTraceReady(C.int(timeoutMsec), &ready))
	return bool(ready), st
}

func (u *usbNative) SpectrumGetTrace(trace SpectrumTrace, maxPoints int) ([]float32, Status) {
	buf := make([]C.float, maxPoints)
	var got C.int
	st := Status(C.SPECTRUM_GetTrace(C.SpectrumTraces(trace), C.int(maxPoints), &buf[0], &got))
	if st != StatusNoError {
		return nil, st
	}
	out := make([]float32, int(got))
	for k := range out {
		out[k] = float32(buf[k])
	}
	return out, st
}

var _ Native = (*usbNative)(nil)
