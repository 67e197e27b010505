package rsa

import (
	"encoding/binary"
	"math"
	"math/cmplx"
	"os"

	"gonum.org/v1/gonum/dsp/fourier"
)

// RSA306B streaming bandwidth steps (Hz), widest first, and the IQ sample
// rate each one yields. The device coerces a requested bandwidth up to the
// next step.
var (
	simBandwidths = []float64{
		40e6, 20e6, 10e6, 5e6, 2.5e6, 1.25e6, 625e3, 312.5e3,
		156.25e3, 78125, 39062.5, 19531.25, 9765.625,
	}
	simSampleRates = []float64{
		56e6, 28e6, 14e6, 7e6, 3.5e6, 1.75e6, 875e3, 437.5e3,
		218.75e3, 109.375e3, 54687.5, 27343.75, 13671.875,
	}
)

const (
	simMinFreq = 9e3
	simMaxFreq = 6.2e9

	// Hard cap on a single block record, matching the device buffer.
	simMaxRecordSamples = 126_000_000

	// Sentinel the hardware reports when audio mode was never set.
	simAudioUnset = 999
)

// Sim is a simulated Native: a full in-process stand-in for the vendor
// library backed by a synthesized tone. Streaming runs write a real
// .siqh/.siqd file pair so the read-back path is exercised end to end.
//
// The exported fault-injection fields let tests provoke the failure paths a
// real device only shows under stress. They are read by the simulated calls
// and never reset except where noted.
type Sim struct {
	// Fault injection.
	FailConnect     bool   // Connect answers errorTransfer
	Warm            bool   // warm-up status answer
	AlignNeeded     bool   // alignment-needed answer
	AlignFailures   int    // RunAlignment fails this many times, then succeeds
	ReadyAfterPolls int    // block data-ready answers false this many times per acquisition
	WritePolls      int    // stream write-status answers incomplete this many times per run
	ShortRuns       int    // stream runs writing one sample pair short, decremented per run
	StickyBits      uint32 // OR-ed into the acquisition status of the next stream run

	// Tone generator.
	ToneOffset float64 // tone offset from center, Hz
	Amplitude  float64

	connected bool
	running   bool

	cf       float64
	refLevel float64
	extRef   bool
	freqRef  FreqRefSource

	iqBandwidth  float64
	recordLength int
	blockPending bool
	blockPolls   int

	streamBW       float64
	streamDest     OutputDest
	streamDtype    OutputDtype
	streamBase     string
	streamSuffix   int
	streamLenMsec  int
	streamRunning  bool
	streamPolls    int
	acqStatus      uint32
	lastFileInfo   StreamFileInfo

	trigMode       TriggerMode
	trigSource     TriggerSource
	trigTransition TriggerTransition
	trigIFLevel    float64
	trigPosition   float64

	refTime      ReferenceTime
	refTimeSrc   RefTimeSource
	timestampRate uint64

	audioMode    int
	audioRunning bool

	specEnabled  bool
	specSettings SpectrumSettings
	alignRuns    int
}

// NewSim returns a simulated RSA306B in its preset state, warmed up, with
// no alignment pending.
func NewSim() *Sim {
	s := &Sim{
		Warm:          true,
		ToneOffset:    1e6,
		Amplitude:     0.5,
		freqRef:       FreqRefInternal,
		trigTransition: TransitionLH,
		refTimeSrc:    RefTimeSystem,
		timestampRate: 112_000_000,
		audioMode:     simAudioUnset,
	}
	s.preset()
	return s
}

func (s *Sim) preset() {
	s.cf = 1.5e9
	s.refLevel = 0
	s.iqBandwidth = 40e6
	s.recordLength = 1024
	s.streamBW = 40e6
	s.streamDest = DestClient
	s.streamDtype = DtypeSingle
	s.trigMode = TriggerFreeRun
	s.trigPosition = 50
	s.specSettings = SpectrumSettings{
		Span:         40e6,
		RBW:          300e3,
		TraceLength:  801,
		Window:       WindowKaiser,
		VerticalUnit: UnitDBm,
	}
}

// coerceBandwidth snaps a requested bandwidth up to the next device step
// and returns the step index.
func coerceBandwidth(hz float64) int {
	idx := 0
	for i := len(simBandwidths) - 1; i >= 0; i-- {
		if simBandwidths[i] >= hz {
			idx = i
			break
		}
	}
	return idx
}

func (s *Sim) sampleRate() float64 {
	return simSampleRates[coerceBandwidth(s.streamBW)]
}

func (s *Sim) blockSampleRate() float64 {
	return simSampleRates[coerceBandwidth(s.iqBandwidth)]
}

// tone synthesizes n complex samples of the configured test tone.
func (s *Sim) tone(n int, sr float64) []complex128 {
	out := make([]complex128, n)
	step := 2 * math.Pi * s.ToneOffset / sr
	for k := range out {
		phase := step * float64(k)
		out[k] = complex(s.Amplitude*math.Cos(phase), s.Amplitude*math.Sin(phase))
	}
	return out
}

// Connection

func (s *Sim) Search() ([]int, []string, []string, Status) {
	return []int{0}, []string{"B012345"}, []string{"RSA306B"}, StatusNoError
}

func (s *Sim) Connect(id int) Status {
	if s.FailConnect || id != 0 {
		return StatusErrorTransfer
	}
	s.connected = true
	return StatusNoError
}

func (s *Sim) Disconnect() Status {
	s.connected = false
	s.running = false
	return StatusNoError
}

func (s *Sim) Run() Status {
	if !s.connected {
		return StatusErrorNotConnected
	}
	s.running = true
	return StatusNoError
}

func (s *Sim) Stop() Status {
	s.running = false
	return StatusNoError
}

func (s *Sim) GetEnable() (bool, Status) { return s.running, StatusNoError }

func (s *Sim) GetNomenclature() (string, Status) { return "RSA306B", StatusNoError }

func (s *Sim) GetSerialNumber() (string, Status) { return "B012345", StatusNoError }

func (s *Sim) GetVersionInfo() (VersionInfo, Status) {
	return VersionInfo{
		Nomenclature: "RSA306B",
		Serial:       "B012345",
		API:          "1.0.0014",
		Firmware:     "V1.7",
		FPGA:         "V1.6",
		Hardware:     "V7",
	}, StatusNoError
}

func (s *Sim) GetOverTemperatureStatus() (bool, Status) { return false, StatusNoError }

func (s *Sim) GetEventStatus(event EventType) (bool, uint64, Status) {
	if event == EventOverrange {
		return s.acqStatus&acqStatusInputOverrange != 0, 0, StatusNoError
	}
	return false, 0, StatusNoError
}

func (s *Sim) GNSSHardwareInstalled() (bool, Status) { return false, StatusNoError }

func (s *Sim) Preset() Status {
	s.preset()
	return StatusNoError
}

// Alignment

func (s *Sim) GetWarmupStatus() (bool, Status) { return s.Warm, StatusNoError }

func (s *Sim) GetAlignmentNeeded() (bool, Status) { return s.AlignNeeded, StatusNoError }

func (s *Sim) RunAlignment() Status {
	s.alignRuns++
	if s.AlignFailures > 0 {
		s.AlignFailures--
		return StatusError112MHzAlignmentSignalLevelTooLow
	}
	s.AlignNeeded = false
	return StatusNoError
}

// AlignmentRuns reports how many alignment attempts the device has seen.
func (s *Sim) AlignmentRuns() int { return s.alignRuns }

// Frequency / level

func (s *Sim) GetCenterFreq() (float64, Status) { return s.cf, StatusNoError }

func (s *Sim) SetCenterFreq(hz float64) Status {
	if hz < simMinFreq || hz > simMaxFreq {
		return StatusErrorParameter
	}
	s.cf = hz
	return StatusNoError
}

func (s *Sim) GetMinCenterFreq() (float64, Status) { return simMinFreq, StatusNoError }

func (s *Sim) GetMaxCenterFreq() (float64, Status) { return simMaxFreq, StatusNoError }

func (s *Sim) GetReferenceLevel() (float64, Status) { return s.refLevel, StatusNoError }

func (s *Sim) SetReferenceLevel(dbm float64) Status {
	s.refLevel = dbm
	return StatusNoError
}

func (s *Sim) GetExternalRefEnable() (bool, Status) { return s.extRef, StatusNoError }

func (s *Sim) SetExternalRefEnable(on bool) Status {
	s.extRef = on
	return StatusNoError
}

func (s *Sim) GetExternalRefFrequency() (float64, Status) {
	if !s.extRef {
		return 0, StatusErrorExternalReferenceNotEnabled
	}
	return 10e6, StatusNoError
}

func (s *Sim) GetFreqRefSource() (FreqRefSource, Status) { return s.freqRef, StatusNoError }

func (s *Sim) SetFreqRefSource(src FreqRefSource) Status {
	if src == FreqRefGNSS {
		return StatusErrorNotSupported
	}
	s.freqRef = src
	return StatusNoError
}

// IQ block

func (s *Sim) GetIQBandwidth() (float64, Status) { return s.iqBandwidth, StatusNoError }

func (s *Sim) SetIQBandwidth(hz float64) Status {
	s.iqBandwidth = simBandwidths[coerceBandwidth(hz)]
	return StatusNoError
}

func (s *Sim) GetMinIQBandwidth() (float64, Status) {
	return simBandwidths[len(simBandwidths)-1], StatusNoError
}

func (s *Sim) GetMaxIQBandwidth() (float64, Status) { return simBandwidths[0], StatusNoError }

func (s *Sim) GetIQRecordLength() (int, Status) { return s.recordLength, StatusNoError }

func (s *Sim) SetIQRecordLength(n int) Status {
	max, _ := s.GetMaxIQRecordLength()
	if n < 1 || n > max {
		return StatusErrorParameter
	}
	s.recordLength = n
	return StatusNoError
}

func (s *Sim) GetMaxIQRecordLength() (int, Status) {
	// Two seconds at the current rate, capped by device memory.
	max := int(2 * s.blockSampleRate())
	if max > simMaxRecordSamples {
		max = simMaxRecordSamples
	}
	return max, StatusNoError
}

func (s *Sim) GetIQSampleRate() (float64, Status) { return s.blockSampleRate(), StatusNoError }

func (s *Sim) AcquireIQData() Status {
	if !s.running {
		return StatusErrorDataNotReady
	}
	s.blockPending = true
	s.blockPolls = 0
	return StatusNoError
}

func (s *Sim) WaitForIQDataReady(timeoutMsec int) (bool, Status) {
	if !s.blockPending {
		return false, StatusErrorDataNotReady
	}
	if s.blockPolls < s.ReadyAfterPolls {
		s.blockPolls++
		return false, StatusNoError
	}
	return true, StatusNoError
}

func (s *Sim) GetIQData(n int) ([]float32, Status) {
	if !s.blockPending {
		return nil, StatusErrorDataNotReady
	}
	s.blockPending = false
	samples := s.tone(n, s.blockSampleRate())
	flat := make([]float32, 2*n)
	for k, c := range samples {
		flat[2*k] = float32(real(c))
		flat[2*k+1] = float32(imag(c))
	}
	return flat, StatusNoError
}

func (s *Sim) GetIQDataDeinterleaved(n int) ([]float32, []float32, Status) {
	flat, st := s.GetIQData(n)
	if st != StatusNoError {
		return nil, nil, st
	}
	i, q := Deinterleave(flat)
	return i, q, StatusNoError
}

// IQ streaming

func (s *Sim) StreamGetMinAcqBandwidth() (float64, Status) {
	return simBandwidths[len(simBandwidths)-1], StatusNoError
}

func (s *Sim) StreamGetMaxAcqBandwidth() (float64, Status) {
	return simBandwidths[0], StatusNoError
}

func (s *Sim) StreamSetAcqBandwidth(hz float64) Status {
	s.streamBW = simBandwidths[coerceBandwidth(hz)]
	return StatusNoError
}

func (s *Sim) StreamGetAcqParameters() (float64, float64, Status) {
	return s.streamBW, s.sampleRate(), StatusNoError
}

func (s *Sim) StreamSetOutputConfiguration(dest OutputDest, dtype OutputDtype) Status {
	if dest == DestFileTIQ && (dtype == DtypeSingle || dtype == DtypeSingleScaleInt32) {
		return StatusErrorIQStreamInvalidFileDataType
	}
	s.streamDest = dest
	s.streamDtype = dtype
	return StatusNoError
}

func (s *Sim) StreamSetDiskFilenameBase(base string) Status {
	s.streamBase = base
	return StatusNoError
}

func (s *Sim) StreamSetDiskFilenameSuffix(suffix int) Status {
	s.streamSuffix = suffix
	return StatusNoError
}

func (s *Sim) StreamSetDiskFileLength(msec int) Status {
	if msec < 0 {
		return StatusErrorParameter
	}
	s.streamLenMsec = msec
	return StatusNoError
}

func (s *Sim) StreamClearAcqStatus() Status {
	s.acqStatus = 0
	return StatusNoError
}

func (s *Sim) StreamStart() Status {
	if !s.running {
		return StatusErrorDataNotReady
	}
	s.streamRunning = true
	s.streamPolls = 0
	s.acqStatus |= s.StickyBits
	s.StickyBits = 0
	return StatusNoError
}

func (s *Sim) StreamStop() Status {
	s.streamRunning = false
	return StatusNoError
}

func (s *Sim) StreamGetDiskFileWriteStatus() (bool, bool, Status) {
	if !s.streamRunning {
		return true, false, StatusNoError
	}
	if s.streamPolls < s.WritePolls {
		s.streamPolls++
		return false, true, StatusNoError
	}
	if err := s.writeStreamFiles(); err != nil {
		return false, false, StatusErrorFileOpen
	}
	return true, false, StatusNoError
}

func (s *Sim) writeStreamFiles() error {
	sr := s.sampleRate()
	pairs := int(float64(s.streamLenMsec) * sr / 1000)
	if s.ShortRuns > 0 && pairs > 0 {
		s.ShortRuns--
		pairs--
	}
	samples := s.tone(pairs, sr)
	buf := make([]byte, 8*pairs)
	for k, c := range samples {
		binary.LittleEndian.PutUint32(buf[8*k:], math.Float32bits(float32(real(c))))
		binary.LittleEndian.PutUint32(buf[8*k+4:], math.Float32bits(float32(imag(c))))
	}
	if err := os.WriteFile(s.streamBase+".siqh", []byte("SIQH simulated header\n"), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(s.streamBase+".siqd", buf, 0o644); err != nil {
		return err
	}
	s.lastFileInfo = StreamFileInfo{
		NumberSamples: uint64(pairs),
		AcqStatus:     s.acqStatus,
		Filenames:     [2]string{s.streamBase + ".siqd", s.streamBase + ".siqh"},
	}
	return nil
}

func (s *Sim) StreamGetDiskFileInfo() (StreamFileInfo, Status) {
	s.lastFileInfo.AcqStatus = s.acqStatus
	return s.lastFileInfo, StatusNoError
}

// Trigger

func (s *Sim) GetTriggerMode() (TriggerMode, Status) { return s.trigMode, StatusNoError }

func (s *Sim) SetTriggerMode(m TriggerMode) Status {
	s.trigMode = m
	return StatusNoError
}

func (s *Sim) GetTriggerSource() (TriggerSource, Status) { return s.trigSource, StatusNoError }

func (s *Sim) SetTriggerSource(src TriggerSource) Status {
	s.trigSource = src
	return StatusNoError
}

func (s *Sim) GetTriggerTransition() (TriggerTransition, Status) {
	return s.trigTransition, StatusNoError
}

func (s *Sim) SetTriggerTransition(t TriggerTransition) Status {
	s.trigTransition = t
	return StatusNoError
}

func (s *Sim) GetIFPowerTriggerLevel() (float64, Status) { return s.trigIFLevel, StatusNoError }

func (s *Sim) SetIFPowerTriggerLevel(dbm float64) Status {
	s.trigIFLevel = dbm
	return StatusNoError
}

func (s *Sim) GetTriggerPositionPercent() (float64, Status) { return s.trigPosition, StatusNoError }

func (s *Sim) SetTriggerPositionPercent(pct float64) Status {
	s.trigPosition = pct
	return StatusNoError
}

func (s *Sim) ForceTrigger() Status { return StatusNoError }

// Reference time

func (s *Sim) GetReferenceTime() (uint64, uint64, uint64, Status) {
	return s.refTime.Seconds, s.refTime.Nanoseconds, s.refTime.Timestamp, StatusNoError
}

func (s *Sim) SetReferenceTime(sec, nsec, timestamp uint64) Status {
	s.refTime = ReferenceTime{Seconds: sec, Nanoseconds: nsec, Timestamp: timestamp}
	s.refTimeSrc = RefTimeUser
	return StatusNoError
}

func (s *Sim) GetReferenceTimeSource() (RefTimeSource, Status) { return s.refTimeSrc, StatusNoError }

func (s *Sim) GetTimestampRate() (uint64, Status) { return s.timestampRate, StatusNoError }

func (s *Sim) TimeFromTimestamp(timestamp uint64) (uint64, uint64, Status) {
	rate := s.timestampRate
	rel := timestamp - s.refTime.Timestamp
	sec := s.refTime.Seconds + rel/rate
	nsec := s.refTime.Nanoseconds + uint64(float64(rel%rate)/float64(rate)*1e9)
	if nsec >= 1e9 {
		sec++
		nsec -= 1e9
	}
	return sec, nsec, StatusNoError
}

func (s *Sim) TimestampFromTime(sec, nsec uint64) (uint64, Status) {
	rate := s.timestampRate
	ts := s.refTime.Timestamp + (sec-s.refTime.Seconds)*rate
	ts += uint64(float64(nsec-s.refTime.Nanoseconds) / 1e9 * float64(rate))
	return ts, StatusNoError
}

// Audio

func (s *Sim) GetAudioMode() (int, Status) { return s.audioMode, StatusNoError }

func (s *Sim) SetAudioMode(m AudioMode) Status {
	s.audioMode = int(m)
	return StatusNoError
}

func (s *Sim) AudioStart() Status {
	if s.audioMode == simAudioUnset {
		return StatusErrorParameter
	}
	s.audioRunning = true
	return StatusNoError
}

func (s *Sim) AudioStop() Status {
	s.audioRunning = false
	return StatusNoError
}

func (s *Sim) GetAudioData(n int) ([]int16, Status) {
	if !s.audioRunning {
		return nil, StatusErrorDataNotReady
	}
	out := make([]int16, n)
	for k := range out {
		out[k] = int16(8192 * math.Sin(2*math.Pi*float64(k)/48))
	}
	return out, StatusNoError
}

// Spectrum

func (s *Sim) SpectrumSetEnable(on bool) Status {
	s.specEnabled = on
	return StatusNoError
}

func (s *Sim) SpectrumGetEnable() (bool, Status) { return s.specEnabled, StatusNoError }

func (s *Sim) SpectrumSetDefault() Status {
	s.specSettings = SpectrumSettings{
		Span:         40e6,
		RBW:          300e3,
		TraceLength:  801,
		Window:       WindowKaiser,
		VerticalUnit: UnitDBm,
	}
	return StatusNoError
}

func (s *Sim) SpectrumGetSettings() (SpectrumSettings, Status) {
	set := s.specSettings
	set.ActualStartFreq = s.cf - set.Span/2
	set.ActualStopFreq = s.cf + set.Span/2
	if set.TraceLength > 1 {
		set.ActualFreqStepSize = set.Span / float64(set.TraceLength-1)
	}
	set.ActualRBW = set.RBW
	set.ActualVBW = set.VBW
	set.ActualNumIQSamples = set.TraceLength * 2
	return set, StatusNoError
}

func (s *Sim) SpectrumSetSettings(set SpectrumSettings) Status {
	s.specSettings = set
	return StatusNoError
}

func (s *Sim) SpectrumGetLimits() (SpectrumLimits, Status) {
	return SpectrumLimits{
		MaxSpan:        6.2e9,
		MinSpan:        1e3,
		MaxRBW:         10e6,
		MinRBW:         10,
		MaxVBW:         10e6,
		MinVBW:         1,
		MaxTraceLength: 64001,
		MinTraceLength: 801,
	}, StatusNoError
}

func (s *Sim) SpectrumSetTraceType(trace SpectrumTrace, enable bool, det SpectrumDetector) Status {
	return StatusNoError
}

func (s *Sim) SpectrumAcquireTrace() Status {
	if !s.specEnabled {
		return StatusErrorMeasurementNotEnabled
	}
	if !s.running {
		return StatusErrorDataNotReady
	}
	return StatusNoError
}

func (s *Sim) SpectrumWaitForTraceReady(timeoutMsec int) (bool, Status) {
	return true, StatusNoError
}

// SpectrumGetTrace synthesizes a trace from an FFT of the test tone.
func (s *Sim) SpectrumGetTrace(trace SpectrumTrace, maxPoints int) ([]float32, Status) {
	if maxPoints < 1 {
		return nil, StatusErrorParameterTraceLength
	}
	n := 2 * maxPoints
	sr := s.sampleRate()
	td := s.tone(n, sr)
	re := make([]float64, n)
	for k, c := range td {
		re[k] = real(c)
	}
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, re)

	noiseFloor := -120.0
	out := make([]float32, maxPoints)
	for k := 0; k < maxPoints && k < len(coeffs); k++ {
		mag := cmplx.Abs(coeffs[k]) / float64(n)
		db := 20*math.Log10(mag+1e-12) + s.refLevel
		if db < noiseFloor {
			db = noiseFloor
		}
		out[k] = float32(db)
	}
	return out, StatusNoError
}

var _ Native = (*Sim)(nil)
