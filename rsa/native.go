package rsa

// Native is the vendor device-call boundary. Every method is a blocking
// call mapping 1:1 onto a vendor API function and returning the raw vendor
// status. The Device layer owns validation and status translation; a Native
// implementation performs no argument checking of its own.
//
// Implementations: Sim (simulated device) and the cgo-backed USB binding
// behind the tekrsa build tag.
type Native interface {
	// Connection
	Search() (ids []int, serials []string, types []string, st Status)
	Connect(id int) Status
	Disconnect() Status
	Run() Status
	Stop() Status
	GetEnable() (running bool, st Status)
	GetNomenclature() (string, Status)
	GetSerialNumber() (string, Status)
	GetVersionInfo() (VersionInfo, Status)
	GetOverTemperatureStatus() (bool, Status)
	GetEventStatus(event EventType) (occurred bool, timestamp uint64, st Status)
	GNSSHardwareInstalled() (bool, Status)
	Preset() Status

	// Alignment
	GetWarmupStatus() (bool, Status)
	GetAlignmentNeeded() (bool, Status)
	RunAlignment() Status

	// Frequency / level configuration
	GetCenterFreq() (float64, Status)
	SetCenterFreq(hz float64) Status
	GetMinCenterFreq() (float64, Status)
	GetMaxCenterFreq() (float64, Status)
	GetReferenceLevel() (float64, Status)
	SetReferenceLevel(dbm float64) Status
	GetExternalRefEnable() (bool, Status)
	SetExternalRefEnable(on bool) Status
	GetExternalRefFrequency() (float64, Status)
	GetFreqRefSource() (FreqRefSource, Status)
	SetFreqRefSource(src FreqRefSource) Status

	// IQ block
	GetIQBandwidth() (float64, Status)
	SetIQBandwidth(hz float64) Status
	GetMinIQBandwidth() (float64, Status)
	GetMaxIQBandwidth() (float64, Status)
	GetIQRecordLength() (int, Status)
	SetIQRecordLength(n int) Status
	GetMaxIQRecordLength() (int, Status)
	GetIQSampleRate() (float64, Status)
	AcquireIQData() Status
	WaitForIQDataReady(timeoutMsec int) (ready bool, st Status)
	GetIQData(n int) ([]float32, Status)
	GetIQDataDeinterleaved(n int) (i []float32, q []float32, st Status)

	// IQ streaming
	StreamGetMinAcqBandwidth() (float64, Status)
	StreamGetMaxAcqBandwidth() (float64, Status)
	StreamSetAcqBandwidth(hz float64) Status
	StreamGetAcqParameters() (bw float64, sampleRate float64, st Status)
	StreamSetOutputConfiguration(dest OutputDest, dtype OutputDtype) Status
	StreamSetDiskFilenameBase(base string) Status
	StreamSetDiskFilenameSuffix(suffix int) Status
	StreamSetDiskFileLength(msec int) Status
	StreamClearAcqStatus() Status
	StreamStart() Status
	StreamStop() Status
	StreamGetDiskFileWriteStatus() (complete bool, writing bool, st Status)
	StreamGetDiskFileInfo() (StreamFileInfo, Status)

	// Trigger
	GetTriggerMode() (TriggerMode, Status)
	SetTriggerMode(m TriggerMode) Status
	GetTriggerSource() (TriggerSource, Status)
	SetTriggerSource(s TriggerSource) Status
	GetTriggerTransition() (TriggerTransition, Status)
	SetTriggerTransition(t TriggerTransition) Status
	GetIFPowerTriggerLevel() (float64, Status)
	SetIFPowerTriggerLevel(dbm float64) Status
	GetTriggerPositionPercent() (float64, Status)
	SetTriggerPositionPercent(pct float64) Status
	ForceTrigger() Status

	// Reference time
	GetReferenceTime() (sec uint64, nsec uint64, timestamp uint64, st Status)
	SetReferenceTime(sec uint64, nsec uint64, timestamp uint64) Status
	GetReferenceTimeSource() (RefTimeSource, Status)
	GetTimestampRate() (uint64, Status)
	TimeFromTimestamp(timestamp uint64) (sec uint64, nsec uint64, st Status)
	TimestampFromTime(sec uint64, nsec uint64) (timestamp uint64, st Status)

	// Audio demodulation
	GetAudioMode() (int, Status)
	SetAudioMode(m AudioMode) Status
	AudioStart() Status
	AudioStop() Status
	GetAudioData(n int) ([]int16, Status)

	// Spectrum traces
	SpectrumSetEnable(on bool) Status
	SpectrumGetEnable() (bool, Status)
	SpectrumSetDefault() Status
	SpectrumGetSettings() (SpectrumSettings, Status)
	SpectrumSetSettings(s SpectrumSettings) Status
	SpectrumGetLimits() (SpectrumLimits, Status)
	SpectrumSetTraceType(trace SpectrumTrace, enable bool, detector SpectrumDetector) Status
	SpectrumAcquireTrace() Status
	SpectrumWaitForTraceReady(timeoutMsec int) (ready bool, st Status)
	SpectrumGetTrace(trace SpectrumTrace, maxPoints int) ([]float32, Status)
}

// VersionInfo carries the device and library version strings.
type VersionInfo struct {
	Nomenclature string
	Serial       string
	API          string
	Firmware     string
	FPGA         string
	Hardware     string
}

// StreamFileInfo describes the file pair produced by a disk-destination IQ
// stream run, as reported by the device after streaming stops.
type StreamFileInfo struct {
	NumberSamples uint64
	Sample0Timestamp uint64
	TriggerSampleIndex uint64
	TriggerTimestamp uint64
	AcqStatus uint32
	Filenames [2]string
}

// SpectrumSettings mirrors the vendor spectrum configuration block. Actual*
// fields are device-computed outputs; the rest are caller inputs.
type SpectrumSettings struct {
	Span         float64
	RBW          float64
	EnableVBW    bool
	VBW          float64
	TraceLength  int
	Window       SpectrumWindow
	VerticalUnit SpectrumVerticalUnit

	ActualStartFreq   float64
	ActualStopFreq    float64
	ActualFreqStepSize float64
	ActualRBW         float64
	ActualVBW         float64
	ActualNumIQSamples int
}

// SpectrumLimits reports device capability bounds for spectrum settings.
type SpectrumLimits struct {
	MaxSpan        float64
	MinSpan        float64
	MaxRBW         float64
	MinRBW         float64
	MaxVBW         float64
	MinVBW         float64
	MaxTraceLength int
	MinTraceLength int
}
