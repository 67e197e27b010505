package rsa

// Closed device enumerations. Each carries the native ordinal the vendor
// API expects, so no string lookup happens at call sites. Parse* and
// String() are exact inverses over each set.

// EventType selects a device event to query.
type EventType int

const (
	EventOverrange EventType = 0
	EventTrigger   EventType = 1
	Event1PPS      EventType = 2
)

var eventTypeNames = []string{"OVERRANGE", "TRIGGER", "1PPS"}

func (e EventType) String() string { return enumName(int(e), eventTypeNames) }

// ParseEventType maps an event token to its EventType.
func ParseEventType(s string) (EventType, error) {
	i, err := enumIndex("EventType", s, eventTypeNames)
	return EventType(i), err
}

// FreqRefSource selects the frequency reference input.
type FreqRefSource int

const (
	FreqRefInternal FreqRefSource = 0
	FreqRefExternal FreqRefSource = 1
	FreqRefGNSS     FreqRefSource = 2
	FreqRefUser     FreqRefSource = 3
)

var freqRefNames = []string{"INTERNAL", "EXTREF", "GNSS", "USER"}

func (f FreqRefSource) String() string { return enumName(int(f), freqRefNames) }

func ParseFreqRefSource(s string) (FreqRefSource, error) {
	i, err := enumIndex("FreqRefSource", s, freqRefNames)
	return FreqRefSource(i), err
}

// OutputDest selects where the IQ stream is written.
type OutputDest int

const (
	DestClient       OutputDest = 0
	DestFileTIQ      OutputDest = 1
	DestFileSIQ      OutputDest = 2
	DestFileSIQSplit OutputDest = 3
)

var outputDestNames = []string{"CLIENT", "FILE_TIQ", "FILE_SIQ", "FILE_SIQ_SPLIT"}

func (d OutputDest) String() string { return enumName(int(d), outputDestNames) }

func ParseOutputDest(s string) (OutputDest, error) {
	i, err := enumIndex("OutputDest", s, outputDestNames)
	return OutputDest(i), err
}

// OutputDtype selects the stored sample datatype for the IQ stream.
type OutputDtype int

const (
	DtypeSingle          OutputDtype = 0
	DtypeInt32           OutputDtype = 1
	DtypeInt16           OutputDtype = 2
	DtypeSingleScaleInt32 OutputDtype = 3
)

var outputDtypeNames = []string{"SINGLE", "INT32", "INT16", "SINGLE_SCALE_INT32"}

func (d OutputDtype) String() string { return enumName(int(d), outputDtypeNames) }

func ParseOutputDtype(s string) (OutputDtype, error) {
	i, err := enumIndex("OutputDtype", s, outputDtypeNames)
	return OutputDtype(i), err
}

// RefTimeSource identifies what the device reference time is locked to.
type RefTimeSource int

const (
	RefTimeNone   RefTimeSource = 0
	RefTimeSystem RefTimeSource = 1
	RefTimeGNSS   RefTimeSource = 2
	RefTimeUser   RefTimeSource = 3
)

var refTimeNames = []string{"NONE", "SYSTEM", "GNSS", "USER"}

func (r RefTimeSource) String() string { return enumName(int(r), refTimeNames) }

func ParseRefTimeSource(s string) (RefTimeSource, error) {
	i, err := enumIndex("RefTimeSource", s, refTimeNames)
	return RefTimeSource(i), err
}

// TriggerMode selects free-run or triggered acquisition.
type TriggerMode int

const (
	TriggerFreeRun   TriggerMode = 0
	TriggerTriggered TriggerMode = 1
)

var triggerModeNames = []string{"freeRun", "triggered"}

func (m TriggerMode) String() string { return enumName(int(m), triggerModeNames) }

func ParseTriggerMode(s string) (TriggerMode, error) {
	i, err := enumIndex("TriggerMode", s, triggerModeNames)
	return TriggerMode(i), err
}

// TriggerSource selects the trigger input.
type TriggerSource int

const (
	TriggerExternal     TriggerSource = 0
	TriggerIFPowerLevel TriggerSource = 1
)

var triggerSourceNames = []string{"External", "IFPowerLevel"}

func (s TriggerSource) String() string { return enumName(int(s), triggerSourceNames) }

func ParseTriggerSource(s string) (TriggerSource, error) {
	i, err := enumIndex("TriggerSource", s, triggerSourceNames)
	return TriggerSource(i), err
}

// TriggerTransition selects the trigger edge. Native ordinals start at 1.
type TriggerTransition int

const (
	TransitionLH     TriggerTransition = 1
	TransitionHL     TriggerTransition = 2
	TransitionEither TriggerTransition = 3
)

var triggerTransitionNames = []string{"LH", "HL", "Either"}

func (t TriggerTransition) String() string { return enumName(int(t)-1, triggerTransitionNames) }

func ParseTriggerTransition(s string) (TriggerTransition, error) {
	i, err := enumIndex("TriggerTransition", s, triggerTransitionNames)
	return TriggerTransition(i + 1), err
}

// SpectrumWindow selects the spectrum analysis window function.
type SpectrumWindow int

const (
	WindowKaiser         SpectrumWindow = 0
	WindowMil6dB         SpectrumWindow = 1
	WindowBlackmanHarris SpectrumWindow = 2
	WindowRectangular    SpectrumWindow = 3
	WindowFlatTop        SpectrumWindow = 4
	WindowHann           SpectrumWindow = 5
)

var spectrumWindowNames = []string{
	"Kaiser", "Mil6dB", "BlackmanHarris", "Rectangular", "FlatTop", "Hann",
}

func (w SpectrumWindow) String() string { return enumName(int(w), spectrumWindowNames) }

func ParseSpectrumWindow(s string) (SpectrumWindow, error) {
	i, err := enumIndex("SpectrumWindow", s, spectrumWindowNames)
	return SpectrumWindow(i), err
}

// SpectrumVerticalUnit selects the amplitude unit of spectrum traces.
type SpectrumVerticalUnit int

const (
	UnitDBm  SpectrumVerticalUnit = 0
	UnitWatt SpectrumVerticalUnit = 1
	UnitVolt SpectrumVerticalUnit = 2
	UnitAmp  SpectrumVerticalUnit = 3
	UnitDBmV SpectrumVerticalUnit = 4
)

var spectrumUnitNames = []string{"dBm", "Watt", "Volt", "Amp", "dBmV"}

func (u SpectrumVerticalUnit) String() string { return enumName(int(u), spectrumUnitNames) }

func ParseSpectrumVerticalUnit(s string) (SpectrumVerticalUnit, error) {
	i, err := enumIndex("SpectrumVerticalUnit", s, spectrumUnitNames)
	return SpectrumVerticalUnit(i), err
}

// SpectrumDetector selects how spectrum bins are reduced.
type SpectrumDetector int

const (
	DetectorPosPeak     SpectrumDetector = 0
	DetectorNegPeak     SpectrumDetector = 1
	DetectorAverageVRMS SpectrumDetector = 2
	DetectorSample      SpectrumDetector = 3
)

var spectrumDetectorNames = []string{"PosPeak", "NegPeak", "AverageVRMS", "Sample"}

func (d SpectrumDetector) String() string { return enumName(int(d), spectrumDetectorNames) }

func ParseSpectrumDetector(s string) (SpectrumDetector, error) {
	i, err := enumIndex("SpectrumDetector", s, spectrumDetectorNames)
	return SpectrumDetector(i), err
}

// SpectrumTrace identifies one of the three spectrum trace slots.
type SpectrumTrace int

const (
	Trace1 SpectrumTrace = 0
	Trace2 SpectrumTrace = 1
	Trace3 SpectrumTrace = 2
)

var spectrumTraceNames = []string{"Trace1", "Trace2", "Trace3"}

func (t SpectrumTrace) String() string { return enumName(int(t), spectrumTraceNames) }

func ParseSpectrumTrace(s string) (SpectrumTrace, error) {
	i, err := enumIndex("SpectrumTrace", s, spectrumTraceNames)
	return SpectrumTrace(i), err
}

// AudioMode selects the audio demodulation mode. The device reports a value
// outside this set when the mode has never been configured.
type AudioMode int

const (
	AudioFM8kHz   AudioMode = 0
	AudioFM13kHz  AudioMode = 1
	AudioFM75kHz  AudioMode = 2
	AudioFM200kHz AudioMode = 3
	AudioAM8kHz   AudioMode = 4
	AudioNone     AudioMode = 5
)

var audioModeNames = []string{"FM_8KHZ", "FM_13KHZ", "FM_75KHZ", "FM_200KHZ", "AM_8KHZ", "NONE"}

func (m AudioMode) String() string { return enumName(int(m), audioModeNames) }

func ParseAudioMode(s string) (AudioMode, error) {
	i, err := enumIndex("AudioMode", s, audioModeNames)
	return AudioMode(i), err
}

func enumName(i int, names []string) string {
	if i < 0 || i >= len(names) {
		return "invalid"
	}
	return names[i]
}

func enumIndex(enum, token string, names []string) (int, error) {
	for i, n := range names {
		if n == token {
			return i, nil
		}
	}
	return 0, &EnumError{Enum: enum, Token: token}
}
