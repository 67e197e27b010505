// Package calibration supplies gain and noise calibration values for
// acquisitions. Computing or loading calibration data is an external
// concern; this package defines the lookup boundary, the defaulting rules
// for missing values, and the measurement annotation built from them.
package calibration

import "math"

// Values is one calibration lookup result. NaN marks a field the source
// does not know.
type Values struct {
	SiganGain         float64 // dB, signal analyzer alone
	SensorGain        float64 // dB, full sensor chain
	SiganNoiseFigure  float64 // dB
	SensorNoiseFigure float64 // dB
	SiganCompression  float64 // dBm, 1 dB compression point
	SensorCompression float64 // dBm
	ENBW              float64 // Hz, equivalent noise bandwidth
	Temperature       float64 // degC at calibration time
}

// Unknown returns a Values with every field unknown.
func Unknown() Values {
	n := math.NaN()
	return Values{
		SiganGain:         n,
		SensorGain:        n,
		SiganNoiseFigure:  n,
		SensorNoiseFigure: n,
		SiganCompression:  n,
		SensorCompression: n,
		ENBW:              n,
		Temperature:       n,
	}
}

// Source looks up calibration values for a set of acquisition parameters.
type Source interface {
	Lookup(sampleRate, frequency, referenceLevel float64) Values
}

// NoSource is the absent-calibration source: every lookup is unknown, so
// resolution falls through to the defaults.
type NoSource struct{}

func (NoSource) Lookup(sampleRate, frequency, referenceLevel float64) Values {
	return Unknown()
}

// Resolve fills unknown fields: sigan gain defaults to 0 dB, sensor values
// cascade from the sigan values, and ENBW defaults to the sample rate.
func Resolve(v Values, sampleRate float64) Values {
	if math.IsNaN(v.SiganGain) {
		v.SiganGain = 0
	}
	if math.IsNaN(v.SensorGain) {
		v.SensorGain = v.SiganGain
	}
	if math.IsNaN(v.SiganNoiseFigure) {
		v.SiganNoiseFigure = 0
	}
	if math.IsNaN(v.SensorNoiseFigure) {
		v.SensorNoiseFigure = v.SiganNoiseFigure
	}
	if math.IsNaN(v.SiganCompression) {
		v.SiganCompression = 0
	}
	if math.IsNaN(v.SensorCompression) {
		v.SensorCompression = v.SiganCompression
	}
	if math.IsNaN(v.ENBW) {
		v.ENBW = sampleRate
	}
	return v
}

// Annotation builds the sensor-calibration annotation map from resolved
// values. Callers must pass the output of Resolve; unknown fields would
// otherwise leak NaN into the annotation.
func Annotation(v Values) map[string]float64 {
	a := map[string]float64{
		"ntia-sensor:gain_sigan":             v.SiganGain,
		"ntia-sensor:gain_sensor":            v.SensorGain,
		"ntia-sensor:noise_figure_sigan":     v.SiganNoiseFigure,
		"ntia-sensor:noise_figure_sensor":    v.SensorNoiseFigure,
		"ntia-sensor:1db_compression_sigan":  v.SiganCompression,
		"ntia-sensor:1db_compression_sensor": v.SensorCompression,
		"ntia-sensor:enbw_sensor":            v.ENBW,
	}
	if !math.IsNaN(v.Temperature) {
		a["ntia-sensor:temperature"] = v.Temperature
	}
	return a
}
