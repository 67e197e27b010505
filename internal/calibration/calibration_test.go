package calibration

import (
	"math"
	"testing"
)

func TestResolveDefaultsCascade(t *testing.T) {
	v := Resolve(Unknown(), 14e6)

	if v.SiganGain != 0 {
		t.Errorf("sigan gain = %v, want 0", v.SiganGain)
	}
	if v.SensorGain != 0 {
		t.Errorf("sensor gain = %v, want the sigan gain 0", v.SensorGain)
	}
	if v.SensorNoiseFigure != 0 {
		t.Errorf("sensor noise figure = %v, want cascade to 0", v.SensorNoiseFigure)
	}
	if v.ENBW != 14e6 {
		t.Errorf("enbw = %v, want the sample rate 14e6", v.ENBW)
	}
}

func TestResolveCascadesSiganToSensor(t *testing.T) {
	in := Unknown()
	in.SiganGain = 12
	in.SiganNoiseFigure = 7
	in.SiganCompression = -15

	v := Resolve(in, 14e6)
	if v.SensorGain != 12 {
		t.Errorf("sensor gain = %v, want sigan gain 12", v.SensorGain)
	}
	if v.SensorNoiseFigure != 7 {
		t.Errorf("sensor noise figure = %v, want 7", v.SensorNoiseFigure)
	}
	if v.SensorCompression != -15 {
		t.Errorf("sensor compression = %v, want -15", v.SensorCompression)
	}
}

func TestResolveKeepsKnownValues(t *testing.T) {
	in := Unknown()
	in.SiganGain = 5
	in.SensorGain = 9
	in.ENBW = 1e6

	v := Resolve(in, 14e6)
	if v.SensorGain != 9 {
		t.Errorf("known sensor gain overwritten: %v", v.SensorGain)
	}
	if v.ENBW != 1e6 {
		t.Errorf("known enbw overwritten: %v", v.ENBW)
	}
}

func TestAnnotation(t *testing.T) {
	v := Resolve(Unknown(), 56e6)
	a := Annotation(v)

	for _, key := range []string{
		"ntia-sensor:gain_sigan",
		"ntia-sensor:gain_sensor",
		"ntia-sensor:noise_figure_sigan",
		"ntia-sensor:noise_figure_sensor",
		"ntia-sensor:1db_compression_sigan",
		"ntia-sensor:1db_compression_sensor",
		"ntia-sensor:enbw_sensor",
	} {
		val, ok := a[key]
		if !ok {
			t.Errorf("annotation missing %s", key)
			continue
		}
		if math.IsNaN(val) {
			t.Errorf("annotation %s is NaN after Resolve", key)
		}
	}
	if _, ok := a["ntia-sensor:temperature"]; ok {
		t.Error("unknown temperature must stay out of the annotation")
	}
}

func TestNoSource(t *testing.T) {
	v := NoSource{}.Lookup(14e6, 1e9, -25)
	if !math.IsNaN(v.SensorGain) || !math.IsNaN(v.ENBW) {
		t.Errorf("NoSource lookup should be all-unknown: %+v", v)
	}
}
