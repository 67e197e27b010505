package rsa

import "sort"

// Named-parameter registry. Configuration arriving from files or a CLI is
// string-keyed and loosely typed; Set coerces each value to the declared
// kind before handing it to the typed setter, so a wrong dynamic type is
// caught here and never reaches a native call.

var deviceParams = map[string]func(*Device, any) error{
	"center_frequency": func(d *Device, v any) error {
		f, err := coerceReal("center_frequency", v)
		if err != nil {
			return err
		}
		return d.SetCenterFreq(f)
	},
	"reference_level": func(d *Device, v any) error {
		f, err := coerceReal("reference_level", v)
		if err != nil {
			return err
		}
		return d.SetReferenceLevel(f)
	},
	"external_reference": func(d *Device, v any) error {
		b, err := coerceBool("external_reference", v)
		if err != nil {
			return err
		}
		return d.SetExternalRefEnable(b)
	},
	"frequency_reference_source": func(d *Device, v any) error {
		s, err := coerceToken("frequency_reference_source", v)
		if err != nil {
			return err
		}
		src, err := ParseFreqRefSource(s)
		if err != nil {
			return err
		}
		return d.SetFreqRefSource(src)
	},
	"iq_bandwidth": func(d *Device, v any) error {
		f, err := coerceReal("iq_bandwidth", v)
		if err != nil {
			return err
		}
		return d.SetIQBandwidth(f)
	},
	"iq_record_length": func(d *Device, v any) error {
		n, err := coerceInt("iq_record_length", v)
		if err != nil {
			return err
		}
		return d.SetIQRecordLength(n)
	},
	"stream_bandwidth": func(d *Device, v any) error {
		f, err := coerceReal("stream_bandwidth", v)
		if err != nil {
			return err
		}
		return d.SetStreamAcqBandwidth(f)
	},
	"trigger_mode": func(d *Device, v any) error {
		s, err := coerceToken("trigger_mode", v)
		if err != nil {
			return err
		}
		m, err := ParseTriggerMode(s)
		if err != nil {
			return err
		}
		return d.SetTriggerMode(m)
	},
	"trigger_source": func(d *Device, v any) error {
		s, err := coerceToken("trigger_source", v)
		if err != nil {
			return err
		}
		src, err := ParseTriggerSource(s)
		if err != nil {
			return err
		}
		return d.SetTriggerSource(src)
	},
	"trigger_transition": func(d *Device, v any) error {
		s, err := coerceToken("trigger_transition", v)
		if err != nil {
			return err
		}
		t, err := ParseTriggerTransition(s)
		if err != nil {
			return err
		}
		return d.SetTriggerTransition(t)
	},
	"if_power_trigger_level": func(d *Device, v any) error {
		f, err := coerceReal("if_power_trigger_level", v)
		if err != nil {
			return err
		}
		return d.SetIFPowerTriggerLevel(f)
	},
	"trigger_position_percent": func(d *Device, v any) error {
		f, err := coerceReal("trigger_position_percent", v)
		if err != nil {
			return err
		}
		return d.SetTriggerPositionPercent(f)
	},
	"audio_mode": func(d *Device, v any) error {
		s, err := coerceToken("audio_mode", v)
		if err != nil {
			return err
		}
		m, err := ParseAudioMode(s)
		if err != nil {
			return err
		}
		return d.SetAudioMode(m)
	},
}

// Set applies a named parameter. The name must be one of ParamNames; the
// value's dynamic type must match the parameter's declared kind.
func (d *Device) Set(name string, value any) error {
	apply, ok := deviceParams[name]
	if !ok {
		return &SetError{Param: "parameter name", Value: name, Allowed: ParamNames()}
	}
	return apply(d, value)
}

// ParamNames lists the settable parameter names in sorted order.
func ParamNames() []string {
	names := make([]string, 0, len(deviceParams))
	for n := range deviceParams {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func coerceReal(name string, v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	}
	return 0, &ArgTypeError{Param: name, Want: "real number", Got: v}
}

func coerceInt(name string, v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	}
	return 0, &ArgTypeError{Param: name, Want: "integer", Got: v}
}

func coerceBool(name string, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, &ArgTypeError{Param: name, Want: "boolean", Got: v}
}

func coerceToken(name string, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", &ArgTypeError{Param: name, Want: "string token", Got: v}
}
