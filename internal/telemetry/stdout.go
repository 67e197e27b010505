package telemetry

import "github.com/charmbracelet/log"

// StdoutReporter logs acquisition events through the shared logger.
type StdoutReporter struct {
	logger *log.Logger
}

// NewStdoutReporter builds a stdout reporter with the provided logger.
func NewStdoutReporter(logger *log.Logger) StdoutReporter {
	if logger == nil {
		logger = log.Default()
	}
	return StdoutReporter{logger: logger}
}

func (r StdoutReporter) Report(ev Event) {
	args := []any{"kind", ev.Kind}
	if ev.Attempt > 0 {
		args = append(args, "attempt", ev.Attempt)
	}
	if ev.Samples > 0 {
		args = append(args, "samples", ev.Samples)
	}
	if ev.Frequency != 0 {
		args = append(args, "frequency_hz", ev.Frequency)
	}
	if ev.SampleRate != 0 {
		args = append(args, "sample_rate", ev.SampleRate)
	}
	if ev.Detail != "" {
		args = append(args, "detail", ev.Detail)
	}
	switch ev.Kind {
	case KindFailed, KindDegraded:
		r.logger.Warn("acquisition", args...)
	default:
		r.logger.Info("acquisition", args...)
	}
}
