// Package monitor records safety events for audit. Recording is
// best-effort: methods never fail and never block the request path.
package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	blockedInputTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gachi_blocked_input_total",
		Help: "Questions rejected by the input safety filter.",
	})
	blockedOutputTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gachi_blocked_output_total",
		Help: "Generated answers rejected by the output safety filter.",
	})
	repeatDetectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gachi_repeat_questions_total",
		Help: "Requests flagged as near-duplicates of recent questions.",
	})
)

type Monitor struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Monitor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Monitor{log: log}
}

func (m *Monitor) RecordBlockedInput(email, question string) {
	blockedInputTotal.Inc()
	m.log.Warn("blocked malicious question",
		zap.String("user", email),
		zap.String("question", question),
	)
}

func (m *Monitor) RecordBlockedOutput(email, question, answer string) {
	blockedOutputTotal.Inc()
	m.log.Warn("blocked dangerous answer",
		zap.String("user", email),
		zap.String("question", question),
		zap.String("answer", answer),
	)
}

func (m *Monitor) RecordRepeatDetected(email, question string) {
	repeatDetectedTotal.Inc()
	m.log.Warn("repeated similar question",
		zap.String("user", email),
		zap.String("question", question),
	)
}
