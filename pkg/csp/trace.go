package csp

import "github.com/sirupsen/logrus"

// tracer wraps the logrus.FieldLogger search optionally reports its
// assignment/backtrack decisions to. It is a thin adapter rather than a
// process-wide logger, matching the ambient-stack convention of passing a
// logger down through Options instead of reaching for a package-level one.
type tracer struct {
	log logrus.FieldLogger
}

func newTracer(log logrus.FieldLogger) *tracer {
	if log == nil {
		return nil
	}
	return &tracer{log: log}
}

func (t *tracer) assign(depth int, v VariableId, val Value) {
	if t == nil {
		return
	}
	t.log.WithFields(logrus.Fields{
		"depth":    depth,
		"variable": v,
		"value":    val.String(),
	}).Debug("csp: assign")
}

func (t *tracer) backtrack(depth int, v VariableId) {
	if t == nil {
		return
	}
	t.log.WithFields(logrus.Fields{
		"depth":    depth,
		"variable": v,
	}).Debug("csp: backtrack")
}

func (t *tracer) inconsistent(depth int, v VariableId, val Value) {
	if t == nil {
		return
	}
	t.log.WithFields(logrus.Fields{
		"depth":    depth,
		"variable": v,
		"value":    val.String(),
	}).Debug("csp: propagation reached an inconsistent state")
}
