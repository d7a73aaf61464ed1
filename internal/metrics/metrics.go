// Package metrics counts viewer interactions with Prometheus collectors. The collectors live
// on a private registry that can be dumped in the text exposition format for the node
// exporter's textfile collector; nothing is served over the network.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pkg/errors"
)

const defaultNamespace = "vsa"

// Recorder owns the interaction counters. A nil *Recorder is valid and records nothing, so
// components can be built without metrics.
type Recorder struct {
	namespace string
	registry  *prometheus.Registry

	modalOpens      *prometheus.CounterVec
	lookupMisses    prometheus.Counter
	tabSwitches     *prometheus.CounterVec
	formSubmissions prometheus.Counter
	formRejections  *prometheus.CounterVec
	searches        prometheus.Counter
}

// Option applies a configuration option to the Recorder.
type Option func(*Recorder)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(r *Recorder) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

// New creates a Recorder and registers its collectors.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		namespace: defaultNamespace,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.modalOpens = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "results",
		Name:      "modal_opens_total",
		Help:      "Number of times the results viewer was opened, by result-set.",
	}, []string{"result_set"})
	r.lookupMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "results",
		Name:      "lookup_misses_total",
		Help:      "Number of open requests for an unknown result-set.",
	})
	r.tabSwitches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "results",
		Name:      "tab_switches_total",
		Help:      "Number of tab switches, by destination tab.",
	}, []string{"tab"})
	r.formSubmissions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "contact",
		Name:      "submissions_total",
		Help:      "Number of contact form submissions that passed validation.",
	})
	r.formRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "contact",
		Name:      "rejections_total",
		Help:      "Number of contact form submissions rejected by validation, by reason.",
	}, []string{"reason"})
	r.searches = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: r.namespace,
		Subsystem: "search",
		Name:      "queries_total",
		Help:      "Number of search queries long enough to be executed.",
	})

	r.registry.MustRegister(
		r.modalOpens,
		r.lookupMisses,
		r.tabSwitches,
		r.formSubmissions,
		r.formRejections,
		r.searches,
	)
	return r
}

func (r *Recorder) ModalOpened(resultSet string) {
	if r == nil {
		return
	}
	r.modalOpens.WithLabelValues(resultSet).Inc()
}

func (r *Recorder) LookupMissed() {
	if r == nil {
		return
	}
	r.lookupMisses.Inc()
}

func (r *Recorder) TabSwitched(tab string) {
	if r == nil {
		return
	}
	r.tabSwitches.WithLabelValues(tab).Inc()
}

func (r *Recorder) FormSubmitted() {
	if r == nil {
		return
	}
	r.formSubmissions.Inc()
}

func (r *Recorder) FormRejected(reason string) {
	if r == nil {
		return
	}
	r.formRejections.WithLabelValues(reason).Inc()
}

func (r *Recorder) Searched() {
	if r == nil {
		return
	}
	r.searches.Inc()
}

// Registry exposes the private registry, e.g. for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// WriteTextfile writes every collected metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "writing metrics to %s", path)
	}
	return nil
}
