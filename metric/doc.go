// Package metric exports prometheus metrics for domain registry activity.
//
// Metrics attach to a registry through the observer mechanism, so the
// core interning path stays free of instrumentation concerns:
//
//	metrics := metric.NewMetrics()
//	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
//	    log.Fatal(err)
//	}
//
//	reg := domain.NewCountingRegistry[string]()
//	reg.Subscribe(metrics.Observer("tokens"))
//
// One Metrics instance serves any number of registries, distinguished by
// the domain label.
package metric
