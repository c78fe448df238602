package autofill

import (
	"reflect"
	"time"

	"github.com/viant/gmetric"
	"github.com/viant/gmetric/counter"
	"github.com/viant/gmetric/provider"
)

// MetricName is resolution counter name
const MetricName = "autofill.resolve"

type metricsLocation struct{}

func metricLocation() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}

// WithMetrics counts resolutions, misses and failures are recorded as counter errors
func WithMetrics(service *gmetric.Service) Option {
	return func(r *Resolver) {
		if service == nil {
			return
		}
		operation := service.LookupOperation(MetricName)
		if operation == nil {
			operation = service.MultiOperationCounter(metricLocation(), MetricName, "autofill resolution performance", time.Microsecond, time.Minute, 2, provider.NewBasic())
		}
		r.begin = operation.Begin
	}
}

func nopBegin(time.Time) counter.OnDone {
	return nopOnDone
}

func nopOnDone(time.Time, ...interface{}) int64 {
	return 0
}
