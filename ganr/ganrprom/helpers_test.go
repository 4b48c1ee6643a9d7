package ganrprom_test

import (
	dto "github.com/prometheus/client_model/go"
)

// gaugeValues flattens single-series counters and gauges by metric name.
func gaugeValues(mfs []*dto.MetricFamily) map[string]float64 {
	out := make(map[string]float64, len(mfs))
	for _, mf := range mfs {
		ms := mf.GetMetric()
		if len(ms) != 1 {
			continue
		}
		switch {
		case ms[0].GetCounter() != nil:
			out[mf.GetName()] = ms[0].GetCounter().GetValue()
		case ms[0].GetGauge() != nil:
			out[mf.GetName()] = ms[0].GetGauge().GetValue()
		}
	}
	return out
}
