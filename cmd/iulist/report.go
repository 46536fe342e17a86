package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/percona/percona-iulist/scenario"
)

const metricPrefix = "percona_iulist_"

func printReport(out io.Writer, rep *scenario.Report) {
	fmt.Fprintf(out, "%s [%s]: %s cases, %s steps in %s\n",
		rep.Suite, rep.Kind,
		humanize.Comma(int64(len(rep.Cases))),
		humanize.Comma(int64(rep.Steps)),
		formatDuration(rep.Duration))

	for i := range rep.Cases {
		res := &rep.Cases[i]
		if res.Passed() {
			fmt.Fprintf(out, "  PASS %s\n", res.Case)
			continue
		}

		fmt.Fprintf(out, "  FAIL %s\n", res.Case)
		for _, f := range res.Failures {
			fmt.Fprintf(out, "    %s\n", f)
		}
		fmt.Fprintf(out, "    final: %s\n", res.Final)
	}
}

func printSummary(out io.Writer, failed int, elapsed time.Duration) {
	status := "PASS"
	if failed != 0 {
		status = fmt.Sprintf("FAIL (%s failed)", humanize.Comma(int64(failed)))
	}

	fmt.Fprintf(out, "%s in %s\n", status, formatDuration(elapsed))
}

func formatDuration(d time.Duration) string {
	return humanize.SIWithDigits(d.Seconds(), 2, "s")
}

// printMetrics writes the list metrics gathered by reg, one sample per line.
func printMetrics(out io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err //nolint:wrapcheck
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}

		for _, m := range mf.GetMetric() {
			fmt.Fprintf(out, "%s%s %s\n", mf.GetName(), formatLabels(m.GetLabel()), formatValue(mf, m))
		}
	}

	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}

	return "{" + strings.Join(parts, ",") + "}"
}

func formatValue(mf *dto.MetricFamily, m *dto.Metric) string {
	switch mf.GetType() { //nolint:exhaustive
	case dto.MetricType_COUNTER:
		return humanize.Commaf(m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return humanize.Commaf(m.GetGauge().GetValue())
	}

	return "?"
}
