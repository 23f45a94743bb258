package obs

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus collectors the platform exports.  The
// quote engine is the one computationally interesting path, so it gets the
// most instrumentation: request totals, cache hit/miss counters and a
// latency histogram.
type Metrics struct {
	QuoteRequestsTotal   prometheus.Counter
	QuoteCacheHitsTotal  prometheus.Counter
	QuoteCacheMissTotal  prometheus.Counter
	QuoteDuration        prometheus.Histogram
	RateLimitDropsTotal  prometheus.Counter
	SearchRequestsTotal  prometheus.Counter
	MailPublishFailTotal prometheus.Counter

	Registry *prometheus.Registry
}

// NewMetrics creates the collectors and registers them on p.
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		QuoteRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "availability_quote_requests_total",
			Help: "Total availability quote requests reaching the engine",
		}),
		QuoteCacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "availability_quote_cache_hits_total",
			Help: "Quote requests answered from the Redis quote cache",
		}),
		QuoteCacheMissTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "availability_quote_cache_misses_total",
			Help: "Quote requests that had to be computed",
		}),
		QuoteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "availability_quote_duration_seconds",
			Help:    "End-to-end quote computation latency",
			Buckets: prometheus.DefBuckets,
		}),
		RateLimitDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ratelimit_drops_total",
			Help: "Requests dropped by the token-bucket rate limiter",
		}),
		SearchRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hotel_search_requests_total",
			Help: "Total hotel search requests forwarded to Meilisearch",
		}),
		MailPublishFailTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mail_publish_failures_total",
			Help: "Mail events that could not be published to the broker",
		}),
		Registry: p,
	}

	p.MustRegister(
		m.QuoteRequestsTotal,
		m.QuoteCacheHitsTotal,
		m.QuoteCacheMissTotal,
		m.QuoteDuration,
		m.RateLimitDropsTotal,
		m.SearchRequestsTotal,
		m.MailPublishFailTotal,
	)

	return m
}

func (m *Metrics) IncQuoteRequests()    { m.QuoteRequestsTotal.Inc() }
func (m *Metrics) IncQuoteCacheHits()   { m.QuoteCacheHitsTotal.Inc() }
func (m *Metrics) IncQuoteCacheMisses() { m.QuoteCacheMissTotal.Inc() }
func (m *Metrics) IncRateLimitDrops()   { m.RateLimitDropsTotal.Inc() }
func (m *Metrics) IncSearchRequests()   { m.SearchRequestsTotal.Inc() }
func (m *Metrics) IncMailPublishFails() { m.MailPublishFailTotal.Inc() }

func (m *Metrics) ObserveQuoteDuration(seconds float64) {
	m.QuoteDuration.Observe(seconds)
}
