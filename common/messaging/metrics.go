package messaging

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ==================== 发布指标 ====================

var (
	// publishedTotal 发布成功的消息计数
	publishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sportmeet",
		Subsystem: "messaging",
		Name:      "published_total",
		Help:      "Total number of messages published, by topic.",
	}, []string{"service", "topic"})

	// publishFailedTotal 发布失败的消息计数
	publishFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sportmeet",
		Subsystem: "messaging",
		Name:      "publish_failed_total",
		Help:      "Total number of publish failures, by topic.",
	}, []string{"service", "topic"})
)

func recordPublished(service, topic string) {
	publishedTotal.WithLabelValues(service, topic).Inc()
}

func recordPublishFailed(service, topic string) {
	publishFailedTotal.WithLabelValues(service, topic).Inc()
}
