// Package metrics регистрирует счётчики и датчики прометеуса для операций
// сторов. Сами метрики отдаются обработчиком promhttp на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Количество операций синхронизации по сторам и исходам",
		},
		[]string{"store", "operation", "outcome"},
	)

	collectionSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_collection_size",
			Help: "Размер авторитетной коллекции стора",
		},
		[]string{"store"},
	)
)

func init() {
	prometheus.MustRegister(operationsTotal, collectionSize)
}

// ObserveOperation увеличивает счётчик завершённой операции стора.
// outcome принимает значения "success" и "error".
func ObserveOperation(store, operation, outcome string) {
	operationsTotal.WithLabelValues(store, operation, outcome).Inc()
}

// SetCollectionSize выставляет текущий размер коллекции стора.
func SetCollectionSize(store string, size int) {
	collectionSize.WithLabelValues(store).Set(float64(size))
}
