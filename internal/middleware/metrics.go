package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// CommentsCreated counts created comments, split by roots and replies.
	CommentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_comments_created_total",
		Help: "Total number of comments created",
	}, []string{"kind"})

	// CommentTreesDeleted tracks how many comments each cascade delete removed.
	CommentTreesDeleted = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "inkwell_comment_tree_delete_size",
		Help:    "Number of comments removed per cascade delete",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
	})

	// ImagesAttached counts attachment store writes by owner kind.
	ImagesAttached = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_images_attached_total",
		Help: "Total number of images attached by owner kind",
	}, []string{"owner"})
)

// InitMetrics creates the Prometheus HTTP middleware for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-level metrics handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
