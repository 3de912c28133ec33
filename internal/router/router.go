package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sort-bench/internal/handler"
	"sort-bench/internal/service"
)

func SetupRouter(svc *service.ServiceContext) *gin.Engine {
	r := gin.Default()

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(svc.Registry, promhttp.HandlerOpts{})))

	benchmarkHandler := handler.NewBenchmarkHandler(svc.Runner, svc.DefaultRequest(), svc.Logger)

	// API路由
	api := r.Group("/api")
	{
		api.GET("/algorithms", benchmarkHandler.ListAlgorithms)
		api.POST("/benchmarks/run", benchmarkHandler.RunBenchmark)
	}

	return r
}
