package app

import (
	"fmt"

	"LuckyStore/internal/controller/views"
	"LuckyStore/pkg/logger"
	"LuckyStore/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine() (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(logger.CorrelationMiddleware(), metrics.GinMiddleware(), logger.RequestLogger(), gin.Recovery())

	tmpl, err := views.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)
	return engine, nil
}
