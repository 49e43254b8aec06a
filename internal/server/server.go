// Package server exposes curve evaluation over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactkeval/greek-plotter/internal/curve"
	"github.com/contactkeval/greek-plotter/internal/data"
	"github.com/contactkeval/greek-plotter/internal/logger"
	"github.com/contactkeval/greek-plotter/internal/pricing"
)

const invalidInputMsg = "please enter valid numbers"

// NewRouter wires the health and evaluate endpoints. prov resolves spot
// prices for requests that name a ticker instead of a spot.
// The body is a curve.Config; its report_dir and verbosity fields are CLI
// settings and have no effect here.
func NewRouter(prov data.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.POST("/evaluate", func(c *gin.Context) {
		var cfg curve.Config
		if err := c.ShouldBindJSON(&cfg); err != nil {
			logger.Debugf("bad evaluate body: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidInputMsg + ": " + err.Error()})
			return
		}

		logger.Infof("received /evaluate %s %s", cfg.OptionType, cfg.GreekType)

		res, err := curve.Build(c.Request.Context(), cfg, prov)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, res)
		case errors.Is(err, pricing.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidInputMsg + ": " + err.Error()})
		default:
			logger.Errorf("evaluate failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
	})

	return r
}
