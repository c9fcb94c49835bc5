package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp creates the router, websocket hub and scheduler
func InitApp(s *Settings) (*gin.Engine, *melody.Melody, *cron.Cron) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("X-User-ID", "X-Request-ID")
	configCors.AddExposeHeaders("X-Request-ID")
	if len(s.CORSOrigins) > 0 {
		configCors.AllowOrigins = s.CORSOrigins
		configCors.AllowCredentials = true
	} else {
		configCors.AllowAllOrigins = true
	}
	router.Use(cors.New(configCors))

	_ = router.SetTrustedProxies(nil)

	m := melody.New()
	c := cron.New(cron.WithLocation(s.Location))

	return router, m, c
}
