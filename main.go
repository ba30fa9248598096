package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OnurLexa/DreamGen/bot"
	"github.com/OnurLexa/DreamGen/controller"
	"github.com/OnurLexa/DreamGen/dao/sqlite"
	"github.com/OnurLexa/DreamGen/logic"
	"github.com/OnurLexa/DreamGen/pkg/config"
	"github.com/OnurLexa/DreamGen/pkg/filter"
	"github.com/OnurLexa/DreamGen/pkg/gate"
	"github.com/OnurLexa/DreamGen/pkg/logger"
	"github.com/OnurLexa/DreamGen/pkg/ratelimit"
	"github.com/OnurLexa/DreamGen/pkg/snowflake"
	"github.com/OnurLexa/DreamGen/stability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Mode); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zap.L().Sync()

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}

	if err := sqlite.Init(cfg.UsageDBPath); err != nil {
		log.Fatalf("Failed to init usage db: %v", err)
	}
	defer sqlite.Close()

	pipeline := &logic.Pipeline{
		Limiter:      ratelimit.NewCooldown(cfg.UserCooldown),
		Filter:       filter.NewBlocklist(cfg.BannedKeywords),
		Gate:         gate.NewPool(cfg.MaxConcurrent, cfg.GateAcquireTimeout),
		Client:       stability.New(cfg.StabilityAPIKey, cfg.RequestTimeout),
		Recorder:     sqlite.UsageDao{},
		DefaultModel: cfg.DefaultModel,
	}

	b, err := bot.New(cfg.DiscordToken, pipeline, cfg.GuildID)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}
	if err := b.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}
	defer b.Close()

	if err := controller.InitTrans("en"); err != nil {
		log.Fatalf("Failed to init validator translator: %v", err)
	}

	if cfg.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := controller.NewGenerateHandler(pipeline)
	api := r.Group("/api/v1")
	api.POST("/generate", h.Generate)
	api.GET("/usages/:user_id", controller.GetUserUsageHistory)

	r.Run(":" + cfg.Port)
}
