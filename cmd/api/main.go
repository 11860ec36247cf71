package main

import (
	"context"
	"log"
	"time"

	"github.com/thequickanswers/subsite-backend/config"
	"github.com/thequickanswers/subsite-backend/internal/auth"
	"github.com/thequickanswers/subsite-backend/internal/bootstrap"
	"github.com/thequickanswers/subsite-backend/internal/database"
	"github.com/thequickanswers/subsite-backend/internal/dnsmap"
	"github.com/thequickanswers/subsite-backend/internal/hosting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	awsCfg, err := bootstrap.LoadAWSConfig(ctx, cfg.AWS)
	if err != nil {
		log.Fatalf("aws: %v", err)
	}

	gateway := hosting.NewAmplifyGateway(
		bootstrap.NewAmplifyClient(awsCfg),
		cfg.Provision.DomainStrategy,
		cfg.Provision.BranchName,
	)

	var mapper dnsmap.Mapper
	switch cfg.DNS.Backend {
	case "redis":
		redisClient, err := bootstrap.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer redisClient.Close()
		mapper = dnsmap.NewRedisMapper(redisClient)
	default:
		mapper = dnsmap.NewRoute53Mapper(bootstrap.NewRoute53Client(awsCfg), cfg.DNS.HostedZoneID)
	}

	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTL)*time.Hour)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "subsite-backend",
		Version:     cfg.App.Version,
		Config:      cfg,
		DB:          db,
		Tokens:      tokens,
		Hosting:     gateway,
		Mapper:      mapper,
	})

	log.Printf("Server running on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
