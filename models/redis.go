package models

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/newbienorbie/prostore/config"
)

var RedisClient *redis.Client

func InitRedis() {
	var opt *redis.Options
	if config.AppConfig.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(config.AppConfig.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       0,
		}
	}

	RedisClient = redis.NewClient(opt)

	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis not reachable:", err)
		log.Println("Running without cache")
		RedisClient = nil
		return
	}

	log.Println("Redis connected successfully")
}
