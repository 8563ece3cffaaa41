//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mootfed/moot/core"
	"github.com/mootfed/moot/x/activity"
	"github.com/mootfed/moot/x/actor"
	"github.com/mootfed/moot/x/auth"
	"github.com/mootfed/moot/x/delivery"
	"github.com/mootfed/moot/x/post"
	"github.com/mootfed/moot/x/server"
)

var serverServiceProvider = wire.NewSet(server.NewService, server.NewRepository)
var actorServiceProvider = wire.NewSet(actor.NewService, actor.NewRepository, serverServiceProvider)
var postServiceProvider = wire.NewSet(post.NewService, post.NewRepository)
var activityServiceProvider = wire.NewSet(activity.NewService, activity.NewRepository, delivery.NewDeliverer, actorServiceProvider, postServiceProvider)

func SetupServerService(db *gorm.DB, config core.Config) core.ServerService {
	wire.Build(serverServiceProvider)
	return nil
}

func SetupActorService(db *gorm.DB, mc *memcache.Client, config core.Config) core.ActorService {
	wire.Build(actorServiceProvider)
	return nil
}

func SetupPostService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.PostService {
	wire.Build(postServiceProvider)
	return nil
}

func SetupActivityService(db *gorm.DB, rdb *redis.Client, mc *memcache.Client, config core.Config) core.ActivityService {
	wire.Build(activityServiceProvider)
	return nil
}

func SetupAuthService(db *gorm.DB, mc *memcache.Client, config core.Config) core.AuthService {
	wire.Build(auth.NewService, auth.NewRepository, actorServiceProvider)
	return nil
}
