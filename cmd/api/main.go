package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mootfed/moot/core"
	"github.com/mootfed/moot/x/activity"
	"github.com/mootfed/moot/x/actor"
	"github.com/mootfed/moot/x/auth"
	"github.com/mootfed/moot/x/collection"
	"github.com/mootfed/moot/x/post"
	"github.com/mootfed/moot/x/server"
	"github.com/mootfed/moot/x/socket"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

const mootBanner = `
 __  __  ___   ___ _____
|  \/  |/ _ \ / _ \_   _|
| |\/| | | | | | | || |
| |  | | |_| | |_| || |
|_|  |_|\___/ \___/ |_|
`

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var version = "unknown"

func main() {

	fmt.Fprint(os.Stderr, mootBanner)

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("moot %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	config := Config{}
	configPath := os.Getenv("MOOT_CONFIG")
	if configPath == "" {
		configPath = "/etc/moot/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
	}

	conf := core.SetupConfig(config.Moot)

	slog.Info(fmt.Sprintf("Config loaded! I am: %s", conf.BaseURL()))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, conf.FQDN+"/mootapi", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "moot",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return "REDACTED"
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	// collection ids are advertised with a trailing slash
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             300 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	slog.Info("start migrate")
	db.AutoMigrate(
		&core.Server{},
		&core.Actor{},
		&core.Account{},
		&core.Post{},
		&core.Activity{},
		&core.ActivityDestination{},
		&core.Follow{},
		&core.Like{},
	)

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "",
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	serverService := SetupServerService(db, conf)
	actorService := SetupActorService(db, mc, conf)
	postService := SetupPostService(db, rdb, mc, conf)
	activityService := SetupActivityService(db, rdb, mc, conf)
	authService := SetupAuthService(db, mc, conf)
	collectionService := collection.NewService(conf)

	socketManager := socket.NewManager()
	socketHandler := socket.NewHandler(rdb, socketManager)

	actorHandler := actor.NewHandler(actorService, postService, collectionService, conf)
	postHandler := post.NewHandler(postService, collectionService, conf)
	activityHandler := activity.NewHandler(activityService, actorService, collectionService, conf)
	authHandler := auth.NewHandler(authService)
	serverHandler := server.NewHandler(serverService, actorService, postService, conf, config.Profile)

	// the instance itself is a federation peer
	_, err = serverService.FindOrCreate(context.Background(), conf.Scheme, conf.FQDN, conf.Port)
	if err != nil {
		slog.Error("failed to register local server", slog.String("error", err.Error()))
	}

	e.GET("/.well-known/webfinger", actorHandler.WebFinger)
	e.GET("/.well-known/nodeinfo", serverHandler.NodeInfoWellKnown)
	e.GET("/nodeinfo/2.0", serverHandler.NodeInfo)

	api := e.Group("", authService.Identify)

	// auth
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// actors
	api.POST("/group", actorHandler.CreateGroup, auth.RequireLocalActor)
	api.GET("/user/:name", actorHandler.GetActor)
	api.GET("/group/:name", actorHandler.GetActor)
	api.GET("/user/:name/followers", actorHandler.Followers)
	api.GET("/group/:name/followers", actorHandler.Followers)
	api.GET("/user/:name/following", actorHandler.Following)
	api.GET("/group/:name/following", actorHandler.Following)
	api.GET("/user/:name/posts", actorHandler.Posts)
	api.GET("/user/:name/likes", actorHandler.Likes)

	// activities
	api.GET("/activity/:id", activityHandler.Get)
	api.GET("/user/:name/inbox", activityHandler.GetInbox)
	api.POST("/user/:name/inbox", activityHandler.PostInbox)
	api.GET("/user/:name/outbox", activityHandler.GetOutbox)
	api.POST("/user/:name/outbox", activityHandler.PostOutbox, auth.RequireLocalActor)
	api.GET("/group/:name/inbox", activityHandler.GetInbox)
	api.POST("/group/:name/inbox", activityHandler.PostInbox)
	api.GET("/group/:name/outbox", activityHandler.GetOutbox)
	api.POST("/group/:name/outbox", activityHandler.PostOutbox)

	// posts
	api.GET("/post/:id", postHandler.Get)
	api.GET("/post/:id/replies", postHandler.Replies)

	// federation peers
	api.GET("/server/:host", serverHandler.Get)
	api.GET("/servers", serverHandler.List)

	// socket
	api.GET("/socket", socketHandler.Connect)

	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var timelineSubscriptionMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moot_timeline_subscriptions",
			Help: "timeline subscriptions",
		},
		[]string{"timeline"},
	)
	prometheus.MustRegister(timelineSubscriptionMetrics)

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moot_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	var socketConnectionMetrics = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "moot_socket_connections",
			Help: "socket connections",
		},
	)
	prometheus.MustRegister(socketConnectionMetrics)

	go func() {
		for {
			time.Sleep(15 * time.Second)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			for timeline, count := range socketManager.Subscriptions() {
				timelineSubscriptionMetrics.WithLabelValues(timeline).Set(float64(count))
			}
			socketConnectionMetrics.Set(float64(socketManager.ConnectionCount()))

			count, err := actorService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count actors: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("actor").Set(float64(count))

			count, err = postService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count posts: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("post").Set(float64(count))

			count, err = activityService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count activities: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("activity").Set(float64(count))

			count, err = serverService.Count(ctx)
			if err != nil {
				slog.Error(fmt.Sprintf("failed to count servers: %v", err))
				cancel()
				continue
			}
			resourceCountMetrics.WithLabelValues("server").Set(float64(count))

			cancel()
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(":8000"))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
