// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// ladderd serves the word-ladder query API over dictionary artifacts
// published by ladderctl.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/AleutianAI/LadderGraph/pkg/logging"
	"github.com/AleutianAI/LadderGraph/services/ladder/dict"
	"github.com/AleutianAI/LadderGraph/services/ladder/middleware"
	"github.com/AleutianAI/LadderGraph/services/ladder/resolver"
	"github.com/AleutianAI/LadderGraph/services/ladder/routes"
)

// initTracer wires the OTLP trace exporter when a collector endpoint
// is configured; without one, tracing stays a no-op.
func initTracer() (func(context.Context), error) {
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		return func(context.Context) {}, nil
	}

	ctx := context.Background()
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("ladderd")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

// initMetrics bridges OTel counters to the Prometheus registry served
// at /metrics.
func initMetrics() error {
	exporter, err := otelprom.New()
	if err != nil {
		return err
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	return nil
}

func main() {
	port := os.Getenv("LADDERD_PORT")
	if port == "" {
		port = "12300"
	}

	logger, err := logging.New(logging.Config{
		Service: "ladderd",
		JSON:    true,
		LogDir:  os.Getenv("LADDERD_LOG_DIR"),
	})
	if err != nil {
		log.Fatalf("failed to setup logging: %v", err)
	}
	defer logger.Close()
	slog.SetDefault(logger.Logger)

	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	if err := initMetrics(); err != nil {
		log.Fatalf("failed to setup metrics: %v", err)
	}

	dbPath := os.Getenv("LADDER_DB_PATH")
	if dbPath == "" {
		dbPath = "./data/ladder"
	}

	store, err := dict.Open(dict.Config{
		Path:   dbPath,
		Logger: logger.Logger,
	})
	if err != nil {
		log.Fatalf("failed to open dictionary store at %s: %v", dbPath, err)
	}
	defer store.Close()

	res := resolver.New(dict.NewCache(store.Load))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware("ladderd"))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.SetupRoutes(router, res, store)

	slog.Info("ladderd listening", "port", port, "db_path", dbPath)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
