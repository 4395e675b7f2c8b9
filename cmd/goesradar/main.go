/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// cmd/goesradar/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/mfreeman451/goesradar/pkg/api"
	"github.com/mfreeman451/goesradar/pkg/command"
	"github.com/mfreeman451/goesradar/pkg/config"
	"github.com/mfreeman451/goesradar/pkg/dashboard"
	"github.com/mfreeman451/goesradar/pkg/host"
	"github.com/mfreeman451/goesradar/pkg/lifecycle"
	"github.com/mfreeman451/goesradar/pkg/logger"
	"github.com/mfreeman451/goesradar/pkg/version"
)

const serviceName = "goesradar"

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	config.RegisterFlags(flags)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return err
	}

	configPath, err := flags.GetString(config.FlagConfig)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath, flags.Changed(config.FlagConfig), flags)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	defer func() { _ = zl.Sync() }()

	zl.Info("starting GOES dashboard",
		zap.String("version", version.Version),
		zap.String("satellite", cfg.Satellite),
		zap.String("data_dir", cfg.DataDir),
		zap.String("listen", cfg.ListenAddr()))

	runner := command.NewExecRunner(cfg.CommandTimeout)
	dash := dashboard.New(cfg, runner, host.PSUtilSource{}, zl)

	server := api.NewAPIServer(dash, zl.Named("api"),
		api.WithStaticDir(cfg.StaticDir),
		api.WithRateLimit(cfg.RateLimit, cfg.RateBurst))

	return lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ListenAddr:     cfg.ListenAddr(),
		ServiceName:    serviceName,
		Handler:        server.Handler(),
		Logger:         zl,
		MaxConnections: cfg.MaxConnections,
		GRPCHealthAddr: cfg.GRPCHealthAddr,
	})
}
