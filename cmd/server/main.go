/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/wso2/analytics-event-adapter/internal/system/client"
	"github.com/wso2/analytics-event-adapter/internal/system/config"
	"github.com/wso2/analytics-event-adapter/internal/system/constants"
	"github.com/wso2/analytics-event-adapter/internal/system/database/provider"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
	"github.com/wso2/analytics-event-adapter/internal/system/managers"
	"github.com/wso2/analytics-event-adapter/internal/system/middleware"
)

const (
	schemaFile      = "dbscripts/postgres.sql"
	shutdownTimeout = 15 * time.Second
)

func main() {
	adapterHome, initSchema := parseFlags()
	logger := log.GetLogger()

	envFiles, err := config.LoadEnvFiles(filepath.Join(adapterHome, constants.DefaultEnvFileDir))
	if err != nil {
		logger.Warn("Failed to load .env files", log.Error(err))
	} else if len(envFiles) == 0 {
		logger.Debug("No .env files found in " + constants.DefaultEnvFileDir)
	}

	// Load the configuration file
	adapterConfig, err := config.LoadConfig(adapterHome, constants.DefaultConfigFile)
	if err != nil {
		logger.Fatal("Failed to load the configuration", log.Error(err))
	}

	// Initialize runtime configurations.
	if err := config.InitializeRuntime(adapterHome, adapterConfig); err != nil {
		logger.Fatal("Failed to initialize the runtime", log.Error(err))
	}

	// Initialize logger
	if err := log.InitWithFormat(adapterConfig.Log.LogLevel, adapterConfig.Log.Format); err != nil {
		logger.Fatal("Failed to initialize the logger", log.Error(err))
	}
	logger = log.GetLogger()

	if initSchema {
		initDatabase(adapterHome)
	}

	analyticsClient, err := client.NewAnalyticsClient(adapterConfig.Backend)
	if err != nil {
		logger.Fatal("Failed to create the analytics backend client", log.Error(err))
	}

	mux := initMultiplexer(analyticsClient)
	handler := middleware.CORS(adapterConfig.Auth.CORSAllowedOrigins, middleware.RequestContext(mux))

	serverAddr := fmt.Sprintf("%s:%d", adapterConfig.Addr.Host, adapterConfig.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start the listener", log.String("address", serverAddr), log.Error(err))
	}
	server := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Analytics event adapter started", log.String("address", serverAddr))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve requests", log.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down the analytics event adapter")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down the server gracefully", log.Error(err))
	}
	if err := analyticsClient.Close(); err != nil {
		logger.Error("Failed to close the analytics backend client", log.Error(err))
	}
	if err := provider.Close(); err != nil {
		logger.Error("Failed to close the database connection pool", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(analyticsClient client.AnalyticsClientInterface) *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, analyticsClient)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services.", log.Error(err))
	}

	return mux
}

func initDatabase(adapterHome string) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		log.GetLogger().Fatal("Failed to connect to the database", log.Error(err))
	}
	if err := dbClient.InitDatabase(adapterHome, schemaFile); err != nil {
		log.GetLogger().Fatal("Failed to initialize the database schema", log.Error(err))
	}
}

func parseFlags() (string, bool) {

	// Parse project directory from command line arguments.
	homeFlag := flag.String("adapterHome", "", "Path to the analytics event adapter home directory")
	initSchemaFlag := flag.Bool("initSchema", false, "Create the kit settings schema on startup")
	flag.Parse()

	if *homeFlag != "" {
		log.GetLogger().Info(fmt.Sprintf("Using %s from command line argument", *homeFlag))
		return *homeFlag, *initSchemaFlag
	}

	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		log.GetLogger().Error("Failed to get current working directory", log.Error(err))
	}
	return dir, *initSchemaFlag
}
