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

package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/database/provider"
)

const readinessTimeout = 2 * time.Second

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	dbProvider provider.DBProviderInterface
}

// GetHealthCheckService returns a new instance.
func GetHealthCheckService(dbProvider provider.DBProviderInterface) HealthCheckServiceInterface {
	return &HealthCheckService{dbProvider: dbProvider}
}

// CheckReadiness pings the kit settings database.
func (h *HealthCheckService) CheckReadiness(ctx context.Context) error {

	dbClient, err := h.dbProvider.GetDBClient()
	if err != nil {
		return errors.Wrap(err, "failed to create database client")
	}

	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	if err := dbClient.Ping(ctx); err != nil {
		return errors.Wrap(err, "database connectivity check failed")
	}
	return nil
}
