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

package provider

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/wso2/analytics-event-adapter/internal/system/config"
	"github.com/wso2/analytics-event-adapter/internal/system/database/client"
)

const postgresDBType = "postgres"

var (
	dbMu       sync.Mutex
	dbInstance *sql.DB
)

// DBConfig represents the local database configuration.
type DBConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient() (client.DBClientInterface, error)
	GetDBType() string
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct{}

// NewDBProvider creates a new instance of DBProvider.
func NewDBProvider() DBProviderInterface {

	return &DBProvider{}
}

// GetDBClient returns a database client backed by the shared connection pool,
// opening the pool on first use.
func (d *DBProvider) GetDBClient() (client.DBClientInterface, error) {

	dbMu.Lock()
	defer dbMu.Unlock()

	if dbInstance == nil {
		dbConfig := getDBConfig(config.GetRuntime().Config)

		db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %v", err)
		}

		// Test the database connection.
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping database: %v", err)
		}
		dbInstance = db
	}

	return client.NewDBClient(dbInstance), nil
}

// GetDBType returns the key used to select queries from the scripts package.
func (d *DBProvider) GetDBType() string {
	return postgresDBType
}

// SetTestDB makes every client use the given connection pool.
func SetTestDB(db *sql.DB) {
	dbMu.Lock()
	defer dbMu.Unlock()
	dbInstance = db
}

// Close closes the shared connection pool.
func Close() error {
	dbMu.Lock()
	defer dbMu.Unlock()
	if dbInstance == nil {
		return nil
	}
	err := dbInstance.Close()
	dbInstance = nil
	return err
}

// getDBConfig returns the database configuration based on the provided data source.
func getDBConfig(cfg config.Config) DBConfig {

	var dbConfig DBConfig

	dbConfig.driverName = postgresDBType
	dbConfig.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DataSource.Hostname, cfg.DataSource.Port, cfg.DataSource.Username, cfg.DataSource.Password,
		cfg.DataSource.Name, cfg.DataSource.SSLMode)

	return dbConfig
}
