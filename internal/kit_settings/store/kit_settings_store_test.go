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

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wso2/analytics-event-adapter/internal/system/database/client"
	"github.com/wso2/analytics-event-adapter/internal/system/database/provider"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// setupTestDB starts a Postgres container, applies the schema and points the
// shared provider at it.
func setupTestDB(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Postgres store test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	_ = log.Init("DEBUG")

	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	require.NoError(t, client.NewDBClient(db).InitDatabase("../../..", "dbscripts/postgres.sql"))
	provider.SetTestDB(db)
	t.Cleanup(func() {
		_ = provider.Close()
	})
}

func TestKitSettingsStore_Lifecycle(t *testing.T) {
	setupTestDB(t)
	s := NewKitSettingsStore(provider.NewDBProvider())

	settings, err := s.GetKitSettings("acme")
	require.NoError(t, err)
	assert.Empty(t, settings)

	require.NoError(t, s.UpsertKitSettings("acme", map[string]string{
		"defaultAdStorageConsentSDK": "Granted",
		"consentMappingSDK":          `[{"map":"Marketing","value":"ad_storage"}]`,
	}))
	require.NoError(t, s.UpsertKitSettings("globex", map[string]string{"userIdField": "email"}))
	require.NoError(t, s.UpsertKitSettings("acme", map[string]string{
		"defaultAdStorageConsentSDK": "Denied",
		"userIdField":                "mpid",
	}))

	settings, err = s.GetKitSettings("acme")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"defaultAdStorageConsentSDK": "Denied",
		"consentMappingSDK":          `[{"map":"Marketing","value":"ad_storage"}]`,
		"userIdField":                "mpid",
	}, settings)

	require.NoError(t, s.DeleteKitSettings("acme"))
	settings, err = s.GetKitSettings("acme")
	require.NoError(t, err)
	assert.Empty(t, settings)

	settings, err = s.GetKitSettings("globex")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"userIdField": "email"}, settings)
}

func TestColumnString(t *testing.T) {
	value, ok := columnString("a")
	assert.True(t, ok)
	assert.Equal(t, "a", value)

	value, ok = columnString([]byte("b"))
	assert.True(t, ok)
	assert.Equal(t, "b", value)

	_, ok = columnString(nil)
	assert.False(t, ok)
}
