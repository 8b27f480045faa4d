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
	"fmt"
	"sort"

	"github.com/wso2/analytics-event-adapter/internal/system/database/provider"
	"github.com/wso2/analytics-event-adapter/internal/system/database/scripts"
	errors2 "github.com/wso2/analytics-event-adapter/internal/system/errors"
	"github.com/wso2/analytics-event-adapter/internal/system/log"
)

// KitSettingsStoreInterface persists the kit settings bag per organization.
type KitSettingsStoreInterface interface {
	GetKitSettings(orgHandle string) (map[string]string, error)
	UpsertKitSettings(orgHandle string, settings map[string]string) error
	DeleteKitSettings(orgHandle string) error
}

// KitSettingsStore is the Postgres implementation.
type KitSettingsStore struct {
	dbProvider provider.DBProviderInterface
}

// NewKitSettingsStore returns a store reading through the given provider.
func NewKitSettingsStore(dbProvider provider.DBProviderInterface) KitSettingsStoreInterface {
	return &KitSettingsStore{dbProvider: dbProvider}
}

func (s *KitSettingsStore) GetKitSettings(orgHandle string) (map[string]string, error) {

	logger := log.GetLogger()
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching kit settings for the organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_KIT_SETTINGS.Code,
			Message:     errors2.GET_KIT_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}

	query := scripts.GetKitSettingsByOrg[s.dbProvider.GetDBType()]
	results, err := dbClient.ExecuteQuery(query, orgHandle)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching kit settings for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_KIT_SETTINGS.Code,
			Message:     errors2.GET_KIT_SETTINGS.Message,
			Description: errorMsg,
		}, err)
	}

	settings := make(map[string]string, len(results))
	for _, row := range results {
		key, ok := columnString(row["setting_key"])
		if !ok {
			continue
		}
		value, ok := columnString(row["setting_value"])
		if !ok {
			continue
		}
		settings[key] = value
	}
	if len(settings) == 0 {
		logger.Debug(fmt.Sprintf("No kit settings found for organization: %s", orgHandle))
	}
	return settings, nil
}

// UpsertKitSettings writes every given key in one transaction.
func (s *KitSettingsStore) UpsertKitSettings(orgHandle string, settings map[string]string) error {

	logger := log.GetLogger()
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get DB client for updating kit settings for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return updateError(errorMsg, err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for updating kit settings for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return updateError(errorMsg, err)
	}

	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	query := scripts.UpsertKitSetting[s.dbProvider.GetDBType()]
	for _, key := range keys {
		if _, err := tx.Exec(query, orgHandle, key, settings[key]); err != nil {
			_ = tx.Rollback()
			errorMsg := fmt.Sprintf("Failed to update kit setting %s for organization: %s", key, orgHandle)
			logger.Debug(errorMsg, log.Error(err))
			return updateError(errorMsg, err)
		}
	}

	if err := tx.Commit(); err != nil {
		errorMsg := fmt.Sprintf("Failed to commit kit settings for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return updateError(errorMsg, err)
	}
	return nil
}

func (s *KitSettingsStore) DeleteKitSettings(orgHandle string) error {

	logger := log.GetLogger()
	dbClient, err := s.dbProvider.GetDBClient()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get DB client for deleting kit settings for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return deleteError(errorMsg, err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for deleting kit settings for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return deleteError(errorMsg, err)
	}
	if _, err := tx.Exec(scripts.DeleteKitSettingsByOrg[s.dbProvider.GetDBType()], orgHandle); err != nil {
		_ = tx.Rollback()
		errorMsg := fmt.Sprintf("Failed to delete kit settings for organization: %s", orgHandle)
		logger.Debug(errorMsg, log.Error(err))
		return deleteError(errorMsg, err)
	}
	return tx.Commit()
}

// columnString converts a scanned text column. lib/pq returns text as string
// or []byte depending on the column type.
func columnString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

func updateError(description string, cause error) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.UPDATE_KIT_SETTINGS.Code,
		Message:     errors2.UPDATE_KIT_SETTINGS.Message,
		Description: description,
	}, cause)
}

func deleteError(description string, cause error) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.DELETE_KIT_SETTINGS.Code,
		Message:     errors2.DELETE_KIT_SETTINGS.Message,
		Description: description,
	}, cause)
}
