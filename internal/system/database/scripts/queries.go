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

package scripts

var GetKitSettingsByOrg = map[string]string{
	"postgres": `SELECT setting_key, setting_value FROM kit_settings WHERE org_handle = $1 ORDER BY setting_key`,
}

var UpsertKitSetting = map[string]string{
	"postgres": `INSERT INTO kit_settings (org_handle, setting_key, setting_value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (org_handle, setting_key)
		DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = NOW()`,
}

var DeleteKitSettingsByOrg = map[string]string{
	"postgres": `DELETE FROM kit_settings WHERE org_handle = $1`,
}
