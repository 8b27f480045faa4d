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

package config

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

type AuthConfig struct {
	Enabled            bool                `yaml:"enabled"`
	CORSAllowedOrigins []string            `yaml:"cors_allowed_origins"`
	JWTSecret          string              `yaml:"jwt_secret"`
	Audience           string              `yaml:"audience"`
	RequiredScopes     map[string][]string `yaml:"required_scopes"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// KafkaConfig configures the Kafka writer. Every backend call is a
// synchronous write, so the writer flushes each message without waiting
// for a batch to fill.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	Topic              string   `yaml:"topic"`
	BatchSize          int      `yaml:"batch_size"`
	BatchTimeoutMillis int      `yaml:"batch_timeout_ms"`
}

// BackendConfig selects and configures the analytics backend client.
type BackendConfig struct {
	Type           string      `yaml:"type"`
	Endpoint       string      `yaml:"endpoint"`
	MeasurementID  string      `yaml:"measurement_id"`
	APISecret      string      `yaml:"api_secret"`
	TimeoutSeconds int         `yaml:"timeout_seconds"`
	Kafka          KafkaConfig `yaml:"kafka"`
}

type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	DataSource DataSourceConfig `yaml:"datasource"`
	Backend    BackendConfig    `yaml:"backend"`
}
