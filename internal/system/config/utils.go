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

import (
	"os"
	"path"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// LoadEnvFiles loads every *.env file found in the given directory into the process
// environment. Variables that are already set are left untouched. It returns the
// files that were loaded.
func LoadEnvFiles(dir string) ([]string, error) {
	envFiles, err := filepath.Glob(filepath.Join(dir, "*.env"))
	if err != nil || len(envFiles) == 0 {
		return nil, err
	}
	if err := godotenv.Load(envFiles...); err != nil {
		return nil, err
	}
	return envFiles, nil
}

// LoadConfig reads the deployment file under home, expands environment variables and
// applies defaults for values left empty.
func LoadConfig(home, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(home, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {

	if cfg.Addr.Host == "" {
		cfg.Addr.Host = "0.0.0.0"
	}
	if cfg.Addr.Port == 0 {
		cfg.Addr.Port = 8900
	}
	if cfg.Log.LogLevel == "" {
		cfg.Log.LogLevel = "INFO"
	}
	if cfg.Backend.Type == "" {
		cfg.Backend.Type = "log"
	}
	if cfg.Backend.TimeoutSeconds <= 0 {
		cfg.Backend.TimeoutSeconds = 10
	}
	if cfg.Backend.Kafka.BatchSize <= 0 {
		cfg.Backend.Kafka.BatchSize = 1
	}
	if cfg.Backend.Kafka.BatchTimeoutMillis <= 0 {
		cfg.Backend.Kafka.BatchTimeoutMillis = 10
	}
	if cfg.DataSource.SSLMode == "" {
		cfg.DataSource.SSLMode = "disable"
	}
}

// OverrideRuntime replaces the runtime configuration. Used by tests.
func OverrideRuntime(conf Config) {
	runtimeConfig = &Runtime{
		Config: conf,
	}
}
