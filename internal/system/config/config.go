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
}

type AuthConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type AuthServerConfig struct {
	IntrospectionEndPoint string `yaml:"introspectionEndpoint"`
	TokenEndpoint         string `yaml:"tokenEndpoint"`
	ClientID              string `yaml:"client_id"`
	ClientSecret          string `yaml:"client_secret"`
}

type DataSourceConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

type DocumentStoreConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// ActivityRuleConfig is one entry of the ordered status rule list. List order is
// priority order: the first rule matching an activity log entry wins.
type ActivityRuleConfig struct {
	ActivityTypePattern string `yaml:"activity_type_pattern"`
	MediaTypePattern    string `yaml:"media_type_pattern"`
	Status              string `yaml:"status"`
}

type MediaConfig struct {
	// ParamLimit bounds the number of ids bound into a single catalog IN-clause.
	ParamLimit int `yaml:"param_limit"`
	// ReplacementProviders is the comma-separated allow-list of provider tags
	// whose messages replace existing records instead of creating new ones.
	ReplacementProviders string               `yaml:"replacement_providers"`
	ActivityRules        []ActivityRuleConfig `yaml:"activity_rules"`
}

type Config struct {
	Addr          AddrConfig          `yaml:"addr"`
	Log           LogConfig           `yaml:"log"`
	Auth          AuthConfig          `yaml:"auth"`
	AuthServer    AuthServerConfig    `yaml:"auth_server"`
	DataSource    DataSourceConfig    `yaml:"datasource"`
	DocumentStore DocumentStoreConfig `yaml:"document_store"`
	Media         MediaConfig         `yaml:"media"`
}
