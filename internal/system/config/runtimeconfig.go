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

import "sync"

// MMSRuntime holds the runtime configuration for the media metadata server.
type MMSRuntime struct {
	MMSHome string `yaml:"mms_home"`
	Config  Config `yaml:"config"`
}

var (
	runtimeConfig *MMSRuntime
	once          sync.Once
)

// InitializeMMSRuntime initializes the MMSRuntime configuration.
func InitializeMMSRuntime(mmsHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &MMSRuntime{
			MMSHome: mmsHome,
			Config:  *config,
		}
	})

	return nil
}

// GetMMSRuntime returns the MMSRuntime configuration.
func GetMMSRuntime() *MMSRuntime {

	if runtimeConfig == nil {
		panic("MMSRuntime is not initialized")
	}
	return runtimeConfig
}
