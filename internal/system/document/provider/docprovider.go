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
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/media-metadata-service/internal/system/config"
)

var (
	mongoClient *mongo.Client
	once        sync.Once
	initErr     error
)

// GetDocumentDatabase returns a handle to the configured document database.
// The underlying client is created once and shared across requests.
func GetDocumentDatabase() (*mongo.Database, error) {

	cfg := config.GetMMSRuntime().Config.DocumentStore

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		mongoClient, initErr = mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if initErr != nil {
			return
		}
		initErr = mongoClient.Ping(ctx, nil)
	})
	if initErr != nil {
		return nil, initErr
	}

	return mongoClient.Database(cfg.Database), nil
}

// OverrideDocumentClient replaces the shared client. Test use only.
func OverrideDocumentClient(client *mongo.Client) {
	mongoClient = client
	initErr = nil
	once.Do(func() {})
}
