// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package mongo

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/mendersoftware/go-lib-micro/config"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"

	dconfig "github.com/fleetkeeper/devicereport/config"
)

// db is the database test runner shared by all tests in this package. It is
// only initialized when not running in short mode.
var db testDBRunner

type testDBRunner struct {
	client *mongo.Client
	dbName string
}

func (r *testDBRunner) Client() *mongo.Client {
	return r.client
}

// Wipe drops the test database, leaving the connection intact.
func (r *testDBRunner) Wipe() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.client.Database(r.dbName).Drop(ctx); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	flag.Parse()
	config.SetDefaults(config.Config, dconfig.Defaults)

	status := 0
	if !testing.Short() {
		mongoURL := os.Getenv("TEST_MONGO_URL")
		if mongoURL == "" {
			mongoURL = "mongodb://localhost:27017"
		}
		config.Config.Set(dconfig.SettingMongo, mongoURL)

		ctx, cancel := context.WithTimeout(
			context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, mopts.Client().ApplyURI(mongoURL))
		if err == nil {
			err = client.Ping(ctx, nil)
		}
		cancel()
		if err != nil {
			fmt.Printf("failed to connect to %q: %v\n", mongoURL, err)
			os.Exit(1)
		}
		db = testDBRunner{
			client: client,
			dbName: config.Config.GetString(dconfig.SettingDbName),
		}
		db.Wipe()
	}

	status = m.Run()
	if db.client != nil {
		disconnectClient(context.Background(), db.client)
	}
	os.Exit(status)
}
