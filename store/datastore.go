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

package store

import (
	"context"
	"time"

	"github.com/fleetkeeper/devicereport/model"
)

// DataStore interface for DataStore services
//
//nolint:lll - skip line length check for interface declaration.
//go:generate ../utils/mockgen.sh
type DataStore interface {
	Ping(ctx context.Context) error
	ProvisionDevice(ctx context.Context, deviceID string) error
	GetDevice(ctx context.Context, deviceID string) (*model.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) error
	SetDeviceLastSeen(ctx context.Context, deviceID string, seen time.Time) error
	UpsertModuleRecord(ctx context.Context, record *model.ModuleRecord) error
	GetModuleRecord(ctx context.Context, deviceID, moduleID string) (*model.ModuleRecord, error)
	InsertEvent(ctx context.Context, event *model.EventRecord) error
	GetRecentEvents(ctx context.Context, deviceID string, since time.Time) ([]model.EventRecord, error)
	Close() error
}
