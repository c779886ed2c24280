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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/stretchr/testify/assert"

	"github.com/fleetkeeper/devicereport/model"
)

func TestPing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestPing in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.Ping(ctx)
	assert.NoError(t, err)
}

func TestProvisionAndDeleteDevice(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestProvisionAndDeleteDevice in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	const deviceID = "abcd"

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.ProvisionDevice(ctx, deviceID)
	assert.NoError(t, err)

	device, err := ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	assert.Equal(t, deviceID, device.ID)
	assert.Nil(t, device.LastSeen)

	err = ds.DeleteDevice(ctx, deviceID)
	assert.NoError(t, err)

	device, err = ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	assert.Nil(t, device)
}

func TestSetDeviceLastSeen(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestSetDeviceLastSeen in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	const deviceID = "efgh"
	seen := time.Now().UTC().Truncate(time.Millisecond)

	// first contact creates the device
	ds := NewDataStoreWithClient(db.Client(), config.Config)
	err := ds.SetDeviceLastSeen(ctx, deviceID, seen)
	assert.NoError(t, err)

	device, err := ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device.LastSeen) {
		assert.WithinDuration(t, seen, *device.LastSeen, time.Second)
	}

	later := seen.Add(time.Hour)
	err = ds.SetDeviceLastSeen(ctx, deviceID, later)
	assert.NoError(t, err)

	device, err = ds.GetDevice(ctx, deviceID)
	assert.NoError(t, err)
	if assert.NotNil(t, device.LastSeen) {
		assert.WithinDuration(t, later, *device.LastSeen, time.Second)
	}
	assert.WithinDuration(t, seen, device.CreatedTs, time.Second)
}

func TestUpsertAndGetModuleRecord(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestUpsertAndGetModuleRecord in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	const (
		deviceID = "ijkl"
		moduleID = "hardware"
	)

	ds := NewDataStoreWithClient(db.Client(), config.Config)

	record, err := ds.GetModuleRecord(ctx, deviceID, moduleID)
	assert.NoError(t, err)
	assert.Nil(t, record)

	collectedAt := time.Now().UTC().Truncate(time.Millisecond)
	err = ds.UpsertModuleRecord(ctx, &model.ModuleRecord{
		ModuleID:    moduleID,
		DeviceID:    deviceID,
		CollectedAt: collectedAt,
		Fields: map[string]interface{}{
			"machine_model": "MacBookPro16,1",
		},
	})
	assert.NoError(t, err)

	record, err = ds.GetModuleRecord(ctx, deviceID, moduleID)
	assert.NoError(t, err)
	if assert.NotNil(t, record) {
		assert.Equal(t, moduleID, record.ModuleID)
		assert.Equal(t, deviceID, record.DeviceID)
		assert.Equal(t, "MacBookPro16,1", record.Fields["machine_model"])
	}

	// a new report replaces the previous record for the same module
	err = ds.UpsertModuleRecord(ctx, &model.ModuleRecord{
		ModuleID:    moduleID,
		DeviceID:    deviceID,
		CollectedAt: collectedAt.Add(time.Hour),
		Fields: map[string]interface{}{
			"machine_model": "Mac14,12",
		},
	})
	assert.NoError(t, err)

	record, err = ds.GetModuleRecord(ctx, deviceID, moduleID)
	assert.NoError(t, err)
	if assert.NotNil(t, record) {
		assert.Equal(t, "Mac14,12", record.Fields["machine_model"])
	}
}

func TestInsertAndGetRecentEvents(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping TestInsertAndGetRecentEvents in short mode.")
	}
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second*10)
	defer cancel()

	const deviceID = "mnop"
	now := time.Now().UTC().Truncate(time.Millisecond)

	ds := NewDataStoreWithClient(db.Client(), config.Config)
	for i, event := range []*model.EventRecord{
		{
			Type:      model.EventTypeWarning,
			Message:   "printers: missing collected_at",
			CreatedTs: now.Add(-time.Minute),
		},
		{
			Type:      model.EventTypeError,
			Message:   "hardware: processing failed",
			CreatedTs: now,
		},
		{
			Type:      model.EventTypeInfo,
			Message:   "too old to be returned",
			CreatedTs: now.Add(-48 * time.Hour),
		},
	} {
		event.ID = uuid.New().String()
		event.DeviceID = deviceID
		err := ds.InsertEvent(ctx, event)
		assert.NoError(t, err, "event %d", i)
	}

	events, err := ds.GetRecentEvents(ctx, deviceID, now.Add(-24*time.Hour))
	assert.NoError(t, err)
	if assert.Len(t, events, 2) {
		// newest first
		assert.Equal(t, model.EventTypeError, events[0].Type)
		assert.Equal(t, model.EventTypeWarning, events[1].Type)
	}

	events, err = ds.GetRecentEvents(ctx, "unknown-device", now.Add(-24*time.Hour))
	assert.NoError(t, err)
	assert.Len(t, events, 0)
}
