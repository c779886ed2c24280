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

package app

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/fleetkeeper/devicereport/client/nats"
	"github.com/fleetkeeper/devicereport/model"
	"github.com/fleetkeeper/devicereport/processors"
	"github.com/fleetkeeper/devicereport/store"
	"github.com/fleetkeeper/devicereport/utils"
)

// App errors
var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrReportMalformed = model.ErrReportMalformed
)

// App interface describes app objects
//
//nolint:lll
//go:generate ../utils/mockgen.sh
type App interface {
	HealthCheck(ctx context.Context) error
	ProvisionDevice(ctx context.Context, device *model.Device) error
	GetDevice(ctx context.Context, deviceID string) (*model.Device, error)
	DeleteDevice(ctx context.Context, deviceID string) error
	Ingest(ctx context.Context, report *model.DeviceReport) ([]model.ModuleOutcome, error)
	SubmitReport(ctx context.Context, report *model.DeviceReport) ([]model.ModuleOutcome, error)
	GetDeviceStatus(ctx context.Context, deviceID string) (string, error)
	GetModuleRecord(ctx context.Context, deviceID, moduleID string) (*model.ModuleRecord, error)
}

// Config holds the tunables of the app
type Config struct {
	// EventsWindow bounds how far back events are gathered when
	// deriving a device status.
	EventsWindow time.Duration
}

// app is an app object
type app struct {
	store    store.DataStore
	nats     nats.Client
	registry *processors.Registry
	clock    utils.Clock
	Config
}

// New initializes a new devicereport App
func New(
	ds store.DataStore,
	nc nats.Client,
	registry *processors.Registry,
	config ...Config,
) App {
	conf := Config{}
	for _, cfgIn := range config {
		if cfgIn.EventsWindow > 0 {
			conf.EventsWindow = cfgIn.EventsWindow
		}
	}
	if conf.EventsWindow <= 0 {
		conf.EventsWindow = 24 * time.Hour
	}
	if registry == nil {
		registry = processors.NewDefaultRegistry(utils.RealClock{})
	}
	return &app{
		store:    ds,
		nats:     nc,
		registry: registry,
		clock:    utils.RealClock{},
		Config:   conf,
	}
}

// HealthCheck performs a health check and returns an error if it fails
func (a *app) HealthCheck(ctx context.Context) error {
	return a.store.Ping(ctx)
}

// ProvisionDevice provisions a new device
func (a *app) ProvisionDevice(ctx context.Context, device *model.Device) error {
	if device == nil || device.ID == "" {
		return errors.New("app: cannot provision device without an ID")
	}
	return a.store.ProvisionDevice(ctx, device.ID)
}

// GetDevice returns a device
func (a *app) GetDevice(ctx context.Context, deviceID string) (*model.Device, error) {
	device, err := a.store.GetDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	} else if device == nil {
		return nil, ErrDeviceNotFound
	}
	return device, nil
}

// DeleteDevice removes a device and all data stored for it
func (a *app) DeleteDevice(ctx context.Context, deviceID string) error {
	return a.store.DeleteDevice(ctx, deviceID)
}

// GetModuleRecord returns the latest normalized record for one device and
// module
func (a *app) GetModuleRecord(
	ctx context.Context,
	deviceID, moduleID string,
) (*model.ModuleRecord, error) {
	return a.store.GetModuleRecord(ctx, deviceID, moduleID)
}

// GetDeviceStatus derives the device's health classification from its
// last-seen timestamp and the events recorded within the configured window
func (a *app) GetDeviceStatus(ctx context.Context, deviceID string) (string, error) {
	device, err := a.store.GetDevice(ctx, deviceID)
	if err != nil {
		return "", err
	} else if device == nil {
		return "", ErrDeviceNotFound
	}

	now := a.clock.Now()
	events, err := a.store.GetRecentEvents(ctx, deviceID,
		now.Add(-a.EventsWindow))
	if err != nil {
		return "", err
	}

	return ClassifyDevice(now, device.LastSeen, events), nil
}
