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

package processors

import (
	"context"

	"github.com/pkg/errors"

	"github.com/fleetkeeper/devicereport/model"
	"github.com/fleetkeeper/devicereport/utils"
)

// Processor normalizes one module's raw payload into a ModuleRecord and
// validates the result against the record contract.
type Processor interface {
	// ID returns the module identifier this processor is responsible
	// for.
	ID() string
	// Process extracts the module's sub-object from the report and
	// builds a record stamped with the module identifier, the device
	// identifier and a fresh collection timestamp. A missing sub-object
	// is not an error: it yields a record with an empty field bag.
	Process(ctx context.Context, report *model.DeviceReport,
		deviceID string) (*model.ModuleRecord, error)
	// Validate checks the record contract: identity fields present and
	// the module identifier equal to the processor's own.
	Validate(ctx context.Context, record *model.ModuleRecord) error
}

// Validation errors returned by Validate
var (
	ErrRecordNil              = errors.New("processors: record is nil")
	ErrRecordNoModuleID       = errors.New("processors: record has no module_id")
	ErrRecordNoDeviceID       = errors.New("processors: record has no device_id")
	ErrRecordModuleIDMismatch = errors.New("processors: module_id does not match processor")
)

// passthrough is the shared processor implementation: it copies every raw
// payload field into the record untouched and stamps the identity fields on
// top. The identity field names are excluded from the copy so a payload can
// never spoof which device or module a record belongs to.
type passthrough struct {
	moduleID string
	clock    utils.Clock
}

func newPassthrough(moduleID string, clock utils.Clock) *passthrough {
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &passthrough{moduleID: moduleID, clock: clock}
}

func (p *passthrough) ID() string {
	return p.moduleID
}

func (p *passthrough) Process(
	ctx context.Context,
	report *model.DeviceReport,
	deviceID string,
) (*model.ModuleRecord, error) {
	if report == nil {
		return nil, errors.Errorf(
			"processors: nil report for module %q", p.moduleID)
	}
	raw := report.Modules[p.moduleID]
	fields := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		switch key {
		case model.FieldModuleID, model.FieldDeviceID,
			model.FieldCollectedAt:
			continue
		}
		fields[key] = value
	}
	return &model.ModuleRecord{
		ModuleID:    p.moduleID,
		DeviceID:    deviceID,
		CollectedAt: p.clock.Now(),
		Fields:      fields,
	}, nil
}

func (p *passthrough) Validate(
	ctx context.Context,
	record *model.ModuleRecord,
) error {
	if record == nil {
		return ErrRecordNil
	}
	if record.ModuleID == "" {
		return ErrRecordNoModuleID
	}
	if record.DeviceID == "" {
		return ErrRecordNoDeviceID
	}
	if record.ModuleID != p.moduleID {
		return errors.Wrapf(ErrRecordModuleIDMismatch,
			"%q != %q", record.ModuleID, p.moduleID)
	}
	return nil
}
