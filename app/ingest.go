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
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/fleetkeeper/devicereport/model"
	"github.com/fleetkeeper/devicereport/processors"
)

// IngestNotification is the payload published to the device's report
// subject after a report has been ingested.
type IngestNotification struct {
	DeviceID   string            `msgpack:"device_id" json:"device_id"`
	ReceivedTs time.Time         `msgpack:"received_ts" json:"received_ts"`
	Modules    map[string]string `msgpack:"modules" json:"modules"`
}

// Ingest dispatches every module present in the report to its processor and
// collects one outcome per module. A structurally invalid report fails as a
// whole before any module is touched; module-level failures are captured in
// the outcome list and never abort sibling modules. Modules are processed
// concurrently: their payloads are disjoint and the outcome order carries
// no meaning.
func (a *app) Ingest(
	ctx context.Context,
	report *model.DeviceReport,
) ([]model.ModuleOutcome, error) {
	if report == nil {
		return nil, ErrReportMalformed
	}
	if err := report.Validate(); err != nil {
		return nil, err
	}
	deviceID := report.DeviceID()
	l := log.FromContext(ctx)

	outcomes := make([]model.ModuleOutcome, 0, len(report.Modules))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for moduleID := range report.Modules {
		if ctx.Err() != nil {
			// request cancelled: modules not yet started are
			// dropped, outcomes already produced stay valid
			break
		}
		proc, ok := a.registry.Resolve(moduleID)
		if !ok {
			l.Infof("skipping unrecognized module %q for device %s",
				moduleID, deviceID)
			// workers from earlier iterations may still be
			// appending
			mu.Lock()
			outcomes = append(outcomes, model.ModuleOutcome{
				ModuleID: moduleID,
				Status:   model.OutcomeSkipped,
			})
			mu.Unlock()
			continue
		}
		wg.Add(1)
		go func(proc processors.Processor) {
			defer wg.Done()
			outcome := a.processModule(ctx, proc, report, deviceID)
			mu.Lock()
			outcomes = append(outcomes, outcome)
			mu.Unlock()
		}(proc)
	}
	wg.Wait()

	return outcomes, ctx.Err()
}

func (a *app) processModule(
	ctx context.Context,
	proc processors.Processor,
	report *model.DeviceReport,
	deviceID string,
) model.ModuleOutcome {
	l := log.FromContext(ctx)
	moduleID := proc.ID()

	record, err := proc.Process(ctx, report, deviceID)
	if err != nil {
		l.Errorf("processing module %q for device %s: %v",
			moduleID, deviceID, err)
		return model.ModuleOutcome{
			ModuleID: moduleID,
			Status:   model.OutcomeProcessingError,
			Reason:   err.Error(),
			Err:      err,
		}
	}
	if err := proc.Validate(ctx, record); err != nil {
		l.Warnf("validating module %q record for device %s: %v",
			moduleID, deviceID, err)
		return model.ModuleOutcome{
			ModuleID: moduleID,
			Status:   model.OutcomeValidationFailed,
			Reason:   err.Error(),
		}
	}
	return model.ModuleOutcome{
		ModuleID: moduleID,
		Status:   model.OutcomeAccepted,
		Record:   record,
	}
}

// SubmitReport runs Ingest and hands the results to the collaborators:
// accepted records are persisted, failed modules are recorded as device
// events, the device's last-seen timestamp is bumped and an ingest
// notification is published for live watchers.
func (a *app) SubmitReport(
	ctx context.Context,
	report *model.DeviceReport,
) ([]model.ModuleOutcome, error) {
	outcomes, err := a.Ingest(ctx, report)
	if err != nil {
		return outcomes, err
	}

	deviceID := report.DeviceID()
	now := a.clock.Now().UTC()
	for i := range outcomes {
		outcome := &outcomes[i]
		switch outcome.Status {
		case model.OutcomeAccepted:
			err := a.store.UpsertModuleRecord(ctx, outcome.Record)
			if err != nil {
				return outcomes, errors.Wrapf(err,
					"failed to store record for module %q",
					outcome.ModuleID)
			}
		case model.OutcomeValidationFailed:
			err = a.recordModuleEvent(ctx, deviceID,
				model.EventTypeWarning, outcome, now)
		case model.OutcomeProcessingError:
			err = a.recordModuleEvent(ctx, deviceID,
				model.EventTypeError, outcome, now)
		}
		if err != nil {
			return outcomes, err
		}
	}

	if err := a.store.SetDeviceLastSeen(ctx, deviceID, now); err != nil {
		return outcomes, errors.Wrap(err,
			"failed to update device last-seen timestamp")
	}

	a.publishIngestNotification(ctx, deviceID, now, outcomes)

	return outcomes, nil
}

func (a *app) recordModuleEvent(
	ctx context.Context,
	deviceID, eventType string,
	outcome *model.ModuleOutcome,
	now time.Time,
) error {
	err := a.store.InsertEvent(ctx, &model.EventRecord{
		ID:        uuid.New().String(),
		DeviceID:  deviceID,
		Type:      eventType,
		Message:   "module " + outcome.ModuleID + ": " + outcome.Reason,
		CreatedTs: now,
	})
	return errors.Wrapf(err,
		"failed to record event for module %q", outcome.ModuleID)
}

// publishIngestNotification is best effort: a broker outage must not fail
// an otherwise persisted report.
func (a *app) publishIngestNotification(
	ctx context.Context,
	deviceID string,
	now time.Time,
	outcomes []model.ModuleOutcome,
) {
	if a.nats == nil {
		return
	}
	notification := IngestNotification{
		DeviceID:   deviceID,
		ReceivedTs: now,
		Modules:    make(map[string]string, len(outcomes)),
	}
	for _, outcome := range outcomes {
		notification.Modules[outcome.ModuleID] = outcome.Status
	}
	data, err := msgpack.Marshal(notification)
	if err != nil {
		log.FromContext(ctx).Warnf(
			"failed to encode ingest notification for device %s: %v",
			deviceID, err)
		return
	}
	if err := a.nats.Publish(model.GetDeviceSubject(deviceID), data); err != nil {
		log.FromContext(ctx).Warnf(
			"failed to publish ingest notification for device %s: %v",
			deviceID, err)
	}
}
