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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetkeeper/devicereport/model"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

var testClock = fixedClock(
	time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC),
)

func TestProcess(t *testing.T) {
	const deviceID = "C02XL0GWJGH5"

	testCases := []struct {
		Name   string
		Report *model.DeviceReport

		Fields map[string]interface{}
		Error  bool
	}{
		{
			Name: "ok",
			Report: &model.DeviceReport{
				Device: model.ReportDevice{
					SerialNumber: deviceID,
				},
				Modules: map[string]map[string]interface{}{
					ModuleHardware: {
						"model":     "MacBookPro16,1",
						"memory_gb": 32,
					},
				},
			},
			Fields: map[string]interface{}{
				"model":     "MacBookPro16,1",
				"memory_gb": 32,
			},
		},
		{
			Name: "ok, module absent yields empty record",
			Report: &model.DeviceReport{
				Device: model.ReportDevice{
					SerialNumber: deviceID,
				},
				Modules: map[string]map[string]interface{}{
					ModuleNetwork: {"hostname": "mb-0231"},
				},
			},
			Fields: map[string]interface{}{},
		},
		{
			Name: "ok, identity fields cannot be spoofed",
			Report: &model.DeviceReport{
				Device: model.ReportDevice{
					SerialNumber: deviceID,
				},
				Modules: map[string]map[string]interface{}{
					ModuleHardware: {
						"module_id":    "network",
						"device_id":    "someone-else",
						"collected_at": "1970-01-01",
						"model":        "MacBookPro16,1",
					},
				},
			},
			Fields: map[string]interface{}{
				"model": "MacBookPro16,1",
			},
		},
		{
			Name:  "ko, nil report",
			Error: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			proc := NewHardwareProcessor(testClock)
			ctx := context.Background()

			record, err := proc.Process(ctx, tc.Report, deviceID)
			if tc.Error {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, ModuleHardware, record.ModuleID)
			assert.Equal(t, deviceID, record.DeviceID)
			assert.Equal(t, testClock.Now(), record.CollectedAt)
			assert.Equal(t, tc.Fields, record.Fields)
		})
	}
}

func TestProcessIdempotent(t *testing.T) {
	report := &model.DeviceReport{
		Device: model.ReportDevice{SerialNumber: "1234"},
		Modules: map[string]map[string]interface{}{
			ModuleSystem: {
				"os_version": "14.1",
				"uptime":     412,
			},
		},
	}

	proc := NewSystemProcessor(testClock)
	ctx := context.Background()

	first, err := proc.Process(ctx, report, "1234")
	require.NoError(t, err)
	second, err := proc.Process(ctx, report, "1234")
	require.NoError(t, err)

	// with a fixed clock the transform is fully deterministic
	assert.Equal(t, first, second)
}

func TestValidate(t *testing.T) {
	ts := time.Now()
	testCases := []struct {
		Name   string
		Record *model.ModuleRecord
		Err    error
	}{
		{
			Name: "ok",
			Record: &model.ModuleRecord{
				ModuleID:    ModuleProfiles,
				DeviceID:    "1234",
				CollectedAt: ts,
			},
		},
		{
			Name: "ko, nil record",
			Err:  ErrRecordNil,
		},
		{
			Name: "ko, missing module_id",
			Record: &model.ModuleRecord{
				DeviceID:    "1234",
				CollectedAt: ts,
			},
			Err: ErrRecordNoModuleID,
		},
		{
			Name: "ko, missing device_id",
			Record: &model.ModuleRecord{
				ModuleID:    ModuleProfiles,
				CollectedAt: ts,
			},
			Err: ErrRecordNoDeviceID,
		},
		{
			Name: "ko, foreign module_id",
			Record: &model.ModuleRecord{
				ModuleID:    ModuleNetwork,
				DeviceID:    "1234",
				CollectedAt: ts,
			},
			Err: ErrRecordModuleIDMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			proc := NewProfilesProcessor(testClock)
			err := proc.Validate(context.Background(), tc.Record)
			if tc.Err != nil {
				assert.ErrorIs(t, err, tc.Err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
