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
	"time"

	"github.com/fleetkeeper/devicereport/model"
)

// Recency thresholds for the time-derived statuses.
const (
	activeThreshold = 24 * time.Hour
	staleThreshold  = 7 * 24 * time.Hour
)

// ClassifyDevice derives a device's health classification from its
// last-seen timestamp and the supplied recent events window. Event severity
// strictly overrides recency: any "error" event wins, then any "warning"
// event, then the last-seen age decides between active, stale and missing.
// The function is pure; how far back the events window reaches is the
// caller's concern.
func ClassifyDevice(
	now time.Time,
	lastSeen *time.Time,
	events []model.EventRecord,
) string {
	var hasWarning bool
	for _, event := range events {
		switch event.Type {
		case model.EventTypeError:
			return model.DeviceStatusError
		case model.EventTypeWarning:
			hasWarning = true
		}
	}
	if hasWarning {
		return model.DeviceStatusWarning
	}

	if lastSeen == nil || lastSeen.IsZero() {
		return model.DeviceStatusMissing
	}

	// zone-less timestamps are interpreted as UTC
	age := now.UTC().Sub(lastSeen.UTC())
	switch {
	case age <= activeThreshold:
		return model.DeviceStatusActive
	case age <= staleThreshold:
		return model.DeviceStatusStale
	default:
		return model.DeviceStatusMissing
	}
}
