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

import "github.com/fleetkeeper/devicereport/utils"

// Known module identifiers. Clients may send modules outside this set;
// those are skipped until a processor ships for them.
const (
	ModuleApplications = "applications"
	ModuleDisplays     = "displays"
	ModuleHardware     = "hardware"
	ModuleInstalls     = "installs"
	ModuleInventory    = "inventory"
	ModuleManagement   = "management"
	ModuleNetwork      = "network"
	ModulePrinters     = "printers"
	ModuleProfiles     = "profiles"
	ModuleSystem       = "system"
)

// NewApplicationsProcessor handles the installed applications module.
func NewApplicationsProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModuleApplications, clock)
}

// NewDisplaysProcessor handles the attached displays module.
func NewDisplaysProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModuleDisplays, clock)
}

// NewHardwareProcessor handles the hardware inventory module.
func NewHardwareProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModuleHardware, clock)
}

// NewInstallsProcessor handles the managed installs module.
func NewInstallsProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModuleInstalls, clock)
}

// NewInventoryProcessor handles the software inventory module.
func NewInventoryProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModuleInventory, clock)
}

// NewManagementProcessor handles the management tooling module.
func NewManagementProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModuleManagement, clock)
}

// NewNetworkProcessor handles the network configuration module.
func NewNetworkProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModuleNetwork, clock)
}

// NewPrintersProcessor handles the configured printers module.
func NewPrintersProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModulePrinters, clock)
}

// NewProfilesProcessor handles the configuration profiles module.
func NewProfilesProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModuleProfiles, clock)
}

// NewSystemProcessor handles the operating system module.
func NewSystemProcessor(clock utils.Clock) Processor {
	return newPassthrough(ModuleSystem, clock)
}
