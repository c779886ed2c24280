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
	"sort"

	"github.com/fleetkeeper/devicereport/utils"
)

// Registry maps module identifiers to their processors. It is built once
// at process start and never mutated afterwards, so it is safe for
// unsynchronized concurrent reads.
type Registry struct {
	processors map[string]Processor
}

// NewRegistry builds a registry from the given processors. Registering two
// processors for the same module identifier is a programming error.
func NewRegistry(procs ...Processor) *Registry {
	m := make(map[string]Processor, len(procs))
	for _, p := range procs {
		if _, ok := m[p.ID()]; ok {
			panic("processors: duplicate processor for module " +
				p.ID())
		}
		m[p.ID()] = p
	}
	return &Registry{processors: m}
}

// NewDefaultRegistry builds a registry holding every known module
// processor.
func NewDefaultRegistry(clock utils.Clock) *Registry {
	return NewRegistry(
		NewApplicationsProcessor(clock),
		NewDisplaysProcessor(clock),
		NewHardwareProcessor(clock),
		NewInstallsProcessor(clock),
		NewInventoryProcessor(clock),
		NewManagementProcessor(clock),
		NewNetworkProcessor(clock),
		NewPrintersProcessor(clock),
		NewProfilesProcessor(clock),
		NewSystemProcessor(clock),
	)
}

// Resolve returns the processor for the module identifier. Unknown
// identifiers are not an error: callers decide whether to skip or reject.
func (r *Registry) Resolve(moduleID string) (Processor, bool) {
	p, ok := r.processors[moduleID]
	return p, ok
}

// ModuleIDs returns the sorted identifiers of all registered processors.
func (r *Registry) ModuleIDs() []string {
	ids := make([]string, 0, len(r.processors))
	for id := range r.processors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
