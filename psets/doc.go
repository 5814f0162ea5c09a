// Package psets provides the descriptive tables attached to exported
// entities: property-set definitions, base-quantity definitions, COBie
// attribute tables and schedule-derived custom property sets.
//
// Everything here is declarative. A Definition names its fields and the
// export kinds it applies to; computing field values is the job of the
// host-model collaborator, not this package.
//
// Built-in tables register themselves in init() on the package-level
// Default registry:
//
//	defs := psets.Default.ForKind(model.ExportWall, psets.ClassPropertySet)
//
// Custom definitions load from YAML files via Registry.LoadFile, and
// schedules convert to property sets via FromSchedule.
package psets
