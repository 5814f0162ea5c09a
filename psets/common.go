package psets

import "github.com/stratobim/ifcexport/model"

// Built-in common property sets, one per splittable or load-bearing export
// kind. Field lists follow the exchange format's common-pset conventions.

var PSetWallCommon = Definition{
	Name:        "Pset_WallCommon",
	Class:       ClassPropertySet,
	Description: "Common properties of walls",
	EntityTypes: []model.ExportKind{model.ExportWall},
	Fields: []Field{
		{Name: "Reference", Type: TypeLabel},
		{Name: "IsExternal", Type: TypeBoolean},
		{Name: "LoadBearing", Type: TypeBoolean},
		{Name: "FireRating", Type: TypeLabel},
		{Name: "AcousticRating", Type: TypeLabel},
		{Name: "ThermalTransmittance", Type: TypeReal},
		{Name: "ExtendToStructure", Type: TypeBoolean},
	},
}

var PSetColumnCommon = Definition{
	Name:        "Pset_ColumnCommon",
	Class:       ClassPropertySet,
	Description: "Common properties of columns",
	EntityTypes: []model.ExportKind{model.ExportColumn},
	Fields: []Field{
		{Name: "Reference", Type: TypeLabel},
		{Name: "IsExternal", Type: TypeBoolean},
		{Name: "LoadBearing", Type: TypeBoolean},
		{Name: "FireRating", Type: TypeLabel},
		{Name: "Slope", Type: TypeReal},
	},
}

var PSetBeamCommon = Definition{
	Name:        "Pset_BeamCommon",
	Class:       ClassPropertySet,
	Description: "Common properties of beams",
	EntityTypes: []model.ExportKind{model.ExportBeam},
	Fields: []Field{
		{Name: "Reference", Type: TypeLabel},
		{Name: "IsExternal", Type: TypeBoolean},
		{Name: "LoadBearing", Type: TypeBoolean},
		{Name: "FireRating", Type: TypeLabel},
		{Name: "Span", Type: TypeLength},
		{Name: "Slope", Type: TypeReal},
	},
}

var PSetSlabCommon = Definition{
	Name:        "Pset_SlabCommon",
	Class:       ClassPropertySet,
	Description: "Common properties of slabs",
	EntityTypes: []model.ExportKind{model.ExportSlab},
	Fields: []Field{
		{Name: "Reference", Type: TypeLabel},
		{Name: "IsExternal", Type: TypeBoolean},
		{Name: "LoadBearing", Type: TypeBoolean},
		{Name: "FireRating", Type: TypeLabel},
		{Name: "PitchAngle", Type: TypeReal},
	},
}

var PSetDuctSegmentCommon = Definition{
	Name:        "Pset_DuctSegmentCommon",
	Class:       ClassPropertySet,
	Description: "Common properties of duct segments",
	EntityTypes: []model.ExportKind{model.ExportDuctSegment},
	Fields: []Field{
		{Name: "Reference", Type: TypeLabel},
		{Name: "NominalDiameter", Type: TypeLength},
		{Name: "CrossSectionShape", Type: TypeLabel},
		{Name: "Roughness", Type: TypeReal},
		{Name: "WorkingPressure", Type: TypeReal},
	},
}

var PSetPipeSegmentCommon = Definition{
	Name:        "Pset_PipeSegmentCommon",
	Class:       ClassPropertySet,
	Description: "Common properties of pipe segments",
	EntityTypes: []model.ExportKind{model.ExportPipeSegment},
	Fields: []Field{
		{Name: "Reference", Type: TypeLabel},
		{Name: "NominalDiameter", Type: TypeLength},
		{Name: "InnerDiameter", Type: TypeLength},
		{Name: "OuterDiameter", Type: TypeLength},
		{Name: "WorkingPressure", Type: TypeReal},
	},
}

// Base quantity tables.

var QtoWallBaseQuantities = Definition{
	Name:        "Qto_WallBaseQuantities",
	Class:       ClassQuantitySet,
	Description: "Base quantities of walls",
	EntityTypes: []model.ExportKind{model.ExportWall},
	Fields: []Field{
		{Name: "Length", Type: TypeLength},
		{Name: "Width", Type: TypeLength},
		{Name: "Height", Type: TypeLength},
		{Name: "GrossSideArea", Type: TypeArea},
		{Name: "NetSideArea", Type: TypeArea},
		{Name: "GrossVolume", Type: TypeVolume},
		{Name: "NetVolume", Type: TypeVolume},
	},
}

var QtoColumnBaseQuantities = Definition{
	Name:        "Qto_ColumnBaseQuantities",
	Class:       ClassQuantitySet,
	Description: "Base quantities of columns",
	EntityTypes: []model.ExportKind{model.ExportColumn},
	Fields: []Field{
		{Name: "Length", Type: TypeLength},
		{Name: "CrossSectionArea", Type: TypeArea},
		{Name: "OuterSurfaceArea", Type: TypeArea},
		{Name: "GrossVolume", Type: TypeVolume},
		{Name: "NetVolume", Type: TypeVolume},
	},
}

var QtoDuctSegmentBaseQuantities = Definition{
	Name:        "Qto_DuctSegmentBaseQuantities",
	Class:       ClassQuantitySet,
	Description: "Base quantities of duct segments",
	EntityTypes: []model.ExportKind{model.ExportDuctSegment},
	Fields: []Field{
		{Name: "Length", Type: TypeLength},
		{Name: "CrossSectionArea", Type: TypeArea},
		{Name: "OuterSurfaceArea", Type: TypeArea},
		{Name: "GrossWeight", Type: TypeReal},
	},
}

func init() {
	Default.MustRegister(
		PSetWallCommon,
		PSetColumnCommon,
		PSetBeamCommon,
		PSetSlabCommon,
		PSetDuctSegmentCommon,
		PSetPipeSegmentCommon,
		QtoWallBaseQuantities,
		QtoColumnBaseQuantities,
		QtoDuctSegmentBaseQuantities,
	)
}
