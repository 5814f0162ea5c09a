package psets

import "github.com/stratobim/ifcexport/model"

// COBie attribute tables: the component and type sheets of the COBie
// deliverable, expressed as property-set definitions so the COBie export
// profile can attach them like any other set.

var allExportKinds = []model.ExportKind{
	model.ExportWall,
	model.ExportColumn,
	model.ExportBeam,
	model.ExportSlab,
	model.ExportRoof,
	model.ExportStair,
	model.ExportDuctSegment,
	model.ExportPipeSegment,
	model.ExportGeneric,
}

var COBieComponent = Definition{
	Name:        "COBie_Component",
	Class:       ClassPropertySet,
	Description: "COBie component sheet attributes",
	EntityTypes: allExportKinds,
	Fields: []Field{
		{Name: "Name", Type: TypeLabel},
		{Name: "CreatedBy", Type: TypeLabel},
		{Name: "CreatedOn", Type: TypeText},
		{Name: "TypeName", Type: TypeLabel},
		{Name: "Space", Type: TypeLabel},
		{Name: "Description", Type: TypeText},
		{Name: "SerialNumber", Type: TypeLabel},
		{Name: "InstallationDate", Type: TypeText},
		{Name: "WarrantyStartDate", Type: TypeText},
		{Name: "TagNumber", Type: TypeLabel},
		{Name: "BarCode", Type: TypeLabel},
		{Name: "AssetIdentifier", Type: TypeLabel},
	},
}

var COBieType = Definition{
	Name:        "COBie_Type",
	Class:       ClassPropertySet,
	Description: "COBie type sheet attributes",
	EntityTypes: allExportKinds,
	Fields: []Field{
		{Name: "Name", Type: TypeLabel},
		{Name: "CreatedBy", Type: TypeLabel},
		{Name: "CreatedOn", Type: TypeText},
		{Name: "Category", Type: TypeLabel},
		{Name: "Description", Type: TypeText},
		{Name: "AssetType", Type: TypeLabel},
		{Name: "Manufacturer", Type: TypeLabel},
		{Name: "ModelNumber", Type: TypeLabel},
		{Name: "WarrantyDurationParts", Type: TypeReal},
		{Name: "WarrantyDurationLabor", Type: TypeReal},
		{Name: "ReplacementCost", Type: TypeReal},
		{Name: "ExpectedLife", Type: TypeReal},
		{Name: "NominalLength", Type: TypeLength},
		{Name: "NominalWidth", Type: TypeLength},
		{Name: "NominalHeight", Type: TypeLength},
	},
}

func init() {
	Default.MustRegister(COBieComponent, COBieType)
}
