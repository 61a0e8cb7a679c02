package models

// VariantData is one loaded model variant of a dataset.
type VariantData struct {
	Model ModelVariant
	Table *Table
	DOY   DayOfYear
}

// DatasetData holds every variant loaded for one dataset.
type DatasetData struct {
	// Name is the dataset identifier (e.g. "snowalgae_2012_TA_Rai_wfdei").
	Name string
	// BaseYear is the base year of the first loaded variant.
	BaseYear int
	// Variants holds the loaded variants in model order. Missing files are absent.
	Variants []VariantData
}
