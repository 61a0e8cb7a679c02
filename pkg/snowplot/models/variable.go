package models

import "fmt"

// Variable selects the measured quantity a chart shows.
type Variable string

const (
	// VarGrowthPeriod is the cumulative growth period in hours.
	VarGrowthPeriod Variable = "gp"
	// VarCellArea is the algal cell concentration per snow surface area.
	VarCellArea Variable = "cellA"
	// VarBiomassArea is the algal biomass per snow surface area.
	VarBiomassArea Variable = "bioA"
	// VarCellVolume is the algal cell concentration per meltwater volume.
	VarCellVolume Variable = "cellV"
	// VarBiomassVolume is the algal biomass per meltwater volume.
	VarBiomassVolume Variable = "bioV"
	// VarOrganicCarbon is the organic carbon concentration.
	VarOrganicCarbon Variable = "ocV"
)

// Scale is a y-axis scale.
type Scale string

const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
)

// VariableStyle holds the axis configuration for one variable.
type VariableStyle struct {
	// Column is the table column plotted for the variable.
	Column string
	// Label is the y-axis title.
	Label string
	// Scale is the y-axis scale.
	Scale Scale
	// YMin and YMax are the fixed y-axis bounds.
	YMin, YMax float64
	// Threshold is the red snow appearance level, nil when the variable has none.
	Threshold *float64
}

// LogScale reports whether the variable is drawn on a logarithmic axis.
func (s VariableStyle) LogScale() bool {
	return s.Scale == ScaleLog
}

func threshold(v float64) *float64 {
	return &v
}

var variableOrder = []Variable{
	VarGrowthPeriod,
	VarCellArea,
	VarBiomassArea,
	VarCellVolume,
	VarBiomassVolume,
	VarOrganicCarbon,
}

var variableStyles = map[Variable]VariableStyle{
	VarGrowthPeriod: {
		Column: "gp",
		Label:  "Growth period\n(hours)",
		Scale:  ScaleLinear,
		YMin:   0,
		YMax:   4000,
	},
	VarCellArea: {
		Column:    "cellA",
		Label:     "Algal cell concentration\n(cells m^-2)",
		Scale:     ScaleLog,
		YMin:      1e0,
		YMax:      1e11,
		Threshold: threshold(5.0e5),
	},
	VarBiomassArea: {
		Column:    "bioA",
		Label:     "Algal cell biomass\n(uL m^-2)",
		Scale:     ScaleLog,
		YMin:      5e-6,
		YMax:      5e5,
		Threshold: threshold(2.5),
	},
	VarCellVolume: {
		Column:    "cellV",
		Label:     "Algal cell concentration\n(cells L^-1)",
		Scale:     ScaleLog,
		YMin:      1e-1,
		YMax:      1e10,
		Threshold: threshold(5.0e4),
	},
	VarBiomassVolume: {
		Column:    "bioV",
		Label:     "Algal cell biomass\n(uL L^-1)",
		Scale:     ScaleLog,
		YMin:      5e-7,
		YMax:      5e4,
		Threshold: threshold(0.25),
	},
	VarOrganicCarbon: {
		Column: "ocV",
		Label:  "Organic carbon\n(mg L^-1)",
		Scale:  ScaleLog,
		YMin:   1e-2,
		YMax:   1e4,
	},
}

// Variables returns every known variable in plotting order.
func Variables() []Variable {
	out := make([]Variable, len(variableOrder))
	copy(out, variableOrder)
	return out
}

// Style returns the axis configuration of v.
func (v Variable) Style() (VariableStyle, bool) {
	s, ok := variableStyles[v]
	return s, ok
}

// ParseVariable resolves a selector name.
func ParseVariable(name string) (Variable, error) {
	v := Variable(name)
	if _, ok := variableStyles[v]; !ok {
		return "", fmt.Errorf("unknown variable: %s", name)
	}
	return v, nil
}
