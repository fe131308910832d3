// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package si

import (
	"github.com/mikecarlton/calc/pkg/dimension"
)

// Kind markers for units.Typed, e.g. units.Typed[si.Velocity].
type (
	Dimensionless       struct{}
	Length              struct{}
	Area                struct{}
	Volume              struct{}
	Mass                struct{}
	Time                struct{}
	Frequency           struct{}
	Velocity            struct{}
	Acceleration        struct{}
	Density             struct{}
	Force               struct{}
	Energy              struct{}
	Power               struct{}
	Pressure            struct{}
	Temperature         struct{}
	Charge              struct{}
	Voltage             struct{}
	Resistance          struct{}
	Capacitance         struct{}
	Inductance          struct{}
	MagneticFlux        struct{}
	MagneticFluxDensity struct{}
	Concentration       struct{}
)

func vec(e exps) dimension.Vector { return dimension.FillDefaults(e) }

const (
	dL = dimension.Length
	dT = dimension.Time
	dM = dimension.Mass
	dI = dimension.Current
	dN = dimension.Amount
	dK = dimension.Temperature
)

func (Dimensionless) Dimensions() dimension.Vector { return dimension.Scalar }
func (Length) Dimensions() dimension.Vector        { return vec(exps{dL: 1}) }
func (Area) Dimensions() dimension.Vector          { return vec(exps{dL: 2}) }
func (Volume) Dimensions() dimension.Vector        { return vec(exps{dL: 3}) }
func (Mass) Dimensions() dimension.Vector          { return vec(exps{dM: 1}) }
func (Time) Dimensions() dimension.Vector          { return vec(exps{dT: 1}) }
func (Frequency) Dimensions() dimension.Vector     { return vec(exps{dT: -1}) }
func (Velocity) Dimensions() dimension.Vector      { return vec(exps{dL: 1, dT: -1}) }
func (Acceleration) Dimensions() dimension.Vector  { return vec(exps{dL: 1, dT: -2}) }
func (Density) Dimensions() dimension.Vector       { return vec(exps{dM: 1, dL: -3}) }
func (Force) Dimensions() dimension.Vector         { return vec(exps{dM: 1, dL: 1, dT: -2}) }
func (Energy) Dimensions() dimension.Vector        { return vec(exps{dM: 1, dL: 2, dT: -2}) }
func (Power) Dimensions() dimension.Vector         { return vec(exps{dM: 1, dL: 2, dT: -3}) }
func (Pressure) Dimensions() dimension.Vector      { return vec(exps{dM: 1, dL: -1, dT: -2}) }
func (Temperature) Dimensions() dimension.Vector   { return vec(exps{dK: 1}) }
func (Charge) Dimensions() dimension.Vector        { return vec(exps{dI: 1, dT: 1}) }
func (Voltage) Dimensions() dimension.Vector       { return vec(exps{dM: 1, dL: 2, dT: -3, dI: -1}) }
func (Resistance) Dimensions() dimension.Vector    { return vec(exps{dM: 1, dL: 2, dT: -3, dI: -2}) }
func (Capacitance) Dimensions() dimension.Vector   { return vec(exps{dM: -1, dL: -2, dT: 4, dI: 2}) }
func (Inductance) Dimensions() dimension.Vector    { return vec(exps{dM: 1, dL: 2, dT: -2, dI: -2}) }
func (MagneticFlux) Dimensions() dimension.Vector  { return vec(exps{dM: 1, dL: 2, dT: -2, dI: -1}) }
func (MagneticFluxDensity) Dimensions() dimension.Vector {
	return vec(exps{dM: 1, dT: -2, dI: -1})
}
func (Concentration) Dimensions() dimension.Vector {
	return vec(exps{dN: 1, dL: -3})
}
