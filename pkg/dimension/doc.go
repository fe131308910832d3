// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

/*
Package dimension implements exponent arithmetic over the seven SI base
dimensions.

A Vector records one Exponent per base dimension: velocity is
{Length: 1, Time: -1}, force is {Mass: 1, Length: 1, Time: -2}. Multiplying
two quantities adds their vectors, dividing subtracts them.

A Vector always holds the true integer exponents, so equality is exact
component by component: m^17 and m^18 differ, and dividing m^18 by itself
gives the dimensionless vector.

Succ, Pred, Invert, Add and Subtract implement the bounded algebra over
[-16, 16], where a result past the bound saturates to Unbounded and stays
there. Vector.Saturated projects a vector into that range and Vector.Bounded
reports whether it was already inside it.

	accel := dimension.FillDefaults(map[dimension.Dimension]dimension.Exponent{
		dimension.Length: 1,
		dimension.Time:   -2,
	})
	force := accel.CombineAdd(dimension.Of(dimension.Mass, 1))
	fmt.Println(force.Symbol()) // m*s^-2*kg

All values are immutable and safe for concurrent use.
*/
package dimension
