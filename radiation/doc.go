// Package radiation implements the two-leaf canopy radiation model: the
// position of the sun, the Spitters split of global radiation into its
// diffuse and direct components, and the de Pury & Farquhar partitioning of
// absorbed PAR between sunlit and shaded leaves.
//
// Every function is pure. A timestep is computed by calling SolarGeometry,
// Spitters and AbsorbRadiation in that order, or by Model.Step which does the
// same and handles timesteps without sun.
package radiation
