// Package generation defines the boundary to the external text generator
// and the extraction pipeline that turns untrusted generator output into
// validated task plans.
package generation
