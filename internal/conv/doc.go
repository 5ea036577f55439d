// Package conv provides checked integer conversions for values parsed from
// untrusted text dumps. Conversions that are safe by construction (a centroid
// coordinate is a mean of bounded coordinates) use plain casts instead.
package conv
