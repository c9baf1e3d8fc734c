package core

// Epsilon is the minimum accepted ray parameter and the bias used to offset
// secondary ray origins away from the surface they leave.
const Epsilon = 1e-3

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}
