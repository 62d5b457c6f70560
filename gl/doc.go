// Package gl holds the GL vocabulary shared by the shim and its backends:
// enum values, error codes and the Backend capability interfaces.
//
// Backends never see module-side object names. They hand out opaque Object
// values from Create* methods and receive those same values back, with nil
// standing for the null object (name 0 on the module side).
package gl
