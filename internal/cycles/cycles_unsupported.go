//go:build !amd64 && !386 && !arm64

package cycles

// There is no portable substitute for the hardware cycle counter, so a build
// for any other architecture must be refused rather than silently measuring
// something else. Referencing an undefined identifier stops compilation.
var _ = cyclesRequiresAmd64Or386OrArm64
