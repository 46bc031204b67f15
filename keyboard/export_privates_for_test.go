package keyboard

// Test bridge exposing the private shift-placement combinatorics to the
// external keyboard_test package without widening the production API.

// UpperCaseFactorForTest forwards to the private upperCaseFactor.
var UpperCaseFactorForTest = upperCaseFactor
