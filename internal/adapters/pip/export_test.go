package pip

// Expand exposes expand for testing.
var Expand = expand

// MaxDiagnostics exposes maxDiagnostics for testing.
const MaxDiagnostics = maxDiagnostics
