// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkgmod/internal/adapters/config"
	_ "go.trai.ch/pkgmod/internal/adapters/logger"
	_ "go.trai.ch/pkgmod/internal/adapters/modulefile"
	_ "go.trai.ch/pkgmod/internal/adapters/pip"
	_ "go.trai.ch/pkgmod/internal/adapters/pypi"
	_ "go.trai.ch/pkgmod/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/pkgmod/internal/app"
)
