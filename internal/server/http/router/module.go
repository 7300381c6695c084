package router

import "go.uber.org/fx"

// DirectoryModule registers the directory router for the fx runtime.
var DirectoryModule = fx.Provide(SetupDirectory)

// OrderModule registers the order router for the fx runtime.
var OrderModule = fx.Provide(SetupOrder)
