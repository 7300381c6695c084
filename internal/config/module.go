package config

import "go.uber.org/fx"

// DirectoryModule exposes the directory configuration loader for fx graphs.
var DirectoryModule = fx.Provide(LoadDirectory)

// OrderModule exposes the order configuration loader for fx graphs.
var OrderModule = fx.Provide(LoadOrder)
