package usecase

import "go.uber.org/fx"

// DirectoryModule provides directory use cases to the fx container.
var DirectoryModule = fx.Provide(NewUserUseCase)

// OrderModule provides order orchestration to the fx container.
var OrderModule = fx.Provide(NewOrderUseCase)
