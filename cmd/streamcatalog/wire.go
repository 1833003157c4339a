//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/Ikbal-hand/streaming-api-pdt/internal/biz"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/conf"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/data"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/server"
	"github.com/Ikbal-hand/streaming-api-pdt/internal/service"
)

// wireApp init kratos application.
func wireApp(*conf.Server, *conf.Data, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(server.ProviderSet, data.ProviderSet, biz.ProviderSet, service.ProviderSet, newApp))
}
