package tests

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/goer/asana-clone/internal/adapter/http/middleware"
	"github.com/goer/asana-clone/internal/core/domain"
)

// identityStub pins the request principal so handler tests go through the
// same middleware chain as production requests.
type identityStub struct {
	principal domain.Principal
}

func (s identityStub) ResolveStrict(context.Context, string) (domain.Principal, error) {
	return s.principal, nil
}

func (s identityStub) ResolveSoft(context.Context, string) domain.Principal {
	return s.principal
}

func (s identityStub) EnsureFallbackUser(context.Context) error {
	return nil
}

func newTestRouter(p domain.Principal) (*gin.Engine, *gin.RouterGroup) {
	router := gin.New()
	group := router.Group("/api/v1",
		middleware.LanguageMiddleware(),
		middleware.SoftIdentity(identityStub{principal: p}),
	)
	return router, group
}

func ptr[T any](v T) *T {
	return &v
}
