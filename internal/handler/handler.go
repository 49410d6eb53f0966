package handler

import (
	"github.com/ashwinyue/toolhub/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Catalog   *CatalogHandler
	News      *NewsHandler
	AdminTool *AdminToolHandler
	AdminNews *AdminNewsHandler
	Auth      *AuthHandler
	System    *SystemHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Catalog:   NewCatalogHandler(svc),
		News:      NewNewsHandler(svc),
		AdminTool: NewAdminToolHandler(svc),
		AdminNews: NewAdminNewsHandler(svc),
		Auth:      NewAuthHandler(svc),
		System:    NewSystemHandler(svc),
	}
}
