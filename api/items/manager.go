package items

import (
	"vendora_server/api/middleware"
	"vendora_server/services"
	"vendora_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ItemRoutesManager serves public item pages: detail views with view
// counting, like toggles and comments.
type ItemRoutesManager struct {
	logger            *gecho.Logger
	itemService       *services.ItemService
	engagementService *services.EngagementService
	commentService    *services.CommentService
	mediaService      *services.MediaService
	cfg               *structs.Config
	mw                *middleware.Middleware
}

func NewItemRoutesManager(
	logger *gecho.Logger,
	itemService *services.ItemService,
	engagementService *services.EngagementService,
	commentService *services.CommentService,
	mediaService *services.MediaService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *ItemRoutesManager {
	return &ItemRoutesManager{
		logger:            logger,
		itemService:       itemService,
		engagementService: engagementService,
		commentService:    commentService,
		mediaService:      mediaService,
		cfg:               cfg,
		mw:                mw,
	}
}

func (irm *ItemRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/items/{slug}", func(r chi.Router) {
		r.Get("/", irm.HandleGetItem)
		r.Post("/like", irm.HandleToggleLike)
		r.Get("/comments", irm.HandleListComments)
		r.Post("/comments", irm.HandleCreateComment)
	})
}
