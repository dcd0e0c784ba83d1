// Package http exposes the lifecycle engine over a REST boundary. Handlers
// translate JSON requests into commands and queries, and map the error
// taxonomy onto HTTP status codes. No business rules live here.
package http

import (
	"context"
	"io"
	"net/http"

	"sharebite/internal/core/application/usecases/commands"
	"sharebite/internal/core/application/usecases/queries"
	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NgoListHandler serves the directory listing, either straight from the
// database or through a cache decorator.
type NgoListHandler interface {
	Handle(ctx context.Context, query queries.GetAllNgosQuery) ([]queries.NgoQueryResponse, error)
}

// NgoDirectoryInvalidator drops any cached directory listing after a
// registration. A nil invalidator is a no-op.
type NgoDirectoryInvalidator interface {
	Invalidate(ctx context.Context)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPostHandler           commands.CreatePostCommandHandler
	acceptPostHandler           commands.AcceptPostCommandHandler
	rejectPostHandler           commands.RejectPostCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	deletePostHandler           commands.DeletePostCommandHandler
	registerNgoHandler          commands.RegisterNgoCommandHandler

	// Query handlers
	postsForNgoHandler      queries.GetPostsAssignedToNgoQueryHandler
	postsForDeliveryHandler queries.GetPostsAssignedToDeliveryQueryHandler
	ngoListHandler          NgoListHandler

	blobStore   ports.BlobStore
	invalidator NgoDirectoryInvalidator
	identity    ports.IdentityProvider
}

// NewServer creates a new HTTP server with the required command and query
// handlers. blobStore and invalidator may be nil: image upload then returns
// 503 and registration skips cache invalidation.
func NewServer(
	createPostHandler commands.CreatePostCommandHandler,
	acceptPostHandler commands.AcceptPostCommandHandler,
	rejectPostHandler commands.RejectPostCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	deletePostHandler commands.DeletePostCommandHandler,
	registerNgoHandler commands.RegisterNgoCommandHandler,
	postsForNgoHandler queries.GetPostsAssignedToNgoQueryHandler,
	postsForDeliveryHandler queries.GetPostsAssignedToDeliveryQueryHandler,
	ngoListHandler NgoListHandler,
	blobStore ports.BlobStore,
	invalidator NgoDirectoryInvalidator,
) *Server {
	return &Server{
		createPostHandler:           createPostHandler,
		acceptPostHandler:           acceptPostHandler,
		rejectPostHandler:           rejectPostHandler,
		assignDeliveryHandler:       assignDeliveryHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		deletePostHandler:           deletePostHandler,
		registerNgoHandler:          registerNgoHandler,
		postsForNgoHandler:          postsForNgoHandler,
		postsForDeliveryHandler:     postsForDeliveryHandler,
		ngoListHandler:              ngoListHandler,
		blobStore:                   blobStore,
		invalidator:                 invalidator,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", IdentityMiddleware())
	api.POST("/posts", s.CreatePost, s.requireRole(ports.RoleDonor))
	api.GET("/posts/assigned-to-ngo/:ngoId", s.GetPostsAssignedToNgo)
	api.GET("/posts/assigned-delivery/:deliveryId", s.GetPostsAssignedToDelivery)
	api.PATCH("/posts/:postId/accept", s.AcceptPost, s.requireRole(ports.RoleNgo))
	api.PATCH("/posts/:postId/reject", s.RejectPost, s.requireRole(ports.RoleNgo))
	api.PATCH("/posts/:postId/assign-delivery", s.AssignDelivery, s.requireRole(ports.RoleNgo))
	api.PATCH("/posts/:postId/status", s.UpdateDeliveryStatus, s.requireRole(ports.RoleDelivery))
	api.DELETE("/posts/:id", s.DeletePost, s.requireRole(ports.RoleDonor))
	api.POST("/images", s.UploadImage, s.requireRole(ports.RoleDonor))
	api.POST("/ngos/create", s.RegisterNgo)
	api.GET("/ngos", s.GetAllNgos)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// CreatePost handles POST /api/v1/posts. Creates the post and routes it to
// an NGO when the directory has a candidate.
func (s *Server) CreatePost(ctx echo.Context) error {
	var body NewPost
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid userId: "+body.UserID)
	}

	location, err := geoPointFromLocation(body.Location)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	cmd, err := commands.NewCreatePostCommand(
		kernel.NewUUID(),
		body.Title,
		body.Caption,
		body.ImageURL,
		location,
		body.Author,
		ownerID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid post data: "+err.Error())
	}

	created, err := s.createPostHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, postFromAggregate(created))
}

// GetPostsAssignedToNgo handles GET /api/v1/posts/assigned-to-ngo/:ngoId.
// Returns the posts awaiting the NGO's decision.
func (s *Server) GetPostsAssignedToNgo(ctx echo.Context) error {
	ngoID, err := kernel.UUIDFromString(ctx.Param("ngoId"))
	if err != nil {
		return badRequest(ctx, "Invalid ngoId")
	}

	query, err := queries.NewGetPostsAssignedToNgoQuery(ngoID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	posts, err := s.postsForNgoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Post, 0, len(posts))
	for _, p := range posts {
		response = append(response, postFromReadModel(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPostsAssignedToDelivery handles GET /api/v1/posts/assigned-delivery/:deliveryId.
// Returns the delivery partner's run sheet.
func (s *Server) GetPostsAssignedToDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "Invalid deliveryId")
	}

	query, err := queries.NewGetPostsAssignedToDeliveryQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	posts, err := s.postsForDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Post, 0, len(posts))
	for _, p := range posts {
		response = append(response, postFromReadModel(p))
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcceptPost handles PATCH /api/v1/posts/:postId/accept.
func (s *Server) AcceptPost(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("postId"))
	if err != nil {
		return badRequest(ctx, "Invalid postId")
	}

	cmd, err := commands.NewAcceptPostCommand(postID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.acceptPostHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "Post accepted"})
}

// RejectPost handles PATCH /api/v1/posts/:postId/reject. Returns the post to
// the unassigned pool.
func (s *Server) RejectPost(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("postId"))
	if err != nil {
		return badRequest(ctx, "Invalid postId")
	}

	cmd, err := commands.NewRejectPostCommand(postID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.rejectPostHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "Post returned to the unassigned pool"})
}

// AssignDelivery handles PATCH /api/v1/posts/:postId/assign-delivery.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("postId"))
	if err != nil {
		return badRequest(ctx, "Invalid postId")
	}

	var body AssignDelivery
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	deliveryID, err := kernel.UUIDFromString(body.DeliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid deliveryId: "+body.DeliveryID)
	}

	cmd, err := commands.NewAssignDeliveryCommand(postID, deliveryID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "Delivery partner assigned"})
}

// UpdateDeliveryStatus handles PATCH /api/v1/posts/:postId/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("postId"))
	if err != nil {
		return badRequest(ctx, "Invalid postId")
	}

	var body DeliveryStatusUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(postID, body.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "Delivery status updated"})
}

// DeletePost handles DELETE /api/v1/posts/:id.
func (s *Server) DeletePost(ctx echo.Context) error {
	postID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid post id")
	}

	cmd, err := commands.NewDeletePostCommand(postID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deletePostHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Message{Message: "Post deleted"})
}

// UploadImage handles POST /api/v1/images. Stores the raw body and returns
// the URL a post can reference.
func (s *Server) UploadImage(ctx echo.Context) error {
	if s.blobStore == nil {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Image storage is not configured",
		})
	}

	data, err := io.ReadAll(ctx.Request().Body)
	if err != nil || len(data) == 0 {
		return badRequest(ctx, "Empty image body")
	}

	name := uuid.NewString()
	url, err := s.blobStore.Put(ctx.Request().Context(), name, data)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Image{URL: url})
}

// RegisterNgo handles POST /api/v1/ngos/create.
func (s *Server) RegisterNgo(ctx echo.Context) error {
	var body NewNgo
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := geoPointFromLocation(body.Location)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	cmd, err := commands.NewRegisterNgoCommand(
		kernel.NewUUID(),
		body.Name,
		body.Email,
		body.Password,
		location,
	)
	if err != nil {
		return badRequest(ctx, "Invalid NGO data: "+err.Error())
	}

	registered, err := s.registerNgoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx.Request().Context())
	}

	return ctx.JSON(http.StatusCreated, Ngo{
		ID:       registered.ID().String(),
		Name:     registered.Name(),
		Email:    registered.Email(),
		Location: locationFromGeoPoint(registered.Location()),
		Verified: registered.Verified(),
	})
}

// GetAllNgos handles GET /api/v1/ngos.
func (s *Server) GetAllNgos(ctx echo.Context) error {
	ngos, err := s.ngoListHandler.Handle(ctx.Request().Context(), queries.NewGetAllNgosQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Ngo, 0, len(ngos))
	for _, n := range ngos {
		response = append(response, ngoFromReadModel(n))
	}
	return ctx.JSON(http.StatusOK, response)
}

func geoPointFromLocation(loc Location) (kernel.GeoPoint, error) {
	if loc.Latitude != nil && loc.Longitude != nil {
		return kernel.NewGeoPoint(*loc.Latitude, *loc.Longitude, loc.Address)
	}
	return kernel.NewAddressGeoPoint(loc.Address), nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func errorResponse(ctx echo.Context, err error) error {
	status := statusForError(err)
	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
