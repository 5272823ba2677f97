package handler

import (
	"github.com/fullstacklab/itemsvc/internal/errs"
	"github.com/fullstacklab/itemsvc/internal/model"
	"github.com/fullstacklab/itemsvc/internal/server"
	"github.com/fullstacklab/itemsvc/internal/service"
	"github.com/labstack/echo/v4"
)

// ItemsHandler exposes the item CRUD endpoints.
type ItemsHandler struct {
	Handler
	service *service.ItemService
}

// NewItemsHandler constructs an ItemsHandler.
func NewItemsHandler(s *server.Server, services *service.Services) *ItemsHandler {
	return &ItemsHandler{
		Handler: NewHandler(s),
		service: services.Items,
	}
}

// CreateItemRequest is the payload for POST /items. Description is
// optional and defaults to the empty string; the minimum-length rule on
// name is enforced by the service, not here.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (r *CreateItemRequest) Validate() error {
	return validate.Struct(r)
}

// ListItemsRequest is the (empty) payload for GET /items.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error {
	return nil
}

// GetItemRequest binds the id path parameter for GET /items/:id.
type GetItemRequest struct {
	ID int64 `param:"id"`
}

func (r *GetItemRequest) Validate() error {
	return nil
}

// UpdateItemRequest is the payload for PUT /items/:id. Fields are
// pointers so an absent field (nil) leaves the stored value unchanged.
type UpdateItemRequest struct {
	ID          int64   `param:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateItemRequest) Validate() error {
	return nil
}

// DeleteItemRequest binds the id path parameter for DELETE /items/:id.
type DeleteItemRequest struct {
	ID int64 `param:"id"`
}

func (r *DeleteItemRequest) Validate() error {
	return nil
}

// ItemResponse is the wire representation of an item.
type ItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

// NewItemResponse serializes an item for the wire.
func NewItemResponse(item *model.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   formatTimestamp(item.CreatedAt),
		UpdatedAt:   formatTimestamp(item.UpdatedAt),
	}
}

// Create handles POST /items.
func (h *ItemsHandler) Create(c echo.Context, req *CreateItemRequest) (ItemResponse, error) {
	item, err := h.service.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return ItemResponse{}, err
	}
	return NewItemResponse(item), nil
}

// List handles GET /items. The full set is returned each call; an empty
// table yields an empty array, not null.
func (h *ItemsHandler) List(c echo.Context, _ *ListItemsRequest) ([]ItemResponse, error) {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, NewItemResponse(&items[i]))
	}
	return responses, nil
}

// Get handles GET /items/:id.
func (h *ItemsHandler) Get(c echo.Context, req *GetItemRequest) (ItemResponse, error) {
	item, err := h.service.Get(c.Request().Context(), req.ID)
	if err != nil {
		return ItemResponse{}, err
	}
	return NewItemResponse(item), nil
}

// Update handles PUT /items/:id.
func (h *ItemsHandler) Update(c echo.Context, req *UpdateItemRequest) (ItemResponse, error) {
	item, err := h.service.Update(c.Request().Context(), req.ID, req.Name, req.Description)
	if err != nil {
		return ItemResponse{}, err
	}
	return NewItemResponse(item), nil
}

// Delete handles DELETE /items/:id. The store operation is idempotent;
// the HTTP contract maps "nothing deleted" to 404.
func (h *ItemsHandler) Delete(c echo.Context, req *DeleteItemRequest) (DeleteResponse, error) {
	deleted, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return DeleteResponse{}, err
	}
	if !deleted {
		return DeleteResponse{}, errs.NewNotFoundError("Item not found", true, nil)
	}

	return DeleteResponse{
		Message: "Item deleted",
		ID:      req.ID,
	}, nil
}
