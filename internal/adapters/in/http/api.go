package http

import (
	"errors"
	"net/http"
	"time"

	"sharebite/internal/core/application/usecases/queries"
	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/post"
	"sharebite/internal/pkg/errs"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location is the JSON shape of a pickup or base location.
type Location struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Address   string   `json:"address"`
}

// NewPost is the request body for post creation.
type NewPost struct {
	Title    string   `json:"title"`
	Caption  string   `json:"caption"`
	ImageURL string   `json:"imageUrl"`
	Location Location `json:"location"`
	Author   string   `json:"author"`
	UserID   string   `json:"userId"`
}

// Post is the JSON representation of a donation post.
type Post struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Caption          string    `json:"caption,omitempty"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	Location         Location  `json:"location"`
	Author           string    `json:"author"`
	UserID           string    `json:"userId,omitempty"`
	State            string    `json:"state"`
	AssignedNgoID    string    `json:"assignedNgoId,omitempty"`
	IsAcceptedByNgo  bool      `json:"isAcceptedByNgo"`
	AssignedDelivery string    `json:"assignedDeliveryId,omitempty"`
	DeliveryStatus   string    `json:"deliveryStatus,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitzero"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
}

// AssignDelivery is the request body for handing a post to a delivery
// partner.
type AssignDelivery struct {
	DeliveryID string `json:"deliveryId"`
}

// DeliveryStatusUpdate is the request body for advancing the delivery leg.
type DeliveryStatusUpdate struct {
	Status string `json:"status"`
}

// NewNgo is the request body for NGO registration.
type NewNgo struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Location Location `json:"location"`
}

// Ngo is the JSON representation of a directory entry. Credentials are never
// serialized.
type Ngo struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Location Location `json:"location"`
	Verified bool     `json:"verified"`
}

// Image is the response body for an image upload.
type Image struct {
	URL string `json:"url"`
}

// Message is the response body for mutating endpoints that have no entity to
// return.
type Message struct {
	Message string `json:"message"`
}

func locationFromGeoPoint(p kernel.GeoPoint) Location {
	loc := Location{Address: p.Address()}
	if p.HasCoordinates() {
		lat, lng := p.Latitude(), p.Longitude()
		loc.Latitude = &lat
		loc.Longitude = &lng
	}
	return loc
}

func postFromAggregate(p *post.Post) Post {
	resp := Post{
		ID:              p.ID().String(),
		Title:           p.Title(),
		Caption:         p.Caption(),
		ImageURL:        p.ImageURL(),
		Location:        locationFromGeoPoint(p.Location()),
		Author:          p.Author(),
		UserID:          p.OwnerID().String(),
		State:           p.State().String(),
		IsAcceptedByNgo: p.IsAcceptedByNgo(),
		DeliveryStatus:  string(p.DeliveryStatus()),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
	if id := p.AssignedNgo(); id != nil {
		resp.AssignedNgoID = id.String()
	}
	if id := p.AssignedDelivery(); id != nil {
		resp.AssignedDelivery = id.String()
	}
	return resp
}

func postFromReadModel(p queries.PostQueryResponse) Post {
	return Post{
		ID:             p.ID.String(),
		Title:          p.Title,
		Caption:        p.Caption,
		ImageURL:       p.ImageURL,
		Location:       locationFromGeoPoint(p.Location),
		Author:         p.Author,
		State:          p.State,
		DeliveryStatus: p.DeliveryStatus,
	}
}

func ngoFromReadModel(n queries.NgoQueryResponse) Ngo {
	return Ngo{
		ID:       n.ID.String(),
		Name:     n.Name,
		Email:    n.Email,
		Location: locationFromGeoPoint(n.Location),
		Verified: n.Verified,
	}
}

// statusForError maps the error taxonomy onto HTTP status codes. Validation
// failures are the caller's fault, lifecycle and version conflicts are
// state conflicts, store failures are ours.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConflictingUpdate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
