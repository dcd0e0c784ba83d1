// Package postrepo provides data transfer objects and mapping functions for
// post persistence. Implements the repository pattern for the post aggregate,
// converting between domain entities and database rows.
package postrepo

import (
	"time"

	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/post"

	"github.com/google/uuid"
)

// PostDTO represents the database structure for persisting post aggregates.
// Assignment references and state carry indexes for the work queue queries;
// the version column backs the compare-and-set on updates.
type PostDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title              string
	Caption            string
	ImageURL           string      `gorm:"column:image_url"`
	Location           GeoPointDTO `gorm:"embedded"`
	Author             string
	OwnerID            uuid.UUID  `gorm:"type:uuid;index"`
	State              int        `gorm:"index"`
	AssignedNgoID      *uuid.UUID `gorm:"type:uuid;index"`
	AssignedDeliveryID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64
}

// TableName specifies the database table name for post entities.
func (PostDTO) TableName() string {
	return "posts"
}

// GeoPointDTO represents the embedded pickup location within the post table.
// HasCoordinates distinguishes address-only locations from geocoded ones.
type GeoPointDTO struct {
	Latitude       float64
	Longitude      float64
	HasCoordinates bool
	Address        string
}

// fromDomain converts a post domain aggregate to its database representation.
func fromDomain(aggregate *post.Post) PostDTO {
	var ngoID, deliveryID *uuid.UUID
	if id := aggregate.AssignedNgo(); id != nil {
		raw := id.Bytes()
		ngoID = &raw
	}
	if id := aggregate.AssignedDelivery(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	location := aggregate.Location()
	return PostDTO{
		ID:       aggregate.ID().Bytes(),
		Title:    aggregate.Title(),
		Caption:  aggregate.Caption(),
		ImageURL: aggregate.ImageURL(),
		Location: GeoPointDTO{
			Latitude:       location.Latitude(),
			Longitude:      location.Longitude(),
			HasCoordinates: location.HasCoordinates(),
			Address:        location.Address(),
		},
		Author:             aggregate.Author(),
		OwnerID:            aggregate.OwnerID().Bytes(),
		State:              int(aggregate.State()),
		AssignedNgoID:      ngoID,
		AssignedDeliveryID: deliveryID,
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to a post domain aggregate. RestorePost
// re-checks the stored row's consistency, so a corrupted state and reference
// combination never reaches the engine.
func toDomain(dto PostDTO) (*post.Post, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	ngoID, err := optionalUUID(dto.AssignedNgoID)
	if err != nil {
		return nil, err
	}

	deliveryID, err := optionalUUID(dto.AssignedDeliveryID)
	if err != nil {
		return nil, err
	}

	location, err := toDomainGeoPoint(dto.Location)
	if err != nil {
		return nil, err
	}

	return post.RestorePost(
		id,
		dto.Title,
		dto.Caption,
		dto.ImageURL,
		location,
		dto.Author,
		ownerID,
		post.State(dto.State),
		ngoID,
		deliveryID,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

func toDomainGeoPoint(dto GeoPointDTO) (kernel.GeoPoint, error) {
	if dto.HasCoordinates {
		return kernel.NewGeoPoint(dto.Latitude, dto.Longitude, dto.Address)
	}
	return kernel.NewAddressGeoPoint(dto.Address), nil
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
