// Package ngorepo provides data transfer objects and mapping functions for
// NGO directory persistence.
package ngorepo

import (
	"sharebite/internal/core/domain/model/kernel"
	"sharebite/internal/core/domain/model/ngo"

	"github.com/google/uuid"
)

// NgoDTO represents the database structure for persisting NGO records.
type NgoDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Email      string `gorm:"uniqueIndex"`
	Credential string
	Location   GeoPointDTO `gorm:"embedded"`
	Verified   bool
}

// TableName specifies the database table name for NGO entities.
func (NgoDTO) TableName() string {
	return "ngos"
}

// GeoPointDTO represents the embedded base location within the NGO table.
type GeoPointDTO struct {
	Latitude       float64
	Longitude      float64
	HasCoordinates bool
	Address        string
}

func fromDomain(aggregate *ngo.NGO) NgoDTO {
	location := aggregate.Location()
	return NgoDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Email:      aggregate.Email(),
		Credential: aggregate.Credential(),
		Location: GeoPointDTO{
			Latitude:       location.Latitude(),
			Longitude:      location.Longitude(),
			HasCoordinates: location.HasCoordinates(),
			Address:        location.Address(),
		},
		Verified: aggregate.Verified(),
	}
}

func toDomain(dto NgoDTO) (*ngo.NGO, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location kernel.GeoPoint
	if dto.Location.HasCoordinates {
		location, err = kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude, dto.Location.Address)
		if err != nil {
			return nil, err
		}
	} else {
		location = kernel.NewAddressGeoPoint(dto.Location.Address)
	}

	return ngo.RestoreNGO(id, dto.Name, dto.Email, dto.Credential, location, dto.Verified)
}
