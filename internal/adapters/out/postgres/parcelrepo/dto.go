// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking code carries a unique index so server-side generation collisions
// surface as constraint violations instead of silent duplicates.
type ParcelDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingCode string    `gorm:"size:11;uniqueIndex"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`

	Sender    PartyDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient PartyDTO `gorm:"embedded;embeddedPrefix:recipient_"`

	Description  string
	WeightKg     float64
	Dimensions   *string
	Instructions string

	Cost      int
	TotalCost int

	PaymentMethod int
	PaymentStatus int

	Status            int `gorm:"index"`
	CurrentLocation   string
	EstimatedDelivery *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// PartyDTO represents the embedded sender or recipient details within the parcel table.
type PartyDTO struct {
	Name    string
	Address string
	County  string
	Phone   string
	Email   string
	Carrier string
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var dimensions *string
	if d := aggregate.Dimensions(); d != nil {
		raw := d.String()
		dimensions = &raw
	}

	return ParcelDTO{
		ID:                aggregate.ID().Bytes(),
		TrackingCode:      aggregate.TrackingCode().String(),
		OwnerID:           aggregate.OwnerID().Bytes(),
		Sender:            partyFromDomain(aggregate.Sender()),
		Recipient:         partyFromDomain(aggregate.Recipient()),
		Description:       aggregate.Description(),
		WeightKg:          aggregate.WeightKg(),
		Dimensions:        dimensions,
		Instructions:      aggregate.Instructions(),
		Cost:              aggregate.Cost().Amount(),
		TotalCost:         aggregate.TotalCost().Amount(),
		PaymentMethod:     int(aggregate.PaymentMethod()),
		PaymentStatus:     int(aggregate.PaymentStatus()),
		Status:            int(aggregate.Status()),
		CurrentLocation:   aggregate.CurrentLocation(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

func partyFromDomain(party parcel.Party) PartyDTO {
	return PartyDTO{
		Name:    party.Name(),
		Address: party.Address(),
		County:  party.County().Name(),
		Phone:   party.Phone().String(),
		Email:   party.Email(),
		Carrier: party.Carrier(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate using RestoreParcel so corrupt rows
// fail validation instead of producing half-valid parcels.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	trackingCode, err := parcel.ParseTrackingCode(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	sender, err := partyToDomain(dto.Sender)
	if err != nil {
		return nil, err
	}

	recipient, err := partyToDomain(dto.Recipient)
	if err != nil {
		return nil, err
	}

	var dimensions *parcel.Dimensions
	if dto.Dimensions != nil {
		dimensions, err = parcel.ParseDimensions(*dto.Dimensions)
		if err != nil {
			return nil, err
		}
	}

	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return nil, err
	}

	totalCost, err := kernel.NewMoney(dto.TotalCost)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		trackingCode,
		ownerID,
		sender,
		recipient,
		dto.Description,
		dto.WeightKg,
		dimensions,
		dto.Instructions,
		parcel.PaymentMethod(dto.PaymentMethod),
		parcel.PaymentStatus(dto.PaymentStatus),
		parcel.Status(dto.Status),
		cost,
		totalCost,
		dto.CurrentLocation,
		dto.EstimatedDelivery,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func partyToDomain(dto PartyDTO) (parcel.Party, error) {
	county, err := kernel.NewZone(dto.County)
	if err != nil {
		return parcel.Party{}, err
	}

	phone, err := kernel.NewPhoneNumber(dto.Phone)
	if err != nil {
		return parcel.Party{}, err
	}

	return parcel.NewParty(dto.Name, dto.Address, county, phone, dto.Email, dto.Carrier)
}
