// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"time"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string `gorm:"uniqueIndex"`
	Phone string
	Role  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user entity to its database representation.
func fromDomain(account *user.User) UserDTO {
	return UserDTO{
		ID:    account.ID().Bytes(),
		Name:  account.Name(),
		Email: account.Email(),
		Phone: account.Phone().String(),
		Role:  int(account.Role()),
	}
}

// toDomain converts a database DTO to a user entity.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhoneNumber(dto.Phone)
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, dto.Name, dto.Email, phone, user.Role(dto.Role))
}
