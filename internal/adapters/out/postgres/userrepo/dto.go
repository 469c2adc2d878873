// Package userrepo provides data transfer objects and mapping functions for user persistence.
package userrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The email column carries a unique index; duplicate registrations are also
// rejected at the application level before the insert is attempted.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Password  string
	Active    bool `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Password:  aggregate.Password(),
		Active:    aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Email, dto.Password, dto.Active, dto.CreatedAt, dto.UpdatedAt)
}
