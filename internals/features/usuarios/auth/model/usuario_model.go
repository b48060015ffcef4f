package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UsuarioModel struct {
	UsuarioID uuid.UUID `gorm:"column:usuario_id;type:uuid;primaryKey" json:"usuario_id"`

	UsuarioNombreUsuario string `gorm:"column:usuario_nombre_usuario;type:varchar(60);not null;uniqueIndex" json:"usuario_nombre_usuario"`
	UsuarioPasswordHash  string `gorm:"column:usuario_password_hash;type:varchar(100);not null" json:"-"`

	// Preferencias de UI (tema, orden de columnas, etc.) — esquema libre
	UsuarioPreferencias datatypes.JSONMap `gorm:"column:usuario_preferencias" json:"usuario_preferencias,omitempty"`

	UsuarioCreatedAt time.Time      `gorm:"column:usuario_created_at;not null;autoCreateTime" json:"usuario_created_at"`
	UsuarioUpdatedAt time.Time      `gorm:"column:usuario_updated_at;not null;autoUpdateTime" json:"usuario_updated_at"`
	UsuarioDeletedAt gorm.DeletedAt `gorm:"column:usuario_deleted_at;index" json:"usuario_deleted_at,omitempty"`
}

func (UsuarioModel) TableName() string { return "usuarios" }

// Fallback para drivers sin gen_random_uuid() (p. ej. sqlite en pruebas).
func (m *UsuarioModel) BeforeCreate(tx *gorm.DB) error {
	if m.UsuarioID == uuid.Nil {
		m.UsuarioID = uuid.New()
	}
	return nil
}
