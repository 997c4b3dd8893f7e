package port

import "github.com/bnema/whiteboard/internal/domain/entity"

// ConfigSchemaProvider describes every configuration key.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
}
