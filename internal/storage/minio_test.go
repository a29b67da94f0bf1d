package storage

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"eventfinder/internal/config"
)

func TestNewMinIO_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MinIOConfig
		wantErr string
	}{
		{
			name:    "missing endpoint",
			cfg:     config.MinIOConfig{AccessKey: "a", SecretKey: "s", Bucket: "b"},
			wantErr: "minio endpoint is required",
		},
		{
			name:    "missing credentials",
			cfg:     config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b"},
			wantErr: "minio credentials are required",
		},
		{
			name:    "missing bucket",
			cfg:     config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
			wantErr: "minio bucket is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(context.Background(), tt.cfg, zerolog.Nop())
			assert.EqualError(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}
