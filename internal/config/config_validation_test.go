package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "zero value", cfg: StructuredConfig{}},
		{name: "json format", cfg: StructuredConfig{Output: Output{Format: "json"}}},
		{name: "yaml format", cfg: StructuredConfig{Output: Output{Format: "yaml"}}},
		{name: "unknown format", cfg: StructuredConfig{Output: Output{Format: "xml"}}, wantErr: ErrInvalidOutputConfigs},
		{name: "key and sources", cfg: StructuredConfig{Output: Output{Key: "a", Sources: true}}, wantErr: ErrInvalidOutputConfigs},
		{name: "debug level", cfg: StructuredConfig{Log: Log{Level: "debug"}}},
		{name: "unknown level", cfg: StructuredConfig{Log: Log{Level: "verbose"}}, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettings_AssemblerOptions(t *testing.T) {
	assert.Len(t, Settings{}.AssemblerOptions(nil), 6)
	assert.Len(t, Settings{FromExecutable: true, AppID: "x"}.AssemblerOptions(nil), 8)
}
