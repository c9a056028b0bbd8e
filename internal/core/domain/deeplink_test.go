package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTarget_Prefix(t *testing.T) {
	assert.Equal(t,
		"raycast://extensions/wheat2021/aurora-input-processor/processor-1",
		DefaultTarget().Prefix())
}

func TestTarget_Validate(t *testing.T) {
	tests := []struct {
		name    string
		target  Target
		wantErr bool
	}{
		{"default", DefaultTarget(), false},
		{"other command", Target{"raycast", "wheat2021", "aurora-input-processor", "processor-9"}, false},
		{"empty scheme", Target{"", "wheat2021", "aurora-input-processor", "processor-1"}, true},
		{"empty publisher", Target{"raycast", "", "aurora-input-processor", "processor-1"}, true},
		{"empty extension", Target{"raycast", "wheat2021", "", "processor-1"}, true},
		{"empty command", Target{"raycast", "wheat2021", "aurora-input-processor", ""}, true},
		{"slash in command", Target{"raycast", "wheat2021", "aurora-input-processor", "a/b"}, true},
		{"query in extension", Target{"raycast", "wheat2021", "ext?x=1", "processor-1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.target.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTarget_WithDefaults(t *testing.T) {
	got := Target{Command: "processor-3"}.WithDefaults()

	assert.Equal(t, DefaultScheme, got.Scheme)
	assert.Equal(t, DefaultPublisher, got.Publisher)
	assert.Equal(t, DefaultExtension, got.Extension)
	assert.Equal(t, "processor-3", got.Command)
}
