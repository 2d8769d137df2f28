package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("Sup3rsecret!")
	require.NoError(t, err)

	assert.NoError(t, Compare(hash, "Sup3rsecret!"))
	assert.Error(t, Compare(hash, "wrongpassword"))
}

func TestIsComplex(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"все классы символов", "Sup3rsecret!", true},
		{"без заглавной буквы", "sup3rsecret!", false},
		{"без строчной буквы", "SUP3RSECRET!", false},
		{"без цифры", "Supersecret!", false},
		{"без специального символа", "Sup3rsecret", false},
		{"пустой пароль", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsComplex(tt.password))
		})
	}
}
