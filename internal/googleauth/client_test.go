package googleauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		clientID string
		wantErr  bool
	}{
		{
			name: "валидный токен",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"sub":"google-uid-1","email":"user@example.com",` +
					`"name":"Ivan Petrov","picture":"https://example.com/a.png","aud":"client-1"}`))
			},
			clientID: "client-1",
			wantErr:  false,
		},
		{
			name: "токен выпущен для другого клиента",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"sub":"google-uid-1","email":"user@example.com","aud":"other"}`))
			},
			clientID: "client-1",
			wantErr:  true,
		},
		{
			name: "провайдер отклонил токен",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			clientID: "client-1",
			wantErr:  true,
		},
		{
			name: "ответ без email",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"sub":"google-uid-1","aud":"client-1"}`))
			},
			clientID: "client-1",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClientWithURL(srv.URL, tt.clientID)
			info, err := client.Verify(context.Background(), "dummy-token")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user@example.com", info.Email)
			assert.Equal(t, "google-uid-1", info.Sub)
			assert.Equal(t, "Ivan Petrov", info.Name)
		})
	}
}
