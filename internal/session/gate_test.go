package session

import (
	"context"
	"testing"

	"github.com/pbaille/portfolio/internal/kv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var owner = Credentials{Email: "owner@example.com", Password: "S3cret!"}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"exact match", "owner@example.com", "S3cret!", true},
		{"wrong password", "owner@example.com", "nope", false},
		{"password case", "owner@example.com", "s3cret!", false},
		{"email case", "Owner@example.com", "S3cret!", false},
		{"padded email", " owner@example.com", "S3cret!", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := kv.NewMemory()
			g := NewGate(store, owner, zerolog.Nop())

			assert.Equal(t, tt.want, g.Login(ctx, tt.email, tt.password))
			assert.Equal(t, tt.want, g.IsAuthenticated())

			v, err := store.Get(ctx, DefaultKey)
			if tt.want {
				require.NoError(t, err)
				assert.Equal(t, "true", string(v))
			} else {
				assert.True(t, errors.Is(err, kv.ErrNotFound))
			}
		})
	}
}

func TestNoCredentialsConfigured(t *testing.T) {
	g := NewGate(kv.NewMemory(), Credentials{}, zerolog.Nop())
	assert.False(t, g.Configured())
	assert.False(t, g.Login(context.Background(), "", ""))

	assert.True(t, NewGate(kv.NewMemory(), owner, zerolog.Nop()).Configured())
}

func TestRestoreAndLogout(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	first := NewGate(store, owner, zerolog.Nop())
	require.True(t, first.Login(ctx, owner.Email, owner.Password))

	second := NewGate(store, owner, zerolog.Nop())
	assert.False(t, second.IsAuthenticated())
	second.Restore(ctx)
	assert.True(t, second.IsAuthenticated())

	second.Logout(ctx)
	assert.False(t, second.IsAuthenticated())
	_, err := store.Get(ctx, DefaultKey)
	assert.True(t, errors.Is(err, kv.ErrNotFound))

	third := NewGate(store, owner, zerolog.Nop())
	third.Restore(ctx)
	assert.False(t, third.IsAuthenticated())
}

func TestRestoreIgnoresOtherValues(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, DefaultKey, []byte("yes")))

	g := NewGate(store, owner, zerolog.Nop())
	g.Restore(ctx)
	assert.False(t, g.IsAuthenticated())
}

func TestLoginSurvivesWriteFailure(t *testing.T) {
	store := kv.NewMemory()
	store.FailWrites(true)

	g := NewGate(store, owner, zerolog.Nop()).WithKey("custom")
	assert.True(t, g.Login(context.Background(), owner.Email, owner.Password))
	assert.True(t, g.IsAuthenticated())
}
