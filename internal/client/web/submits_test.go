package web

import (
	"testing"

	"github.com/dmitrijs2005/formsclient/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitGuard(t *testing.T) {
	g := newSubmitGuard()

	release, err := g.acquire("login", "s1")
	require.NoError(t, err)

	_, err = g.acquire("login", "s1")
	assert.ErrorIs(t, err, services.ErrSubmitInFlight)

	// other sessions and other forms are independent
	other, err := g.acquire("login", "s2")
	require.NoError(t, err)
	other()
	reg, err := g.acquire("registration", "s1")
	require.NoError(t, err)
	reg()

	release()
	again, err := g.acquire("login", "s1")
	require.NoError(t, err)
	again()
	assert.Empty(t, g.active)
}
