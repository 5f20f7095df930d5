package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	tenant, err := NewTenant("Jane Renter", "Jane@Example.com", "+1-555-0100")
	require.NoError(t, err)
	assert.Equal(t, "Jane Renter", tenant.Name)
	assert.Equal(t, "jane@example.com", tenant.Email)
	assert.True(t, tenant.HasEmail())
	assert.Len(t, tenant.GetDomainEvents(), 1)

	_, err = NewTenant("", "jane@example.com", "")
	assert.Error(t, err)

	_, err = NewTenant("Jane Renter", "not-an-email", "")
	assert.Error(t, err)
}

func TestTenant_Update(t *testing.T) {
	tenant, err := NewTenant("Jane Renter", "", "")
	require.NoError(t, err)
	assert.False(t, tenant.HasEmail())

	require.NoError(t, tenant.Update("Jane R.", "jane@example.com", "+1-555-0100", "prefers email"))
	assert.Equal(t, "Jane R.", tenant.Name)
	assert.Equal(t, "jane@example.com", tenant.Email)
	assert.Equal(t, 2, tenant.GetVersion())

	err = tenant.Update("", "jane@example.com", "", "")
	assert.Error(t, err)
}

func TestNewBuilding(t *testing.T) {
	building, err := NewBuilding("Maple Court", "12 Maple St")
	require.NoError(t, err)
	assert.Equal(t, "Maple Court", building.Name)
	assert.Len(t, building.GetDomainEvents(), 1)

	_, err = NewBuilding("", "12 Maple St")
	assert.Error(t, err)

	_, err = NewBuilding("Maple Court", "")
	assert.Error(t, err)
}
