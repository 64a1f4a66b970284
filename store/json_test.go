package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenRegion struct{ MemoryRegion }

func (b *brokenRegion) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}

func (b *brokenRegion) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func (b *brokenRegion) Remove(context.Context, string) error {
	return errors.New("quota exceeded")
}

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestReadJSON_Found(t *testing.T) {
	ctx := context.Background()
	region := NewMemoryRegion()
	require.NoError(t, WriteJSON(ctx, region, "k", sample{Name: "a", Count: 2}))

	res := ReadJSON(ctx, region, "k", sample{})
	assert.True(t, res.Found())
	assert.False(t, res.Degraded())
	assert.Equal(t, sample{Name: "a", Count: 2}, res.Value)
	assert.NoError(t, res.Err)
}

func TestReadJSON_AbsentUsesFallback(t *testing.T) {
	res := ReadJSON(context.Background(), NewMemoryRegion(), "missing", sample{Name: "default"})
	assert.Equal(t, StatusAbsent, res.Status)
	assert.False(t, res.Degraded())
	assert.Equal(t, "default", res.Value.Name)
}

func TestReadJSON_NullIsAbsent(t *testing.T) {
	ctx := context.Background()
	region := NewMemoryRegion()
	require.NoError(t, region.Set(ctx, "k", []byte("null")))

	res := ReadJSON[*sample](ctx, region, "k", nil)
	assert.Equal(t, StatusAbsent, res.Status)
	assert.Nil(t, res.Value)
}

func TestReadJSON_CorruptUsesFallback(t *testing.T) {
	ctx := context.Background()
	region := NewMemoryRegion()
	require.NoError(t, region.Set(ctx, "k", []byte("{not json")))

	res := ReadJSON(ctx, region, "k", []sample{})
	assert.Equal(t, StatusCorrupt, res.Status)
	assert.True(t, res.Degraded())
	assert.Empty(t, res.Value)
	assert.Error(t, res.Err)
}

func TestReadJSON_WrongShapeIsCorrupt(t *testing.T) {
	ctx := context.Background()
	region := NewMemoryRegion()
	require.NoError(t, region.Set(ctx, "k", []byte(`{"name":"a"}`)))

	res := ReadJSON(ctx, region, "k", []sample{})
	assert.Equal(t, StatusCorrupt, res.Status)
}

func TestReadJSON_UnavailableUsesFallback(t *testing.T) {
	res := ReadJSON(context.Background(), &brokenRegion{}, "k", 7)
	assert.Equal(t, StatusUnavailable, res.Status)
	assert.Equal(t, 7, res.Value)
	assert.ErrorContains(t, res.Err, "disk on fire")
}

func TestWriteJSON_WrapsErrWrite(t *testing.T) {
	err := WriteJSON(context.Background(), &brokenRegion{}, "k", sample{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)
}

func TestDelete_WrapsErrWrite(t *testing.T) {
	err := Delete(context.Background(), &brokenRegion{}, "k")
	assert.ErrorIs(t, err, ErrWrite)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "found", StatusFound.String())
	assert.Equal(t, "absent", StatusAbsent.String())
	assert.Equal(t, "corrupt", StatusCorrupt.String())
	assert.Equal(t, "unavailable", StatusUnavailable.String())
	assert.Equal(t, "unknown", Status(99).String())
}
