package repository_test

import (
	"context"
	"errors"
	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/shared/repository"
	"stayledger/shared/store"
	storeMocks "stayledger/shared/store/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollection_RoundTripThroughMemory(t *testing.T) {
	ctx := context.Background()
	items := repository.NewCollection[item]("item", "items", store.NewMemory(), otelMocks.NewOtel())

	loaded, err := items.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)

	require.NoError(t, items.Save(ctx, nil))

	loaded, err = items.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{}, loaded)

	require.NoError(t, items.Save(ctx, []item{{ID: "1", Name: "G1"}}))

	loaded, err = items.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item{{ID: "1", Name: "G1"}}, loaded)
}

func TestCollection_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockStore(ctrl)
	ctx := context.Background()
	items := repository.NewCollection[item]("item", "items", mockStore, otelMocks.NewOtel())

	t.Run("load failure", func(t *testing.T) {
		mockStore.EXPECT().Load(gomock.Any(), "items").Return(nil, errors.New("timeout"))

		_, err := items.Load(ctx)
		assert.ErrorContains(t, err, "failed to load item collection")
	})

	t.Run("corrupt snapshot", func(t *testing.T) {
		mockStore.EXPECT().Load(gomock.Any(), "items").Return([]byte(`{"not":"an array"}`), nil)

		_, err := items.Load(ctx)
		assert.ErrorContains(t, err, "failed to decode item collection")
	})

	t.Run("save failure", func(t *testing.T) {
		mockStore.EXPECT().Save(gomock.Any(), "items", []byte(`[]`)).Return(errors.New("read only"))

		err := items.Save(ctx, []item{})
		assert.ErrorContains(t, err, "failed to save item collection")
	})
}
