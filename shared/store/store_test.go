package store_test

import (
	"context"
	"errors"
	otelMocks "stayledger/infras/otel/mocks"
	"stayledger/infras/s3"
	s3Mocks "stayledger/infras/s3/mocks"
	"stayledger/shared/constant"
	"stayledger/shared/store"
	storeMocks "stayledger/shared/store/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemory_LoadSave(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	_, err := mem.Load(ctx, "pc_bookings")
	assert.ErrorIs(t, err, store.ErrNotFound)

	value := []byte(`[{"unit":"G1"}]`)
	require.NoError(t, mem.Save(ctx, "pc_bookings", value))

	// stored bytes are independent of the caller's slice
	value[2] = 'X'

	loaded, err := mem.Load(ctx, "pc_bookings")
	require.NoError(t, err)
	assert.Equal(t, `[{"unit":"G1"}]`, string(loaded))

	require.NoError(t, mem.Save(ctx, "pc_bookings", []byte(`[]`)))

	loaded, err = mem.Load(ctx, "pc_bookings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(loaded))
}

func TestWithPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockStore(ctrl)
	ctx := context.Background()

	mockStore.EXPECT().Save(gomock.Any(), "dev:pc_units", []byte(`[]`)).Return(nil)
	mockStore.EXPECT().Load(gomock.Any(), "dev:pc_units").Return([]byte(`[]`), nil)

	prefixed := store.WithPrefix(mockStore, "dev:")

	require.NoError(t, prefixed.Save(ctx, "pc_units", []byte(`[]`)))

	value, err := prefixed.Load(ctx, "pc_units")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))

	assert.Same(t, mockStore, store.WithPrefix(mockStore, ""))
}

func TestInstrument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockStore(ctrl)
	mockOtel := otelMocks.NewOtel()
	ctx := context.Background()

	traced := store.Instrument(mockStore, mockOtel)

	t.Run("not found passes through untouched", func(t *testing.T) {
		mockStore.EXPECT().Load(gomock.Any(), "missing").Return(nil, store.ErrNotFound)

		_, err := traced.Load(ctx, "missing")
		assert.Equal(t, store.ErrNotFound, err)
	})

	t.Run("backend errors are wrapped", func(t *testing.T) {
		backendErr := errors.New("connection refused")
		mockStore.EXPECT().Save(gomock.Any(), "pc_bookings", gomock.Any()).Return(backendErr)

		err := traced.Save(ctx, "pc_bookings", []byte(`[]`))
		assert.ErrorIs(t, err, backendErr)
		assert.Contains(t, err.Error(), "pc_bookings")
	})

	assert.Equal(t, []string{
		constant.OtelStoreScopeName + ".Load",
		constant.OtelStoreScopeName + ".Save",
	}, mockOtel.Spans())
}

func TestS3Store(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockS3 := s3Mocks.NewMockS3(ctrl)
	ctx := context.Background()
	bucket := store.NewS3(mockS3)

	mockS3.EXPECT().Download(gomock.Any(), "expenses:base.json").Return(nil, s3.ErrObjectNotFound)
	mockS3.EXPECT().Upload(gomock.Any(), "expenses:base.json", constant.ContentTypeJSON, []byte(`[]`)).Return(nil)
	mockS3.EXPECT().Download(gomock.Any(), "expenses:base.json").Return([]byte(`[]`), nil)

	_, err := bucket.Load(ctx, "expenses:base")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, bucket.Save(ctx, "expenses:base", []byte(`[]`)))

	value, err := bucket.Load(ctx, "expenses:base")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))
}
