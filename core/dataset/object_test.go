package dataset

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"tablediff/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectSource_Load(t *testing.T) {
	t.Run("CSVObject", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "exports").Return(true, nil)
		body := io.NopCloser(strings.NewReader("id,name\n1,Alice\n"))
		mockClient.On("GetObject", mock.Anything, "exports", "daily/people.csv", mock.Anything).Return(body, nil)

		src := NewObjectSource(mockClient, "exports", "daily/people.csv")
		assert.Equal(t, "s3://exports/daily/people.csv", src.Name())

		ds, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "s3://exports/daily/people.csv", ds.Name)
		assert.Equal(t, Header{"id", "name"}, ds.Header)
		assert.Equal(t, []Row{{"1", "Alice"}}, ds.Rows)
		mockClient.AssertExpectations(t)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gone").Return(false, nil)

		_, err := NewObjectSource(mockClient, "gone", "a.csv").Load(context.Background())
		assert.ErrorIs(t, err, ErrSourceUnreadable)
		assert.ErrorContains(t, err, "bucket gone does not exist")
		mockClient.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("GetObjectError", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "exports").Return(true, nil)
		mockClient.On("GetObject", mock.Anything, "exports", "a.csv", mock.Anything).Return(nil, errors.New("access denied"))

		_, err := NewObjectSource(mockClient, "exports", "a.csv").Load(context.Background())
		assert.ErrorIs(t, err, ErrSourceUnreadable)
		assert.ErrorContains(t, err, "access denied")
	})
}
