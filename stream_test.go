package persist

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StreamTestSuite struct {
	suite.Suite
}

func (s *StreamTestSuite) TestConstructors() {
	s.T().Run("NilChannel", func(t *testing.T) {
		stream := NewStream(nil)
		assert.ErrorIs(t, stream.Err(), ErrNilChannel)
		assert.ErrorIs(t, stream.Reset().Save(uint8(1)).Result(), ErrNilChannel)
	})
}

func (s *StreamTestSuite) TestChainPreservesOrder() {
	store := NewStoreSize(16)
	stream := NewStream(store)
	s.Require().NoError(stream.Save(uint8(1)).Save(uint8(2)).Save(uint8(3)).Result())
	s.Assert().Equal([]byte{1, 2, 3}, store.Bytes())
	s.Assert().Equal(3, stream.Count())

	s.Assert().Zero(stream.Reset().Count())
}

func (s *StreamTestSuite) TestComposite() {
	store := NewStoreSize(64)
	a, b := newRecord(1, "one"), newRecord(2, "two")
	s.Require().NoError(NewStream(store).Save(a).Save(b).Result())

	a2, b2 := newRecord(0, ""), newRecord(0, "")
	s.Require().NoError(NewStream(store).Reset().Load(a2).Load(b2).Err())
	s.Assert().True(a.equal(a2))
	s.Assert().True(b.equal(b2))
}

func (s *StreamTestSuite) TestErrorHandling() {
	s.T().Run("WriteAfterErrorIsNoOp", func(t *testing.T) {
		store := NewStoreSize(5)
		stream := NewStream(store)

		stream.Save(uint32(0x11223344)) // Success
		stream.Save(uint32(0xAABBCCDD)) // Only one byte fits.

		firstErr := stream.Err()
		assert.ErrorIs(t, firstErr, io.ErrShortWrite)

		stream.Save(uint8(0xFF))
		assert.Equal(t, firstErr, stream.Err(), "The latched error should not change")
		assert.Equal(t, 1, stream.Count())
		assert.Equal(t, 5, store.Len())
	})

	s.T().Run("ReadAfterErrorIsNoOp", func(t *testing.T) {
		store := NewStoreSize(20)
		NewStream(store).Save(MakeText(10, "0123456789"))

		small := MakeText(5, "abc")
		var after uint8
		stream := NewStream(store).Reset().Load(small).Load(&after)

		assert.ErrorIs(t, stream.Err(), ErrSizeMismatch)
		assert.Equal(t, "abc", small.String())
		assert.Zero(t, after, "Destination variable should be unchanged after an error")
	})

	s.T().Run("FlushError", func(t *testing.T) {
		errMedium := errors.New("medium failure")
		store := NewStoreSize(4).WithFlush(func([]byte) error { return errMedium })

		err := NewStream(store).Save(uint16(1)).Result()
		assert.ErrorIs(t, err, errMedium)
	})
}

// TestStream runs the StreamTestSuite.
func TestStream(t *testing.T) {
	suite.Run(t, new(StreamTestSuite))
}
