package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	x, err := New(Shape{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.True(t, x.Shape().Equal(Shape{2, 2}))
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, []float64{1, 2, 3, 4}, x.Data())
}

func TestNew_TruncatesLongInitializer(t *testing.T) {
	x, err := New(Shape{3}, []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, x.Data())
}

func TestNew_SizeUnderflow(t *testing.T) {
	_, err := New(Shape{2, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrSizeUnderflow)

	assert.Panics(t, func() {
		MustNew(Shape{2, 2}, []float64{1})
	})
}

func TestNew_InvalidShape(t *testing.T) {
	_, err := New(Shape{2, -3}, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)

	assert.Panics(t, func() { Zeros(Shape{-1}) })
}

func TestNew_ElementCountOverflow(t *testing.T) {
	huge := Shape{1 << 32, 1 << 32}

	x, err := New(huge, nil)
	assert.Nil(t, x)
	assert.ErrorIs(t, err, ErrInvalidShape)

	assert.Panics(t, func() { Zeros(huge) })

	_, err = Identity(1<<32, 2)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestNew_CopiesInitializer(t *testing.T) {
	init := []float64{1, 2, 3, 4}
	shape := Shape{2, 2}
	x := MustNew(shape, init)

	init[0] = 100
	shape[0] = 9

	assert.Equal(t, []float64{1, 2, 3, 4}, x.Data())
	assert.True(t, x.Shape().Equal(Shape{2, 2}))
}

func TestZeros_DataLength(t *testing.T) {
	shapes := []Shape{{}, {1}, {7}, {2, 3}, {3, 4, 5}, {2, 2, 2, 2}}

	for _, s := range shapes {
		x := Zeros(s)
		assert.Len(t, x.Data(), s.NumElements(), "shape %v", s)
		assert.Equal(t, s.NumElements(), x.NumElements())
		for _, v := range x.Data() {
			assert.Zero(t, v)
		}
	}
}

func TestIdentity_Rank2(t *testing.T) {
	id, err := Identity(3, 2)
	require.NoError(t, err)

	want := MustNew(Shape{3, 3}, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	assert.True(t, id.Equal(want), "got %v", id)
	assert.True(t, Eye(3).Equal(want))
}

func TestIdentity_OtherRanksKeepFlatPlacement(t *testing.T) {
	id, err := Identity(3, 3)
	require.NoError(t, err)
	assert.True(t, id.Shape().Equal(Shape{3, 3, 3}))

	data := id.Data()
	require.Len(t, data, 27)
	ones := 0
	for idx, v := range data {
		if v == 1 {
			ones++
			assert.Zero(t, idx%4, "unexpected 1 at flat index %d", idx)
		}
	}
	assert.Equal(t, 3, ones)
}

func TestIdentity_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		size, rank int
	}{
		{"negative size", -1, 2},
		{"negative rank", 2, -1},
		{"rank 1 overflow", 3, 1},
		{"rank 0 overflow", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Identity(tt.size, tt.rank)
			assert.ErrorIs(t, err, ErrInvalidShape)
		})
	}
}

func TestIdentity_Degenerate(t *testing.T) {
	id, err := Identity(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, id.Data())

	empty, err := Identity(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumElements())
}

func TestClone_IsIndependent(t *testing.T) {
	orig := MustNew(Shape{2, 2}, []float64{1, 2, 3, 4})
	clone := orig.Clone()

	require.True(t, clone.Equal(orig))

	clone.data[0] = -1
	clone.shape[0] = 5

	assert.Equal(t, []float64{1, 2, 3, 4}, orig.Data())
	assert.True(t, orig.Shape().Equal(Shape{2, 2}))
}

func TestAccessorsReturnCopies(t *testing.T) {
	x := MustNew(Shape{2}, []float64{1, 2})

	x.Data()[0] = 9
	x.Shape()[0] = 9

	assert.Equal(t, []float64{1, 2}, x.Data())
	assert.True(t, x.Shape().Equal(Shape{2}))
}

func TestAtAndWith(t *testing.T) {
	x := MustNew(Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	v, err := x.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	y, err := x.With(-1, 0, 1)
	require.NoError(t, err)

	got, err := y.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, got)

	orig, err := x.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, orig)

	_, err = x.At(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = x.With(0, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEqual(t *testing.T) {
	a := MustNew(Shape{2, 2}, []float64{1, 2, 3, 4})

	assert.True(t, a.Equal(MustNew(Shape{2, 2}, []float64{1, 2, 3, 4})))
	assert.False(t, a.Equal(MustNew(Shape{4}, []float64{1, 2, 3, 4})))
	assert.False(t, a.Equal(MustNew(Shape{2, 2}, []float64{1, 2, 3, 5})))
	assert.False(t, a.Equal(nil))
}

func TestString(t *testing.T) {
	x := MustNew(Shape{2}, []float64{1.5, 2})
	assert.Equal(t, "Tensor(shape=[2], data=[1.5 2])", x.String())
}
