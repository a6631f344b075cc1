package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Kinds(t *testing.T) {
	t.Parallel()

	s, ok := StringValue("UP").AsString()
	assert.True(t, ok)
	assert.Equal(t, "UP", s)

	i, ok := IntValue(42).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	f, ok := IntValue(3).AsFloat()
	assert.True(t, ok, "integers convert to float")
	assert.Equal(t, 3.0, f)

	b, ok := BoolValue(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = StringValue("1").AsInt()
	assert.False(t, ok)

	assert.True(t, FloatValue(1.5).IsNumber())
	assert.False(t, BoolValue(false).IsNumber())
	assert.False(t, Value{}.IsValid())
	assert.Equal(t, KindInvalid, Value{}.Kind())
}

func TestValue_StringAndInterface(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v     Value
		str   string
		iface any
	}{
		{StringValue("x"), "x", "x"},
		{IntValue(-7), "-7", int64(-7)},
		{FloatValue(0.25), "0.25", 0.25},
		{BoolValue(false), "false", false},
		{Value{}, "<invalid>", nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.str, tc.v.String())
		assert.Equal(t, tc.iface, tc.v.Interface())
	}
}
