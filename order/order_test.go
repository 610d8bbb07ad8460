package order_test

import (
	"encoding/json"
	"testing"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/hashing"
	"github.com/amp-labs/amp-sort/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	_ compare.Comparable[order.Order] = order.Order{}
	_ hashing.Hashable                = order.Order{}
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		direction order.Direction
		expected  order.Order
		wantErr   bool
	}{
		{name: "ascending", direction: order.Ascending, expected: order.Asc()},
		{name: "descending", direction: order.Descending, expected: order.Desc()},
		{name: "empty", direction: "", wantErr: true},
		{name: "lowercase is not a discriminant", direction: "asc", wantErr: true},
		{name: "garbage", direction: "SIDEWAYS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, err := order.New(tt.direction)
			if tt.wantErr {
				require.ErrorIs(t, err, order.ErrInvalidDirection)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, o)
			assert.Equal(t, tt.direction, o.Direction())
		})
	}
}

func TestZeroValueIsAscending(t *testing.T) {
	t.Parallel()

	var o order.Order

	assert.Equal(t, order.Ascending, o.Direction())
	assert.True(t, o.Equals(order.Asc()))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected order.Order
		wantErr  bool
	}{
		{input: "asc", expected: order.Asc()},
		{input: "ASC", expected: order.Asc()},
		{input: " Ascending ", expected: order.Asc()},
		{input: "desc", expected: order.Desc()},
		{input: "DESCENDING", expected: order.Desc()},
		{input: "", wantErr: true},
		{input: "down", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			o, err := order.Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, order.ErrInvalidDirection)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, o)
		})
	}
}

func TestOrder_ValueSemantics(t *testing.T) {
	t.Parallel()

	a, err := order.New(order.Descending)
	require.NoError(t, err)

	b := order.Desc()

	assert.True(t, a.Equals(b))
	assert.Equal(t, a, b)
	assert.False(t, a.Equals(order.Asc()))
	assert.True(t, a.IsDescending())
	assert.False(t, a.IsAscending())
	assert.Equal(t, order.Asc(), a.Reverse())
	assert.Equal(t, a, a.Reverse().Reverse())
	assert.Equal(t, "DESC", a.String())
	assert.Equal(t, "ASC", order.Asc().String())
}

func TestOrder_UpdateHash(t *testing.T) {
	t.Parallel()

	asc, err := hashing.Sha256(order.Asc())
	require.NoError(t, err)

	expected, err := hashing.Sha256(hashing.HashableString("ASC"))
	require.NoError(t, err)

	desc, err := hashing.Sha256(order.Desc())
	require.NoError(t, err)

	assert.Equal(t, expected, asc)
	assert.NotEqual(t, asc, desc)
}

func TestOrder_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(order.Desc())
	require.NoError(t, err)
	assert.JSONEq(t, `"DESC"`, string(data))

	var o order.Order
	require.NoError(t, json.Unmarshal([]byte(`"asc"`), &o))
	assert.Equal(t, order.Asc(), o)

	err = json.Unmarshal([]byte(`"up"`), &o)
	require.ErrorIs(t, err, order.ErrInvalidDirection)

	err = json.Unmarshal([]byte(`1`), &o)
	require.Error(t, err)

	t.Run("null keeps the current order", func(t *testing.T) {
		t.Parallel()

		o := order.Desc()
		require.NoError(t, json.Unmarshal([]byte(`null`), &o))
		assert.Equal(t, order.Desc(), o)
	})
}

func TestOrder_YAML(t *testing.T) {
	t.Parallel()

	type config struct {
		Direction order.Order `yaml:"direction"`
	}

	data, err := yaml.Marshal(config{Direction: order.Desc()})
	require.NoError(t, err)
	assert.Equal(t, "direction: DESC\n", string(data))

	var cfg config
	require.NoError(t, yaml.Unmarshal([]byte("direction: descending\n"), &cfg))
	assert.Equal(t, order.Desc(), cfg.Direction)

	err = yaml.Unmarshal([]byte("direction: diagonal\n"), &cfg)
	require.ErrorIs(t, err, order.ErrInvalidDirection)

	t.Run("null keeps the current order", func(t *testing.T) {
		t.Parallel()

		cfg := config{Direction: order.Desc()}
		require.NoError(t, yaml.Unmarshal([]byte("direction: null\n"), &cfg))
		assert.Equal(t, order.Desc(), cfg.Direction)

		var doc yaml.Node
		require.NoError(t, yaml.Unmarshal([]byte("~"), &doc))
		require.Len(t, doc.Content, 1)

		o := order.Desc()
		require.NoError(t, o.UnmarshalYAML(doc.Content[0]))
		assert.Equal(t, order.Desc(), o)
	})
}
