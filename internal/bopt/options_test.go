package bopt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Value    int
	Name     string
	LastCall string
}

func (tc *testConfig) SetValue(v int) error {
	if v < 0 {
		return errors.New("value cannot be negative")
	}
	tc.Value = v
	tc.LastCall = "SetValue"

	return nil
}

func (tc *testConfig) SetName(name string) {
	tc.Name = name
	tc.LastCall = "SetName"
}

func TestOption_New(t *testing.T) {
	config := &testConfig{}

	opt := New(func(c *testConfig) error {
		return c.SetValue(42)
	})

	require.NoError(t, opt.apply(config))
	require.Equal(t, 42, config.Value)
}

func TestOption_New_PropagatesError(t *testing.T) {
	config := &testConfig{}

	opt := New(func(c *testConfig) error {
		return c.SetValue(-1)
	})

	err := opt.apply(config)
	require.Error(t, err)
	require.Contains(t, err.Error(), "value cannot be negative")
}

func TestOption_NoError(t *testing.T) {
	config := &testConfig{}

	opt := NoError(func(c *testConfig) {
		c.SetName("test")
	})

	require.NoError(t, opt.apply(config))
	require.Equal(t, "test", config.Name)
}

func TestOption_Apply_StopsAtFirstError(t *testing.T) {
	config := &testConfig{}

	opts := []Option[*testConfig]{
		New(func(c *testConfig) error { return c.SetValue(5) }),
		New(func(c *testConfig) error { return c.SetValue(-1) }),
		NoError(func(c *testConfig) { c.SetName("should not be set") }),
	}

	err := Apply(config, opts...)
	require.Error(t, err)
	require.Equal(t, 5, config.Value)
	require.Equal(t, "", config.Name)
}

func TestOption_Apply_Empty(t *testing.T) {
	config := &testConfig{}
	require.NoError(t, Apply(config))
	require.Equal(t, 0, config.Value)
}
