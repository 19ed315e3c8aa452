package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_IsDeterministic(t *testing.T) {
	assert.Equal(t, ID([]byte("scheme")), ID([]byte("scheme")))
	assert.NotEqual(t, ID([]byte("scheme")), ID([]byte("basic")))
}

func TestCache_InternReturnsEqualContent(t *testing.T) {
	c := NewCache()

	a := c.Intern([]byte("scheme"))
	b := c.Intern([]byte("scheme"))

	assert.Equal(t, "scheme", a)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, c.Len())
}

func TestCache_InternDistinctKeys(t *testing.T) {
	c := NewCache()

	c.Intern([]byte("scheme"))
	c.Intern([]byte("basic"))
	c.Intern([]byte("name"))

	assert.Equal(t, 3, c.Len())
}

func TestCache_ConcurrentInternIsSafe(t *testing.T) {
	c := NewCache()
	done := make(chan struct{})

	for i := 0; i < 16; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				c.Intern([]byte("name"))
			}
		}()
	}

	for i := 0; i < 16; i++ {
		<-done
	}

	assert.Equal(t, 1, c.Len())
}
