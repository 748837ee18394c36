package funfix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoSuchElementError(t *testing.T) {
	t.Run("message identifies the accessor", func(t *testing.T) {
		err := NoSuchElement("Option.Get")
		assert.Equal(t, "funfix: no such element: Option.Get", err.Error())
		assert.Equal(t, "Option.Get", err.Op)
	})

	t.Run("IsNoSuchElement recognizes the kind", func(t *testing.T) {
		assert.True(t, IsNoSuchElement(NoSuchElement("Either.Left")))
		assert.False(t, IsNoSuchElement(errors.New("other")))
		assert.False(t, IsNoSuchElement(nil))
		assert.False(t, IsNoSuchElement("no such element"))
	})
}
