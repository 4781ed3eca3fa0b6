package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageFor(t *testing.T, query string) (pageParams, error) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return bindPage(c)
}

func TestBindPage(t *testing.T) {
	p, err := pageFor(t, "")
	require.NoError(t, err)
	assert.Equal(t, defaultPageLimit, p.limit)
	assert.Equal(t, 0, p.offset)

	p, err = pageFor(t, "limit=25&offset=100")
	require.NoError(t, err)
	assert.Equal(t, 25, p.limit)
	assert.Equal(t, 100, p.offset)
}

func TestBindPage_Invalid(t *testing.T) {
	for _, query := range []string{
		"limit=0",
		"limit=201",
		"limit=abc",
		"offset=-1",
		"offset=x",
	} {
		_, err := pageFor(t, query)
		assert.Error(t, err, "query %q", query)
	}
}
