package swagger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHandler(t *testing.T) {
	h, err := GetHandler()
	require.NoError(t, err)

	for _, path := range []string{"/", "/openapi.yaml"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}

func TestSpec(t *testing.T) {
	spec, err := Spec()
	require.NoError(t, err)
	assert.Contains(t, string(spec), "/swaps/{id}/respond")
}
