package prizes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func drawStatus(t *testing.T, url string) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/prizes/randPrize", NewHandler(nil).Draw)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w.Code
}

func TestDrawParamValidation(t *testing.T) {
	t.Run("is_sold вне диапазона", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, drawStatus(t, "/prizes/randPrize?prize=1&is_sold=2"))
	})

	t.Run("is_sold не число", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, drawStatus(t, "/prizes/randPrize?prize=1&is_sold=abc"))
	})

	t.Run("is_sold отсутствует", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, drawStatus(t, "/prizes/randPrize?prize=1"))
	})

	t.Run("prize не число", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, drawStatus(t, "/prizes/randPrize?prize=abc&is_sold=1"))
	})
}
