package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/tablescope-backend/dto"
	"github.com/tablescope/tablescope-backend/models"
)

func renderErrorToRecorder(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ActionResponse[struct{}]) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	handled := presentError(context.Background(), c, err)
	assert.True(t, handled)

	var body dto.ActionResponse[struct{}]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func TestPresentErrorNilIsNotHandled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.False(t, presentError(context.Background(), c, nil))
}

func TestPresentErrorStatusMapping(t *testing.T) {
	cases := map[int]error{
		http.StatusBadRequest:          errors.Wrap(models.BadParameterError, "page must be positive"),
		http.StatusNotFound:            errors.Wrapf(models.NotFoundError, "table %q", "invoices"),
		http.StatusConflict:            errors.Wrap(models.ConflictError, "digest collision"),
		http.StatusServiceUnavailable:  errors.Wrap(models.StoreError, "connection refused"),
		http.StatusInternalServerError: errors.New("pool exhausted"),
	}

	for status, err := range cases {
		recorder, body := renderErrorToRecorder(t, err)
		assert.Equal(t, status, recorder.Code)
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.NotEmpty(t, body.Error.Message)
	}
}

func TestPresentErrorHidesInternals(t *testing.T) {
	_, body := renderErrorToRecorder(t, errors.New("password=hunter2 refused"))
	require.NotNil(t, body.Error)
	assert.Equal(t, "An unexpected error occurred.", body.Error.Message)
}

func TestPresentErrorRuleValidationDetails(t *testing.T) {
	err := models.NewRuleValidationError("$.rules[1]", "age", "operator \"contains\" is not allowed on a number field")

	recorder, body := renderErrorToRecorder(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, body.Error)
	require.Contains(t, body.Error.Details, "age")
	assert.NotEmpty(t, body.Error.Details["age"])
}
