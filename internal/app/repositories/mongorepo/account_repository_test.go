package mongorepo

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusconnect/placement-api/internal/app/models/dto"
	"github.com/campusconnect/placement-api/internal/middleware"
	"github.com/campusconnect/placement-api/internal/pkg/apperrors"
)

func TestErrConcurrentUpdate_IsConflict(t *testing.T) {
	assert.ErrorIs(t, ErrConcurrentUpdate, apperrors.ErrConflict)

	status, detail := middleware.ResolveError(ErrConcurrentUpdate)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, detail.Code)
	assert.Equal(t, "Profile was modified by another request, please retry", detail.Message)
}
