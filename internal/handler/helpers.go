package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/catvAlbuss/minimarketsystem/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseID reads the numeric :id path parameter. Returns false after writing
// the 400 response when the parameter is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || raw == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return uint(raw), true
}

// respondError maps service errors onto HTTP statuses. Anything outside the
// known taxonomy is a 500 with a generic message so internals never leak.
func respondError(c *gin.Context, err error) {
	var (
		vErr *apierror.ValidationError
		nErr *apierror.NotFoundError
		fErr *apierror.ForbiddenError
		cErr *apierror.ConstraintError
		aErr *apierror.APIError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, vErr)
	case errors.As(err, &nErr):
		c.JSON(http.StatusNotFound, nErr)
	case errors.As(err, &fErr):
		c.JSON(http.StatusForbidden, fErr)
	case errors.As(err, &cErr):
		c.JSON(http.StatusConflict, cErr)
	case errors.As(err, &aErr):
		c.JSON(http.StatusBadRequest, aErr)
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
