package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SetsCodeAndMessage(t *testing.T) {
	err := New(ErrCodeDateFormatInvalid, "expected DD/MM/YYYY")
	assert.Equal(t, ErrCodeDateFormatInvalid, err.Code)
	assert.Equal(t, "expected DD/MM/YYYY", err.Message)
	assert.NotEmpty(t, err.Stack)
}

func TestError_FormatWithAndWithoutDetail(t *testing.T) {
	err := New(ErrCodeDateEmpty, "date string is empty")
	assert.Equal(t, "[DATE_001] date string is empty", err.Error())

	withDetail := err.WithDetail("query param date")
	assert.Equal(t, "[DATE_001] date string is empty: query param date", withDetail.Error())
	// Original untouched.
	assert.Empty(t, err.Detail)
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "should be nil"))
}

func TestWrap_PreservesOriginalCodeWhenUnknown(t *testing.T) {
	inner := New(ErrCodeDateYearRange, "year 3000 out of range")
	wrapped := Wrap(inner, CodeUnknown, "while normalizing")
	assert.Equal(t, ErrCodeDateYearRange, wrapped.Code)
	assert.True(t, stderrors.Is(wrapped, wrapped))
	assert.Equal(t, inner, stderrors.Unwrap(wrapped))
}

func TestIsCode_TraversesChain(t *testing.T) {
	inner := New(ErrCodeTimezoneUnknown, "no such zone")
	wrapped := Wrap(fmt.Errorf("resolver: %w", inner), ErrCodeInternal, "resolution failed")
	assert.True(t, IsCode(wrapped, ErrCodeTimezoneUnknown))
	assert.False(t, IsCode(wrapped, ErrCodeDateEmpty))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(New(ErrCodeDateFormatInvalid, "bad date")))
	assert.True(t, IsValidation(New(ErrCodeTimeFormatInvalid, "bad time")))
	assert.False(t, IsValidation(New(ErrCodeInternal, "boom")))
	assert.False(t, IsValidation(stderrors.New("plain")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeGeocodeTimeout, GetCode(New(ErrCodeGeocodeTimeout, "slow")))
}

func TestHTTPStatusForCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatusForCode(ErrCodeDateFormatInvalid))
	assert.Equal(t, http.StatusBadRequest, HTTPStatusForCode(ErrCodeDateYearRange))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusForCode(ErrCodeChartComputeFailed))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatusForCode(ErrorCode("NOPE_000")))
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "DATE", ModuleForCode(ErrCodeDateEmpty))
	assert.Equal(t, "TZ", ModuleForCode(ErrCodeTimezoneUnknown))
	assert.Equal(t, "GEO", ModuleForCode(ErrCodeGeocodeFailed))
}

func TestIsClientServerError(t *testing.T) {
	assert.True(t, IsClientError(ErrCodeDateEmpty))
	assert.False(t, IsServerError(ErrCodeDateEmpty))
	assert.True(t, IsServerError(ErrCodeVerifyRemoteFailed))
}

//Personal.AI order the ending
