package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmpresaID(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEmpresaID("emp-1"))
	assert.NoError(t, ValidateEmpresaID("acme_corp"))
	assert.NoError(t, ValidateEmpresaID("a"))

	assert.Error(t, ValidateEmpresaID(""))
	assert.Error(t, ValidateEmpresaID("Empresa"))
	assert.Error(t, ValidateEmpresaID("-empresa"))
	assert.Error(t, ValidateEmpresaID("emp 1"))
	assert.Error(t, ValidateEmpresaID("emp/../../etc"))
}

func TestParsePagination(t *testing.T) {
	t.Parallel()

	page, size, err := ParsePagination("", "")
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size, err = ParsePagination("3", "50")
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, size)

	_, _, err = ParsePagination("0", "")
	assert.Error(t, err)

	_, _, err = ParsePagination("abc", "")
	assert.Error(t, err)

	_, _, err = ParsePagination("", "101")
	assert.Error(t, err)

	_, _, err = ParsePagination("", "-5")
	assert.Error(t, err)
}
