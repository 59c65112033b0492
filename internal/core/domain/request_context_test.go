package domain_test

import (
	"testing"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRequestContext_IsLoopback(t *testing.T) {
	cases := map[string]bool{
		"127.0.0.1":   true,
		"127.0.0.53":  true,
		"::1":         true,
		"localhost":   true,
		"10.0.0.4":    false,
		"192.168.1.1": false,
		"":            false,
		"not-an-ip":   false,
	}
	for ip, want := range cases {
		assert.Equal(t, want, domain.RequestContext{RemoteIP: ip}.IsLoopback(), ip)
	}
}

func TestEmployeePatch_IsEmpty(t *testing.T) {
	assert.True(t, domain.EmployeePatch{}.IsEmpty())
	nom := "Durand"
	assert.False(t, domain.EmployeePatch{Nom: &nom}.IsEmpty())
	assert.True(t, domain.AppUserPatch{}.IsEmpty())
	assert.False(t, domain.AppUserPatch{Role: &nom}.IsEmpty())
}
